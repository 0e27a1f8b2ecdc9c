package response

import (
	"time"

	"github.com/arenahq/arena/internal/model"
)

// User is the outward user representation.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	AvatarURL string    `json:"avatarUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUser converts a model user to its response form.
func NewUser(u *model.User) User {
	return User{
		ID:        string(u.ID),
		Username:  u.Username,
		Email:     u.Email,
		Role:      string(u.Role),
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
	}
}

// Session is returned from login, signup and session introspection.
type Session struct {
	Token     string    `json:"token"`
	User      User      `json:"user"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// NewSession converts a model session to its response form.
func NewSession(s *model.Session) Session {
	return Session{
		Token:     s.Token,
		User:      NewUser(&s.User),
		ExpiresAt: s.ExpiresAt,
	}
}

// Game is the outward game representation.
type Game struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Genre     string    `json:"genre"`
	Platforms []string  `json:"platforms"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewGame converts a model game to its response form.
func NewGame(g *model.Game) Game {
	return Game{
		ID:        string(g.ID),
		Name:      g.Name,
		Genre:     g.Genre,
		Platforms: g.Platforms,
		Status:    string(g.Status),
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

// NewGames converts a slice of model games.
func NewGames(games []*model.Game) []Game {
	out := make([]Game, 0, len(games))
	for _, g := range games {
		out = append(out, NewGame(g))
	}
	return out
}

// Tournament is the outward tournament representation.
type Tournament struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	GameID          string    `json:"gameId"`
	OrganizerID     string    `json:"organizerId"`
	Format          string    `json:"format"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	MaxTeams        int       `json:"maxTeams"`
	RegisteredTeams int       `json:"registeredTeams"`
	PrizePool       string    `json:"prizePool"`
	Region          string    `json:"region"`
	Description     string    `json:"description"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// NewTournament converts a model tournament to its response form.
func NewTournament(t *model.Tournament) Tournament {
	return Tournament{
		ID:              string(t.ID),
		Name:            t.Name,
		GameID:          string(t.GameID),
		OrganizerID:     string(t.OrganizerID),
		Format:          t.Format,
		StartDate:       t.StartDate,
		EndDate:         t.EndDate,
		MaxTeams:        t.MaxTeams,
		RegisteredTeams: t.RegisteredTeams,
		PrizePool:       t.PrizePool,
		Region:          t.Region,
		Description:     t.Description,
		Status:          string(t.Status),
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
	}
}

// NewTournaments converts a slice of model tournaments.
func NewTournaments(tournaments []*model.Tournament) []Tournament {
	out := make([]Tournament, 0, len(tournaments))
	for _, t := range tournaments {
		out = append(out, NewTournament(t))
	}
	return out
}

// Match is the outward match representation.
type Match struct {
	ID           string    `json:"id"`
	TournamentID string    `json:"tournamentId"`
	TeamA        string    `json:"teamA"`
	TeamB        string    `json:"teamB"`
	ScoreA       int       `json:"scoreA"`
	ScoreB       int       `json:"scoreB"`
	Status       string    `json:"status"`
	ScheduledAt  time.Time `json:"scheduledAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewMatch converts a model match to its response form.
func NewMatch(m *model.Match) Match {
	return Match{
		ID:           string(m.ID),
		TournamentID: string(m.TournamentID),
		TeamA:        m.TeamA,
		TeamB:        m.TeamB,
		ScoreA:       m.ScoreA,
		ScoreB:       m.ScoreB,
		Status:       string(m.Status),
		ScheduledAt:  m.ScheduledAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// NewMatches converts a slice of model matches.
func NewMatches(matches []*model.Match) []Match {
	out := make([]Match, 0, len(matches))
	for _, m := range matches {
		out = append(out, NewMatch(m))
	}
	return out
}

// NewUsers converts a slice of model users.
func NewUsers(users []*model.User) []User {
	out := make([]User, 0, len(users))
	for _, u := range users {
		out = append(out, NewUser(u))
	}
	return out
}

// Screen is a generic screen payload: the screen name plus the data the
// view renders and, when a viewer is signed in, who is viewing.
type Screen struct {
	Screen string         `json:"screen"`
	Viewer *User          `json:"viewer,omitempty"`
	Data   map[string]any `json:"data,omitempty"`
}

// Notice is a transient message surfaced to the viewer once.
type Notice struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Health is the service health payload.
type Health struct {
	Status string `json:"status"`
}
