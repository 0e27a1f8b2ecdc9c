package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case User:
		o.printUser(v)
	case []User:
		for i := range v {
			if i > 0 {
				fmt.Println()
			}
			o.printUser(v[i])
		}
	case Session:
		o.printSession(v)
	case AuthResult:
		o.printAuthResult(v)
	case Game:
		o.printGame(v)
	case []Game:
		for i := range v {
			if i > 0 {
				fmt.Println()
			}
			o.printGame(v[i])
		}
	case Tournament:
		o.printTournament(v)
	case []Tournament:
		for i := range v {
			if i > 0 {
				fmt.Println()
			}
			o.printTournament(v[i])
		}
	case Match:
		o.printMatch(v)
	case []Match:
		for i := range v {
			o.printMatch(v[i])
		}
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// User response type (matches API)
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatarUrl"`
}

// Session response type
type Session struct {
	Token     string    `json:"token"`
	User      User      `json:"user"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// AuthResult combines the session with the role's home destination
type AuthResult struct {
	Session    Session `json:"session"`
	RedirectTo string  `json:"redirectTo"`
}

// Game response type
type Game struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Genre     string   `json:"genre"`
	Platforms []string `json:"platforms"`
	Status    string   `json:"status"`
}

// Tournament response type
type Tournament struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	GameID          string    `json:"gameId"`
	Format          string    `json:"format"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	MaxTeams        int       `json:"maxTeams"`
	RegisteredTeams int       `json:"registeredTeams"`
	PrizePool       string    `json:"prizePool"`
	Region          string    `json:"region"`
	Status          string    `json:"status"`
}

// Match response type
type Match struct {
	ID           string    `json:"id"`
	TournamentID string    `json:"tournamentId"`
	TeamA        string    `json:"teamA"`
	TeamB        string    `json:"teamB"`
	ScoreA       int       `json:"scoreA"`
	ScoreB       int       `json:"scoreB"`
	Status       string    `json:"status"`
	ScheduledAt  time.Time `json:"scheduledAt"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printUser(u User) {
	fmt.Printf("User: %s (%s)\n", u.Username, u.ID)
	fmt.Printf("Email: %s\n", u.Email)
	fmt.Printf("Role: %s\n", u.Role)
}

func (o *Output) printSession(s Session) {
	o.printUser(s.User)
	fmt.Printf("Expires: %s\n", s.ExpiresAt.Format(time.RFC3339))
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printSession(a.Session)
	fmt.Printf("Token: %s\n", a.Session.Token)
	fmt.Printf("Home: %s\n", a.RedirectTo)
}

func (o *Output) printGame(g Game) {
	fmt.Printf("Game: %s (%s)\n", g.Name, g.ID)
	fmt.Printf("Genre: %s\n", g.Genre)
	if len(g.Platforms) > 0 {
		fmt.Printf("Platforms: %s\n", strings.Join(g.Platforms, ", "))
	}
	fmt.Printf("Status: %s\n", g.Status)
}

func (o *Output) printTournament(t Tournament) {
	fmt.Printf("Tournament: %s (%s)\n", t.Name, t.ID)
	fmt.Printf("Status: %s\n", t.Status)
	if t.Format != "" {
		fmt.Printf("Format: %s\n", t.Format)
	}
	fmt.Printf("Teams: %d/%d\n", t.RegisteredTeams, t.MaxTeams)
	if t.PrizePool != "" {
		fmt.Printf("Prize Pool: %s\n", t.PrizePool)
	}
	if t.Region != "" {
		fmt.Printf("Region: %s\n", t.Region)
	}
	if !t.StartDate.IsZero() {
		fmt.Printf("Starts: %s\n", t.StartDate.Format("2006-01-02"))
	}
}

func (o *Output) printMatch(m Match) {
	fmt.Printf("[%s] %s vs %s: %d-%d (%s)\n",
		m.ID, m.TeamA, m.TeamB, m.ScoreA, m.ScoreB, m.Status)
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
