package request

import "time"

// Login is the login form payload.
type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Signup is the registration form payload.
type Signup struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Role            string `json:"role"`
}

// UpdateProfile carries the editable profile fields. Nil fields are
// left unchanged.
type UpdateProfile struct {
	Username  *string `json:"username,omitempty"`
	Email     *string `json:"email,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

// CreateGame is the admin game-creation payload.
type CreateGame struct {
	Name      string   `json:"name"`
	Genre     string   `json:"genre"`
	Platforms []string `json:"platforms"`
}

// UpdateGame carries editable game fields. Nil fields are left unchanged.
type UpdateGame struct {
	Name      *string  `json:"name,omitempty"`
	Genre     *string  `json:"genre,omitempty"`
	Platforms []string `json:"platforms,omitempty"`
	Status    *string  `json:"status,omitempty"`
}

// CreateTournament is the tournament-creation payload.
type CreateTournament struct {
	Name        string    `json:"name"`
	GameID      string    `json:"gameId"`
	Format      string    `json:"format"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	MaxTeams    int       `json:"maxTeams"`
	PrizePool   string    `json:"prizePool"`
	Region      string    `json:"region"`
	Description string    `json:"description"`
}

// UpdateTournament carries editable tournament fields. Nil fields are
// left unchanged.
type UpdateTournament struct {
	Name        *string    `json:"name,omitempty"`
	Format      *string    `json:"format,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	MaxTeams    *int       `json:"maxTeams,omitempty"`
	PrizePool   *string    `json:"prizePool,omitempty"`
	Region      *string    `json:"region,omitempty"`
	Description *string    `json:"description,omitempty"`
	Status      *string    `json:"status,omitempty"`
}

// ScheduleMatch is the match-scheduling payload.
type ScheduleMatch struct {
	TeamA       string    `json:"teamA"`
	TeamB       string    `json:"teamB"`
	ScheduledAt time.Time `json:"scheduledAt"`
}

// ReportScore is the live score update payload.
type ReportScore struct {
	ScoreA int    `json:"scoreA"`
	ScoreB int    `json:"scoreB"`
	Status string `json:"status"`
}

// UpdateUser carries admin-editable user fields. Nil fields are left
// unchanged.
type UpdateUser struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Role     *string `json:"role,omitempty"`
}
