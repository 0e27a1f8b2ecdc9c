package model

import "time"

// TournamentID uniquely identifies a tournament
type TournamentID string

// TournamentStatus is the phase of a tournament
type TournamentStatus string

const (
	TournamentUpcoming  TournamentStatus = "upcoming"
	TournamentActive    TournamentStatus = "active"
	TournamentCompleted TournamentStatus = "completed"
)

// Tournament is a competition for a single game title
type Tournament struct {
	ID              TournamentID
	Name            string
	GameID          GameID
	Status          TournamentStatus
	Format          string // e.g. "Single Elimination", "Round Robin"
	StartDate       time.Time
	EndDate         time.Time
	PrizePool       string
	MaxTeams        int
	RegisteredTeams int
	Region          string
	Description     string
	OrganizerID     UserID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// MatchID uniquely identifies a match within a tournament
type MatchID string

// MatchStatus is the phase of a match
type MatchStatus string

const (
	MatchScheduled MatchStatus = "scheduled"
	MatchLive      MatchStatus = "live"
	MatchCompleted MatchStatus = "completed"
)

// Match is a single fixture between two teams
type Match struct {
	ID           MatchID
	TournamentID TournamentID
	TeamA        string
	TeamB        string
	ScoreA       int
	ScoreB       int
	Status       MatchStatus
	ScheduledAt  time.Time
	UpdatedAt    time.Time
}
