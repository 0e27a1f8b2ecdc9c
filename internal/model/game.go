package model

import "time"

// GameID uniquely identifies a game in the catalog
type GameID string

// GameStatus is the lifecycle state of a catalog entry
type GameStatus string

const (
	GameActive   GameStatus = "active"
	GameInactive GameStatus = "inactive"
)

// Game is a title in the admin-managed catalog
type Game struct {
	ID        GameID
	Name      string
	Genre     string
	Platforms []string
	Status    GameStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
