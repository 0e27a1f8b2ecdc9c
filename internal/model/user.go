package model

import "time"

// UserID uniquely identifies a user across the system
type UserID string

// Role determines which screens a user may reach
type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleOrganizer     Role = "organizer"
	RolePlayer        Role = "player"
	RoleSpectator     Role = "spectator"
)

// ParseRole validates a role string against the known set
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdministrator, RoleOrganizer, RolePlayer, RoleSpectator:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

// User represents a registered account as surfaced to the rest of the
// system. Credentials live on Account and are never carried here.
type User struct {
	ID        UserID
	Username  string
	Email     string
	Role      Role
	AvatarURL string
	CreatedAt time.Time
}

// Account pairs a user with its login credential
// Stored separately so the hash never travels with a session
type Account struct {
	UserID       UserID
	Email        string // login key (immutable)
	PasswordHash string // bcrypt hash
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
