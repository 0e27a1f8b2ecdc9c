package model

import "time"

// Session is the runtime record of who is currently using the application.
// It carries a copy of the user as it looked when the session was
// established; profile edits mutate this copy in place (the directory entry
// is deliberately left alone, matching the observed product behavior).
type Session struct {
	Token     string
	UserID    UserID
	User      User
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session has passed its expiry at the given time
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
