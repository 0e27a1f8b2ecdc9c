package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/arenahq/arena/internal/dependencies/clock"
	"github.com/arenahq/arena/internal/model"
	"github.com/arenahq/arena/internal/services/directory"
	"github.com/arenahq/arena/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidSession     = errors.New("invalid or expired session")
)

// Service is the session lifecycle manager: the only component that mutates
// sessions. Guards and handlers read session state through ValidateSession.
type Service struct {
	storage   storage.Storage
	directory directory.Directory
	clock     clock.Clock
	cfg       Config
}

// Config holds configuration for the auth service
type Config struct {
	SessionDuration time.Duration

	// LoginLatency and SignupLatency reproduce the upstream client's
	// simulated network delay. Zero in tests.
	LoginLatency  time.Duration
	SignupLatency time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		SessionDuration: 24 * time.Hour,
		LoginLatency:    800 * time.Millisecond,
		SignupLatency:   time.Second,
	}
}

// New creates a new auth service
func New(storage storage.Storage, dir directory.Directory, clock clock.Clock, cfg Config) *Service {
	if cfg.SessionDuration == 0 {
		cfg.SessionDuration = DefaultConfig().SessionDuration
	}
	return &Service{
		storage:   storage,
		directory: dir,
		clock:     clock,
		cfg:       cfg,
	}
}

// Login authenticates an identity and establishes a session. The claimed
// role is part of the login contract: a correct secret with the wrong role
// is rejected the same way as a wrong secret.
func (s *Service) Login(ctx context.Context, email, secret string, claimedRole model.Role) (*model.Session, error) {
	if err := s.clock.Sleep(ctx, s.cfg.LoginLatency); err != nil {
		return nil, err
	}

	user, account, err := s.directory.Lookup(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !directory.VerifySecret(account, secret) {
		return nil, ErrInvalidCredentials
	}

	if user.Role != claimedRole {
		return nil, ErrInvalidCredentials
	}

	return s.createSession(ctx, user)
}

// Signup registers a new identity and establishes a session for it
func (s *Service) Signup(ctx context.Context, username, email, secret string, role model.Role) (*model.Session, error) {
	if err := s.clock.Sleep(ctx, s.cfg.SignupLatency); err != nil {
		return nil, err
	}

	user := &model.User{
		ID:        model.UserID(uuid.NewString()),
		Username:  username,
		Email:     email,
		Role:      role,
		AvatarURL: directory.AvatarURL(username),
		CreatedAt: s.clock.Now(),
	}

	if err := s.directory.Insert(ctx, user, secret); err != nil {
		return nil, err
	}

	return s.createSession(ctx, user)
}

// Logout removes the session. It always succeeds: logging out an unknown or
// already-expired token is a no-op.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.storage.DeleteSession(ctx, token)
}

// ValidateSession resolves a token to its session, expiring it if stale
func (s *Service) ValidateSession(ctx context.Context, token string) (*model.Session, error) {
	if token == "" {
		return nil, ErrInvalidSession
	}

	session, err := s.storage.GetSession(ctx, token)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, err
	}

	if session.Expired(s.clock.Now()) {
		_ = s.storage.DeleteSession(ctx, token)
		return nil, ErrInvalidSession
	}

	return session, nil
}

// ProfilePatch is a partial profile update; nil fields are left unchanged
type ProfilePatch struct {
	Username  *string
	Email     *string
	AvatarURL *string
}

// UpdateProfile merges the patch into the in-session user copy and
// re-persists the session. The directory entry is intentionally not updated:
// the upstream product only ever mutated the session copy, and that
// divergence is preserved here.
func (s *Service) UpdateProfile(ctx context.Context, token string, patch ProfilePatch) (*model.Session, error) {
	session, err := s.ValidateSession(ctx, token)
	if err != nil {
		return nil, err
	}

	if patch.Username != nil {
		session.User.Username = *patch.Username
	}
	if patch.Email != nil {
		session.User.Email = *patch.Email
	}
	if patch.AvatarURL != nil {
		session.User.AvatarURL = *patch.AvatarURL
	}

	if err := s.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// createSession persists a new session holding a stripped copy of the user
func (s *Service) createSession(ctx context.Context, user *model.User) (*model.Session, error) {
	now := s.clock.Now()

	session := &model.Session{
		Token:     generateToken(),
		UserID:    user.ID,
		User:      *user,
		CreatedAt: now,
		ExpiresAt: now.Add(s.cfg.SessionDuration),
	}

	if err := s.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// generateToken generates an opaque random session token
func generateToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return "sess_" + base64.RawURLEncoding.EncodeToString(b)
}
