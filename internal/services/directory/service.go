package directory

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/arenahq/arena/internal/dependencies/clock"
	"github.com/arenahq/arena/internal/model"
	"github.com/arenahq/arena/internal/storage"
)

// Directory is the single source of truth for which accounts exist and with
// what role and secret. It is an interface so that a real identity backend
// can replace the storage-backed one without touching the session lifecycle
// or the route guards.
type Directory interface {
	// Lookup returns the user and account registered under the email, or
	// model.ErrUserNotFound. It never mutates.
	Lookup(ctx context.Context, email string) (*model.User, *model.Account, error)

	// Insert registers a new user with the given plaintext secret. Fails
	// with model.ErrEmailExists when the email is already registered.
	Insert(ctx context.Context, user *model.User, secret string) error
}

// Service is the storage-backed Directory implementation. Secrets are
// bcrypt-hashed on insert; the hash lives on the Account record and never on
// the User handed to callers.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
}

// Ensure Service implements Directory
var _ Directory = (*Service)(nil)

// New creates a new directory service
func New(storage storage.Storage, clock clock.Clock) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
	}
}

// Lookup returns the registered user and account for an email
func (s *Service) Lookup(ctx context.Context, email string) (*model.User, *model.Account, error) {
	user, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}

	account, err := s.storage.GetAccountByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}

	return user, account, nil
}

// Insert registers a new user and credential pair
func (s *Service) Insert(ctx context.Context, user *model.User, secret string) error {
	_, err := s.storage.GetUserByEmail(ctx, user.Email)
	if err == nil {
		return model.ErrEmailExists
	}
	if !errors.Is(err, model.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := s.clock.Now()
	account := &model.Account{
		UserID:       user.ID,
		Email:        user.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		return err
	}
	return s.storage.SaveAccount(ctx, account)
}

// Users lists all registered users
func (s *Service) Users(ctx context.Context) ([]*model.User, error) {
	return s.storage.ListUsers(ctx)
}

// User returns a registered user by id
func (s *Service) User(ctx context.Context, id model.UserID) (*model.User, error) {
	return s.storage.GetUser(ctx, id)
}

// UserPatch carries admin-editable user fields. Nil fields are left
// unchanged.
type UserPatch struct {
	Username *string
	Email    *string
	Role     *model.Role
}

// UpdateUser edits a registered user's directory record. Changing the
// email fails with model.ErrEmailExists when another user already holds
// the new address.
func (s *Service) UpdateUser(ctx context.Context, id model.UserID, patch UserPatch) (*model.User, error) {
	user, err := s.storage.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Email != nil && *patch.Email != user.Email {
		existing, err := s.storage.GetUserByEmail(ctx, *patch.Email)
		if err == nil && existing.ID != id {
			return nil, model.ErrEmailExists
		}
		if err != nil && !errors.Is(err, model.ErrUserNotFound) {
			return nil, err
		}

		// The credential record is keyed by email and moves with it, so
		// the user can still sign in under the new address
		account, err := s.storage.GetAccountByEmail(ctx, user.Email)
		if err != nil && !errors.Is(err, model.ErrUserNotFound) {
			return nil, err
		}
		if err == nil {
			if err := s.storage.DeleteAccount(ctx, user.Email); err != nil {
				return nil, err
			}
			account.Email = *patch.Email
			account.UpdatedAt = s.clock.Now()
			if err := s.storage.SaveAccount(ctx, account); err != nil {
				return nil, err
			}
		}
		user.Email = *patch.Email
	}
	if patch.Username != nil {
		user.Username = *patch.Username
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// VerifySecret compares a plaintext secret against an account's stored hash
func VerifySecret(account *model.Account, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(secret)) == nil
}
