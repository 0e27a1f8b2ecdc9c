package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/arenahq/arena/internal/dependencies/mocks"
	"github.com/arenahq/arena/internal/model"
	"github.com/arenahq/arena/internal/services/directory"
	"github.com/arenahq/arena/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage   *memory.Storage
	clock     *mocks.MockClock
	directory *directory.Service
	service   *Service
	ctx       context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.directory = directory.New(s.storage, s.clock)
	s.service = New(s.storage, s.directory, s.clock, Config{SessionDuration: 24 * time.Hour})
	s.ctx = context.Background()

	s.Require().NoError(s.directory.SeedDemoIdentities(s.ctx))
}

// Login tests

func (s *ServiceSuite) TestLoginSucceedsWithMatchingRole() {
	session, err := s.service.Login(s.ctx, "admin@example.com", "admin123", model.RoleAdministrator)
	s.Require().NoError(err)

	s.NotEmpty(session.Token)
	s.Equal("admin", session.User.Username)
	s.Equal(model.RoleAdministrator, session.User.Role)
}

func (s *ServiceSuite) TestLoginFailsWithWrongClaimedRole() {
	// Correct secret, wrong claimed role: the role is part of the contract
	_, err := s.service.Login(s.ctx, "admin@example.com", "admin123", model.RolePlayer)
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginFailsWithWrongSecret() {
	_, err := s.service.Login(s.ctx, "admin@example.com", "wrong", model.RoleAdministrator)
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginFailsWithUnknownEmail() {
	_, err := s.service.Login(s.ctx, "nobody@example.com", "x", model.RolePlayer)
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginFailureLeavesNoSession() {
	_, err := s.service.Login(s.ctx, "nobody@example.com", "x", model.RolePlayer)
	s.Require().Error(err)

	// No token to validate; an invented one resolves to no session
	_, err = s.service.ValidateSession(s.ctx, "sess_invented")
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestLoginSessionOmitsCredential() {
	session, err := s.service.Login(s.ctx, "player@example.com", "player123", model.RolePlayer)
	s.Require().NoError(err)

	// The session persists the user record only; the account hash stays in
	// the directory
	persisted, err := s.storage.GetSession(s.ctx, session.Token)
	s.Require().NoError(err)
	s.Equal("player@example.com", persisted.User.Email)
}

func (s *ServiceSuite) TestLoginHonorsConfiguredLatency() {
	svc := New(s.storage, s.directory, s.clock, Config{
		SessionDuration: time.Hour,
		LoginLatency:    800 * time.Millisecond,
	})

	_, err := svc.Login(s.ctx, "admin@example.com", "admin123", model.RoleAdministrator)
	s.Require().NoError(err)
	s.Equal([]time.Duration{800 * time.Millisecond}, s.clock.Slept)
}

func (s *ServiceSuite) TestLoginAbandonedOnCancelledContext() {
	svc := New(s.storage, s.directory, s.clock, Config{
		SessionDuration: time.Hour,
		LoginLatency:    800 * time.Millisecond,
	})

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := svc.Login(ctx, "admin@example.com", "admin123", model.RoleAdministrator)
	s.ErrorIs(err, context.Canceled)
}

func (s *ServiceSuite) TestLoginAfterDirectoryEmailChange() {
	seeded, err := s.storage.GetUserByEmail(s.ctx, "player@example.com")
	s.Require().NoError(err)

	email := "renamed@example.com"
	_, err = s.directory.UpdateUser(s.ctx, seeded.ID, directory.UserPatch{Email: &email})
	s.Require().NoError(err)

	// The credential follows the address
	session, err := s.service.Login(s.ctx, "renamed@example.com", "player123", model.RolePlayer)
	s.Require().NoError(err)
	s.Equal(seeded.ID, session.User.ID)

	_, err = s.service.Login(s.ctx, "player@example.com", "player123", model.RolePlayer)
	s.ErrorIs(err, ErrInvalidCredentials)
}

// Signup tests

func (s *ServiceSuite) TestSignupThenLoginRoundTrip() {
	session, err := s.service.Signup(s.ctx, "newuser", "new@example.com", "secret1", model.RolePlayer)
	s.Require().NoError(err)
	s.Equal("newuser", session.User.Username)
	s.NotEmpty(session.User.ID)

	login, err := s.service.Login(s.ctx, "new@example.com", "secret1", model.RolePlayer)
	s.Require().NoError(err)
	s.Equal(session.User.ID, login.User.ID)
	s.Equal("newuser", login.User.Username)
	s.Equal("new@example.com", login.User.Email)
	s.Equal(model.RolePlayer, login.User.Role)
}

func (s *ServiceSuite) TestSignupFailsOnDuplicateEmail() {
	_, err := s.service.Signup(s.ctx, "newuser", "new@example.com", "secret1", model.RolePlayer)
	s.Require().NoError(err)

	_, err = s.service.Signup(s.ctx, "other", "new@example.com", "secret2", model.RoleSpectator)
	s.ErrorIs(err, model.ErrEmailExists)
}

func (s *ServiceSuite) TestSignupSynthesizesAvatar() {
	session, err := s.service.Signup(s.ctx, "newuser", "new@example.com", "secret1", model.RolePlayer)
	s.Require().NoError(err)
	s.Contains(session.User.AvatarURL, "seed=newuser")
}

// Logout tests

func (s *ServiceSuite) TestLogoutInvalidatesSession() {
	session, err := s.service.Login(s.ctx, "organizer@example.com", "organizer123", model.RoleOrganizer)
	s.Require().NoError(err)

	s.Require().NoError(s.service.Logout(s.ctx, session.Token))

	_, err = s.service.ValidateSession(s.ctx, session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestLogoutAlwaysSucceeds() {
	s.NoError(s.service.Logout(s.ctx, "sess_never_issued"))
	s.NoError(s.service.Logout(s.ctx, ""))
}

// ValidateSession tests

func (s *ServiceSuite) TestValidateSessionSucceeds() {
	session, err := s.service.Login(s.ctx, "player@example.com", "player123", model.RolePlayer)
	s.Require().NoError(err)

	validated, err := s.service.ValidateSession(s.ctx, session.Token)
	s.Require().NoError(err)
	s.Equal(session.UserID, validated.UserID)
}

func (s *ServiceSuite) TestValidateSessionFailsAfterExpiry() {
	session, err := s.service.Login(s.ctx, "player@example.com", "player123", model.RolePlayer)
	s.Require().NoError(err)

	s.clock.Advance(25 * time.Hour)

	_, err = s.service.ValidateSession(s.ctx, session.Token)
	s.ErrorIs(err, ErrInvalidSession)
}

func (s *ServiceSuite) TestValidateSessionFailsForEmptyToken() {
	_, err := s.service.ValidateSession(s.ctx, "")
	s.ErrorIs(err, ErrInvalidSession)
}

// UpdateProfile tests

func (s *ServiceSuite) TestUpdateProfileMergesFields() {
	session, err := s.service.Login(s.ctx, "player@example.com", "player123", model.RolePlayer)
	s.Require().NoError(err)

	newName := "renamed"
	updated, err := s.service.UpdateProfile(s.ctx, session.Token, ProfilePatch{Username: &newName})
	s.Require().NoError(err)
	s.Equal("renamed", updated.User.Username)
	s.Equal("player@example.com", updated.User.Email) // untouched field survives
}

func (s *ServiceSuite) TestUpdateProfileEmptyPatchIsIdempotent() {
	session, err := s.service.Login(s.ctx, "player@example.com", "player123", model.RolePlayer)
	s.Require().NoError(err)

	updated, err := s.service.UpdateProfile(s.ctx, session.Token, ProfilePatch{})
	s.Require().NoError(err)
	s.Equal(session.User, updated.User)
}

func (s *ServiceSuite) TestUpdateProfileDoesNotTouchDirectory() {
	session, err := s.service.Login(s.ctx, "player@example.com", "player123", model.RolePlayer)
	s.Require().NoError(err)

	newName := "renamed"
	_, err = s.service.UpdateProfile(s.ctx, session.Token, ProfilePatch{Username: &newName})
	s.Require().NoError(err)

	// The directory entry keeps the original username: session copy and
	// directory deliberately diverge
	stored, err := s.storage.GetUserByEmail(s.ctx, "player@example.com")
	s.Require().NoError(err)
	s.Equal("player", stored.Username)
}

func (s *ServiceSuite) TestUpdateProfileWithoutSessionIsRejected() {
	newName := "renamed"
	_, err := s.service.UpdateProfile(s.ctx, "sess_unknown", ProfilePatch{Username: &newName})
	s.ErrorIs(err, ErrInvalidSession)
}
