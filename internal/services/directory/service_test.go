package directory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/arenahq/arena/internal/dependencies/mocks"
	"github.com/arenahq/arena/internal/model"
	"github.com/arenahq/arena/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock)
	s.ctx = context.Background()
}

func (s *ServiceSuite) insertAlice() *model.User {
	user := &model.User{
		ID:       "u-alice",
		Username: "alice",
		Email:    "alice@example.com",
		Role:     model.RolePlayer,
	}
	s.Require().NoError(s.service.Insert(s.ctx, user, "secret123"))
	return user
}

func (s *ServiceSuite) TestInsertAndLookup() {
	s.insertAlice()

	user, account, err := s.service.Lookup(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.Equal("alice", user.Username)
	s.Equal(model.UserID("u-alice"), account.UserID)
}

func (s *ServiceSuite) TestInsertHashesSecret() {
	s.insertAlice()

	_, account, err := s.service.Lookup(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.NotEqual("secret123", account.PasswordHash)
	s.True(VerifySecret(account, "secret123"))
	s.False(VerifySecret(account, "wrong"))
}

func (s *ServiceSuite) TestInsertFailsOnDuplicateEmail() {
	s.insertAlice()

	dup := &model.User{ID: "u-other", Username: "alice2", Email: "alice@example.com", Role: model.RoleSpectator}
	err := s.service.Insert(s.ctx, dup, "other")
	s.ErrorIs(err, model.ErrEmailExists)
}

func (s *ServiceSuite) TestLookupUnknownEmail() {
	_, _, err := s.service.Lookup(s.ctx, "nobody@example.com")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *ServiceSuite) TestSeedDemoIdentities() {
	s.Require().NoError(s.service.SeedDemoIdentities(s.ctx))

	user, account, err := s.service.Lookup(s.ctx, "admin@example.com")
	s.Require().NoError(err)
	s.Equal(model.RoleAdministrator, user.Role)
	s.True(VerifySecret(account, "admin123"))

	user, _, err = s.service.Lookup(s.ctx, "spectator@example.com")
	s.Require().NoError(err)
	s.Equal(model.RoleSpectator, user.Role)
	s.Contains(user.AvatarURL, "seed=spectator")
}

func (s *ServiceSuite) TestSeedIsIdempotent() {
	s.Require().NoError(s.service.SeedDemoIdentities(s.ctx))
	s.Require().NoError(s.service.SeedDemoIdentities(s.ctx))

	users, err := s.storage.ListUsers(s.ctx)
	s.Require().NoError(err)
	s.Len(users, 4)
}

func (s *ServiceSuite) TestUsersAndUser() {
	alice := s.insertAlice()

	users, err := s.service.Users(s.ctx)
	s.Require().NoError(err)
	s.Len(users, 1)

	user, err := s.service.User(s.ctx, alice.ID)
	s.Require().NoError(err)
	s.Equal("alice", user.Username)

	_, err = s.service.User(s.ctx, "u-missing")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *ServiceSuite) TestUpdateUserRole() {
	alice := s.insertAlice()

	role := model.RoleOrganizer
	updated, err := s.service.UpdateUser(s.ctx, alice.ID, UserPatch{Role: &role})
	s.Require().NoError(err)
	s.Equal(model.RoleOrganizer, updated.Role)

	user, err := s.service.User(s.ctx, alice.ID)
	s.Require().NoError(err)
	s.Equal(model.RoleOrganizer, user.Role)
}

func (s *ServiceSuite) TestUpdateUserEmailFreesOldAddress() {
	alice := s.insertAlice()

	email := "alice-new@example.com"
	_, err := s.service.UpdateUser(s.ctx, alice.ID, UserPatch{Email: &email})
	s.Require().NoError(err)

	user, err := s.storage.GetUserByEmail(s.ctx, "alice-new@example.com")
	s.Require().NoError(err)
	s.Equal(alice.ID, user.ID)

	_, err = s.storage.GetUserByEmail(s.ctx, "alice@example.com")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *ServiceSuite) TestUpdateUserEmailMovesCredential() {
	alice := s.insertAlice()

	email := "alice-new@example.com"
	_, err := s.service.UpdateUser(s.ctx, alice.ID, UserPatch{Email: &email})
	s.Require().NoError(err)

	// The new address resolves the full identity+credential pair
	user, account, err := s.service.Lookup(s.ctx, "alice-new@example.com")
	s.Require().NoError(err)
	s.Equal(alice.ID, user.ID)
	s.True(VerifySecret(account, "secret123"))

	// No orphaned credential remains under the old address
	_, err = s.storage.GetAccountByEmail(s.ctx, "alice@example.com")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *ServiceSuite) TestUpdateUserRejectsTakenEmail() {
	alice := s.insertAlice()
	bob := &model.User{ID: "u-bob", Username: "bob", Email: "bob@example.com", Role: model.RolePlayer}
	s.Require().NoError(s.service.Insert(s.ctx, bob, "secret123"))

	taken := "bob@example.com"
	_, err := s.service.UpdateUser(s.ctx, alice.ID, UserPatch{Email: &taken})
	s.ErrorIs(err, model.ErrEmailExists)
}
