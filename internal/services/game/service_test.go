package game

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

func (s *ServiceSuite) TestCreateAndGet() {
	game, err := s.service.Create(s.ctx, CreateParams{Name: "  Valorant ", Genre: "FPS", Platforms: []string{"PC"}})
	s.Require().NoError(err)
	s.Equal("Valorant", game.Name)
	s.Equal(model.GameActive, game.Status)
	s.NotEmpty(game.ID)

	got, err := s.service.Get(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(game.ID, got.ID)
}

func (s *ServiceSuite) TestUpdateMergesFields() {
	game, err := s.service.Create(s.ctx, CreateParams{Name: "Valorant", Genre: "FPS", Platforms: []string{"PC"}})
	s.Require().NoError(err)

	s.clock.Advance(time.Hour)
	inactive := model.GameInactive
	updated, err := s.service.Update(s.ctx, game.ID, UpdateParams{Status: &inactive})
	s.Require().NoError(err)

	s.Equal(model.GameInactive, updated.Status)
	s.Equal("Valorant", updated.Name) // untouched
	s.True(updated.UpdatedAt.After(updated.CreatedAt))
}

func (s *ServiceSuite) TestUpdateUnknownGame() {
	name := "x"
	_, err := s.service.Update(s.ctx, "missing", UpdateParams{Name: &name})
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ServiceSuite) TestDelete() {
	game, err := s.service.Create(s.ctx, CreateParams{Name: "Valorant"})
	s.Require().NoError(err)

	s.Require().NoError(s.service.Delete(s.ctx, game.ID))
	s.ErrorIs(s.service.Delete(s.ctx, game.ID), model.ErrGameNotFound)
}

func (s *ServiceSuite) TestSeedDemoCatalog() {
	s.Require().NoError(s.service.SeedDemoCatalog(s.ctx))

	games, err := s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Len(games, 8)
	s.Equal("Apex Legends", games[0].Name) // catalog sorted by name

	// Seeding again does not duplicate
	s.Require().NoError(s.service.SeedDemoCatalog(s.ctx))
	games, err = s.service.List(s.ctx)
	s.Require().NoError(err)
	s.Len(games, 8)
}
