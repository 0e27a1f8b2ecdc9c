package game

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/arenahq/arena/internal/dependencies/clock"
	"github.com/arenahq/arena/internal/model"
	"github.com/arenahq/arena/internal/storage"
)

// Service manages the admin-curated game catalog
type Service struct {
	storage storage.Storage
	clock   clock.Clock
}

// New creates a new game catalog service
func New(storage storage.Storage, clock clock.Clock) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
	}
}

// CreateParams are the fields for a new catalog entry
type CreateParams struct {
	Name      string
	Genre     string
	Platforms []string
}

// Create adds a game to the catalog
func (s *Service) Create(ctx context.Context, params CreateParams) (*model.Game, error) {
	now := s.clock.Now()
	game := &model.Game{
		ID:        model.GameID(uuid.NewString()),
		Name:      strings.TrimSpace(params.Name),
		Genre:     params.Genre,
		Platforms: params.Platforms,
		Status:    model.GameActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

// UpdateParams are the mutable fields of a catalog entry; nil fields are
// left unchanged
type UpdateParams struct {
	Name      *string
	Genre     *string
	Platforms []string
	Status    *model.GameStatus
}

// Update edits a catalog entry
func (s *Service) Update(ctx context.Context, id model.GameID, params UpdateParams) (*model.Game, error) {
	game, err := s.storage.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		game.Name = strings.TrimSpace(*params.Name)
	}
	if params.Genre != nil {
		game.Genre = *params.Genre
	}
	if params.Platforms != nil {
		game.Platforms = params.Platforms
	}
	if params.Status != nil {
		game.Status = *params.Status
	}
	game.UpdatedAt = s.clock.Now()

	if err := s.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

// Get returns a single catalog entry
func (s *Service) Get(ctx context.Context, id model.GameID) (*model.Game, error) {
	return s.storage.GetGame(ctx, id)
}

// List returns the catalog sorted by name
func (s *Service) List(ctx context.Context) ([]*model.Game, error) {
	return s.storage.ListGames(ctx)
}

// Delete removes a catalog entry. Deleting an unknown ID fails with
// model.ErrGameNotFound.
func (s *Service) Delete(ctx context.Context, id model.GameID) error {
	if _, err := s.storage.GetGame(ctx, id); err != nil {
		return err
	}
	return s.storage.DeleteGame(ctx, id)
}

// seedGame is one entry of the demo catalog
type seedGame struct {
	name      string
	genre     string
	platforms []string
}

var seedGames = []seedGame{
	{"League of Legends", "MOBA", []string{"PC"}},
	{"Counter-Strike 2", "FPS", []string{"PC"}},
	{"Valorant", "FPS", []string{"PC"}},
	{"Dota 2", "MOBA", []string{"PC"}},
	{"Fortnite", "Battle Royale", []string{"PC", "PlayStation", "Xbox", "Switch"}},
	{"Rocket League", "Sports", []string{"PC", "PlayStation", "Xbox", "Switch"}},
	{"Apex Legends", "Battle Royale", []string{"PC", "PlayStation", "Xbox"}},
	{"Overwatch 2", "FPS", []string{"PC", "PlayStation", "Xbox"}},
}

// SeedDemoCatalog inserts the demo games when the catalog is empty
func (s *Service) SeedDemoCatalog(ctx context.Context) error {
	existing, err := s.storage.ListGames(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, g := range seedGames {
		if _, err := s.Create(ctx, CreateParams{Name: g.name, Genre: g.genre, Platforms: g.platforms}); err != nil {
			return err
		}
	}
	return nil
}
