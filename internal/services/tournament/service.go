package tournament

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arenahq/arena/internal/dependencies/clock"
	"github.com/arenahq/arena/internal/model"
	"github.com/arenahq/arena/internal/storage"
)

// Service manages tournaments and their matches
type Service struct {
	storage storage.Storage
	clock   clock.Clock
}

// New creates a new tournament service
func New(storage storage.Storage, clock clock.Clock) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
	}
}

// CreateParams are the fields for a new tournament
type CreateParams struct {
	Name        string
	GameID      model.GameID
	Format      string
	StartDate   time.Time
	EndDate     time.Time
	PrizePool   string
	MaxTeams    int
	Region      string
	Description string
	OrganizerID model.UserID
}

// Create adds a tournament in the upcoming state
func (s *Service) Create(ctx context.Context, params CreateParams) (*model.Tournament, error) {
	if _, err := s.storage.GetGame(ctx, params.GameID); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	tournament := &model.Tournament{
		ID:          model.TournamentID(uuid.NewString()),
		Name:        strings.TrimSpace(params.Name),
		GameID:      params.GameID,
		Status:      model.TournamentUpcoming,
		Format:      params.Format,
		StartDate:   params.StartDate,
		EndDate:     params.EndDate,
		PrizePool:   params.PrizePool,
		MaxTeams:    params.MaxTeams,
		Region:      params.Region,
		Description: params.Description,
		OrganizerID: params.OrganizerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.storage.SaveTournament(ctx, tournament); err != nil {
		return nil, err
	}
	return tournament, nil
}

// UpdateParams are the mutable fields of a tournament; nil fields are left
// unchanged
type UpdateParams struct {
	Name        *string
	Status      *model.TournamentStatus
	Format      *string
	StartDate   *time.Time
	EndDate     *time.Time
	PrizePool   *string
	MaxTeams    *int
	Region      *string
	Description *string
}

// Update edits a tournament
func (s *Service) Update(ctx context.Context, id model.TournamentID, params UpdateParams) (*model.Tournament, error) {
	tournament, err := s.storage.GetTournament(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		tournament.Name = strings.TrimSpace(*params.Name)
	}
	if params.Status != nil {
		tournament.Status = *params.Status
	}
	if params.Format != nil {
		tournament.Format = *params.Format
	}
	if params.StartDate != nil {
		tournament.StartDate = *params.StartDate
	}
	if params.EndDate != nil {
		tournament.EndDate = *params.EndDate
	}
	if params.PrizePool != nil {
		tournament.PrizePool = *params.PrizePool
	}
	if params.MaxTeams != nil {
		tournament.MaxTeams = *params.MaxTeams
	}
	if params.Region != nil {
		tournament.Region = *params.Region
	}
	if params.Description != nil {
		tournament.Description = *params.Description
	}
	tournament.UpdatedAt = s.clock.Now()

	if err := s.storage.SaveTournament(ctx, tournament); err != nil {
		return nil, err
	}
	return tournament, nil
}

// Get returns a single tournament
func (s *Service) Get(ctx context.Context, id model.TournamentID) (*model.Tournament, error) {
	return s.storage.GetTournament(ctx, id)
}

// List returns tournaments ordered by start date, optionally filtered by
// status (empty status means all)
func (s *Service) List(ctx context.Context, status model.TournamentStatus) ([]*model.Tournament, error) {
	tournaments, err := s.storage.ListTournaments(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return tournaments, nil
	}

	filtered := tournaments[:0]
	for _, t := range tournaments {
		if t.Status == status {
			filtered = append(filtered, t)
		}
	}
	return filtered, nil
}

// Delete removes a tournament and its match index
func (s *Service) Delete(ctx context.Context, id model.TournamentID) error {
	if _, err := s.storage.GetTournament(ctx, id); err != nil {
		return err
	}
	return s.storage.DeleteTournament(ctx, id)
}

// RegisterTeam records one more registered team, failing when the
// tournament is at capacity
func (s *Service) RegisterTeam(ctx context.Context, id model.TournamentID) (*model.Tournament, error) {
	tournament, err := s.storage.GetTournament(ctx, id)
	if err != nil {
		return nil, err
	}

	if tournament.MaxTeams > 0 && tournament.RegisteredTeams >= tournament.MaxTeams {
		return nil, model.ErrTournamentFull
	}

	tournament.RegisteredTeams++
	tournament.UpdatedAt = s.clock.Now()

	if err := s.storage.SaveTournament(ctx, tournament); err != nil {
		return nil, err
	}
	return tournament, nil
}

// ScheduleMatch adds a fixture to a tournament
func (s *Service) ScheduleMatch(ctx context.Context, tournamentID model.TournamentID, teamA, teamB string, at time.Time) (*model.Match, error) {
	if _, err := s.storage.GetTournament(ctx, tournamentID); err != nil {
		return nil, err
	}

	match := &model.Match{
		ID:           model.MatchID(uuid.NewString()),
		TournamentID: tournamentID,
		TeamA:        teamA,
		TeamB:        teamB,
		Status:       model.MatchScheduled,
		ScheduledAt:  at,
		UpdatedAt:    s.clock.Now(),
	}

	if err := s.storage.SaveMatch(ctx, match); err != nil {
		return nil, err
	}
	return match, nil
}

// ReportScore updates a match's score and status
func (s *Service) ReportScore(ctx context.Context, id model.MatchID, scoreA, scoreB int, status model.MatchStatus) (*model.Match, error) {
	match, err := s.storage.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}

	match.ScoreA = scoreA
	match.ScoreB = scoreB
	match.Status = status
	match.UpdatedAt = s.clock.Now()

	if err := s.storage.SaveMatch(ctx, match); err != nil {
		return nil, err
	}
	return match, nil
}

// Matches returns a tournament's fixtures ordered by schedule
func (s *Service) Matches(ctx context.Context, tournamentID model.TournamentID) ([]*model.Match, error) {
	if _, err := s.storage.GetTournament(ctx, tournamentID); err != nil {
		return nil, err
	}
	return s.storage.ListMatchesForTournament(ctx, tournamentID)
}

// AllMatches returns every fixture across tournaments
func (s *Service) AllMatches(ctx context.Context) ([]*model.Match, error) {
	return s.storage.ListMatches(ctx)
}
