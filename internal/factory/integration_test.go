package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/arenahq/arena/internal/model"
	"github.com/arenahq/arena/internal/services/game"
	"github.com/arenahq/arena/internal/services/tournament"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
	s.Require().NoError(s.app.SeedDemoData(s.ctx))
}

// Test: sign in with a demo identity and run a tournament end to end
func (s *IntegrationSuite) TestOrganizerRunsTournament() {
	// Step 1: Sign in as the demo organizer
	session, err := s.app.AuthService.Login(s.ctx, "organizer@example.com", "organizer123", model.RoleOrganizer)
	s.Require().NoError(err)
	s.Equal(model.RoleOrganizer, session.User.Role)

	// Step 2: Pick a game from the seeded catalog
	games, err := s.app.GameService.List(s.ctx)
	s.Require().NoError(err)
	s.Require().NotEmpty(games)

	// Step 3: Create a tournament for it
	t, err := s.app.TournamentService.Create(s.ctx, tournament.CreateParams{
		Name:        "Integration Invitational",
		GameID:      games[0].ID,
		Format:      "Single Elimination",
		StartDate:   s.app.MockClock.Now().Add(24 * time.Hour),
		EndDate:     s.app.MockClock.Now().Add(72 * time.Hour),
		PrizePool:   "$5,000",
		MaxTeams:    8,
		Region:      "EU West",
		OrganizerID: session.User.ID,
	})
	s.Require().NoError(err)
	s.Equal(model.TournamentUpcoming, t.Status)

	// Step 4: Teams register up to capacity
	for i := 0; i < 8; i++ {
		t, err = s.app.TournamentService.RegisterTeam(s.ctx, t.ID)
		s.Require().NoError(err)
	}
	s.Equal(8, t.RegisteredTeams)
	_, err = s.app.TournamentService.RegisterTeam(s.ctx, t.ID)
	s.ErrorIs(err, model.ErrTournamentFull)

	// Step 5: Schedule and score a match
	m, err := s.app.TournamentService.ScheduleMatch(s.ctx, t.ID, "Team Alpha", "Team Bravo", s.app.MockClock.Now().Add(24*time.Hour))
	s.Require().NoError(err)

	m, err = s.app.TournamentService.ReportScore(s.ctx, m.ID, 2, 1, model.MatchCompleted)
	s.Require().NoError(err)
	s.Equal(2, m.ScoreA)
	s.Equal(model.MatchCompleted, m.Status)
}

// Test: a new signup can immediately reach their session and sign out
func (s *IntegrationSuite) TestSignupLifecycle() {
	session, err := s.app.AuthService.Signup(s.ctx, "newplayer", "newplayer@example.com", "hunter22", model.RolePlayer)
	s.Require().NoError(err)

	resolved, err := s.app.AuthService.ValidateSession(s.ctx, session.Token)
	s.Require().NoError(err)
	s.Equal(session.User.ID, resolved.User.ID)

	s.Require().NoError(s.app.AuthService.Logout(s.ctx, session.Token))
	_, err = s.app.AuthService.ValidateSession(s.ctx, session.Token)
	s.Error(err)
}

// Test: admin catalog edits are visible to subsequent reads
func (s *IntegrationSuite) TestAdminCuratesCatalog() {
	_, err := s.app.AuthService.Login(s.ctx, "admin@example.com", "admin123", model.RoleAdministrator)
	s.Require().NoError(err)

	g, err := s.app.GameService.Create(s.ctx, game.CreateParams{
		Name:      "StarCraft II",
		Genre:     "RTS",
		Platforms: []string{"PC"},
	})
	s.Require().NoError(err)

	inactive := model.GameInactive
	g, err = s.app.GameService.Update(s.ctx, g.ID, game.UpdateParams{Status: &inactive})
	s.Require().NoError(err)
	s.Equal(model.GameInactive, g.Status)

	fetched, err := s.app.GameService.Get(s.ctx, g.ID)
	s.Require().NoError(err)
	s.Equal(model.GameInactive, fetched.Status)
}
