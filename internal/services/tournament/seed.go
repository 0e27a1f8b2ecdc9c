package tournament

import (
	"context"
	"time"

	"github.com/arenahq/arena/internal/model"
)

// seedTournament is one entry of the demo schedule
type seedTournament struct {
	name      string
	gameName  string
	status    model.TournamentStatus
	format    string
	prizePool string
	maxTeams  int
	region    string
}

var seedTournaments = []seedTournament{
	{"Winter Championship 2023", "League of Legends", model.TournamentUpcoming, "Single Elimination", "$50,000", 16, "EU"},
	{"CS2 Pro League Season 2", "Counter-Strike 2", model.TournamentActive, "Round Robin", "$100,000", 12, "NA"},
	{"Valorant College Cup", "Valorant", model.TournamentUpcoming, "Double Elimination", "$10,000", 32, "NA"},
	{"Summer Apex Invitational", "Apex Legends", model.TournamentCompleted, "Points", "$25,000", 20, "APAC"},
	{"Rocket League Weekly Cup", "Rocket League", model.TournamentActive, "Single Elimination", "$5,000", 8, "EU"},
}

// SeedDemoTournaments inserts the demo tournaments, resolving each game by
// name from the already-seeded catalog. No-op when tournaments exist.
func (s *Service) SeedDemoTournaments(ctx context.Context) error {
	existing, err := s.storage.ListTournaments(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	games, err := s.storage.ListGames(ctx)
	if err != nil {
		return err
	}
	gamesByName := make(map[string]model.GameID, len(games))
	for _, g := range games {
		gamesByName[g.Name] = g.ID
	}

	start := s.clock.Now().AddDate(0, 0, 7)
	for i, st := range seedTournaments {
		gameID, ok := gamesByName[st.gameName]
		if !ok {
			continue // tournament for a game missing from the catalog
		}

		tournament, err := s.Create(ctx, CreateParams{
			Name:      st.name,
			GameID:    gameID,
			Format:    st.format,
			StartDate: start.AddDate(0, 0, i*7),
			EndDate:   start.AddDate(0, 0, i*7+2),
			PrizePool: st.prizePool,
			MaxTeams:  st.maxTeams,
			Region:    st.region,
		})
		if err != nil {
			return err
		}

		if tournament.Status != st.status {
			if _, err := s.Update(ctx, tournament.ID, UpdateParams{Status: &seedTournaments[i].status}); err != nil {
				return err
			}
		}

		// A pair of opening fixtures per tournament
		if _, err := s.ScheduleMatch(ctx, tournament.ID, "Team Alpha", "Team Bravo", tournament.StartDate.Add(18*time.Hour)); err != nil {
			return err
		}
		if _, err := s.ScheduleMatch(ctx, tournament.ID, "Team Charlie", "Team Delta", tournament.StartDate.Add(20*time.Hour)); err != nil {
			return err
		}
	}
	return nil
}
