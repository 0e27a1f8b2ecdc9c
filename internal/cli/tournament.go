package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func newTournamentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tournament",
		Aliases: []string{"tourney"},
		Short:   "Tournament and match commands",
	}

	cmd.AddCommand(newTournamentListCmd())
	cmd.AddCommand(newTournamentGetCmd())
	cmd.AddCommand(newTournamentCreateCmd())
	cmd.AddCommand(newTournamentRegisterCmd())
	cmd.AddCommand(newTournamentMatchesCmd())
	cmd.AddCommand(newTournamentScheduleCmd())
	cmd.AddCommand(newTournamentScoreCmd())

	return cmd
}

func newTournamentListCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tournaments",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/tournaments"
			if status != "" {
				path += "?status=" + status
			}

			var result []Tournament
			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status: upcoming, active or completed")

	return cmd
}

func newTournamentGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <tournament-id>",
		Short: "Show a tournament",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Tournament

			if err := client.Get("/api/v1/tournaments/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newTournamentCreateCmd() *cobra.Command {
	var name, gameID, format, prizePool, region, startDate, endDate string
	var maxTeams int

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a tournament (organizer)",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"name":      name,
				"gameId":    gameID,
				"format":    format,
				"prizePool": prizePool,
				"region":    region,
				"maxTeams":  maxTeams,
			}
			for flag, value := range map[string]string{"startDate": startDate, "endDate": endDate} {
				if value == "" {
					continue
				}
				t, err := time.Parse("2006-01-02", value)
				if err != nil {
					return fmt.Errorf("invalid %s: %w", flag, err)
				}
				req[flag] = t
			}

			var result Tournament
			if err := client.Post("/api/v1/tournaments", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Tournament name (required)")
	cmd.Flags().StringVar(&gameID, "game", "", "Game ID (required)")
	cmd.Flags().StringVar(&format, "format", "Single Elimination", "Tournament format")
	cmd.Flags().StringVar(&prizePool, "prize", "", "Prize pool")
	cmd.Flags().StringVar(&region, "region", "", "Region")
	cmd.Flags().StringVar(&startDate, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end", "", "End date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&maxTeams, "max-teams", 16, "Maximum number of teams")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("game")

	return cmd
}

func newTournamentRegisterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register <tournament-id>",
		Short: "Register a team (player)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Tournament

			if err := client.Post("/api/v1/tournaments/"+args[0]+"/register", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newTournamentMatchesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "matches <tournament-id>",
		Short: "List a tournament's matches",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Match

			if err := client.Get("/api/v1/tournaments/"+args[0]+"/matches", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newTournamentScheduleCmd() *cobra.Command {
	var teamA, teamB, at string

	cmd := &cobra.Command{
		Use:   "schedule <tournament-id>",
		Short: "Schedule a match (organizer)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"teamA": teamA,
				"teamB": teamB,
			}
			if at != "" {
				t, err := time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("invalid scheduled time: %w", err)
				}
				req["scheduledAt"] = t
			}

			var result Match
			if err := client.Post("/api/v1/tournaments/"+args[0]+"/matches", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&teamA, "team-a", "", "First team (required)")
	cmd.Flags().StringVar(&teamB, "team-b", "", "Second team (required)")
	cmd.Flags().StringVar(&at, "at", "", "Scheduled time (RFC3339)")
	_ = cmd.MarkFlagRequired("team-a")
	_ = cmd.MarkFlagRequired("team-b")

	return cmd
}

func newTournamentScoreCmd() *cobra.Command {
	var scoreA, scoreB int
	var status string

	cmd := &cobra.Command{
		Use:   "score <match-id>",
		Short: "Report a match score (organizer)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{
				"scoreA": scoreA,
				"scoreB": scoreB,
				"status": status,
			}

			var result Match
			if err := client.Put("/api/v1/matches/"+args[0]+"/score", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&scoreA, "a", 0, "Score for team A")
	cmd.Flags().IntVar(&scoreB, "b", 0, "Score for team B")
	cmd.Flags().StringVar(&status, "status", "live", "Match status: scheduled, live or completed")

	return cmd
}
