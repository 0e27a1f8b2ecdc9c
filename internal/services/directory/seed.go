package directory

import (
	"context"
	"errors"

	"github.com/arenahq/arena/internal/model"
)

// demoIdentity is one pre-seeded account for the demo environment
type demoIdentity struct {
	id       model.UserID
	username string
	email    string
	secret   string
	role     model.Role
}

var demoIdentities = []demoIdentity{
	{"1", "admin", "admin@example.com", "admin123", model.RoleAdministrator},
	{"2", "organizer", "organizer@example.com", "organizer123", model.RoleOrganizer},
	{"3", "player", "player@example.com", "player123", model.RolePlayer},
	{"4", "spectator", "spectator@example.com", "spectator123", model.RoleSpectator},
}

// SeedDemoIdentities inserts the fixed demo accounts. Identities that
// already exist are left untouched, so seeding is safe to run on every
// process start.
func (s *Service) SeedDemoIdentities(ctx context.Context) error {
	for _, d := range demoIdentities {
		user := &model.User{
			ID:        d.id,
			Username:  d.username,
			Email:     d.email,
			Role:      d.role,
			AvatarURL: AvatarURL(d.username),
			CreatedAt: s.clock.Now(),
		}

		err := s.Insert(ctx, user, d.secret)
		if err != nil && !errors.Is(err, model.ErrEmailExists) {
			return err
		}
	}
	return nil
}

// AvatarURL synthesizes the default avatar for a username
func AvatarURL(username string) string {
	return "https://api.dicebear.com/7.x/avataaars/svg?seed=" + username
}
