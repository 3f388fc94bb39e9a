package users

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/sahadan/halisaha/internal/entity"
)

// seedAdmin is the single administrator account every deployment ships
// with. Credentials are checked with plain equality, same as all other
// accounts.
func seedAdmin() *User {
	height, weight := 180, 80
	return &User{
		ID:           "tasdemir",
		Username:     "tasdemir",
		Password:     "deneme.123",
		Role:         RoleAdmin,
		Phone:        "555-000-0001",
		BirthDate:    "1980-01-01T00:00:00.000Z",
		FavoriteTeam: "Cloudflare FC",
		City:         "Ankara",
		District:     "Cankaya",
		Stats:        PlayerStats{Points: 99, Tags: []string{"System Admin"}},
		Height:       &height,
		Weight:       &weight,
	}
}

// EnsureSeed creates the admin account if it does not exist yet. It is
// called before every login lookup so a fresh database always has a way
// in.
func (s *store) EnsureSeed() error {
	admin := seedAdmin()
	exists, err := s.entities.Exists(entity.KindUser, admin.Username)
	if err != nil {
		return fmt.Errorf("failed to check seed admin: %w", err)
	}
	if exists {
		return nil
	}
	if err := s.entities.Create(entity.KindUser, admin.Username, admin); err != nil {
		// A concurrent login may have seeded it first.
		if err == entity.ErrExists {
			return nil
		}
		return fmt.Errorf("failed to seed admin: %w", err)
	}
	log.Info("Seeded admin account", "username", admin.Username)
	return nil
}
