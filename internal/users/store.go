package users

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/sahadan/halisaha/internal/entity"
)

// Users are keyed by username in the entity store; the id is a separate
// generated uuid, so id lookups scan the collection.
type store struct {
	entities entity.Store
}

// New creates a new UserStore backed by the given entity store.
func New(entities entity.Store) UserStore {
	return &store{entities: entities}
}

func (s *store) Register(input RegisterInput) (*User, error) {
	user := &User{
		ID:           uuid.NewString(),
		Username:     input.Username,
		Role:         RolePlayer,
		Phone:        input.Phone,
		BirthDate:    input.BirthDate,
		FavoriteTeam: input.FavoriteTeam,
		City:         input.City,
		District:     input.District,
		Stats:        PlayerStats{Tags: []string{}},
		Password:     input.Password,
	}

	if err := s.entities.Create(entity.KindUser, user.Username, user); err != nil {
		if err == entity.ErrExists {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info("Registered new player", "username", user.Username, "id", user.ID)
	return user, nil
}

func (s *store) Authenticate(username, password string) (*User, error) {
	var user User
	if err := s.entities.Get(entity.KindUser, username, &user); err != nil {
		if err == entity.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user.Password != password {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func (s *store) List() ([]User, error) {
	return entity.ListAs[User](s.entities, entity.KindUser)
}

func (s *store) GetByID(id string) (*User, error) {
	all, err := s.List()
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *store) UpdateProfile(update ProfileUpdate) (*User, error) {
	user, err := s.GetByID(update.ID)
	if err != nil {
		return nil, err
	}

	err = entity.MutateAs(s.entities, entity.KindUser, user.Username, func(u *User) error {
		u.Phone = update.Phone
		u.BirthDate = update.BirthDate
		u.FavoriteTeam = update.FavoriteTeam
		if update.Height != nil {
			u.Height = update.Height
		}
		if update.Weight != nil {
			u.Weight = update.Weight
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return s.GetByID(update.ID)
}

func (s *store) Promote(id string) (*User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	err = entity.MutateAs(s.entities, entity.KindUser, user.Username, func(u *User) error {
		u.Role = RoleCoach
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to promote user: %w", err)
	}

	log.Info("Promoted user to coach", "username", user.Username, "id", id)
	return s.GetByID(id)
}

func (s *store) ApplyResult(playerID string, outcome Outcome, points int, tags []string) error {
	user, err := s.GetByID(playerID)
	if err != nil {
		return err
	}

	err = entity.MutateAs(s.entities, entity.KindUser, user.Username, func(u *User) error {
		u.Stats.Points += points
		u.Stats.MatchesPlayed++
		switch outcome {
		case OutcomeWin:
			u.Stats.Wins++
		case OutcomeDraw:
			u.Stats.Draws++
		case OutcomeLoss:
			u.Stats.Losses++
		}
		u.Stats.Tags = mergeTags(u.Stats.Tags, tags)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to apply result for player %s: %w", playerID, err)
	}

	log.Info("Applied match result to player stats", "playerID", playerID, "outcome", outcome, "points", points)
	return nil
}

// mergeTags unions two tag lists, keeping first-appearance order.
func mergeTags(existing, added []string) []string {
	seen := make(map[string]bool, len(existing)+len(added))
	merged := make([]string, 0, len(existing)+len(added))
	for _, tag := range append(append([]string{}, existing...), added...) {
		if seen[tag] {
			continue
		}
		seen[tag] = true
		merged = append(merged, tag)
	}
	return merged
}
