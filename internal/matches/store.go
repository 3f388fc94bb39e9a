package matches

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/sahadan/halisaha/internal/entity"
)

type store struct {
	entities entity.Store
	now      func() time.Time
}

// New creates a new MatchStore backed by the given entity store.
func New(entities entity.Store) MatchStore {
	return &store{entities: entities, now: time.Now}
}

func (s *store) Create(input CreateInput) (*Match, error) {
	match := &Match{
		ID:              uuid.NewString(),
		ShortCode:       NewShortCode(),
		Date:            input.Date,
		Time:            input.Time,
		FieldID:         input.FieldID,
		CoachID:         input.CoachID,
		MainTeamSize:    input.MainTeamSize,
		Status:          StatusUpcoming,
		Registrations:   []PlayerRegistration{},
		TeamA:           []string{},
		TeamB:           []string{},
		CustomFieldName: input.CustomFieldName,
	}
	if err := s.entities.Create(entity.KindMatch, match.ID, match); err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	log.Info("Created match", "id", match.ID, "shortCode", match.ShortCode, "coachID", match.CoachID)
	return match, nil
}

func (s *store) Get(id string) (*Match, error) {
	var match Match
	if err := s.entities.Get(entity.KindMatch, id, &match); err != nil {
		if err == entity.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load match: %w", err)
	}
	return &match, nil
}

func (s *store) List() ([]Match, error) {
	return entity.ListAs[Match](s.entities, entity.KindMatch)
}

func (s *store) FindByShortCode(code string) (*Match, error) {
	code = strings.ToUpper(code)
	all, err := s.List()
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ShortCode == code {
			return &all[i], nil
		}
	}
	return nil, ErrNotFound
}

func (s *store) Register(matchID, playerID, status string) (*Match, error) {
	registration := PlayerRegistration{
		PlayerID:         playerID,
		Status:           status,
		RegistrationTime: s.now(),
	}

	err := entity.MutateAs(s.entities, entity.KindMatch, matchID, func(m *Match) error {
		for i := range m.Registrations {
			if m.Registrations[i].PlayerID == playerID {
				// Replace in place: the player keeps their slot in the
				// list but loses their original timestamp.
				m.Registrations[i] = registration
				return nil
			}
		}
		m.Registrations = append(m.Registrations, registration)
		return nil
	})
	if err != nil {
		if err == entity.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to register player: %w", err)
	}

	log.Info("Upserted player registration", "matchID", matchID, "playerID", playerID, "status", status)
	return s.Get(matchID)
}

func (s *store) Assign(matchID, playerID string, team Team) (*Match, error) {
	err := entity.MutateAs(s.entities, entity.KindMatch, matchID, func(m *Match) error {
		m.TeamA = removeID(m.TeamA, playerID)
		m.TeamB = removeID(m.TeamB, playerID)
		switch team {
		case TeamA:
			m.TeamA = append(m.TeamA, playerID)
		case TeamB:
			m.TeamB = append(m.TeamB, playerID)
		}
		return nil
	})
	if err != nil {
		if err == entity.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to assign player: %w", err)
	}

	log.Info("Assigned player to team", "matchID", matchID, "playerID", playerID, "team", team)
	return s.Get(matchID)
}

func (s *store) SetResult(matchID string, result Result) error {
	err := entity.MutateAs(s.entities, entity.KindMatch, matchID, func(m *Match) error {
		if m.Status != StatusUpcoming {
			return ErrAlreadyScored
		}
		m.Status = StatusCompleted
		m.Result = result
		return nil
	})
	if err == entity.ErrNotFound {
		return ErrNotFound
	}
	return err
}

func removeID(ids []string, id string) []string {
	filtered := ids[:0]
	for _, candidate := range ids {
		if candidate != id {
			filtered = append(filtered, candidate)
		}
	}
	return filtered
}
