package fields

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/sahadan/halisaha/internal/entity"
)

type store struct {
	entities entity.Store
}

// New creates a new FieldStore backed by the given entity store.
func New(entities entity.Store) FieldStore {
	return &store{entities: entities}
}

func (s *store) Create(name, city, district string) (*Field, error) {
	field := &Field{
		ID:       uuid.NewString(),
		Name:     name,
		City:     city,
		District: district,
	}
	if err := s.entities.Create(entity.KindField, field.ID, field); err != nil {
		return nil, fmt.Errorf("failed to create field: %w", err)
	}
	log.Info("Created field", "id", field.ID, "name", field.Name)
	return field, nil
}

func (s *store) Get(id string) (*Field, error) {
	var field Field
	if err := s.entities.Get(entity.KindField, id, &field); err != nil {
		if err == entity.ErrNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load field: %w", err)
	}
	return &field, nil
}

func (s *store) List() ([]Field, error) {
	return entity.ListAs[Field](s.entities, entity.KindField)
}
