package fields

import "errors"

var ErrNotFound = errors.New("field not found")

// FieldStore defines the interface for venue persistence.
type FieldStore interface {
	Create(name, city, district string) (*Field, error)
	Get(id string) (*Field, error)
	List() ([]Field, error)
}
