package entity

import (
	"errors"

	"github.com/vmihailenco/msgpack/v5"
)

// Kind identifies an entity collection in the store.
type Kind string

const (
	KindUser  Kind = "user"
	KindField Kind = "field"
	KindMatch Kind = "match"
)

var (
	// ErrNotFound is returned when no entity exists under the given key.
	ErrNotFound = errors.New("entity not found")
	// ErrExists is returned by Create when the key is already taken.
	ErrExists = errors.New("entity already exists")
)

// Store is a generic indexed key-value store for typed entities.
// Values are persisted as msgpack blobs; List returns them in insertion
// order, which keeps iteration deterministic across both backends.
type Store interface {
	Create(kind Kind, key string, v any) error
	Get(kind Kind, key string, out any) error
	Put(kind Kind, key string, v any) error
	// Mutate applies a read-modify-write to a single entity. The whole
	// operation happens under the store's write lock.
	Mutate(kind Kind, key string, fn func(raw []byte) (any, error)) error
	Exists(kind Kind, key string) (bool, error)
	List(kind Kind) ([][]byte, error)
}

// Decode unmarshals a raw blob returned by List or passed to a Mutate
// callback.
func Decode(raw []byte, out any) error {
	return msgpack.Unmarshal(raw, out)
}

// MutateAs is a typed convenience wrapper around Store.Mutate.
func MutateAs[T any](s Store, kind Kind, key string, fn func(*T) error) error {
	return s.Mutate(kind, key, func(raw []byte) (any, error) {
		var v T
		if err := Decode(raw, &v); err != nil {
			return nil, err
		}
		if err := fn(&v); err != nil {
			return nil, err
		}
		return &v, nil
	})
}

// ListAs lists every entity of a kind, decoded into T.
func ListAs[T any](s Store, kind Kind) ([]T, error) {
	raws, err := s.List(kind)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		var v T
		if err := Decode(raw, &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
