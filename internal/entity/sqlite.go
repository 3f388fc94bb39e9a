package entity

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// sqliteStore is the durable backend. Every entity lives in a single
// entities table keyed by (kind, key) with a msgpack blob; rowid gives
// insertion order for List.
type sqliteStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewSQLite creates a Store backed by the given database.
func NewSQLite(db *sql.DB) Store {
	return &sqliteStore{db: db}
}

func (s *sqliteStore) Create(kind Kind, key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := msgpack.Marshal(v)
	if err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	var exists bool
	if err := tx.QueryRow("SELECT EXISTS(SELECT 1 FROM entities WHERE kind = ? AND key = ?)", kind, key).Scan(&exists); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to check entity existence: %w", err)
	}
	if exists {
		tx.Rollback()
		return ErrExists
	}

	if _, err := tx.Exec("INSERT INTO entities (kind, key, data) VALUES (?, ?, ?)", kind, key, raw); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to insert entity: %w", err)
	}
	return tx.Commit()
}

func (s *sqliteStore) Get(kind Kind, key string, out any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var raw []byte
	err := s.db.QueryRow("SELECT data FROM entities WHERE kind = ? AND key = ?", kind, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to query entity: %w", err)
	}
	return msgpack.Unmarshal(raw, out)
}

func (s *sqliteStore) Put(kind Kind, key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := msgpack.Marshal(v)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
		INSERT INTO entities (kind, key, data) VALUES (?, ?, ?)
		ON CONFLICT(kind, key) DO UPDATE SET data = excluded.data;
	`, kind, key, raw)
	return err
}

func (s *sqliteStore) Mutate(kind Kind, key string, fn func(raw []byte) (any, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	var raw []byte
	err = tx.QueryRow("SELECT data FROM entities WHERE kind = ? AND key = ?", kind, key).Scan(&raw)
	if err == sql.ErrNoRows {
		tx.Rollback()
		return ErrNotFound
	}
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to query entity: %w", err)
	}

	v, err := fn(raw)
	if err != nil {
		tx.Rollback()
		return err
	}
	updated, err := msgpack.Marshal(v)
	if err != nil {
		tx.Rollback()
		return err
	}

	if _, err := tx.Exec("UPDATE entities SET data = ? WHERE kind = ? AND key = ?", updated, kind, key); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to update entity: %w", err)
	}
	return tx.Commit()
}

func (s *sqliteStore) Exists(kind Kind, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var exists bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM entities WHERE kind = ? AND key = ?)", kind, key).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check entity existence: %w", err)
	}
	return exists, nil
}

func (s *sqliteStore) List(kind Kind) ([][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query("SELECT data FROM entities WHERE kind = ? ORDER BY rowid", kind)
	if err != nil {
		return nil, fmt.Errorf("failed to query entities: %w", err)
	}
	defer rows.Close()

	var raws [][]byte
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			log.Error("Failed to scan entity row", "error", err, "kind", kind)
			continue
		}
		raws = append(raws, raw)
	}
	return raws, rows.Err()
}
