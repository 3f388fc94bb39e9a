package entity

import (
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// memoryStore keeps all entities in process memory. It backs unit tests
// and keeps insertion order per kind so List behaves like the durable
// backend.
type memoryStore struct {
	mu    sync.RWMutex
	data  map[Kind]map[string][]byte
	order map[Kind][]string
}

// NewMemory creates an in-memory Store.
func NewMemory() Store {
	return &memoryStore{
		data:  make(map[Kind]map[string][]byte),
		order: make(map[Kind][]string),
	}
}

func (m *memoryStore) Create(kind Kind, key string, v any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.data[kind][key]; ok {
		return ErrExists
	}
	raw, err := msgpack.Marshal(v)
	if err != nil {
		return err
	}
	m.set(kind, key, raw)
	return nil
}

func (m *memoryStore) Get(kind Kind, key string, out any) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	raw, ok := m.data[kind][key]
	if !ok {
		return ErrNotFound
	}
	return msgpack.Unmarshal(raw, out)
}

func (m *memoryStore) Put(kind Kind, key string, v any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw, err := msgpack.Marshal(v)
	if err != nil {
		return err
	}
	m.set(kind, key, raw)
	return nil
}

func (m *memoryStore) Mutate(kind Kind, key string, fn func(raw []byte) (any, error)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw, ok := m.data[kind][key]
	if !ok {
		return ErrNotFound
	}
	v, err := fn(raw)
	if err != nil {
		return err
	}
	updated, err := msgpack.Marshal(v)
	if err != nil {
		return err
	}
	m.data[kind][key] = updated
	return nil
}

func (m *memoryStore) Exists(kind Kind, key string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.data[kind][key]
	return ok, nil
}

func (m *memoryStore) List(kind Kind) ([][]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := m.order[kind]
	raws := make([][]byte, 0, len(keys))
	for _, key := range keys {
		raws = append(raws, m.data[kind][key])
	}
	return raws, nil
}

// set stores a blob and records insertion order for new keys. Callers
// must hold the write lock.
func (m *memoryStore) set(kind Kind, key string, raw []byte) {
	if m.data[kind] == nil {
		m.data[kind] = make(map[string][]byte)
	}
	if _, ok := m.data[kind][key]; !ok {
		m.order[kind] = append(m.order[kind], key)
	}
	m.data[kind][key] = raw
}
