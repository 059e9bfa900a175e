package storage

import "context"

// MemoryStore keeps items in a map. FailWrites makes every SetItem and
// RemoveItem return the given error.
type MemoryStore struct {
	items      map[string]string
	FailWrites error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]string)}
}

func (m *MemoryStore) GetItem(_ context.Context, key string) (string, bool, error) {
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *MemoryStore) SetItem(_ context.Context, key, value string) error {
	if m.FailWrites != nil {
		return m.FailWrites
	}
	m.items[key] = value
	return nil
}

func (m *MemoryStore) RemoveItem(_ context.Context, key string) error {
	if m.FailWrites != nil {
		return m.FailWrites
	}
	delete(m.items, key)
	return nil
}
