package storage

import "context"

// KeyValueStore is the localStorage surface: string values under string
// keys, each write replacing the previous value.
type KeyValueStore interface {
	GetItem(ctx context.Context, key string) (string, bool, error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
}
