package repositories

import "context"

// KeyValueReader defines read operations on a string keyed store of JSON text values.
type KeyValueReader interface {
	// Get returns the value stored under key, or apperrors.ErrNotFound when absent.
	Get(ctx context.Context, key string) (string, error)
}

// KeyValueWriter defines write operations on a string keyed store.
type KeyValueWriter interface {
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
}

// KeyValueStore combines read and write access.
// Implementations give no cross-key atomicity; the last write wins.
type KeyValueStore interface {
	KeyValueReader
	KeyValueWriter
}
