// Package storage defines the key/value persistence adapter the board is
// saved through, its backends, and the codecs for the two board records
package storage

import "context"

// KV is a string key/value store
type KV interface {
	// Get returns the value under key; ok is false when the key is absent
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Close() error
}
