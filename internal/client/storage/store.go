// Package storage implements the durable client-side key/value store backing
// session state: bearer token, cached profile, remembered email, and login
// throttling counters. The store is the CLI's equivalent of browser local
// storage.
package storage

import "context"

// Store is a simple durable key/value contract. Get returns (nil, nil) for a
// missing key. SetMany applies all writes atomically.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetMany(ctx context.Context, values map[string][]byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
