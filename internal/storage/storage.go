// Package storage provides the key-value store the board is persisted in.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key holds no value
var ErrNotFound = errors.New("key not found")

// ErrClosed is returned by every operation on a closed store
var ErrClosed = errors.New("store is closed")

// KV is a flat string-to-string store. Values are opaque to the store.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	// SetMany writes every entry or none of them
	SetMany(ctx context.Context, entries map[string]string) error
	Delete(ctx context.Context, key string) error
	// Keys returns every stored key in ascending order
	Keys(ctx context.Context) ([]string, error)
	Clear(ctx context.Context) error
	Close() error
}
