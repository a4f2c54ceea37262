package persistence

import "errors"

var (
	// ErrCorrupt wraps any stored value that cannot be decoded
	ErrCorrupt = errors.New("stored value is corrupt")
	// ErrExpired is returned for legacy envelopes whose ttl has passed
	ErrExpired = errors.New("stored value has expired")
)
