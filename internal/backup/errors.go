package backup

import "errors"

var (
	// ErrInvalidDocument is returned for input that is not a JSON object of strings
	ErrInvalidDocument = errors.New("invalid backup document")
	// ErrMissingKey is returned when a required key is absent
	ErrMissingKey = errors.New("backup is missing a required key")
	// ErrUnknownKey is returned for keys this application never writes
	ErrUnknownKey = errors.New("backup contains an unknown key")
	// ErrInvalidValue is returned when a value does not decode
	ErrInvalidValue = errors.New("backup contains an invalid value")
)
