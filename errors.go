package msgalloc

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by New and by the constructor-time validation of
// a Config. Wrapped in a *ConfigError naming the field; its Unwrap returns
// the sentinel, so callers can still errors.Is against it.
var (
	ErrArenaTooSmall  = errors.New("msgalloc: arena size must be at least header size + 2")
	ErrZeroCapacity   = errors.New("msgalloc: queue capacity must be positive")
	ErrNilHeaderCodec = errors.New("msgalloc: header codec must not be nil")
	ErrNilHAL         = errors.New("msgalloc: HAL must not be nil")
)

// ConfigError reports which Config field failed validation, preserving the
// field name for callers that want to build a user-facing message without
// parsing Error() text.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("msgalloc: config field %q: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

func configError(field string, err error) error {
	return &ConfigError{Field: field, Err: err}
}
