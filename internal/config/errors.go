package config

import "errors"

// Validation errors returned by [ClientConfig.validate] and
// [StructuredConfig.validate].
var (
	// ErrInvalidStorageConfigs indicates an empty DSN or an unknown SQLite
	// driver name.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAdapterConfigs indicates a missing remote base URL for the
	// selected backend, or a non-positive request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidAppConfigs indicates an unparsable log level or an empty
	// display date layout.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive worker interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidSyncConfigs indicates non-positive page sizes or a negative
	// malformed-object threshold.
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
)
