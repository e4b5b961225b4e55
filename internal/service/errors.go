package service

import "errors"

var (
	// ErrInvalidRequest is returned for a request that cannot be served,
	// e.g. a post that exists neither locally nor remotely.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrOperationNotSupported is returned by backends that lack an operation.
	ErrOperationNotSupported = errors.New("operation not supported")
	// ErrOffline is returned by operations that need the remote while it is
	// unreachable.
	ErrOffline = errors.New("remote unreachable")
	// ErrBackendNotConfigured is returned when the selected mode has no
	// backend, e.g. Linkding without a base URL.
	ErrBackendNotConfigured = errors.New("backend not configured")
)
