package client

import "errors"

var (
	// ErrUnauthorized is returned by Run when a remote rejected the API token.
	ErrUnauthorized = errors.New("remote rejected the API token")
	// ErrInvalidDependencies is returned by NewApp when a dependency is missing.
	ErrInvalidDependencies = errors.New("invalid app dependencies")
)
