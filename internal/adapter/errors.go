package adapter

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrBadRequest is returned for HTTP 400.
	ErrBadRequest = errors.New("bad request")
	// ErrUnauthorized is returned for HTTP 401 and 403: the token is missing,
	// wrong or revoked.
	ErrUnauthorized = errors.New("client unauthorized")
	// ErrNotFound is returned for HTTP 404.
	ErrNotFound = errors.New("not found")
	// ErrURITooLong is returned for HTTP 414.
	ErrURITooLong = errors.New("request uri too long")
	// ErrTooManyRequests is returned for HTTP 429.
	ErrTooManyRequests = errors.New("too many requests")
	// ErrServerUnavailable is returned for any 5xx status.
	ErrServerUnavailable = errors.New("server unavailable")
	// ErrNetwork wraps transport failures: DNS, refused connections, timeouts.
	ErrNetwork = errors.New("network error")
	// ErrDecodingResponse is returned when a 2xx body cannot be decoded.
	ErrDecodingResponse = errors.New("error decoding response")
	// ErrRemoteApplication is matched by every [*RemoteError].
	ErrRemoteApplication = errors.New("remote application error")
	// ErrInvalidBaseURL is returned by constructors for an unusable base URL.
	ErrInvalidBaseURL = errors.New("invalid base url")
)

// RemoteError is a well-formed response whose result code reports failure,
// e.g. Pinboard answering 200 with "missing url".
type RemoteError struct {
	Code string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %s", ErrRemoteApplication, e.Code)
}

func (e *RemoteError) Is(target error) bool {
	return target == ErrRemoteApplication
}

// IsTransient reports whether err is worth retrying right away: transport
// failures and 5xx answers. Cancellation of the caller's context is not.
func IsTransient(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	return errors.Is(err, ErrNetwork) || errors.Is(err, ErrServerUnavailable)
}

// IsTooManyRequests reports whether err is an HTTP 429.
func IsTooManyRequests(err error) bool {
	return errors.Is(err, ErrTooManyRequests)
}
