package upstream

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Error is a non-2xx answer from the upstream API. Message carries the
// server-supplied `mensagem` when one was present, so callers can surface it
// to the user.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream: %d: %s", e.Status, e.Message)
	}

	return fmt.Sprintf("upstream: %s", http.StatusText(e.Status))
}

// ErrSignedOut is returned when a call requiring authentication is made
// without a session.
var ErrSignedOut = errors.New("not signed in")

// IsUnauthorized reports whether err is an upstream 401.
func IsUnauthorized(err error) bool {
	var upstreamErr *Error
	return errors.As(err, &upstreamErr) && upstreamErr.Status == http.StatusUnauthorized
}

// IsRetryable classifies a failure as transient. Only transport timeouts,
// HTTP 503 and HTTP 408 qualify; everything else, validation errors and 500s
// included, must propagate immediately.
func IsRetryable(err error) bool {
	var upstreamErr *Error
	if errors.As(err, &upstreamErr) {
		return upstreamErr.Status == http.StatusServiceUnavailable ||
			upstreamErr.Status == http.StatusRequestTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	return errors.Is(err, context.DeadlineExceeded)
}
