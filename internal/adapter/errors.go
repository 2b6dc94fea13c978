package adapter

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors mapped from transport and HTTP failures. Callers match
// them with errors.Is; the wrapped message carries the response body.
var (
	// ErrTransport marks network-level failures where no HTTP response was
	// received (DNS, dial, timeout, canceled context).
	ErrTransport = errors.New("transport failure")

	// ErrProtocol marks responses the client could not interpret: malformed
	// JSON or a body that does not match the expected shape.
	ErrProtocol = errors.New("protocol violation")

	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("access forbidden")
	ErrNotFound            = errors.New("resource not found")
	ErrConflict            = errors.New("version conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrWriteRejected marks writes the service refuses for this client
	// class, observed as HTTP 405. Write policies also return it locally for
	// operations known to be restricted under Open API tokens.
	ErrWriteRejected = errors.New("write rejected for this auth mode")

	// ErrRateLimited marks HTTP 429. Use [RetryAfter] to read the cooldown
	// the service requested, when it sent one.
	ErrRateLimited = errors.New("rate limited")
)

// RateLimitError carries the Retry-After hint of a 429 response. It unwraps
// to [ErrRateLimited].
type RateLimitError struct {
	// RetryAfter is zero when the response carried no usable hint.
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited, retry after %s", e.RetryAfter)
	}
	return "rate limited"
}

func (e *RateLimitError) Unwrap() error { return ErrRateLimited }

// RetryAfter extracts the requested cooldown from err, if err is (or wraps)
// a rate-limit error that carried one.
func RetryAfter(err error) (time.Duration, bool) {
	var rle *RateLimitError
	if errors.As(err, &rle) && rle.RetryAfter > 0 {
		return rle.RetryAfter, true
	}
	return 0, false
}
