// Package clients provides the instrumented HTTP client for downstream services.
package clients

import "errors"

// Client errors are infrastructure failures. Adapters translate them to
// domain errors before they reach the application layer.
var (
	// ErrCircuitOpen is returned without sending when the circuit breaker is open.
	ErrCircuitOpen = errors.New("circuit breaker open")

	// ErrRequestFailed wraps the last transport error once retries are exhausted.
	ErrRequestFailed = errors.New("downstream request failed")
)
