package resilience

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors for resilience operations. The concrete errors returned
// by the components carry more context but always match these with errors.Is.
var (
	// ErrCircuitOpen is returned when the circuit breaker rejects a call.
	ErrCircuitOpen = errors.New("resilience: circuit breaker is open")

	// ErrRetriesExhausted is returned when all retry attempts have failed.
	ErrRetriesExhausted = errors.New("resilience: retries exhausted")

	// ErrTimeout is returned when an operation exceeds its deadline.
	ErrTimeout = errors.New("resilience: operation timed out")
)

// ExhaustedError reports that every retry attempt failed. It wraps the
// error from the last attempt.
type ExhaustedError struct {
	// Attempts is the total number of attempts made, including the first.
	Attempts int

	// Elapsed is the wall-clock time spent across all attempts and delays.
	Elapsed time.Duration

	// Err is the failure from the final attempt.
	Err error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("resilience: %d attempts exhausted after %s: %v", e.Attempts, e.Elapsed.Round(time.Millisecond), e.Err)
}

// Unwrap returns the last attempt's error.
func (e *ExhaustedError) Unwrap() error { return e.Err }

// Is reports a match against ErrRetriesExhausted.
func (e *ExhaustedError) Is(target error) bool { return target == ErrRetriesExhausted }

// TimeoutError reports that an operation was cancelled because it exceeded
// its deadline.
type TimeoutError struct {
	// Limit is the configured deadline.
	Limit time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("resilience: operation timed out after %s", e.Limit)
}

// Is reports a match against ErrTimeout.
func (e *TimeoutError) Is(target error) bool { return target == ErrTimeout }

// OpenError reports that the circuit breaker rejected a call without
// invoking the operation.
type OpenError struct {
	// State is the breaker state at rejection time (Open, or HalfOpen when
	// the probe slot was already claimed).
	State State

	// Failures is the failure count at rejection time.
	Failures int
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("resilience: circuit breaker is %s (%d failures)", e.State, e.Failures)
}

// Is reports a match against ErrCircuitOpen.
func (e *OpenError) Is(target error) bool { return target == ErrCircuitOpen }

// IsCircuitOpen reports whether err is a circuit breaker rejection.
func IsCircuitOpen(err error) bool { return errors.Is(err, ErrCircuitOpen) }

// IsTimeout reports whether err is a deadline failure.
func IsTimeout(err error) bool { return errors.Is(err, ErrTimeout) }

// IsRetriesExhausted reports whether err is a retry exhaustion failure.
func IsRetriesExhausted(err error) bool { return errors.Is(err, ErrRetriesExhausted) }
