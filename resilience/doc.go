// Package resilience wraps fallible, potentially slow operations with
// composable fault-tolerance patterns.
//
// This package implements the three mechanisms that matter when calling
// an unreliable downstream: bounded retry with exponential backoff,
// deadline enforcement, and circuit breaking. Each is an independent
// wrapper over an operation of the form func(ctx context.Context) error.
//
// # Patterns
//
//   - Retry: re-invokes a failing operation up to MaxRetries extra times,
//     sleeping BaseDelay * BackoffFactor^i between attempts, with optional
//     additive jitter. Exhaustion yields an *ExhaustedError wrapping the
//     last failure.
//
//   - Timeout: races an operation against a deadline, cancelling its
//     context and discarding its result when the deadline wins. The
//     failure is a *TimeoutError.
//
//   - CircuitBreaker: counts consecutive failures across callers and,
//     once FailureThreshold is reached, rejects calls with an *OpenError
//     until RecoveryTimeout elapses; then a single probe decides whether
//     the circuit closes again.
//
// # Usage
//
// Each pattern can be used on its own:
//
//	cb := resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{
//	    FailureThreshold: 5,
//	    RecoveryTimeout:  time.Minute,
//	})
//
//	retry := resilience.NewRetry(resilience.RetryConfig{
//	    MaxRetries:    3,
//	    BackoffFactor: 2.0,
//	    BaseDelay:     100 * time.Millisecond,
//	})
//
// Or composed through an Executor, which applies the canonical nesting
// circuit breaker -> retry -> timeout:
//
//	executor := resilience.NewExecutor(
//	    resilience.WithCircuitBreaker(cb),
//	    resilience.WithRetry(retry),
//	    resilience.WithTimeout(5*time.Second),
//	)
//
//	err := executor.Execute(ctx, func(ctx context.Context) error {
//	    return callExternalService(ctx)
//	})
//
// With that nesting each attempt is individually time-bounded and the
// breaker records one outcome per retry sequence. Any other nesting is
// available by wrapping manually.
//
// # Errors
//
// Control failures match the package sentinels with errors.Is:
//
//	if resilience.IsCircuitOpen(err) {
//	    return cached, nil // fall back while the downstream recovers
//	}
//
// ErrTimeout and ErrCircuitOpen are terminal for a single call path; an
// enclosing Retry treats them like any other failure unless RetryIf says
// otherwise. Operation errors that are none of the three sentinels are
// propagated unchanged.
package resilience
