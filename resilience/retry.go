package resilience

import (
	"context"
	"math"
	"math/rand/v2"
	"time"
)

// RetryConfig configures the retry behavior.
type RetryConfig struct {
	// MaxRetries is the number of retries after the first attempt, so the
	// total number of attempts is MaxRetries+1. Zero means a single
	// attempt with no retry. Negative values are treated as zero.
	MaxRetries int

	// BackoffFactor is the exponential base for the delay schedule. The
	// delay before retry i+1 is BaseDelay * BackoffFactor^i.
	// Default: 2.0
	BackoffFactor float64

	// BaseDelay is the delay unit for the backoff schedule.
	// Default: 100ms
	BaseDelay time.Duration

	// MaxDelay caps the delay between attempts.
	// Default: 30s
	MaxDelay time.Duration

	// Jitter adds up to 25% of extra delay to each backoff to avoid
	// synchronized retry storms. Jitter is additive and never shortens
	// a delay below its computed base.
	Jitter bool

	// RetryIf determines if an error should trigger a retry. Errors it
	// rejects are returned to the caller unchanged.
	// Default: all non-nil errors trigger retry.
	RetryIf func(err error) bool

	// OnRetry is called before each retry attempt with the 1-based number
	// of the attempt that just failed, its error, and the upcoming delay.
	OnRetry func(attempt int, err error, delay time.Duration)
}

// Retry re-invokes a failing operation up to a bounded number of times,
// sleeping between attempts according to the backoff schedule.
type Retry struct {
	config RetryConfig
}

// NewRetry creates a new retry handler.
func NewRetry(config RetryConfig) *Retry {
	// Apply defaults
	if config.MaxRetries < 0 {
		config.MaxRetries = 0
	}
	if config.BackoffFactor <= 0 {
		config.BackoffFactor = 2.0
	}
	if config.BaseDelay <= 0 {
		config.BaseDelay = 100 * time.Millisecond
	}
	if config.MaxDelay <= 0 {
		config.MaxDelay = 30 * time.Second
	}
	if config.RetryIf == nil {
		config.RetryIf = func(err error) bool { return err != nil }
	}

	return &Retry{config: config}
}

// Execute runs the operation, retrying failures until it succeeds, the
// attempt budget is exhausted, or RetryIf rejects the error. On
// exhaustion it returns an *ExhaustedError wrapping the last failure.
func (r *Retry) Execute(ctx context.Context, op func(context.Context) error) error {
	start := time.Now()
	attempts := r.config.MaxRetries + 1

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		err := op(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		// Non-retryable failures propagate unchanged.
		if !r.config.RetryIf(err) {
			return err
		}

		if attempt == attempts-1 {
			break
		}

		delay := r.delay(attempt)

		if r.config.OnRetry != nil {
			r.config.OnRetry(attempt+1, err, delay)
		}

		// Suspend only this goroutine; abandon the sequence if the
		// caller's context is cancelled while waiting.
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return &ExhaustedError{
		Attempts: attempts,
		Elapsed:  time.Since(start),
		Err:      lastErr,
	}
}

// delay computes the backoff before retry attempt+1 (attempt is 0-indexed).
func (r *Retry) delay(attempt int) time.Duration {
	d := time.Duration(float64(r.config.BaseDelay) * math.Pow(r.config.BackoffFactor, float64(attempt)))

	if d > r.config.MaxDelay {
		d = r.config.MaxDelay
	}

	if r.config.Jitter && d >= 4 {
		// #nosec G404 -- jitter is non-cryptographic timing variance.
		d += time.Duration(rand.Int64N(int64(d / 4)))
	}

	return d
}

// Config returns the retry configuration.
func (r *Retry) Config() RetryConfig {
	return r.config
}
