package resilience

import "time"

// APIRetry returns the retry profile used for interactive API calls:
// a few quick attempts with gentle backoff and jitter.
func APIRetry() *Retry {
	return NewRetry(RetryConfig{
		MaxRetries:    3,
		BackoffFactor: 1.5,
		Jitter:        true,
	})
}

// NetworkRetry returns the retry profile used for flaky network paths:
// more attempts, steeper backoff, capped at 30 seconds.
func NetworkRetry() *Retry {
	return NewRetry(RetryConfig{
		MaxRetries:    5,
		BackoffFactor: 2.0,
		MaxDelay:      30 * time.Second,
		Jitter:        true,
	})
}
