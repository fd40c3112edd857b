package resilience_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonwraymond/wrench/resilience"
)

func ExampleNewCircuitBreaker() {
	cb := resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{
		FailureThreshold: 3,
		RecoveryTimeout:  time.Minute,
	})

	ctx := context.Background()
	err := cb.Execute(ctx, func(ctx context.Context) error {
		// Simulated successful operation
		return nil
	})

	if err == nil {
		fmt.Println("Operation succeeded")
	}
	// Output:
	// Operation succeeded
}

func ExampleCircuitBreaker_State() {
	cb := resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{
		FailureThreshold: 2,
		RecoveryTimeout:  time.Minute,
	})

	ctx := context.Background()

	fmt.Println("Initial state:", cb.State())

	simulatedErr := errors.New("service unavailable")
	for i := 0; i < 2; i++ {
		_ = cb.Execute(ctx, func(ctx context.Context) error {
			return simulatedErr
		})
	}

	fmt.Println("After failures:", cb.State())

	cb.Reset()
	fmt.Println("After reset:", cb.State())
	// Output:
	// Initial state: closed
	// After failures: open
	// After reset: closed
}

func ExampleNewCircuitBreaker_withStateChange() {
	cb := resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{
		FailureThreshold: 1,
		RecoveryTimeout:  time.Minute,
		OnStateChange: func(from, to resilience.State) {
			fmt.Printf("Circuit changed: %s -> %s\n", from, to)
		},
	})

	ctx := context.Background()
	_ = cb.Execute(ctx, func(ctx context.Context) error {
		return errors.New("failure")
	})
	// Output:
	// Circuit changed: closed -> open
}

func ExampleNewRetry() {
	retry := resilience.NewRetry(resilience.RetryConfig{
		MaxRetries:    2,
		BackoffFactor: 2.0,
		BaseDelay:     time.Millisecond,
	})

	ctx := context.Background()
	attempts := 0

	err := retry.Execute(ctx, func(ctx context.Context) error {
		attempts++
		if attempts < 2 {
			return errors.New("transient failure")
		}
		return nil
	})

	fmt.Println("Error:", err)
	fmt.Println("Attempts:", attempts)
	// Output:
	// Error: <nil>
	// Attempts: 2
}

func ExampleNewRetry_exhausted() {
	retry := resilience.NewRetry(resilience.RetryConfig{
		MaxRetries: 1,
		BaseDelay:  time.Millisecond,
	})

	err := retry.Execute(context.Background(), func(ctx context.Context) error {
		return errors.New("service down")
	})

	fmt.Println("Exhausted:", resilience.IsRetriesExhausted(err))
	// Output:
	// Exhausted: true
}

func ExampleExecuteWithTimeout() {
	err := resilience.ExecuteWithTimeout(context.Background(), 10*time.Millisecond, func(ctx context.Context) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Second):
			return nil
		}
	})

	fmt.Println("Timed out:", resilience.IsTimeout(err))
	// Output:
	// Timed out: true
}

func ExampleNewExecutor() {
	executor := resilience.NewExecutor(
		resilience.WithCircuitBreaker(resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{
			FailureThreshold: 5,
			RecoveryTimeout:  time.Minute,
		})),
		resilience.WithRetry(resilience.NewRetry(resilience.RetryConfig{
			MaxRetries: 2,
			BaseDelay:  time.Millisecond,
		})),
		resilience.WithTimeout(time.Second),
	)

	err := executor.Execute(context.Background(), func(ctx context.Context) error {
		return nil
	})

	fmt.Println("Error:", err)
	// Output:
	// Error: <nil>
}

func ExampleDo() {
	executor := resilience.NewExecutor(
		resilience.WithRetry(resilience.NewRetry(resilience.RetryConfig{
			MaxRetries: 1,
			BaseDelay:  time.Millisecond,
		})),
	)

	user, err := resilience.Do(context.Background(), executor, func(ctx context.Context) (string, error) {
		return "alice", nil
	})

	fmt.Println(user, err)
	// Output:
	// alice <nil>
}
