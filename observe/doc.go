// Package observe provides opt-in telemetry for resilience-wrapped calls.
//
// The resilience package stays hook-based and carries no logger or metrics
// dependency of its own. This package supplies the other half: an Observer
// bundling an OpenTelemetry tracer, meter, and a structured JSON logger,
// plus an Instrumentation bridge that turns resilience lifecycle events
// (retry attempts, breaker state changes, rejections) into spans, metrics,
// and log lines.
//
//	obs, err := observe.NewObserver(ctx, observe.Config{
//	    ServiceName: "billing",
//	    Metrics:     observe.MetricsConfig{Enabled: true, Exporter: "prometheus"},
//	    Logging:     observe.LoggingConfig{Enabled: true, Level: "warn"},
//	})
//	if err != nil {
//	    return err
//	}
//	defer obs.Shutdown(ctx)
//
//	inst, err := observe.NewInstrumentation(obs, observe.CallMeta{
//	    Resource:  "payments",
//	    Operation: "charge",
//	})
//	if err != nil {
//	    return err
//	}
//
//	executor := resilience.NewExecutor(
//	    resilience.WithCircuitBreaker(resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{
//	        OnStateChange: inst.OnStateChange(),
//	        OnReject:      inst.OnReject(),
//	    })),
//	    resilience.WithRetry(resilience.NewRetry(resilience.RetryConfig{
//	        MaxRetries: 3,
//	        OnRetry:    inst.OnRetry(),
//	    })),
//	    resilience.WithTimeout(5*time.Second),
//	)
//
//	err = inst.Execute(ctx, executor, callDownstream)
package observe
