package observe

import (
	"context"
	"time"

	"github.com/jonwraymond/wrench/resilience"
)

// Instrumentation bridges resilience lifecycle hooks into the Observer's
// tracer, meter, and logger. One Instrumentation corresponds to one
// protected downstream call site.
//
// The hooks fire synchronously inside the call path, so everything they
// do is best-effort and cheap: a counter bump and a log line.
type Instrumentation struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
	meta    CallMeta
}

// NewInstrumentation creates an Instrumentation for the given call site.
func NewInstrumentation(obs Observer, meta CallMeta) (*Instrumentation, error) {
	if obs == nil {
		return nil, ErrNilObserver
	}
	if meta.Resource == "" {
		return nil, ErrMissingResource
	}

	metrics, err := newMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}

	return &Instrumentation{
		tracer:  newTracer(obs.Tracer()),
		metrics: metrics,
		logger:  obs.Logger().WithCall(meta),
		meta:    meta,
	}, nil
}

// OnRetry returns a hook for resilience.RetryConfig.OnRetry. Each
// intermediate failure is logged at warn level and counted; it is not
// surfaced to the caller.
func (i *Instrumentation) OnRetry() func(attempt int, err error, delay time.Duration) {
	return func(attempt int, err error, delay time.Duration) {
		ctx := context.Background()
		i.metrics.RecordRetry(ctx, i.meta, attempt)
		i.logger.Warn(ctx, "attempt failed, retrying",
			Field{Key: "attempt", Value: attempt},
			Field{Key: "error", Value: err.Error()},
			Field{Key: "delay_ms", Value: float64(delay.Milliseconds())},
		)
	}
}

// OnStateChange returns a hook for resilience.CircuitBreakerConfig.OnStateChange.
func (i *Instrumentation) OnStateChange() func(from, to resilience.State) {
	return func(from, to resilience.State) {
		ctx := context.Background()
		i.metrics.RecordStateChange(ctx, i.meta, from.String(), to.String())

		fields := []Field{
			{Key: "from", Value: from.String()},
			{Key: "to", Value: to.String()},
		}
		if to == resilience.StateOpen {
			i.logger.Error(ctx, "circuit opened", fields...)
		} else {
			i.logger.Info(ctx, "circuit state changed", fields...)
		}
	}
}

// OnReject returns a hook for resilience.CircuitBreakerConfig.OnReject.
func (i *Instrumentation) OnReject() func(state resilience.State) {
	return func(state resilience.State) {
		ctx := context.Background()
		i.metrics.RecordRejection(ctx, i.meta)
		i.logger.Warn(ctx, "call rejected by circuit breaker",
			Field{Key: "state", Value: state.String()},
		)
	}
}

// Execute runs the operation through the executor inside a span, records
// the call metrics, and logs the outcome. The operation's error is
// propagated unchanged.
func (i *Instrumentation) Execute(ctx context.Context, e *resilience.Executor, op func(context.Context) error) error {
	ctx, span := i.tracer.StartSpan(ctx, i.meta)

	start := time.Now()
	err := e.Execute(ctx, op)
	duration := time.Since(start)

	i.tracer.EndSpan(span, err)
	i.metrics.RecordCall(ctx, i.meta, duration, err)

	fields := []Field{
		{Key: "duration_ms", Value: float64(duration.Milliseconds())},
	}
	if err != nil {
		fields = append(fields, Field{Key: "error", Value: err.Error()})
		i.logger.Error(ctx, "protected call failed", fields...)
	} else {
		i.logger.Info(ctx, "protected call completed", fields...)
	}

	return err
}
