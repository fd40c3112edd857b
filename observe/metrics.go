package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records resilience lifecycle metrics.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: must return quickly; recording is best-effort.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordCall records one protected call with duration and error status.
	RecordCall(ctx context.Context, meta CallMeta, duration time.Duration, err error)

	// RecordRetry records one retry of a failed attempt.
	RecordRetry(ctx context.Context, meta CallMeta, attempt int)

	// RecordRejection records a call rejected by an open circuit.
	RecordRejection(ctx context.Context, meta CallMeta)

	// RecordStateChange records a circuit breaker state transition.
	RecordStateChange(ctx context.Context, meta CallMeta, from, to string)
}

// metricsImpl is the concrete implementation of Metrics.
type metricsImpl struct {
	meter        metric.Meter
	callCount    metric.Int64Counter
	errorCount   metric.Int64Counter
	retryCount   metric.Int64Counter
	rejectCount  metric.Int64Counter
	stateChanges metric.Int64Counter
	durationHist metric.Float64Histogram
}

// newMetrics creates a new Metrics instance with the given meter.
func newMetrics(meter metric.Meter) (*metricsImpl, error) {
	callCount, err := meter.Int64Counter(
		"resilience.call.total",
		metric.WithDescription("Total number of protected calls"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"resilience.call.errors",
		metric.WithDescription("Total number of failed protected calls"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	retryCount, err := meter.Int64Counter(
		"resilience.retry.total",
		metric.WithDescription("Total number of retried attempts"),
		metric.WithUnit("{retry}"),
	)
	if err != nil {
		return nil, err
	}

	rejectCount, err := meter.Int64Counter(
		"resilience.reject.total",
		metric.WithDescription("Total number of calls rejected by an open circuit"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	stateChanges, err := meter.Int64Counter(
		"resilience.circuit.transitions",
		metric.WithDescription("Total number of circuit breaker state transitions"),
		metric.WithUnit("{transition}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"resilience.call.duration_ms",
		metric.WithDescription("Protected call duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		meter:        meter,
		callCount:    callCount,
		errorCount:   errorCount,
		retryCount:   retryCount,
		rejectCount:  rejectCount,
		stateChanges: stateChanges,
		durationHist: durationHist,
	}, nil
}

func (m *metricsImpl) callAttrs(meta CallMeta) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("call.id", meta.CallID()),
		attribute.String("call.resource", meta.Resource),
	}
	if meta.Operation != "" {
		attrs = append(attrs, attribute.String("call.operation", meta.Operation))
	}
	return attrs
}

// RecordCall records metrics for one protected call.
func (m *metricsImpl) RecordCall(ctx context.Context, meta CallMeta, duration time.Duration, err error) {
	opt := metric.WithAttributes(m.callAttrs(meta)...)

	m.callCount.Add(ctx, 1, opt)
	if err != nil {
		m.errorCount.Add(ctx, 1, opt)
	}
	m.durationHist.Record(ctx, float64(duration.Milliseconds()), opt)
}

// RecordRetry records one retried attempt.
func (m *metricsImpl) RecordRetry(ctx context.Context, meta CallMeta, attempt int) {
	attrs := append(m.callAttrs(meta), attribute.Int("retry.attempt", attempt))
	m.retryCount.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// RecordRejection records a call rejected without invocation.
func (m *metricsImpl) RecordRejection(ctx context.Context, meta CallMeta) {
	m.rejectCount.Add(ctx, 1, metric.WithAttributes(m.callAttrs(meta)...))
}

// RecordStateChange records a breaker transition.
func (m *metricsImpl) RecordStateChange(ctx context.Context, meta CallMeta, from, to string) {
	attrs := append(m.callAttrs(meta),
		attribute.String("circuit.from", from),
		attribute.String("circuit.to", to),
	)
	m.stateChanges.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// noopMetrics is a metrics implementation that does nothing.
type noopMetrics struct{}

func (noopMetrics) RecordCall(ctx context.Context, meta CallMeta, duration time.Duration, err error) {
}
func (noopMetrics) RecordRetry(ctx context.Context, meta CallMeta, attempt int)          {}
func (noopMetrics) RecordRejection(ctx context.Context, meta CallMeta)                   {}
func (noopMetrics) RecordStateChange(ctx context.Context, meta CallMeta, from, to string) {}
