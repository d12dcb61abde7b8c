package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/skillsenselab/parakeet-gateway"

// GatewayMetrics holds the gateway's own instruments.
type GatewayMetrics struct {
	requests        metric.Int64Counter
	requestFailures metric.Int64Counter
	transcribeTime  metric.Float64Histogram
}

// NewGatewayMetrics creates the gateway instruments on the global meter.
func NewGatewayMetrics() (*GatewayMetrics, error) {
	meter := Meter(instrumentationName)

	requests, err := meter.Int64Counter("gateway.transcription.requests",
		metric.WithDescription("Total transcription requests received"))
	if err != nil {
		return nil, err
	}

	failures, err := meter.Int64Counter("gateway.transcription.failures",
		metric.WithDescription("Transcription requests that failed"))
	if err != nil {
		return nil, err
	}

	duration, err := meter.Float64Histogram("gateway.transcription.duration",
		metric.WithDescription("Transcription duration in seconds"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}

	return &GatewayMetrics{
		requests:        requests,
		requestFailures: failures,
		transcribeTime:  duration,
	}, nil
}

// RecordRequest counts one incoming transcription request for a backend.
func (m *GatewayMetrics) RecordRequest(ctx context.Context, backend string) {
	if m == nil {
		return
	}
	m.requests.Add(ctx, 1, metric.WithAttributes(attribute.String("backend", backend)))
}

// RecordFailure counts one failed transcription request.
func (m *GatewayMetrics) RecordFailure(ctx context.Context, backend, code string) {
	if m == nil {
		return
	}
	m.requestFailures.Add(ctx, 1, metric.WithAttributes(
		attribute.String("backend", backend),
		attribute.String("code", code),
	))
}

// RecordDuration records one transcription duration.
func (m *GatewayMetrics) RecordDuration(ctx context.Context, backend string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.transcribeTime.Record(ctx, elapsed.Seconds(),
		metric.WithAttributes(attribute.String("backend", backend)))
}
