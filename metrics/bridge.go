package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// BridgeMetrics tracks orchestration runs. Safe for concurrent submissions;
// it holds no per-run state.
type BridgeMetrics struct {
	submissionsStarted metric.Int64Counter
	submissionsFailed  metric.Int64Counter
	correlations       metric.Int64Counter

	correlationTimeHistogram metric.Float64Histogram
}

// NewBridgeMetrics initializes metrics related to bridging submissions
func NewBridgeMetrics(meter metric.Meter) (*BridgeMetrics, error) {
	submissionsStarted, err := meter.Int64Counter(
		"bridge.SubmissionsStarted",
		metric.WithDescription("Number of started bridging submissions"),
	)
	if err != nil {
		return nil, err
	}
	submissionsFailed, err := meter.Int64Counter(
		"bridge.SubmissionsFailed",
		metric.WithDescription("Number of bridging submissions that terminated in a failed outcome"),
	)
	if err != nil {
		return nil, err
	}
	correlations, err := meter.Int64Counter(
		"bridge.RequestsCorrelated",
		metric.WithDescription("Number of bridging requests matched to their chain event"),
	)
	if err != nil {
		return nil, err
	}
	correlationTimeHistogram, err := meter.Float64Histogram("bridge.CorrelationSeconds")
	if err != nil {
		return nil, err
	}

	return &BridgeMetrics{
		submissionsStarted:       submissionsStarted,
		submissionsFailed:        submissionsFailed,
		correlations:             correlations,
		correlationTimeHistogram: correlationTimeHistogram,
	}, nil
}

func (m *BridgeMetrics) SubmissionStarted() {
	m.submissionsStarted.Add(context.Background(), 1)
}

// SubmissionFailed records a terminal failure tagged with the stage that
// produced it (execution, correlation or fee payment).
func (m *BridgeMetrics) SubmissionFailed(stage string) {
	m.submissionsFailed.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("stage", stage),
	))
}

// RequestCorrelated records one matched bridging request and the latency
// since its submission started.
func (m *BridgeMetrics) RequestCorrelated(start time.Time) {
	m.correlations.Add(context.Background(), 1)
	m.correlationTimeHistogram.Record(context.Background(), time.Since(start).Seconds())
}
