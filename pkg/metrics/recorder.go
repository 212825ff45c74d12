package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DefaultMeterName is the instrumentation scope used when New is given no name.
const DefaultMeterName = "creditcard"

// Instrument names.
const (
	OutcomesName = "creditcard.parse.outcomes"
	DurationName = "creditcard.parse.duration"
)

// OTelRecorder is a Recorder backed by OpenTelemetry instruments.
type OTelRecorder struct {
	outcomes metric.Int64Counter
	duration metric.Float64Histogram
}

// New creates the parse instruments on a meter named name from mp.
func New(mp metric.MeterProvider, name string) (*OTelRecorder, error) {
	if name == "" {
		name = DefaultMeterName
	}
	meter := mp.Meter(name)

	outcomes, err := meter.Int64Counter(OutcomesName,
		metric.WithDescription("Card numbers validated, by outcome and kind."),
		metric.WithUnit("{input}"),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create %s counter: %w", OutcomesName, err)
	}

	duration, err := meter.Float64Histogram(DurationName,
		metric.WithDescription("Time spent validating a card number."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create %s histogram: %w", DurationName, err)
	}

	return &OTelRecorder{outcomes: outcomes, duration: duration}, nil
}

// RecordParse implements Recorder.
func (r *OTelRecorder) RecordParse(ctx context.Context, outcome, kind string, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String(AttrOutcome, outcome),
		attribute.String(AttrKind, kind),
	)
	r.outcomes.Add(ctx, 1, attrs)
	r.duration.Record(ctx, elapsed.Seconds(), attrs)
}

type nopRecorder struct{}

func (nopRecorder) RecordParse(context.Context, string, string, time.Duration) {}

// Nop returns a Recorder that discards everything.
func Nop() Recorder { return nopRecorder{} }
