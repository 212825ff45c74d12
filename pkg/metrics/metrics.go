// Package metrics records card validation outcomes with OpenTelemetry.
//
// Recorder is the seam used by the validator; New builds one from any
// metric.MeterProvider and NewPrometheusMeterProvider exposes the instruments on a
// Prometheus registerer.
package metrics

// DefaultBuckets are the histogram boundaries, in seconds, for parse latency.
// Parsing is bounded by 19 digits so the scale starts well below a millisecond.
var DefaultBuckets = []float64{.000001, .0000025, .000005, .00001, .000025, .00005, .0001, .00025, .0005, .001, .01} //nolint: gochecknoglobals,lll

const (
	// OutcomeAccepted is the outcome recorded for numbers returned to the caller.
	OutcomeAccepted = "accepted"

	// AttrOutcome is the attribute key holding the outcome code.
	AttrOutcome = "outcome"
	// AttrKind is the attribute key holding the card kind code.
	AttrKind = "kind"
)
