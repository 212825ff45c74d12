package metrics

import (
	"context"
	"time"
)

// Recorder receives one call per validated input.
//
// outcome is OutcomeAccepted or a rejection code such as "invalid_checksum"; kind
// is the card kind code, or "" when the input was rejected before classification.
//
//go:generate mockgen -package mockmetrics -source=interface.go -destination=mock/mockmetrics.go *
type Recorder interface {
	RecordParse(ctx context.Context, outcome, kind string, elapsed time.Duration)
}
