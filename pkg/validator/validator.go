// Package validator applies an acceptance policy on top of creditcard.Parse and
// reports every decision to a metrics recorder and the context logger.
package validator

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"creditcard/pkg/config"
	"creditcard/pkg/creditcard"
	"creditcard/pkg/logger"
	"creditcard/pkg/metrics"
)

// Policy errors. Parse errors are returned unchanged and match the creditcard sentinels.
var (
	// ErrUnknownKind is returned for valid numbers of an unrecognised network when
	// the policy rejects them.
	ErrUnknownKind = errors.New("card network not recognised")
	// ErrKindNotAllowed is returned for numbers whose network is not in the allow list.
	ErrKindNotAllowed = errors.New("card network not accepted")
)

// Outcome codes recorded for policy rejections. Parse rejections use the
// creditcard.Reason code.
const (
	OutcomeUnknownKind    = "unknown_kind"
	OutcomeKindNotAllowed = "kind_not_allowed"
)

// Policy decides which parsed numbers are accepted.
type Policy struct {
	// RejectUnknown refuses numbers classified as creditcard.KindUnknown.
	RejectUnknown bool
	// AllowedKinds restricts accepted networks. Empty accepts every network.
	// KindUnknown is governed by RejectUnknown alone.
	AllowedKinds []creditcard.Kind
}

// Options configure a Validator.
type Options struct {
	Policy Policy
	// Recorder receives one call per Validate. Nil disables recording.
	Recorder metrics.Recorder
}

// NewOptions builds the policy part of Options from configuration.
func NewOptions(cfg *config.Config) (Options, error) {
	policy := Policy{RejectUnknown: cfg.Validation.RejectUnknown}
	for _, code := range cfg.Validation.AllowedKinds {
		k, err := creditcard.ParseKind(code)
		if err != nil {
			return Options{}, fmt.Errorf("invalid validation.allowedKinds: %w", err)
		}
		if !slices.Contains(policy.AllowedKinds, k) {
			policy.AllowedKinds = append(policy.AllowedKinds, k)
		}
	}

	return Options{Policy: policy}, nil
}

// NewFromConfig builds a Validator from cfg, recording on a meter from mp unless
// metrics are disabled or mp is nil.
func NewFromConfig(cfg *config.Config, mp metric.MeterProvider) (*Validator, error) {
	opts, err := NewOptions(cfg)
	if err != nil {
		return nil, err
	}

	if !cfg.Metrics.Disabled && mp != nil {
		rec, err := metrics.New(mp, cfg.Metrics.MeterName)
		if err != nil {
			return nil, fmt.Errorf("could not create recorder: %w", err)
		}
		opts.Recorder = rec
	}

	return New(opts), nil
}

// Validator parses card numbers and enforces a Policy. It is safe for concurrent use.
type Validator struct {
	policy   Policy
	recorder metrics.Recorder
}

// New creates a Validator. The policy is copied.
func New(opts Options) *Validator {
	recorder := opts.Recorder
	if recorder == nil {
		recorder = metrics.Nop()
	}

	return &Validator{
		policy: Policy{
			RejectUnknown: opts.Policy.RejectUnknown,
			AllowedKinds:  slices.Clone(opts.Policy.AllowedKinds),
		},
		recorder: recorder,
	}
}

// Validate parses input and applies the policy. Rejections are logged at debug
// level without the card digits.
func (v *Validator) Validate(ctx context.Context, input string) (creditcard.CreditCard, error) {
	start := time.Now()
	card, err := creditcard.Parse(input)
	if err == nil {
		err = v.check(card)
	}
	elapsed := time.Since(start)

	if err != nil {
		outcome := outcomeOf(err)
		kind := ""
		if !card.IsZero() {
			kind = card.Kind().Code()
		}
		v.recorder.RecordParse(ctx, outcome, kind, elapsed)
		logger.Debug(ctx, "card number rejected",
			zap.String("reason", outcome),
			zap.String("kind", kind),
			zap.Int("digits", digitsOf(err, card)),
		)

		return creditcard.CreditCard{}, err
	}

	v.recorder.RecordParse(ctx, metrics.OutcomeAccepted, card.Kind().Code(), elapsed)

	return card, nil
}

// Accepts reports whether the policy admits kind.
func (v *Validator) Accepts(kind creditcard.Kind) bool {
	return v.admits(kind)
}

func (v *Validator) check(card creditcard.CreditCard) error {
	if card.IsZero() {
		return nil
	}
	if !v.admits(card.Kind()) {
		if card.Kind() == creditcard.KindUnknown && v.policy.RejectUnknown {
			return ErrUnknownKind
		}

		return fmt.Errorf("%s: %w", card.Kind(), ErrKindNotAllowed)
	}

	return nil
}

func (v *Validator) admits(kind creditcard.Kind) bool {
	if kind == creditcard.KindUnknown {
		return !v.policy.RejectUnknown
	}

	return len(v.policy.AllowedKinds) == 0 || slices.Contains(v.policy.AllowedKinds, kind)
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, ErrUnknownKind):
		return OutcomeUnknownKind
	case errors.Is(err, ErrKindNotAllowed):
		return OutcomeKindNotAllowed
	}
	if r := creditcard.ReasonOf(err); r != nil {
		return r.Code()
	}

	return "error"
}

func digitsOf(err error, card creditcard.CreditCard) int {
	var perr *creditcard.ParseError
	if errors.As(err, &perr) {
		return perr.Digits
	}

	return card.Len()
}
