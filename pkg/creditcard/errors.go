package creditcard

import (
	"errors"
	"fmt"
)

// Reason is a sentinel identifying which validation step rejected an input.
// Reasons are compared by identity and are the targets for errors.Is.
type Reason struct {
	code string
	msg  string
}

func (r *Reason) Error() string { return r.msg }

// Code returns the stable snake_case identifier of the reason, e.g. "too_short".
func (r *Reason) Code() string { return r.code }

// Rejection reasons returned by Parse, in the order the checks run.
var (
	// ErrInvalidFormat means the input holds a character that is neither a digit nor a separator.
	ErrInvalidFormat = &Reason{code: "invalid_format", msg: "invalid card number format"}
	// ErrTooShort means the input holds fewer than MinDigits digits.
	ErrTooShort = &Reason{code: "too_short", msg: "card number too short"}
	// ErrTooLong means the input holds more than MaxDigits digits.
	ErrTooLong = &Reason{code: "too_long", msg: "card number too long"}
	// ErrInvalidChecksum means the digits fail the Luhn check.
	ErrInvalidChecksum = &Reason{code: "invalid_checksum", msg: "card number fails luhn checksum"}
)

// ParseError describes a rejected input without echoing its digits.
//
// Offset is the byte offset of the offending character for ErrInvalidFormat and -1
// otherwise. Digits is the number of digits seen before the check failed.
type ParseError struct {
	Reason *Reason
	Offset int
	Digits int
}

func (e *ParseError) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.Reason == ErrInvalidFormat && e.Offset >= 0:
		return fmt.Sprintf("%s: unexpected character at offset %d", e.Reason, e.Offset)
	case e.Reason == ErrTooShort || e.Reason == ErrTooLong:
		return fmt.Sprintf("%s: %d digits, want %d to %d", e.Reason, e.Digits, MinDigits, MaxDigits)
	default:
		return e.Reason.Error()
	}
}

// Unwrap returns the reason so errors.Is(err, ErrTooShort) and friends work.
func (e *ParseError) Unwrap() error {
	if e == nil || e.Reason == nil {
		return nil
	}

	return e.Reason
}

// ReasonOf returns the rejection reason carried anywhere in err's chain, or nil.
func ReasonOf(err error) *Reason {
	var r *Reason
	if errors.As(err, &r) {
		return r
	}

	return nil
}

func reject(r *Reason, offset, digits int) *ParseError {
	return &ParseError{Reason: r, Offset: offset, Digits: digits}
}
