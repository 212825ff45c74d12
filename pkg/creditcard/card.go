package creditcard

import (
	"math"
	"strconv"

	"creditcard/pkg/luhn"
)

const (
	// MinDigits is the shortest card number accepted by Parse.
	MinDigits = 12
	// MaxDigits is the longest card number accepted by Parse.
	MaxDigits = 19
)

// CreditCard is a validated card number and its classification.
//
// A non-zero CreditCard has passed format, length and Luhn validation. Values are
// immutable and comparable with ==.
type CreditCard struct {
	pan    uint64
	digits uint8
	kind   Kind
}

// Parse validates input as a card number and classifies it.
//
// Spaces and dashes are treated as cosmetic separators and stripped before the
// digits are counted. Checks run in order (format, length, checksum) and the first
// failure is returned as a *ParseError wrapping one of ErrInvalidFormat, ErrTooShort,
// ErrTooLong or ErrInvalidChecksum. A number that passes every check but matches no
// prefix rule is returned with KindUnknown.
func Parse(input string) (CreditCard, error) {
	var buf [MaxDigits]byte
	n := 0
	for i := 0; i < len(input); i++ {
		c := input[i]
		switch {
		case c >= '0' && c <= '9':
			if n < MaxDigits {
				buf[n] = c
			}
			n++
		case isSeparator(c):
		default:
			return CreditCard{}, reject(ErrInvalidFormat, i, n)
		}
	}

	if n < MinDigits {
		return CreditCard{}, reject(ErrTooShort, -1, n)
	}
	if n > MaxDigits {
		return CreditCard{}, reject(ErrTooLong, -1, n)
	}

	digits := buf[:n]
	pan, ok := toUint64(digits)
	if !ok {
		return CreditCard{}, reject(ErrTooLong, -1, n)
	}

	if !luhn.Valid(digits) {
		return CreditCard{}, reject(ErrInvalidChecksum, -1, n)
	}

	return CreditCard{
		pan:    pan,
		digits: uint8(n),
		kind:   classify(iin(digits), n),
	}, nil
}

// MustParse is like Parse but panics on error. It is meant for constants and tests.
func MustParse(input string) CreditCard {
	card, err := Parse(input)
	if err != nil {
		panic(err)
	}

	return card
}

// Classify returns the kind for a string of digits without validating the
// checksum. Inputs that are not 12 to 19 plain digits are KindUnknown.
func Classify(digits string) Kind {
	n := len(digits)
	if n < MinDigits || n > MaxDigits {
		return KindUnknown
	}
	for i := 0; i < n; i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return KindUnknown
		}
	}

	return classify(iin([]byte(digits)), n)
}

func isSeparator(c byte) bool {
	return c == ' ' || c == '-'
}

func toUint64(digits []byte) (uint64, bool) {
	var v uint64
	for _, c := range digits {
		d := uint64(c - '0')
		if v > (math.MaxUint64-d)/10 {
			return 0, false
		}
		v = v*10 + d
	}

	return v, true
}

// iin returns the leading iinDigits digits as a number. digits holds at least MinDigits.
func iin(digits []byte) uint32 {
	var v uint32
	for _, c := range digits[:iinDigits] {
		v = v*10 + uint32(c-'0')
	}

	return v
}

// PAN returns the numeric value of the card number.
func (c CreditCard) PAN() uint64 { return c.pan }

// Kind returns the issuing network of the card.
func (c CreditCard) Kind() Kind { return c.kind }

// Len returns the number of digits of the card number, leading zeros included.
func (c CreditCard) Len() int { return int(c.digits) }

// IsZero reports whether c is the zero value, i.e. not obtained from Parse.
func (c CreditCard) IsZero() bool { return c.digits == 0 }

// Equal reports whether c and other hold the same number.
func (c CreditCard) Equal(other CreditCard) bool { return c == other }

// String returns the card number as plain digits, without masking.
// Callers that display or log numbers must mask them first.
func (c CreditCard) String() string {
	if c.IsZero() {
		return ""
	}

	return string(c.appendDigits(make([]byte, 0, MaxDigits)))
}

func (c CreditCard) appendDigits(dst []byte) []byte {
	s := strconv.FormatUint(c.pan, 10)
	for i := len(s); i < int(c.digits); i++ {
		dst = append(dst, '0')
	}

	return append(dst, s...)
}

// MarshalText implements encoding.TextMarshaler.
func (c CreditCard) MarshalText() ([]byte, error) {
	if c.IsZero() {
		return []byte{}, nil
	}

	return c.appendDigits(nil), nil
}

// UnmarshalText implements encoding.TextUnmarshaler by parsing text.
func (c *CreditCard) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = parsed

	return nil
}
