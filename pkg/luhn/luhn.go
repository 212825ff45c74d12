// Package luhn implements the Luhn mod-10 checksum used by payment card numbers.
//
// All functions operate on ASCII digit strings. Counting from the rightmost digit,
// every second digit is doubled and 9 is subtracted from doubled values above 9; a
// number is valid when the sum of all digits is a multiple of 10.
package luhn

import (
	"errors"
	"fmt"
)

// ErrNotDigit is returned when the input contains a byte outside '0'..'9'.
var ErrNotDigit = errors.New("not a decimal digit")

// ErrEmpty is returned for inputs without any digits.
var ErrEmpty = errors.New("no digits")

// Sum returns the Luhn weighted digit sum of digits.
func Sum(digits []byte) (int, error) {
	return sum(digits, false)
}

// Valid reports whether digits, including the trailing check digit, pass the
// Luhn check. Empty or non-numeric input is never valid.
func Valid(digits []byte) bool {
	if len(digits) == 0 {
		return false
	}
	s, err := sum(digits, false)

	return err == nil && s%10 == 0
}

// CheckDigit returns the ASCII check digit that, appended to payload, makes it
// pass the Luhn check.
func CheckDigit(payload []byte) (byte, error) {
	if len(payload) == 0 {
		return 0, ErrEmpty
	}
	// with a check digit still to be appended, the rightmost payload digit is doubled
	s, err := sum(payload, true)
	if err != nil {
		return 0, err
	}

	return byte('0' + (10-s%10)%10), nil
}

// sum walks digits right to left. doubleFirst selects whether the rightmost
// digit is doubled.
func sum(digits []byte, doubleFirst bool) (int, error) {
	total := 0
	double := doubleFirst
	for i := len(digits) - 1; i >= 0; i-- {
		c := digits[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("offset %d: %w", i, ErrNotDigit)
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		total += d
		double = !double
	}

	return total, nil
}
