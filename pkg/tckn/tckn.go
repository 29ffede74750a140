// Package tckn generates and validates 11-digit national identity numbers
// that satisfy the two check-digit rules used by Turkish identity numbers.
//
// A number d0 d1 ... d10 is valid when:
//   - it is exactly 11 ASCII digits and d0 is not zero
//   - d9  = (7*(d0+d2+d4+d6+d8) - (d1+d3+d5+d7)) mod 10
//   - d10 = (d0+d1+...+d9) mod 10
//
// The modulo is floored, so the first check digit is always in [0,9] even
// when the intermediate value is negative.
//
// Generated numbers are syntactically valid only; they are not tied to real
// people and must not be used as real identity documents.
package tckn

import (
	"errors"
)

// Length is the number of digits in an identity number.
const Length = 11

// Reasons returned by Check. Each one names the first rule a candidate broke.
var (
	// ErrLength indicates the candidate is not exactly Length characters long.
	ErrLength = errors.New("identity number must be 11 digits long")
	// ErrNotDigit indicates the candidate contains a character outside '0'-'9'.
	ErrNotDigit = errors.New("identity number must contain only digits")
	// ErrLeadingZero indicates the first digit is zero.
	ErrLeadingZero = errors.New("identity number must not start with zero")
	// ErrSecondCheckDigit indicates d10 does not match the sum of d0..d9.
	ErrSecondCheckDigit = errors.New("identity number second check digit mismatch")
	// ErrFirstCheckDigit indicates d9 does not match the weighted odd/even sums.
	ErrFirstCheckDigit = errors.New("identity number first check digit mismatch")
)

// mod10 is a floored modulo by 10. Go's % truncates toward zero, so a negative
// dividend would otherwise produce a negative digit.
func mod10(x int) int {
	return ((x % 10) + 10) % 10
}

// checkDigits derives d9 and d10 from the nine free digits.
func checkDigits(d *[Length]int) (int, int) {
	odd := d[0] + d[2] + d[4] + d[6] + d[8]
	even := d[1] + d[3] + d[5] + d[7]
	d9 := mod10(odd*7 - even)

	sum := d9
	for i := range 9 {
		sum += d[i]
	}

	return d9, mod10(sum)
}

// parse converts s into digits, checking only the character-level rules.
func parse(s string, n int) (*[Length]int, error) {
	if len(s) != n {
		return nil, ErrLength
	}

	var d [Length]int
	for i := range n {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, ErrNotDigit
		}
		d[i] = int(c - '0')
	}
	if d[0] == 0 {
		return nil, ErrLeadingZero
	}

	return &d, nil
}

// Check reports why candidate is not a valid identity number, or nil if it is.
// It never panics on arbitrary input.
func Check(candidate string) error {
	d, err := parse(candidate, Length)
	if err != nil {
		return err
	}

	// the sum rule uses the candidate's own d9, not the derived one
	sum := 0
	for i := range 10 {
		sum += d[i]
	}
	if mod10(sum) != d[10] {
		return ErrSecondCheckDigit
	}
	if d9, _ := checkDigits(d); d9 != d[9] {
		return ErrFirstCheckDigit
	}

	return nil
}

// Validate reports whether candidate is a valid identity number.
func Validate(candidate string) bool {
	return Check(candidate) == nil
}

// Complete appends the two check digits to a 9-digit prefix and returns the
// full identity number. The prefix must be nine ASCII digits with a non-zero
// first digit.
func Complete(prefix string) (string, error) {
	d, err := parse(prefix, Length-2)
	if err != nil {
		if errors.Is(err, ErrLength) {
			return "", errors.New("identity number prefix must be 9 digits long")
		}

		return "", err
	}

	return format(d), nil
}

// format fills in the check digits of d and renders all eleven digits.
func format(d *[Length]int) string {
	d[9], d[10] = checkDigits(d)

	var b [Length]byte
	for i := range Length {
		b[i] = byte('0' + d[i])
	}

	return string(b[:])
}
