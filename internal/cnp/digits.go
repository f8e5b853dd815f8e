package cnp

import (
	"fmt"
	"strings"
)

// Length is the number of digits in a CNP.
const Length = 13

// Digits is a CNP decomposed into its 13 decimal digits, leading zeros kept.
type Digits [Length]int

// Positions within Digits. The sequence number at 9-11 is never read.
const (
	posSexCentury = 0
	posYear       = 1
	posMonth      = 3
	posDay        = 5
	posCounty     = 7
	posControl    = 12
)

// ParseDigits trims surrounding whitespace and decomposes the candidate into
// digits. Only ASCII '0'-'9' are accepted; any other rune, including other
// Unicode decimal digits and interior whitespace, fails with ErrFormat.
func ParseDigits(candidate string) (Digits, error) {
	var d Digits

	trimmed := strings.TrimSpace(candidate)
	if len(trimmed) != Length {
		return d, fmt.Errorf("%w: got %d bytes", ErrFormat, len(trimmed))
	}
	for i := 0; i < Length; i++ {
		c := trimmed[i]
		if c < '0' || c > '9' {
			return d, fmt.Errorf("%w: non-digit at position %d", ErrFormat, i)
		}
		d[i] = int(c - '0')
	}
	return d, nil
}

// pair reads two consecutive digits as a decimal number.
func (d Digits) pair(pos int) int {
	return 10*d[pos] + d[pos+1]
}

// Sex returns the sex/century digit.
func (d Digits) Sex() int {
	return d[posSexCentury]
}

// Control returns the control digit.
func (d Digits) Control() int {
	return d[posControl]
}
