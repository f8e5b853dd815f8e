// Package cnp validates Romanian personal numeric codes (CNP).
//
// Validate is the whole contract: it reports whether a string is a
// structurally and arithmetically valid 13-digit CNP. The reason for a
// rejection is deliberately not exposed. Surrounding whitespace is ignored.
//
// Validate is pure and safe for concurrent use.
package cnp

import "cnpcheck/internal/cnp"

// Validate reports whether candidate is a valid CNP.
func Validate(candidate string) bool {
	return cnp.Check(candidate) == nil
}

// ValidatePtr is Validate for optional values. A nil candidate is invalid.
func ValidatePtr(candidate *string) bool {
	if candidate == nil {
		return false
	}
	return Validate(*candidate)
}
