package cnp

import "errors"

// Sentinel errors for each validation stage. Check wraps exactly one of them.
var (
	ErrFormat     = errors.New("cnp must be 13 decimal digits")
	ErrSexCentury = errors.New("invalid sex/century digit")
	ErrBirthDate  = errors.New("invalid birth date")
	ErrCounty     = errors.New("invalid county code")
	ErrChecksum   = errors.New("control digit mismatch")
)

// Outcome labels. Kept low-cardinality so they can be used as metric labels.
const (
	ReasonValid      = "valid"
	ReasonFormat     = "format"
	ReasonSexCentury = "sex_century"
	ReasonBirthDate  = "birth_date"
	ReasonCounty     = "county"
	ReasonChecksum   = "checksum"
	ReasonUnknown    = "unknown"
)

// Reason maps the result of Check to a stable outcome label.
func Reason(err error) string {
	switch {
	case err == nil:
		return ReasonValid
	case errors.Is(err, ErrFormat):
		return ReasonFormat
	case errors.Is(err, ErrSexCentury):
		return ReasonSexCentury
	case errors.Is(err, ErrBirthDate):
		return ReasonBirthDate
	case errors.Is(err, ErrCounty):
		return ReasonCounty
	case errors.Is(err, ErrChecksum):
		return ReasonChecksum
	default:
		return ReasonUnknown
	}
}
