package cnp

import "fmt"

// Check runs the validation pipeline and returns nil when candidate is a
// valid CNP. Otherwise it returns an error wrapping the sentinel of the first
// stage that failed. Error text never echoes the date or county of the
// candidate. Stages run in order: format, sex/century, birth date,
// county, checksum.
func Check(candidate string) error {
	d, err := ParseDigits(candidate)
	if err != nil {
		return err
	}

	century, ok := CenturyFor(d.Sex())
	if !ok {
		return ErrSexCentury
	}
	if !validBirthDate(d, century) {
		return ErrBirthDate
	}
	if !validCounty(d) {
		return ErrCounty
	}
	if want := ControlDigit(d); want != d.Control() {
		return fmt.Errorf("%w: expected %d, got %d", ErrChecksum, want, d.Control())
	}
	return nil
}
