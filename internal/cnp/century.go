package cnp

// Century is the span of birth years a sex/century digit admits.
type Century struct {
	From int
	To   int
}

// centuries is indexed by the sex/century digit. Index 0 is unused: 0 is not a
// valid leading digit. Digits 7-9 are issued to residents and foreigners and
// carry no century of their own, so they admit the whole 1800-2099 span.
var centuries = [10]Century{
	1: {From: 1900, To: 1999},
	2: {From: 1900, To: 1999},
	3: {From: 1800, To: 1899},
	4: {From: 1800, To: 1899},
	5: {From: 2000, To: 2099},
	6: {From: 2000, To: 2099},
	7: {From: 1800, To: 2099},
	8: {From: 1800, To: 2099},
	9: {From: 1800, To: 2099},
}

// CenturyFor returns the century row for a sex/century digit.
// ok is false for 0 and anything outside 0-9.
func CenturyFor(sex int) (Century, bool) {
	if sex < 1 || sex > 9 {
		return Century{}, false
	}
	return centuries[sex], true
}

// Contains reports whether year falls within the span, inclusive.
func (c Century) Contains(year int) bool {
	return year >= c.From && year <= c.To
}
