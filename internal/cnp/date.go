package cnp

// birthDate is the calendar triple embedded in a CNP.
type birthDate struct {
	year, month, day int
}

// birthDateOf reconstructs the embedded date. The year is anchored on the
// lower bound of the century row.
func birthDateOf(d Digits, c Century) birthDate {
	return birthDate{
		year:  c.From + d.pair(posYear),
		month: d.pair(posMonth),
		day:   d.pair(posDay),
	}
}

// valid reports whether the triple is a real Gregorian date.
func (b birthDate) valid() bool {
	if b.month < 1 || b.month > 12 {
		return false
	}
	return b.day >= 1 && b.day <= daysIn(b.year, b.month)
}

var monthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// daysIn returns the number of days in month (1-12) of year.
func daysIn(year, month int) int {
	if month == 2 && isLeap(year) {
		return 29
	}
	return monthDays[month]
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// validBirthDate checks the embedded date against the century row.
func validBirthDate(d Digits, c Century) bool {
	b := birthDateOf(d, c)
	return c.Contains(b.year) && b.valid()
}
