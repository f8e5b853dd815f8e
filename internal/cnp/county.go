package cnp

// MaxCounty is the highest county code in use. 01-40 are counties, 41-46 the
// Bucharest sectors, 51 and 52 Călărași and Giurgiu. Codes in between are not
// rejected individually.
const MaxCounty = 52

func validCounty(d Digits) bool {
	return d.pair(posCounty) <= MaxCounty
}
