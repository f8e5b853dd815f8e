package cnp

// weights are applied positionally to the first 12 digits.
var weights = [Length - 1]int{2, 7, 9, 1, 4, 6, 3, 5, 8, 2, 7, 9}

// ControlDigit computes the expected control digit from the first 12 digits.
// A remainder of 10 maps to 1.
func ControlDigit(d Digits) int {
	sum := 0
	for i, w := range weights {
		sum += d[i] * w
	}
	r := sum % 11
	if r == 10 {
		return 1
	}
	return r
}
