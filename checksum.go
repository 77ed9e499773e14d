package pesel

// Positional weights over the first ten digits.
var weights = [...]int{1, 3, 7, 9, 1, 3, 7, 9, 1, 3}

// checkDigit computes the 11th digit for the ten ASCII digits in d.
// The check digit is (10 - weightedSum%10) % 10.
func checkDigit(d string) byte {
	sum := 0
	for i, w := range weights {
		sum += w * int(d[i]-'0')
	}
	return byte((10-sum%10)%10) + '0'
}
