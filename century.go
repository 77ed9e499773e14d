package pesel

const (
	minYear = 1800
	maxYear = 2299
)

// Century buckets and their month-field offsets. The encoded ranges are
// disjoint (1-12, 21-32, 41-52, 61-72, 81-92), so the reverse lookup has at
// most one match for any month field.
type centuryBucket struct {
	base   int // first year of the 100-year block
	offset int // addend applied to the month field
}

var centuries = [...]centuryBucket{
	{1800, 80},
	{1900, 0},
	{2000, 20},
	{2100, 40},
	{2200, 60},
}

// monthOffset returns the offset for year's bucket.
// Callers validate minYear <= year <= maxYear first.
func monthOffset(year int) int {
	return centuries[(year-minYear)/100].offset
}

// resolveCentury maps an encoded month field back to its bucket base year
// and calendar month. ok is false when no bucket brings the field into 1-12.
func resolveCentury(encodedMonth int) (base, month int, ok bool) {
	for _, c := range centuries {
		if m := encodedMonth - c.offset; m >= 1 && m <= 12 {
			return c.base, m, true
		}
	}
	return 0, 0, false
}

// isLeap implements the Gregorian rule: every fourth year, except centuries
// not divisible by 400.
func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

var monthDays = [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// daysIn returns the day count of (year, month); month must be 1-12.
func daysIn(year, month int) int {
	if month == 2 && isLeap(year) {
		return 29
	}
	return monthDays[month-1]
}
