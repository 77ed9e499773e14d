package pesel

import "fmt"

const peselLength = 11

// Sex is carried by the parity of the tenth digit: odd means male, even
// means female.
type Sex uint8

const (
	Female Sex = iota
	Male
)

func (s Sex) String() string {
	if s == Male {
		return "male"
	}
	return "female"
}

// PESEL is a validated identification number. The digit string is always
// the canonical encoding of (year, month, day, sex) plus the correct check
// digit; there is no mutation API, so a constructed value stays consistent
// for its lifetime and may be shared across goroutines.
//
// The zero value is not a valid number. Construct via Parse, MustParse or
// Generate.
type PESEL struct {
	digits string // 11 ASCII digits
	year   int
	month  int
	day    int
	sex    Sex
}

// Parse decodes and validates s. Checks run in a fixed order and the first
// failure wins: length, digits only, century/month resolution, day
// validity, checksum. Failures come back as a *ParseError wrapping one of
// the parse sentinels.
func Parse(s string) (PESEL, error) {
	if len(s) != peselLength {
		return PESEL{}, &ParseError{Input: s, Err: ErrLength}
	}
	for i := 0; i < peselLength; i++ {
		if s[i] < '0' || s[i] > '9' {
			return PESEL{}, &ParseError{Input: s, Err: ErrNonDigit}
		}
	}

	yy := digits2(s, 0)
	mm := digits2(s, 2)
	dd := digits2(s, 4)

	base, month, ok := resolveCentury(mm)
	if !ok {
		return PESEL{}, &ParseError{Input: s, Err: ErrMonth}
	}
	year := base + yy
	if dd < 1 || dd > daysIn(year, month) {
		return PESEL{}, &ParseError{Input: s, Err: ErrDate}
	}
	if checkDigit(s) != s[10] {
		return PESEL{}, &ParseError{Input: s, Err: ErrChecksum}
	}

	sex := Female
	if (s[9]-'0')%2 == 1 {
		sex = Male
	}
	return PESEL{digits: s, year: year, month: month, day: dd, sex: sex}, nil
}

// MustParse is like Parse but panics on invalid input.
// Handy for literals in tests and package-level variables; not for
// untrusted data.
func MustParse(s string) PESEL {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the canonical 11-digit form, no separators. This is the
// only serialization; the zero value returns "".
func (p PESEL) String() string { return p.digits }

func (p PESEL) Year() int  { return p.year }
func (p PESEL) Month() int { return p.month }
func (p PESEL) Day() int   { return p.day }
func (p PESEL) Sex() Sex   { return p.sex }

// BirthDate returns the decoded calendar date components.
func (p PESEL) BirthDate() (year, month, day int) {
	return p.year, p.month, p.day
}

// BirthDateString formats the birth date as YYYY-MM-DD.
func (p PESEL) BirthDateString() string {
	return fmt.Sprintf("%04d-%02d-%02d", p.year, p.month, p.day)
}

// digits2 reads s[i:i+2] as a two-digit integer.
func digits2(s string, i int) int {
	return int(s[i]-'0')*10 + int(s[i+1]-'0')
}
