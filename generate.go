package pesel

import (
	"crypto/rand"
	"encoding/binary"
)

// SerialSource supplies the four filler digits (positions 7-10) as a value
// in 0-9999. The generator forces the parity of the last digit to match the
// requested sex, so a source only controls uniqueness, never validity.
type SerialSource interface {
	Serial() int
}

// FixedSerial always yields the same filler, for reproducible output.
// Values outside 0-9999 are reduced modulo 10000.
type FixedSerial int

func (f FixedSerial) Serial() int {
	n := int(f) % 10000
	if n < 0 {
		n += 10000
	}
	return n
}

// randomSerial draws from crypto/rand. An entropy failure degrades to
// serial 0 rather than surfacing an error; validity does not depend on
// the draw.
type randomSerial struct{}

func (randomSerial) Serial() int {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0
	}
	return int(binary.BigEndian.Uint64(b[:]) % 10000)
}

// Options tune a Generator. All fields are optional.
type Options struct {
	Serial SerialSource // nil => crypto/rand-backed source
}

// Generator produces valid PESEL numbers for given birth dates.
type Generator struct {
	serial SerialSource
}

// NewGenerator constructs a Generator, applying defaults for unset options.
func NewGenerator(opts Options) *Generator {
	g := &Generator{serial: opts.Serial}
	if g.serial == nil {
		g.serial = randomSerial{}
	}
	return g
}

// Generate encodes the birth date and sex into a full identifier. The
// result round-trips through Parse digit for digit. Failures come back as
// a *GenerateError wrapping ErrYearRange, ErrMonth or ErrDate.
func (g *Generator) Generate(year, month, day int, sex Sex) (PESEL, error) {
	switch {
	case year < minYear || year > maxYear:
		return PESEL{}, &GenerateError{Year: year, Month: month, Day: day, Err: ErrYearRange}
	case month < 1 || month > 12:
		return PESEL{}, &GenerateError{Year: year, Month: month, Day: day, Err: ErrMonth}
	case day < 1 || day > daysIn(year, month):
		return PESEL{}, &GenerateError{Year: year, Month: month, Day: day, Err: ErrDate}
	}

	serial := g.serial.Serial() % 10000
	if serial < 0 {
		serial += 10000
	}
	last := serial % 10
	if wantOdd := sex == Male; (last%2 == 1) != wantOdd {
		last = (last + 1) % 10 // always toggles parity
		serial = serial - serial%10 + last
	}

	var b [peselLength]byte
	put2(b[0:2], year%100)
	put2(b[2:4], month+monthOffset(year))
	put2(b[4:6], day)
	put2(b[6:8], serial/100)
	put2(b[8:10], serial%100)
	b[10] = checkDigit(string(b[:10]))

	return PESEL{
		digits: string(b[:]),
		year:   year,
		month:  month,
		day:    day,
		sex:    sex,
	}, nil
}

// put2 writes n (0-99) as two ASCII digits.
func put2(b []byte, n int) {
	b[0] = byte(n/10) + '0'
	b[1] = byte(n%10) + '0'
}

var defaultGenerator = NewGenerator(Options{})

// Generate encodes (year, month, day, sex) with a crypto/rand-backed
// serial filler. Use a Generator with a custom SerialSource when
// reproducible output is needed.
func Generate(year, month, day int, sex Sex) (PESEL, error) {
	return defaultGenerator.Generate(year, month, day, sex)
}
