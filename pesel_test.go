package pesel

import (
	"errors"
	"strings"
	"testing"
)

// 1944-05-14, male; the classic documented example number.
const knownValid = "44051401458"

func mustParse(t *testing.T, s string) PESEL {
	t.Helper()
	p, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q): %v", s, err)
	}
	return p
}

// parseErrIs asserts that Parse fails with the given sentinel wrapped in a
// *ParseError carrying the input.
func parseErrIs(t *testing.T, input string, want error) {
	t.Helper()
	_, err := Parse(input)
	if err == nil {
		t.Fatalf("Parse(%q): expected error, got none", input)
	}
	if !errors.Is(err, want) {
		t.Fatalf("Parse(%q): got %v, want %v", input, err, want)
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("Parse(%q): error is %T, want *ParseError", input, err)
	}
	if pe.Input != input {
		t.Fatalf("ParseError.Input = %q, want %q", pe.Input, input)
	}
}

func TestParseKnownNumber(t *testing.T) {
	p := mustParse(t, knownValid)

	if got := p.String(); got != knownValid {
		t.Fatalf("String() = %q, want %q", got, knownValid)
	}
	if y, m, d := p.BirthDate(); y != 1944 || m != 5 || d != 14 {
		t.Fatalf("BirthDate() = %d-%d-%d, want 1944-5-14", y, m, d)
	}
	if p.Sex() != Male {
		t.Fatalf("Sex() = %v, want male", p.Sex())
	}
	if got := p.BirthDateString(); got != "1944-05-14" {
		t.Fatalf("BirthDateString() = %q, want 1944-05-14", got)
	}
}

func TestParseRejectsLength(t *testing.T) {
	for _, in := range []string{
		"",
		"4",
		"4405140145",    // 10
		"440514014588",  // 12
		"44051401458 ",  // trailing space pushes length to 12
		strings.Repeat("4", 22),
	} {
		parseErrIs(t, in, ErrLength)
	}
}

func TestParseRejectsNonDigit(t *testing.T) {
	for _, in := range []string{
		"4405140145a",
		"a4051401458",
		"44051 01458",
		"4405140145 ",
		"-4051401458",
		"440514O1458", // letter O, not zero
	} {
		parseErrIs(t, in, ErrNonDigit)
	}
}

func TestParseRejectsUnresolvableMonth(t *testing.T) {
	// No century offset brings these month fields into 1-12.
	for _, in := range []string{
		"44001401458", // 00
		"44131401458", // 13
		"44191401458", // 19
		"44331401458", // 33
		"44531401458", // 53
		"44731401458", // 73
		"44951201458", // 95
		"44991401458", // 99
	} {
		parseErrIs(t, in, ErrMonth)
	}
}

func TestParseRejectsImpossibleDate(t *testing.T) {
	for _, in := range []string{
		"44050001458", // day 00
		"44053201458", // day 32
		"44043101458", // 31 April
		"44063101458", // 31 June
		"44023001458", // 30 February
		"45022901458", // 29 Feb 1945, not a leap year
		"00022901458", // 29 Feb 1900, century not divisible by 400
	} {
		parseErrIs(t, in, ErrDate)
	}
}

func TestParseAcceptsLeapDay(t *testing.T) {
	// 29 Feb 1944 (leap) and 29 Feb 2000 (divisible by 400).
	for _, tc := range []struct {
		year int
		sex  Sex
	}{
		{1944, Male},
		{2000, Female},
	} {
		g, err := NewGenerator(Options{Serial: FixedSerial(123)}).Generate(tc.year, 2, 29, tc.sex)
		if err != nil {
			t.Fatalf("Generate(%d-02-29): %v", tc.year, err)
		}
		p := mustParse(t, g.String())
		if p.Year() != tc.year || p.Month() != 2 || p.Day() != 29 {
			t.Fatalf("round trip of %d-02-29 gave %s", tc.year, p.BirthDateString())
		}
	}
}

func TestParseRejectsChecksumMismatch(t *testing.T) {
	parseErrIs(t, "44051401459", ErrChecksum)

	// Flipping a serial or check digit leaves the date fields intact, so the
	// failure must land on the checksum check.
	for pos := 6; pos < 11; pos++ {
		b := []byte(knownValid)
		b[pos] = '0' + (b[pos]-'0'+1)%10
		parseErrIs(t, string(b), ErrChecksum)
	}
}

// TestParseSingleDigitFlipsAlwaysFail covers every single-digit substitution
// of a valid number. Positions that survive the date checks must trip the
// checksum (all weights are coprime to 10); earlier positions may fail the
// month or day check instead, which is still a rejection.
func TestParseSingleDigitFlipsAlwaysFail(t *testing.T) {
	for pos := 0; pos < 11; pos++ {
		for r := byte('0'); r <= '9'; r++ {
			if r == knownValid[pos] {
				continue
			}
			b := []byte(knownValid)
			b[pos] = r
			if _, err := Parse(string(b)); err == nil {
				t.Fatalf("Parse accepted %q (flip of %q at %d)", b, knownValid, pos)
			}
		}
	}
}

func TestParseSexFromTenthDigitParity(t *testing.T) {
	// 44051401458 has serial digit 5 at index 9: odd, male. Flipping it to
	// an even digit needs a fresh checksum; build via Generate instead.
	female, err := NewGenerator(Options{Serial: FixedSerial(140)}).Generate(1944, 5, 14, Female)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	p := mustParse(t, female.String())
	if p.Sex() != Female {
		t.Fatalf("Sex() = %v, want female", p.Sex())
	}
	if d := p.String()[9]; (d-'0')%2 != 0 {
		t.Fatalf("tenth digit %c is odd for a female number", d)
	}
}

func TestMustParsePanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("MustParse did not panic on invalid input")
		}
	}()
	MustParse("not-a-pesel")
}

func TestZeroValueIsEmpty(t *testing.T) {
	var p PESEL
	if p.String() != "" {
		t.Fatalf("zero value String() = %q, want empty", p.String())
	}
}
