package pesel

import (
	"errors"
	"fmt"
)

// Sentinels matched with errors.Is. Parse and Generate wrap them in
// *ParseError / *GenerateError so callers see which check failed.
var (
	ErrLength    = errors.New("pesel: length must be exactly 11 digits")
	ErrNonDigit  = errors.New("pesel: only decimal digits allowed")
	ErrMonth     = errors.New("pesel: month out of range")
	ErrDate      = errors.New("pesel: no such calendar date")
	ErrChecksum  = errors.New("pesel: checksum mismatch")
	ErrYearRange = errors.New("pesel: year outside 1800-2299")
)

// ParseError reports why an input string is not a valid PESEL.
// Err is one of ErrLength, ErrNonDigit, ErrMonth, ErrDate, ErrChecksum.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// GenerateError reports a birth date that cannot be encoded.
// Err is one of ErrYearRange, ErrMonth, ErrDate.
type GenerateError struct {
	Year  int
	Month int
	Day   int
	Err   error
}

func (e *GenerateError) Error() string {
	return fmt.Sprintf("generate for %04d-%02d-%02d: %v", e.Year, e.Month, e.Day, e.Err)
}

func (e *GenerateError) Unwrap() error { return e.Err }
