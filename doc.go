// Package pesel validates and generates PESEL numbers - the 11-digit Polish
// national identification code carrying a birth date, a four-digit serial
// block whose last digit encodes sex, and a checksum digit.
//
// Components:
//   - Parse: decodes an 11-digit candidate string into a fully validated PESEL.
//   - Generate / Generator: encodes (year, month, day, sex) into a valid
//     number. The serial filler is pluggable via SerialSource.
//   - PESEL: the immutable validated value. It cannot hold an inconsistent
//     state, so values may be shared across goroutines without locking.
//
// Century encoding (the month field carries the century as an offset):
//
//	1800-1899: +80 | 1900-1999: +0 | 2000-2099: +20 | 2100-2199: +40 | 2200-2299: +60
//
// Every failure is an ordinary typed result: match with errors.Is against
// ErrLength, ErrNonDigit, ErrMonth, ErrDate, ErrChecksum or ErrYearRange.
// The package never logs and never panics on bad input.
package pesel
