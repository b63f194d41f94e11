// Package strutil prepares user and save-file input for number parsers.
package strutil

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// PosError is a parsing error at a known position of the input.
type PosError struct {
	Pos int
	Err string
}

// NewPosError returns a PosError for the given position.
func NewPosError(err string, pos int) *PosError {
	return &PosError{Err: err, Pos: pos}
}

func (pe PosError) Error() string {
	return pe.Err + fmt.Sprintf(" at pos %d", pe.Pos)
}

// AddOffset shifts the position of a PosError inside err by offset.
// Other errors are returned as is.
func AddOffset(err error, offset int) error {
	var pe *PosError
	if !errors.As(err, &pe) { // try to locate error position.
		return err
	}
	pe.Pos += offset
	return pe
}

// Prepare cleans the string from ",-,+ symbols, and spaces, and converts it to lower case.
// offset is the number of bytes removed from the beginning of s.
func Prepare(s string) (prepared string, offset int, neg bool) {
	if len(s) == 0 {
		return "", 0, false
	}
	if s[0] == '"' {
		s = s[1:]
		offset++
	}
	if len(s) > 0 && s[len(s)-1] == '"' {
		s = s[:len(s)-1]
	}
	if trimmed := strings.TrimLeftFunc(s, unicode.IsSpace); len(trimmed) != len(s) {
		offset += len(s) - len(trimmed)
		s = trimmed
	}
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	if len(s) == 0 {
		return "", offset, false
	}
	switch s[0] {
	case '-':
		neg = true
		offset++
		s = s[1:]
	case '+':
		offset++
		s = s[1:]
	}
	return strings.ToLower(s), offset, neg
}

// SplitExp splits "<mantissa>e<exponent>" into its parts.
// ok is false if s contains no 'e', or more than one.
// pos is the index of 'e' in s.
func SplitExp(s string) (mant, exp string, pos int, ok bool) {
	pos = strings.IndexByte(s, 'e')
	if pos < 0 || strings.IndexByte(s[pos+1:], 'e') >= 0 {
		return "", "", -1, false
	}
	return s[:pos], s[pos+1:], pos, true
}

// SplitHash splits hash notation "e<layer>#<magnitude>" into its parts.
// pos is the index of '#' in s.
func SplitHash(s string) (layer, mag string, pos int, ok bool) {
	if len(s) == 0 || s[0] != 'e' {
		return "", "", -1, false
	}
	pos = strings.IndexByte(s, '#')
	if pos < 0 {
		return "", "", -1, false
	}
	return s[1:pos], s[pos+1:], pos, true
}
