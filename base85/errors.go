package base85

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when Decode is called with no data to decode.
var ErrEmptyInput = errors.New("cannot decode empty input")

// InvalidCharacterError is returned when Decode encounters a non-whitespace
// character outside the base85 alphabet. The reference C++ codec silently
// substituted a sentinel digit here, corrupting output without signal; this
// implementation rejects instead.
type InvalidCharacterError struct {
	Char byte // the offending character
	Pos  int  // byte offset within the input string
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid base85 character %q at position %d", e.Char, e.Pos)
}

// InvalidLengthError is returned when the input ends with a single stray
// digit. A 1-character group carries fewer than 8 bits and cannot decode to
// any byte.
type InvalidLengthError struct {
	Digits int // total count of non-whitespace digits seen
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("invalid base85 length: %d digits leave a 1-character group", e.Digits)
}
