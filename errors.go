package mensago

import "errors"

// Sentinel errors for errors.Is() checks
var (
	// ErrEmptyData is returned when a parse function receives an empty string.
	ErrEmptyData = errors.New("empty data")

	// ErrBadValue is returned when a string fails structural validation for
	// the type being parsed.
	ErrBadValue = errors.New("bad value")

	// ErrInvalidValue is returned when raw data is requested from an invalid
	// CryptoString.
	ErrInvalidValue = errors.New("value is invalid")
)
