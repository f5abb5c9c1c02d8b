package mensago

import (
	"regexp"
	"strings"

	"github.com/mensago/mensago-go/base85"
)

// Compiled once; safe for concurrent use.
var (
	csPattern = regexp.MustCompile(
		"^([A-Z0-9-]{1,24}):([0-9A-Za-z!#$%&()*+\\-;<=>?@^_`{|}~]+)$")
	csPrefixPattern = regexp.MustCompile(`^[A-Z0-9-]{1,24}$`)
)

// CryptoString is an immutable value pairing an algorithm name with
// base85-encoded data in the canonical form "ALGORITHM:DATA", e.g.
//
//	ED25519:6lXjej0C~!F&E`qKx2R6YqLPd5Id^PDWeWeTv;Cv
//
// The algorithm name is an opaque label of 1-24 characters from [A-Z0-9-];
// this package performs no cryptographic operations with it. Validity is
// established at construction and never changes. The zero value is invalid.
//
// Because a CryptoString is validated up front, valid values can be passed
// around and embedded in wire messages without further error checking.
type CryptoString struct {
	str        string
	splitPoint int
	valid      bool
}

// NewCS parses a string in "ALGORITHM:DATA" form. If the string does not
// match the required structure the returned value reports false from
// IsValid and all other accessors return zero values.
func NewCS(s string) CryptoString {
	if !csPattern.MatchString(s) {
		return CryptoString{}
	}
	return CryptoString{str: s, splitPoint: strings.IndexByte(s, ':'), valid: true}
}

// NewCSFromBytes builds a CryptoString from an algorithm name and a raw
// byte buffer, encoding the buffer with base85. The algorithm name itself
// must match [A-Z0-9-]{1,24}; the buffer contents are unrestricted but must
// be non-empty. On any violation the returned value is invalid.
func NewCSFromBytes(algorithm string, buffer []byte) CryptoString {
	if len(algorithm) == 0 || len(buffer) == 0 {
		return CryptoString{}
	}
	if !csPrefixPattern.MatchString(algorithm) {
		return CryptoString{}
	}
	return CryptoString{
		str:        algorithm + ":" + base85.Encode(buffer),
		splitPoint: len(algorithm),
		valid:      true,
	}
}

// IsValid reports whether the value passed structural validation at
// construction time.
func (cs CryptoString) IsValid() bool {
	return cs.valid
}

// AsString returns the canonical "ALGORITHM:DATA" form, or the empty string
// for an invalid value.
func (cs CryptoString) AsString() string {
	return cs.str
}

// String implements fmt.Stringer.
func (cs CryptoString) String() string {
	return cs.str
}

// Prefix returns the algorithm name without the separator, or the empty
// string for an invalid value.
func (cs CryptoString) Prefix() string {
	if !cs.valid {
		return ""
	}
	return cs.str[:cs.splitPoint]
}

// Data returns the encoded data segment after the separator. The separator
// itself is never included. Invalid values yield the empty string.
func (cs CryptoString) Data() string {
	if !cs.valid {
		return ""
	}
	return cs.str[cs.splitPoint+1:]
}

// RawData decodes and returns the data segment as raw bytes. Only the data
// segment is decoded; the algorithm name and separator never reach the
// decoder. Calling RawData on an invalid value returns ErrInvalidValue.
func (cs CryptoString) RawData() ([]byte, error) {
	if !cs.valid {
		return nil, ErrInvalidValue
	}
	return base85.Decode(cs.Data())
}
