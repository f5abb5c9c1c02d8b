package mensago

import (
	"crypto/rand"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var randomIDPattern = regexp.MustCompile(
	`^[\da-fA-F]{8}-[\da-fA-F]{4}-[\da-fA-F]{4}-[\da-fA-F]{4}-[\da-fA-F]{12}$`)

// nullRandomID is the only null value for a RandomID.
const nullRandomID = "00000000-0000-0000-0000-000000000000"

// RandomID is a 128-bit identifier formatted like a UUID. Unlike a v4 UUID
// it carries no version or variant bits, so all 128 bits are random. The
// canonical string form is lowercase with dashes in the usual UUID
// positions.
type RandomID struct {
	data string
}

// NewRandomID returns a freshly generated RandomID.
func NewRandomID() RandomID {
	var raw [16]byte
	if _, err := rand.Read(raw[:]); err != nil {
		// crypto/rand is documented never to fail on supported platforms.
		panic("mensago: reading random bytes: " + err.Error())
	}
	return RandomID{data: uuid.UUID(raw).String()}
}

// NullRandomID returns the all-zero RandomID. Rarely needed; most callers
// want NewRandomID or ParseRandomID.
func NullRandomID() RandomID {
	return RandomID{data: nullRandomID}
}

// ParseRandomID validates s as a RandomID and squashes it to the canonical
// lowercase form.
func ParseRandomID(s string) (RandomID, error) {
	if len(s) == 0 {
		return RandomID{}, ErrEmptyData
	}
	if !randomIDPattern.MatchString(s) {
		return RandomID{}, ErrBadValue
	}
	return RandomID{data: strings.ToLower(s)}, nil
}

// String returns the canonical lowercase form.
func (rid RandomID) String() string {
	return rid.data
}
