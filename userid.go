package mensago

import (
	"regexp"
	"strings"
)

var userIDPattern = regexp.MustCompile(`^([a-zA-Z0-9_-]|\.[^.])+$`)

// IDType distinguishes the two kinds of identifier a UserID can carry.
type IDType int

const (
	// IDTypeUser is a human-chosen user ID.
	IDTypeUser IDType = iota
	// IDTypeWorkspace is a UserID that is actually a workspace ID, i.e. it
	// has the shape of a RandomID.
	IDTypeWorkspace
)

// UserID holds a Mensago user ID: up to 64 characters of lowercase letters,
// digits, dashes, and underscores, plus non-consecutive periods. Uppercase
// input is accepted and squashed to lowercase. A UserID whose content is
// RandomID-shaped is flagged as a workspace ID.
type UserID struct {
	data   string
	idType IDType
}

// ParseUserID validates s as a user ID and squashes its case.
func ParseUserID(s string) (UserID, error) {
	if len(s) == 0 {
		return UserID{}, ErrEmptyData
	}
	if len(s) > 64 || !userIDPattern.MatchString(s) {
		return UserID{}, ErrBadValue
	}

	out := UserID{data: strings.ToLower(s), idType: IDTypeUser}
	if randomIDPattern.MatchString(out.data) {
		out.idType = IDTypeWorkspace
	}
	return out, nil
}

// UserIDFromWID converts a workspace ID into a UserID.
func UserIDFromWID(wid RandomID) UserID {
	return UserID{data: wid.String(), idType: IDTypeWorkspace}
}

// Type reports whether the value is a regular user ID or a workspace ID.
func (uid UserID) Type() IDType {
	return uid.idType
}

// String returns the canonical lowercase form.
func (uid UserID) String() string {
	return uid.data
}
