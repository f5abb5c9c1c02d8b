package mensago

import "strings"

// MAddress is a full Mensago address in "userid/domain" form. The user ID
// side may be either a regular user ID or a workspace ID.
type MAddress struct {
	UID    UserID
	Domain Domain
}

// ParseMAddress parses a string in "userid/domain" form.
func ParseMAddress(s string) (MAddress, error) {
	if len(s) == 0 {
		return MAddress{}, ErrEmptyData
	}
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return MAddress{}, ErrBadValue
	}

	uid, err := ParseUserID(parts[0])
	if err != nil {
		return MAddress{}, err
	}
	dom, err := ParseDomain(parts[1])
	if err != nil {
		return MAddress{}, err
	}
	return MAddress{UID: uid, Domain: dom}, nil
}

// MAddressFromParts joins an already-validated user ID and domain.
func MAddressFromParts(uid UserID, dom Domain) MAddress {
	return MAddress{UID: uid, Domain: dom}
}

// String returns the canonical "userid/domain" form.
func (a MAddress) String() string {
	return a.UID.String() + "/" + a.Domain.String()
}

// WAddress is a workspace address in "workspaceid/domain" form. Unlike
// MAddress, the left side must be a RandomID.
type WAddress struct {
	WID    RandomID
	Domain Domain
}

// ParseWAddress parses a string in "workspaceid/domain" form.
func ParseWAddress(s string) (WAddress, error) {
	if len(s) == 0 {
		return WAddress{}, ErrEmptyData
	}
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return WAddress{}, ErrBadValue
	}

	wid, err := ParseRandomID(parts[0])
	if err != nil {
		return WAddress{}, err
	}
	dom, err := ParseDomain(parts[1])
	if err != nil {
		return WAddress{}, err
	}
	return WAddress{WID: wid, Domain: dom}, nil
}

// WAddressFromParts joins an already-validated workspace ID and domain.
func WAddressFromParts(wid RandomID, dom Domain) WAddress {
	return WAddress{WID: wid, Domain: dom}
}

// String returns the canonical "workspaceid/domain" form.
func (a WAddress) String() string {
	return a.WID.String() + "/" + a.Domain.String()
}
