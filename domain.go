package mensago

import (
	"regexp"
	"strings"
)

var domainPattern = regexp.MustCompile(`^([a-zA-Z0-9\-]+\.)+[a-zA-Z0-9\-]+$`)

// Domain holds a validated internet domain in lowercase dotted form. It
// exists so that valid domains can be passed around the library without
// repeated error checking.
type Domain struct {
	data string
}

// ParseDomain validates s as a dotted internet domain and squashes its case.
func ParseDomain(s string) (Domain, error) {
	if len(s) == 0 {
		return Domain{}, ErrEmptyData
	}
	if !domainPattern.MatchString(s) {
		return Domain{}, ErrBadValue
	}
	return Domain{data: strings.ToLower(s)}, nil
}

// String returns the canonical lowercase form.
func (d Domain) String() string {
	return d.data
}
