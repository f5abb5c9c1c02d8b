package mensago

import (
	"errors"
	"regexp"
	"testing"
)

func TestRandomID(t *testing.T) {
	generated := NewRandomID()
	if _, err := ParseRandomID(generated.String()); err != nil {
		t.Errorf("generated ID %q does not parse: %v", generated, err)
	}
	if generated.String() == NewRandomID().String() {
		t.Error("two generated IDs are identical")
	}

	canonical := regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
	if !canonical.MatchString(generated.String()) {
		t.Errorf("generated ID %q is not in canonical lowercase form", generated)
	}

	parsed, err := ParseRandomID("5A56260B-AA5C-4013-9217-A78F094432C3")
	if err != nil {
		t.Fatalf("ParseRandomID() error = %v", err)
	}
	if parsed.String() != "5a56260b-aa5c-4013-9217-a78f094432c3" {
		t.Errorf("case not squashed: %q", parsed)
	}

	if _, err := ParseRandomID(""); !errors.Is(err, ErrEmptyData) {
		t.Errorf("empty input error = %v, want ErrEmptyData", err)
	}
	if _, err := ParseRandomID("not-a-random-id"); !errors.Is(err, ErrBadValue) {
		t.Errorf("bad input error = %v, want ErrBadValue", err)
	}

	if NullRandomID().String() != "00000000-0000-0000-0000-000000000000" {
		t.Errorf("null ID = %q", NullRandomID())
	}
}

func TestParseUserID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		idType  IDType
		wantErr bool
	}{
		{"plain", "valid_e-mail.123", "valid_e-mail.123", IDTypeUser, false},
		{"needs squashing", "Valid.but.needs_case-squashed", "valid.but.needs_case-squashed", IDTypeUser, false},
		{"workspace shaped", "11111111-1111-1111-1111-111111111111", "11111111-1111-1111-1111-111111111111", IDTypeWorkspace, false},
		{"empty", "", "", 0, true},
		{"consecutive periods", "invalid..number1", "", 0, true},
		{"illegal character", "invalid#2", "", 0, true},
		{"too long", "a123456789012345678901234567890123456789012345678901234567890123456789", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uid, err := ParseUserID(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseUserID(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if uid.String() != tt.want {
				t.Errorf("String() = %q, want %q", uid.String(), tt.want)
			}
			if uid.Type() != tt.idType {
				t.Errorf("Type() = %v, want %v", uid.Type(), tt.idType)
			}
		})
	}
}

func TestUserIDFromWID(t *testing.T) {
	wid, err := ParseRandomID("5a56260b-aa5c-4013-9217-a78f094432c3")
	if err != nil {
		t.Fatal(err)
	}
	uid := UserIDFromWID(wid)
	if uid.Type() != IDTypeWorkspace {
		t.Error("UserIDFromWID did not mark the value as a workspace ID")
	}
	if uid.String() != wid.String() {
		t.Errorf("String() = %q, want %q", uid.String(), wid.String())
	}
}

func TestParseDomain(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"plain", "foo-bar.baz.com", "foo-bar.baz.com", false},
		{"needs squashing", "FOO.bar.com", "foo.bar.com", false},
		{"empty", "", "", true},
		{"space", "a bad-id.com", "", true},
		{"underscore", "also_bad.org", "", true},
		{"no dot", "localhost", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dom, err := ParseDomain(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDomain(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && dom.String() != tt.want {
				t.Errorf("String() = %q, want %q", dom.String(), tt.want)
			}
		})
	}
}

func TestParseMAddress(t *testing.T) {
	good := []string{
		"cats4life/example.com",
		"5a56260b-aa5c-4013-9217-a78f094432c3/example.com",
	}
	for _, s := range good {
		addr, err := ParseMAddress(s)
		if err != nil {
			t.Errorf("ParseMAddress(%q) error = %v", s, err)
			continue
		}
		if addr.String() != s {
			t.Errorf("String() = %q, want %q", addr.String(), s)
		}
	}

	bad := []string{
		"",
		"has spaces/example.com",
		`has_a_"/example.com`,
		`\not_allowed/example.com`,
		"/example.com",
		"5a56260b-aa5c-4013-9217-a78f094432c3/example.com/example.com",
		"5a56260b-aa5c-4013-9217-a78f094432c3",
	}
	for _, s := range bad {
		if _, err := ParseMAddress(s); err == nil {
			t.Errorf("ParseMAddress(%q) succeeded, want error", s)
		}
	}
}

func TestParseWAddress(t *testing.T) {
	addr, err := ParseWAddress("5a56260b-aa5c-4013-9217-a78f094432c3/example.com")
	if err != nil {
		t.Fatalf("ParseWAddress() error = %v", err)
	}
	if addr.WID.String() != "5a56260b-aa5c-4013-9217-a78f094432c3" {
		t.Errorf("WID = %q", addr.WID)
	}
	if addr.Domain.String() != "example.com" {
		t.Errorf("Domain = %q", addr.Domain)
	}

	// A user ID that is not workspace shaped is not a workspace address.
	if _, err := ParseWAddress("cats4life/example.com"); !errors.Is(err, ErrBadValue) {
		t.Errorf("error = %v, want ErrBadValue", err)
	}
}

func TestAddressFromParts(t *testing.T) {
	wid, err := ParseRandomID("5a56260b-aa5c-4013-9217-a78f094432c3")
	if err != nil {
		t.Fatal(err)
	}
	dom, err := ParseDomain("example.com")
	if err != nil {
		t.Fatal(err)
	}

	waddr := WAddressFromParts(wid, dom)
	if waddr.String() != "5a56260b-aa5c-4013-9217-a78f094432c3/example.com" {
		t.Errorf("WAddress.String() = %q", waddr)
	}

	maddr := MAddressFromParts(UserIDFromWID(wid), dom)
	if maddr.String() != waddr.String() {
		t.Errorf("MAddress.String() = %q, want %q", maddr, waddr)
	}
}
