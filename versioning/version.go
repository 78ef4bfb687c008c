// Package versioning defines the schema version primitive carried by
// versioned contract records.
//
// The governance rule: within a major version every change is additive only.
// New optional fields with defaults may appear in a minor bump; removing,
// renaming, or narrowing anything requires a major bump. The compat package
// makes the rule mechanically checkable.
package versioning

import (
	"encoding/json"
	"strconv"
	"strings"

	sErrors "contracts/pkg/schema-errors"
)

// SchemaVersion is a "major.minor" version string. This is a domain primitive
// that enforces validity at parse time.
type SchemaVersion string

// Default is the version assumed when a payload carries none.
const Default SchemaVersion = "1.0"

// Parse validates and returns a SchemaVersion.
// Returns an error unless the input is "<digits>.<digits>".
func Parse(raw string) (SchemaVersion, error) {
	major, minor, ok := strings.Cut(raw, ".")
	if !ok || !isDigits(major) || !isDigits(minor) {
		return "", sErrors.TypeMismatch("schema_version",
			"invalid schema version "+strconv.Quote(raw)+": expected 'major.minor'")
	}
	return SchemaVersion(raw), nil
}

// MustParse parses a SchemaVersion, panicking if invalid.
func MustParse(raw string) SchemaVersion {
	v, err := Parse(raw)
	if err != nil {
		panic(err)
	}
	return v
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (v SchemaVersion) String() string { return string(v) }

// IsZero returns true if the version is empty.
func (v SchemaVersion) IsZero() bool { return v == "" }

// Major returns the major component, or 0 for an unparsed value.
func (v SchemaVersion) Major() int {
	major, _, _ := strings.Cut(string(v), ".")
	n, _ := strconv.Atoi(major)
	return n
}

// Minor returns the minor component, or 0 for an unparsed value.
func (v SchemaVersion) Minor() int {
	_, minor, _ := strings.Cut(string(v), ".")
	n, _ := strconv.Atoi(minor)
	return n
}

// IsCompatibleWith reports whether the two versions share a major version.
// Consumers may read any payload whose major matches their own.
func (v SchemaVersion) IsCompatibleWith(other SchemaVersion) bool {
	return v.Major() == other.Major()
}

// AtLeast reports whether v is the same as or newer than other.
func (v SchemaVersion) AtLeast(other SchemaVersion) bool {
	if v.Major() != other.Major() {
		return v.Major() > other.Major()
	}
	return v.Minor() >= other.Minor()
}

// UnmarshalJSON validates the version on the way in. An absent field is left
// to the owning record, which defaults it to Default.
func (v *SchemaVersion) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return sErrors.TypeMismatch("schema_version", "schema version must be a string")
	}
	parsed, err := Parse(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
