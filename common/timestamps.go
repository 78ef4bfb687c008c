package common

import (
	"encoding/json"
	"time"

	sErrors "contracts/pkg/schema-errors"
)

// Timestamp is a UTC-normalized instant. It is always timezone-aware: the
// wire form is ISO 8601 with an explicit offset, and naive strings fail to
// decode. Construction normalizes to UTC and strips any monotonic reading so
// two equal instants compare equal field-for-field.
type Timestamp struct {
	value time.Time
}

// NewTimestamp creates a Timestamp from a time value. Fails on the zero time.
func NewTimestamp(t time.Time) (Timestamp, error) {
	if t.IsZero() {
		return Timestamp{}, sErrors.Missing("timestamp")
	}
	return Timestamp{value: t.Round(0).UTC()}, nil
}

// MustTimestamp creates a Timestamp, panicking if invalid. Use only in tests
// or when the time is known to be non-zero.
func MustTimestamp(t time.Time) Timestamp {
	ts, err := NewTimestamp(t)
	if err != nil {
		panic(err)
	}
	return ts
}

// Now returns the current instant, UTC-normalized.
func Now() Timestamp {
	return Timestamp{value: time.Now().Round(0).UTC()}
}

// ParseTimestamp decodes an RFC 3339 string. Strings without an offset fail.
func ParseTimestamp(raw string) (Timestamp, error) {
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return Timestamp{}, sErrors.Wrap(err, sErrors.CodeTypeMismatch, "timestamp",
			"timestamp must be an RFC 3339 instant with an explicit offset")
	}
	return NewTimestamp(t)
}

// Time returns the underlying UTC time value.
func (t Timestamp) Time() time.Time {
	return t.value
}

// IsZero reports whether this is the uninitialized zero value.
func (t Timestamp) IsZero() bool {
	return t.value.IsZero()
}

func (t Timestamp) Equal(other Timestamp) bool {
	return t.value.Equal(other.value)
}

func (t Timestamp) Before(other Timestamp) bool {
	return t.value.Before(other.value)
}

func (t Timestamp) After(other Timestamp) bool {
	return t.value.After(other.value)
}

// String renders the canonical wire form, e.g. "2024-01-01T00:00:00Z".
func (t Timestamp) String() string {
	return t.value.Format(time.RFC3339Nano)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.value.IsZero() {
		return nil, sErrors.Missing("timestamp")
	}
	return json.Marshal(t.String())
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return sErrors.TypeMismatch("timestamp", "timestamp must be a string")
	}
	parsed, err := ParseTimestamp(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
