// Package wire holds the shared JSON decode step used by every record's
// UnmarshalJSON. Decoding never validates; each record validates itself after
// its fields are populated, so a failure always names the offending field.
package wire

import (
	"encoding/json"

	sErrors "contracts/pkg/schema-errors"
)

// Decode unmarshals data into v, preserving any field-level error raised by a
// nested type (Money, Timestamp, enums) and classifying everything else as a
// type mismatch on the record itself.
func Decode(data []byte, v any, record string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return sErrors.Coerce(err, sErrors.CodeTypeMismatch, record, "malformed payload")
	}
	return nil
}
