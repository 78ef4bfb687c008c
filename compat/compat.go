// Package compat makes the additive-evolution rule mechanically checkable.
//
// Within a major version, a schema change must be additive only: new optional
// fields with defaults and new enum variants are allowed; removing or
// renaming a field, narrowing its type, or removing an enum variant is a
// breaking change and requires a major version bump. Check diffs two
// descriptor sets pairwise and reports every violation with its path.
package compat

import (
	"fmt"
	"sort"
	"strings"

	sErrors "contracts/pkg/schema-errors"
	"contracts/versioning"
)

// Field describes one field of a record schema.
type Field struct {
	// Name is the canonical wire name.
	Name string
	// Type is the declared semantic type, compared as an opaque string.
	Type string
	// Optional marks fields a payload may omit.
	Optional bool
	// HasDefault marks fields that take a defined default when omitted.
	HasDefault bool
}

// Schema describes one record type.
type Schema struct {
	Name   string
	Fields []Field
}

// Field returns the named field, if declared.
func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// EnumDef describes a closed enumeration.
type EnumDef struct {
	Name     string
	Variants []string
}

func (e EnumDef) hasVariant(v string) bool {
	for _, variant := range e.Variants {
		if variant == v {
			return true
		}
	}
	return false
}

// Set is the full schema surface of one library version.
type Set struct {
	Version versioning.SchemaVersion
	Schemas map[string]Schema
	Enums   map[string]EnumDef
}

// Breaking is a single non-additive change.
type Breaking struct {
	// Path names what broke: "Transaction", "Transaction.status",
	// "enum:MessageStatus".
	Path   string
	Reason string
}

func (b Breaking) String() string {
	return b.Path + ": " + b.Reason
}

// Report is the outcome of diffing an old schema set against a new one.
type Report struct {
	Old    versioning.SchemaVersion
	New    versioning.SchemaVersion
	Breaks []Breaking
}

// Compatible reports whether the new set is an additive evolution of the old.
func (r Report) Compatible() bool {
	return len(r.Breaks) == 0
}

// Err returns nil when compatible, otherwise a single breaking-change error
// listing every violation.
func (r Report) Err() error {
	if r.Compatible() {
		return nil
	}
	reasons := make([]string, len(r.Breaks))
	for i, b := range r.Breaks {
		reasons[i] = b.String()
	}
	return sErrors.New(sErrors.CodeBreakingChange,
		fmt.Sprintf("%s -> %s is not additive: %s", r.Old, r.New, strings.Join(reasons, "; ")))
}

// Check diffs two schema sets. Order matters: old is what consumers already
// depend on, new is the proposed version.
func Check(old, new Set) Report {
	report := Report{Old: old.Version, New: new.Version}
	for _, name := range sortedKeys(old.Schemas) {
		newSchema, ok := new.Schemas[name]
		if !ok {
			report.Breaks = append(report.Breaks, Breaking{Path: name, Reason: "record removed"})
			continue
		}
		report.Breaks = append(report.Breaks, CheckSchema(old.Schemas[name], newSchema)...)
	}
	for _, name := range sortedKeys(old.Enums) {
		newEnum, ok := new.Enums[name]
		if !ok {
			report.Breaks = append(report.Breaks, Breaking{Path: "enum:" + name, Reason: "enum removed"})
			continue
		}
		report.Breaks = append(report.Breaks, CheckEnum(old.Enums[name], newEnum)...)
	}
	// Records and enums present only in new are additive by definition.
	return report
}

// CheckSchema diffs one record's field set.
func CheckSchema(old, new Schema) []Breaking {
	var breaks []Breaking
	for _, oldField := range old.Fields {
		path := old.Name + "." + oldField.Name
		newField, ok := new.Field(oldField.Name)
		if !ok {
			breaks = append(breaks, Breaking{Path: path, Reason: "field removed or renamed"})
			continue
		}
		if newField.Type != oldField.Type {
			breaks = append(breaks, Breaking{
				Path:   path,
				Reason: fmt.Sprintf("type changed from %s to %s", oldField.Type, newField.Type),
			})
		}
		if oldField.Optional && !newField.Optional {
			breaks = append(breaks, Breaking{Path: path, Reason: "narrowed from optional to required"})
		}
	}
	for _, newField := range new.Fields {
		if _, ok := old.Field(newField.Name); ok {
			continue
		}
		if !newField.Optional && !newField.HasDefault {
			breaks = append(breaks, Breaking{
				Path:   new.Name + "." + newField.Name,
				Reason: "required field added without a default",
			})
		}
	}
	return breaks
}

// CheckEnum diffs one enum's variant set. Added variants are additive;
// removed variants break every consumer that matches exhaustively.
func CheckEnum(old, new EnumDef) []Breaking {
	var breaks []Breaking
	for _, v := range old.Variants {
		if !new.hasVariant(v) {
			breaks = append(breaks, Breaking{
				Path:   "enum:" + old.Name,
				Reason: fmt.Sprintf("variant %q removed", v),
			})
		}
	}
	return breaks
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
