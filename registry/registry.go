// Package registry catalogs schema descriptor sets by version and runs the
// compatibility check between any two registered versions. It is the
// enforcement point for the additive-evolution rule: a release is cut only
// when Diff against the previous version passes.
package registry

import (
	"fmt"
	"sort"

	"contracts/accounting"
	"contracts/common"
	"contracts/compat"
	"contracts/enums"
	"contracts/events"
	"contracts/messaging"
	sErrors "contracts/pkg/schema-errors"
	"contracts/tax"
	"contracts/versioning"
)

// Registry holds one descriptor set per schema version. It is a review-time
// tool, not a runtime component.
type Registry struct {
	sets map[versioning.SchemaVersion]compat.Set
}

func New() *Registry {
	return &Registry{sets: make(map[versioning.SchemaVersion]compat.Set)}
}

// Register adds a descriptor set. A version can only be registered once:
// published schemas never change in place.
func (r *Registry) Register(set compat.Set) error {
	if set.Version.IsZero() {
		return sErrors.Missing("version")
	}
	if _, err := versioning.Parse(set.Version.String()); err != nil {
		return err
	}
	if _, exists := r.sets[set.Version]; exists {
		return sErrors.New(sErrors.CodeInvariantViolation,
			fmt.Sprintf("version %s is already registered", set.Version))
	}
	r.sets[set.Version] = set
	return nil
}

// Lookup returns the descriptor set registered for a version.
func (r *Registry) Lookup(v versioning.SchemaVersion) (compat.Set, bool) {
	set, ok := r.sets[v]
	return set, ok
}

// Versions lists the registered versions, oldest first.
func (r *Registry) Versions() []versioning.SchemaVersion {
	versions := make([]versioning.SchemaVersion, 0, len(r.sets))
	for v := range r.sets {
		versions = append(versions, v)
	}
	sort.Slice(versions, func(i, j int) bool {
		return !versions[i].AtLeast(versions[j])
	})
	return versions
}

// Diff checks that newV is a legal evolution of oldV. The report always
// lists every non-additive change; the error is non-nil only when those
// changes are illegal, i.e. breaking without a major version bump.
func (r *Registry) Diff(oldV, newV versioning.SchemaVersion) (compat.Report, error) {
	oldSet, ok := r.Lookup(oldV)
	if !ok {
		return compat.Report{}, sErrors.New(sErrors.CodeInvariantViolation,
			fmt.Sprintf("version %s is not registered", oldV))
	}
	newSet, ok := r.Lookup(newV)
	if !ok {
		return compat.Report{}, sErrors.New(sErrors.CodeInvariantViolation,
			fmt.Sprintf("version %s is not registered", newV))
	}
	report := compat.Check(oldSet, newSet)
	if !report.Compatible() && newV.Major() == oldV.Major() {
		return report, report.Err()
	}
	return report, nil
}

// Current builds the descriptor set for this release from the live struct
// definitions, so the registered surface cannot drift from the shipped code.
func Current() compat.Set {
	return compat.Set{
		Version: versioning.Default,
		Schemas: map[string]compat.Schema{
			"Money":                compat.MustDescribe("Money", common.Money{}),
			"TenantRef":            compat.MustDescribe("TenantRef", common.TenantRef{}),
			"ExternalRef":          compat.MustDescribe("ExternalRef", common.ExternalRef{}),
			"Transaction":          compat.MustDescribe("Transaction", accounting.Transaction{}),
			"Classification":       compat.MustDescribe("Classification", accounting.Classification{}),
			"ClassificationResult": compat.MustDescribe("ClassificationResult", accounting.ClassificationResult{}),
			"JournalEntry":         compat.MustDescribe("JournalEntry", accounting.JournalEntry{}),
			"JournalEntryLine":     compat.MustDescribe("JournalEntryLine", accounting.JournalEntryLine{}),
			"Account":              compat.MustDescribe("Account", accounting.Account{}),
			"Vendor":               compat.MustDescribe("Vendor", accounting.Vendor{}),
			"SuspenseItem":         compat.MustDescribe("SuspenseItem", accounting.SuspenseItem{}),
			"Risk":                 compat.MustDescribe("Risk", accounting.Risk{}),
			"RiskFlag":             compat.MustDescribe("RiskFlag", accounting.RiskFlag{}),
			"Message":              compat.MustDescribe("Message", messaging.Message{}),
			"Conversation":         compat.MustDescribe("Conversation", messaging.Conversation{}),
			"Template":             compat.MustDescribe("Template", messaging.Template{}),
			"TemplateButton":       compat.MustDescribe("TemplateButton", messaging.TemplateButton{}),
			"PlatformEvent":        compat.MustDescribe("PlatformEvent", events.PlatformEvent{}),
			"AuditEvent":           compat.MustDescribe("AuditEvent", events.AuditEvent{}),
			"TaxComputeRequest":    compat.MustDescribe("TaxComputeRequest", tax.TaxComputeRequest{}),
			"TaxComputeResponse":   compat.MustDescribe("TaxComputeResponse", tax.TaxComputeResponse{}),
			"TaxLine":              compat.MustDescribe("TaxLine", tax.TaxLine{}),
			"QuarterlyPayment":     compat.MustDescribe("QuarterlyPayment", tax.QuarterlyPayment{}),
		},
		Enums: map[string]compat.EnumDef{
			"SourceSystem":         {Name: "SourceSystem", Variants: variants(enums.SourceSystemValues())},
			"AccountType":          {Name: "AccountType", Variants: variants(enums.AccountTypeValues())},
			"TransactionSide":      {Name: "TransactionSide", Variants: variants(enums.TransactionSideValues())},
			"TransactionStatus":    {Name: "TransactionStatus", Variants: variants(enums.TransactionStatusValues())},
			"BankAccountType":      {Name: "BankAccountType", Variants: variants(enums.BankAccountTypeValues())},
			"ConfidenceBand":       {Name: "ConfidenceBand", Variants: variants(enums.ConfidenceBandValues())},
			"ClassificationSource": {Name: "ClassificationSource", Variants: variants(enums.ClassificationSourceValues())},
			"ReviewStatus":         {Name: "ReviewStatus", Variants: variants(enums.ReviewStatusValues())},
			"SuspenseReason":       {Name: "SuspenseReason", Variants: variants(enums.SuspenseReasonValues())},
			"RiskSeverity":         {Name: "RiskSeverity", Variants: variants(enums.RiskSeverityValues())},
			"MessageDirection":     {Name: "MessageDirection", Variants: variants(enums.MessageDirectionValues())},
			"MessageStatus":        {Name: "MessageStatus", Variants: variants(enums.MessageStatusValues())},
			"ConversationStatus":   {Name: "ConversationStatus", Variants: variants(enums.ConversationStatusValues())},
			"EntityType":           {Name: "EntityType", Variants: variants(enums.EntityTypeValues())},
			"TaxFilingType":        {Name: "TaxFilingType", Variants: variants(enums.TaxFilingTypeValues())},
		},
	}
}

func variants[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
