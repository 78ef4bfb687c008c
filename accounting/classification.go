package accounting

import (
	"contracts/common"
	"contracts/enums"
	"contracts/internal/wire"
	sErrors "contracts/pkg/schema-errors"
	"contracts/versioning"
)

// Classification is a category taxonomy entry transactions are classified
// against.
type Classification struct {
	ID            common.ClassificationID `json:"id"`
	Name          string                  `json:"name"`
	AccountType   enums.AccountType       `json:"account_type,omitempty"`
	ScheduleCLine string                  `json:"schedule_c_line,omitempty"`
	ParentID      common.ClassificationID `json:"parent_id,omitempty"`
}

func NewClassification(id common.ClassificationID, name string) (Classification, error) {
	c := Classification{ID: id, Name: name}
	if err := c.Validate(); err != nil {
		return Classification{}, err
	}
	return c, nil
}

func (c Classification) Validate() error {
	if c.ID.IsZero() {
		return sErrors.Missing("id")
	}
	if c.Name == "" {
		return sErrors.Missing("name")
	}
	if c.AccountType != "" && !c.AccountType.IsValid() {
		return sErrors.EnumViolation("account_type", c.AccountType)
	}
	if c.ParentID == c.ID {
		return sErrors.Invariant("parent_id", "classification cannot be its own parent")
	}
	return nil
}

func (c *Classification) UnmarshalJSON(data []byte) error {
	type alias Classification
	var raw alias
	if err := wire.Decode(data, &raw, "classification"); err != nil {
		return err
	}
	decoded := Classification(raw)
	if err := decoded.Validate(); err != nil {
		return err
	}
	*c = decoded
	return nil
}

// ClassificationResult is the suggested classification for one transaction,
// as produced by a rule, history, or model pass.
//
// Invariants:
//   - Confidence lies in [0.0, 1.0]
//   - band, source, and review status are declared variants when present
type ClassificationResult struct {
	TransactionID      common.TransactionID       `json:"transaction_id"`
	SuggestedAccountID common.AccountID           `json:"suggested_account_id,omitempty"`
	SuggestedVendorID  common.VendorID            `json:"suggested_vendor_id,omitempty"`
	Confidence         float64                    `json:"confidence"`
	ConfidenceBand     enums.ConfidenceBand       `json:"confidence_band,omitempty"`
	Source             enums.ClassificationSource `json:"source,omitempty"`
	Reasoning          string                     `json:"reasoning,omitempty"`
	NeedsReview        bool                       `json:"needs_review,omitempty"`
	ReviewStatus       enums.ReviewStatus         `json:"review_status,omitempty"`
	RiskFlags          []RiskFlag                 `json:"risk_flags,omitempty"`
	SchemaVersion      versioning.SchemaVersion   `json:"schema_version,omitempty"`
}

func NewClassificationResult(
	transactionID common.TransactionID,
	suggestedAccountID common.AccountID,
	confidence float64,
) (ClassificationResult, error) {
	r := ClassificationResult{
		TransactionID:      transactionID,
		SuggestedAccountID: suggestedAccountID,
		Confidence:         confidence,
		SchemaVersion:      versioning.Default,
	}
	if err := r.Validate(); err != nil {
		return ClassificationResult{}, err
	}
	return r, nil
}

func (r ClassificationResult) Validate() error {
	if r.TransactionID.IsZero() {
		return sErrors.Missing("transaction_id")
	}
	if r.Confidence < 0.0 || r.Confidence > 1.0 {
		return sErrors.Invariant("confidence", "confidence must be between 0.0 and 1.0")
	}
	if r.ConfidenceBand != "" && !r.ConfidenceBand.IsValid() {
		return sErrors.EnumViolation("confidence_band", r.ConfidenceBand)
	}
	if r.Source != "" && !r.Source.IsValid() {
		return sErrors.EnumViolation("source", r.Source)
	}
	if r.ReviewStatus != "" && !r.ReviewStatus.IsValid() {
		return sErrors.EnumViolation("review_status", r.ReviewStatus)
	}
	if r.SchemaVersion != "" {
		if _, err := versioning.Parse(r.SchemaVersion.String()); err != nil {
			return err
		}
	}
	for i, flag := range r.RiskFlags {
		if err := flag.validateAt("risk_flags", i); err != nil {
			return err
		}
	}
	return nil
}

func (r *ClassificationResult) UnmarshalJSON(data []byte) error {
	type alias ClassificationResult
	var raw alias
	if err := wire.Decode(data, &raw, "classification_result"); err != nil {
		return err
	}
	decoded := ClassificationResult(raw)
	if decoded.SchemaVersion.IsZero() {
		decoded.SchemaVersion = versioning.Default
	}
	if err := decoded.Validate(); err != nil {
		return err
	}
	*r = decoded
	return nil
}
