// Package enums holds the closed enumerations shared across the contract
// namespaces. Each enum is a typed string: the zero value is invalid, the
// declared consts are the full variant set, and decoding rejects anything
// outside it.
package enums

import (
	"encoding/json"

	sErrors "contracts/pkg/schema-errors"
)

// decodeEnum unmarshals a JSON string and checks it against a variant set.
func decodeEnum(data []byte, field string, valid func(string) bool) (string, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", sErrors.TypeMismatch(field, "expected a string variant")
	}
	if !valid(s) {
		return "", sErrors.EnumViolation(field, s)
	}
	return s, nil
}

// SourceSystem identifies which platform service produced a record.
type SourceSystem string

const (
	SourceHub          SourceSystem = "hub"
	SourceQBOLeg       SourceSystem = "qbo_leg"
	SourceGLLeg        SourceSystem = "gl_leg"
	SourceAITranslator SourceSystem = "ai_translator"
	SourceMessaging    SourceSystem = "messaging"
	SourceTaxEngine    SourceSystem = "tax_engine"
)

func (s SourceSystem) IsValid() bool {
	switch s {
	case SourceHub, SourceQBOLeg, SourceGLLeg, SourceAITranslator, SourceMessaging, SourceTaxEngine:
		return true
	}
	return false
}

func (s SourceSystem) String() string { return string(s) }

// ParseSourceSystem validates a raw string against the variant set.
func ParseSourceSystem(raw string) (SourceSystem, error) {
	v := SourceSystem(raw)
	if !v.IsValid() {
		return "", sErrors.EnumViolation("source_system", raw)
	}
	return v, nil
}

func (s *SourceSystem) UnmarshalJSON(data []byte) error {
	raw, err := decodeEnum(data, "source_system", func(v string) bool { return SourceSystem(v).IsValid() })
	if err != nil {
		return err
	}
	*s = SourceSystem(raw)
	return nil
}

func SourceSystemValues() []SourceSystem {
	return []SourceSystem{SourceHub, SourceQBOLeg, SourceGLLeg, SourceAITranslator, SourceMessaging, SourceTaxEngine}
}

// AccountType is the top-level chart-of-accounts classification.
type AccountType string

const (
	AccountAsset           AccountType = "asset"
	AccountLiability       AccountType = "liability"
	AccountEquity          AccountType = "equity"
	AccountRevenue         AccountType = "revenue"
	AccountExpense         AccountType = "expense"
	AccountCostOfGoodsSold AccountType = "cost_of_goods_sold"
	AccountOtherIncome     AccountType = "other_income"
	AccountOtherExpense    AccountType = "other_expense"
)

func (a AccountType) IsValid() bool {
	switch a {
	case AccountAsset, AccountLiability, AccountEquity, AccountRevenue,
		AccountExpense, AccountCostOfGoodsSold, AccountOtherIncome, AccountOtherExpense:
		return true
	}
	return false
}

func (a AccountType) String() string { return string(a) }

func ParseAccountType(raw string) (AccountType, error) {
	v := AccountType(raw)
	if !v.IsValid() {
		return "", sErrors.EnumViolation("account_type", raw)
	}
	return v, nil
}

func (a *AccountType) UnmarshalJSON(data []byte) error {
	raw, err := decodeEnum(data, "account_type", func(v string) bool { return AccountType(v).IsValid() })
	if err != nil {
		return err
	}
	*a = AccountType(raw)
	return nil
}

func AccountTypeValues() []AccountType {
	return []AccountType{AccountAsset, AccountLiability, AccountEquity, AccountRevenue,
		AccountExpense, AccountCostOfGoodsSold, AccountOtherIncome, AccountOtherExpense}
}

// TransactionSide is the double-entry side of a journal line.
type TransactionSide string

const (
	SideDebit  TransactionSide = "debit"
	SideCredit TransactionSide = "credit"
)

func (t TransactionSide) IsValid() bool {
	return t == SideDebit || t == SideCredit
}

func (t TransactionSide) String() string { return string(t) }

func ParseTransactionSide(raw string) (TransactionSide, error) {
	v := TransactionSide(raw)
	if !v.IsValid() {
		return "", sErrors.EnumViolation("side", raw)
	}
	return v, nil
}

func (t *TransactionSide) UnmarshalJSON(data []byte) error {
	raw, err := decodeEnum(data, "side", func(v string) bool { return TransactionSide(v).IsValid() })
	if err != nil {
		return err
	}
	*t = TransactionSide(raw)
	return nil
}

func TransactionSideValues() []TransactionSide {
	return []TransactionSide{SideDebit, SideCredit}
}

// TransactionStatus tracks a transaction through its posting lifecycle.
type TransactionStatus string

const (
	TransactionPending TransactionStatus = "pending"
	TransactionPosted  TransactionStatus = "posted"
	TransactionVoided  TransactionStatus = "voided"
)

func (t TransactionStatus) IsValid() bool {
	switch t {
	case TransactionPending, TransactionPosted, TransactionVoided:
		return true
	}
	return false
}

func (t TransactionStatus) String() string { return string(t) }

func ParseTransactionStatus(raw string) (TransactionStatus, error) {
	v := TransactionStatus(raw)
	if !v.IsValid() {
		return "", sErrors.EnumViolation("status", raw)
	}
	return v, nil
}

func (t *TransactionStatus) UnmarshalJSON(data []byte) error {
	raw, err := decodeEnum(data, "status", func(v string) bool { return TransactionStatus(v).IsValid() })
	if err != nil {
		return err
	}
	*t = TransactionStatus(raw)
	return nil
}

func TransactionStatusValues() []TransactionStatus {
	return []TransactionStatus{TransactionPending, TransactionPosted, TransactionVoided}
}

// BankAccountType describes the bank product a transaction came from.
type BankAccountType string

const (
	BankChecking     BankAccountType = "checking"
	BankSavings      BankAccountType = "savings"
	BankCreditCard   BankAccountType = "credit_card"
	BankLineOfCredit BankAccountType = "line_of_credit"
	BankLoan         BankAccountType = "loan"
	BankOther        BankAccountType = "other"
)

func (b BankAccountType) IsValid() bool {
	switch b {
	case BankChecking, BankSavings, BankCreditCard, BankLineOfCredit, BankLoan, BankOther:
		return true
	}
	return false
}

func (b BankAccountType) String() string { return string(b) }

func ParseBankAccountType(raw string) (BankAccountType, error) {
	v := BankAccountType(raw)
	if !v.IsValid() {
		return "", sErrors.EnumViolation("bank_account_type", raw)
	}
	return v, nil
}

func (b *BankAccountType) UnmarshalJSON(data []byte) error {
	raw, err := decodeEnum(data, "bank_account_type", func(v string) bool { return BankAccountType(v).IsValid() })
	if err != nil {
		return err
	}
	*b = BankAccountType(raw)
	return nil
}

func BankAccountTypeValues() []BankAccountType {
	return []BankAccountType{BankChecking, BankSavings, BankCreditCard, BankLineOfCredit, BankLoan, BankOther}
}

// ConfidenceBand buckets a classification confidence score.
type ConfidenceBand string

const (
	ConfidenceHigh      ConfidenceBand = "high"
	ConfidenceMedium    ConfidenceBand = "medium"
	ConfidenceLow       ConfidenceBand = "low"
	ConfidenceUncertain ConfidenceBand = "uncertain"
)

func (c ConfidenceBand) IsValid() bool {
	switch c {
	case ConfidenceHigh, ConfidenceMedium, ConfidenceLow, ConfidenceUncertain:
		return true
	}
	return false
}

func (c ConfidenceBand) String() string { return string(c) }

func ParseConfidenceBand(raw string) (ConfidenceBand, error) {
	v := ConfidenceBand(raw)
	if !v.IsValid() {
		return "", sErrors.EnumViolation("confidence_band", raw)
	}
	return v, nil
}

func (c *ConfidenceBand) UnmarshalJSON(data []byte) error {
	raw, err := decodeEnum(data, "confidence_band", func(v string) bool { return ConfidenceBand(v).IsValid() })
	if err != nil {
		return err
	}
	*c = ConfidenceBand(raw)
	return nil
}

func ConfidenceBandValues() []ConfidenceBand {
	return []ConfidenceBand{ConfidenceHigh, ConfidenceMedium, ConfidenceLow, ConfidenceUncertain}
}

// ClassificationSource records which mechanism suggested a classification.
type ClassificationSource string

const (
	ClassifiedByRule       ClassificationSource = "rule"
	ClassifiedByAI         ClassificationSource = "ai"
	ClassifiedByHistory    ClassificationSource = "historical"
	ClassifiedByClient     ClassificationSource = "client"
	ClassifiedByAccountant ClassificationSource = "accountant"
)

func (c ClassificationSource) IsValid() bool {
	switch c {
	case ClassifiedByRule, ClassifiedByAI, ClassifiedByHistory, ClassifiedByClient, ClassifiedByAccountant:
		return true
	}
	return false
}

func (c ClassificationSource) String() string { return string(c) }

func ParseClassificationSource(raw string) (ClassificationSource, error) {
	v := ClassificationSource(raw)
	if !v.IsValid() {
		return "", sErrors.EnumViolation("source", raw)
	}
	return v, nil
}

func (c *ClassificationSource) UnmarshalJSON(data []byte) error {
	raw, err := decodeEnum(data, "source", func(v string) bool { return ClassificationSource(v).IsValid() })
	if err != nil {
		return err
	}
	*c = ClassificationSource(raw)
	return nil
}

func ClassificationSourceValues() []ClassificationSource {
	return []ClassificationSource{ClassifiedByRule, ClassifiedByAI, ClassifiedByHistory, ClassifiedByClient, ClassifiedByAccountant}
}

// ReviewStatus tracks human review of a suggested classification.
type ReviewStatus string

const (
	ReviewPending     ReviewStatus = "pending"
	ReviewApproved    ReviewStatus = "approved"
	ReviewRejected    ReviewStatus = "rejected"
	ReviewModified    ReviewStatus = "modified"
	ReviewAutoApplied ReviewStatus = "auto_applied"
)

func (r ReviewStatus) IsValid() bool {
	switch r {
	case ReviewPending, ReviewApproved, ReviewRejected, ReviewModified, ReviewAutoApplied:
		return true
	}
	return false
}

func (r ReviewStatus) String() string { return string(r) }

func ParseReviewStatus(raw string) (ReviewStatus, error) {
	v := ReviewStatus(raw)
	if !v.IsValid() {
		return "", sErrors.EnumViolation("review_status", raw)
	}
	return v, nil
}

func (r *ReviewStatus) UnmarshalJSON(data []byte) error {
	raw, err := decodeEnum(data, "review_status", func(v string) bool { return ReviewStatus(v).IsValid() })
	if err != nil {
		return err
	}
	*r = ReviewStatus(raw)
	return nil
}

func ReviewStatusValues() []ReviewStatus {
	return []ReviewStatus{ReviewPending, ReviewApproved, ReviewRejected, ReviewModified, ReviewAutoApplied}
}

// SuspenseReason explains why a transaction was parked in suspense.
type SuspenseReason string

const (
	SuspenseLowConfidence    SuspenseReason = "low_confidence"
	SuspenseNeedsClientInput SuspenseReason = "needs_client_input"
	SuspenseMonthlyCall      SuspenseReason = "monthly_call"
	SuspenseDeclined         SuspenseReason = "declined"
	SuspenseEscalated        SuspenseReason = "escalated_max_clarification"
)

func (s SuspenseReason) IsValid() bool {
	switch s {
	case SuspenseLowConfidence, SuspenseNeedsClientInput, SuspenseMonthlyCall, SuspenseDeclined, SuspenseEscalated:
		return true
	}
	return false
}

func (s SuspenseReason) String() string { return string(s) }

func ParseSuspenseReason(raw string) (SuspenseReason, error) {
	v := SuspenseReason(raw)
	if !v.IsValid() {
		return "", sErrors.EnumViolation("reason", raw)
	}
	return v, nil
}

func (s *SuspenseReason) UnmarshalJSON(data []byte) error {
	raw, err := decodeEnum(data, "reason", func(v string) bool { return SuspenseReason(v).IsValid() })
	if err != nil {
		return err
	}
	*s = SuspenseReason(raw)
	return nil
}

func SuspenseReasonValues() []SuspenseReason {
	return []SuspenseReason{SuspenseLowConfidence, SuspenseNeedsClientInput, SuspenseMonthlyCall, SuspenseDeclined, SuspenseEscalated}
}

// RiskSeverity grades a risk flag.
type RiskSeverity string

const (
	RiskLow      RiskSeverity = "low"
	RiskMedium   RiskSeverity = "medium"
	RiskHigh     RiskSeverity = "high"
	RiskCritical RiskSeverity = "critical"
)

func (r RiskSeverity) IsValid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh, RiskCritical:
		return true
	}
	return false
}

func (r RiskSeverity) String() string { return string(r) }

func ParseRiskSeverity(raw string) (RiskSeverity, error) {
	v := RiskSeverity(raw)
	if !v.IsValid() {
		return "", sErrors.EnumViolation("severity", raw)
	}
	return v, nil
}

func (r *RiskSeverity) UnmarshalJSON(data []byte) error {
	raw, err := decodeEnum(data, "severity", func(v string) bool { return RiskSeverity(v).IsValid() })
	if err != nil {
		return err
	}
	*r = RiskSeverity(raw)
	return nil
}

func RiskSeverityValues() []RiskSeverity {
	return []RiskSeverity{RiskLow, RiskMedium, RiskHigh, RiskCritical}
}

// MessageDirection distinguishes inbound client replies from outbound sends.
type MessageDirection string

const (
	DirectionInbound  MessageDirection = "inbound"
	DirectionOutbound MessageDirection = "outbound"
)

func (m MessageDirection) IsValid() bool {
	return m == DirectionInbound || m == DirectionOutbound
}

func (m MessageDirection) String() string { return string(m) }

func ParseMessageDirection(raw string) (MessageDirection, error) {
	v := MessageDirection(raw)
	if !v.IsValid() {
		return "", sErrors.EnumViolation("direction", raw)
	}
	return v, nil
}

func (m *MessageDirection) UnmarshalJSON(data []byte) error {
	raw, err := decodeEnum(data, "direction", func(v string) bool { return MessageDirection(v).IsValid() })
	if err != nil {
		return err
	}
	*m = MessageDirection(raw)
	return nil
}

func MessageDirectionValues() []MessageDirection {
	return []MessageDirection{DirectionInbound, DirectionOutbound}
}

// MessageStatus is the delivery lifecycle of a message.
type MessageStatus string

const (
	MessageQueued    MessageStatus = "queued"
	MessageSent      MessageStatus = "sent"
	MessageDelivered MessageStatus = "delivered"
	MessageRead      MessageStatus = "read"
	MessageFailed    MessageStatus = "failed"
)

func (m MessageStatus) IsValid() bool {
	switch m {
	case MessageQueued, MessageSent, MessageDelivered, MessageRead, MessageFailed:
		return true
	}
	return false
}

func (m MessageStatus) String() string { return string(m) }

func ParseMessageStatus(raw string) (MessageStatus, error) {
	v := MessageStatus(raw)
	if !v.IsValid() {
		return "", sErrors.EnumViolation("status", raw)
	}
	return v, nil
}

func (m *MessageStatus) UnmarshalJSON(data []byte) error {
	raw, err := decodeEnum(data, "status", func(v string) bool { return MessageStatus(v).IsValid() })
	if err != nil {
		return err
	}
	*m = MessageStatus(raw)
	return nil
}

func MessageStatusValues() []MessageStatus {
	return []MessageStatus{MessageQueued, MessageSent, MessageDelivered, MessageRead, MessageFailed}
}

// ConversationStatus is the lifecycle of a stateful conversation.
type ConversationStatus string

const (
	ConversationActive       ConversationStatus = "active"
	ConversationWaitingReply ConversationStatus = "waiting_reply"
	ConversationTimedOut     ConversationStatus = "timed_out"
	ConversationCompleted    ConversationStatus = "completed"
)

func (c ConversationStatus) IsValid() bool {
	switch c {
	case ConversationActive, ConversationWaitingReply, ConversationTimedOut, ConversationCompleted:
		return true
	}
	return false
}

func (c ConversationStatus) String() string { return string(c) }

func ParseConversationStatus(raw string) (ConversationStatus, error) {
	v := ConversationStatus(raw)
	if !v.IsValid() {
		return "", sErrors.EnumViolation("status", raw)
	}
	return v, nil
}

func (c *ConversationStatus) UnmarshalJSON(data []byte) error {
	raw, err := decodeEnum(data, "status", func(v string) bool { return ConversationStatus(v).IsValid() })
	if err != nil {
		return err
	}
	*c = ConversationStatus(raw)
	return nil
}

func ConversationStatusValues() []ConversationStatus {
	return []ConversationStatus{ConversationActive, ConversationWaitingReply, ConversationTimedOut, ConversationCompleted}
}

// EntityType is the legal structure of a client business.
type EntityType string

const (
	EntitySoleProprietor EntityType = "sole_proprietor"
	EntityLLC            EntityType = "llc"
	EntitySCorp          EntityType = "s_corp"
	EntityCCorp          EntityType = "c_corp"
	EntityPartnership    EntityType = "partnership"
)

func (e EntityType) IsValid() bool {
	switch e {
	case EntitySoleProprietor, EntityLLC, EntitySCorp, EntityCCorp, EntityPartnership:
		return true
	}
	return false
}

func (e EntityType) String() string { return string(e) }

func ParseEntityType(raw string) (EntityType, error) {
	v := EntityType(raw)
	if !v.IsValid() {
		return "", sErrors.EnumViolation("entity_type", raw)
	}
	return v, nil
}

func (e *EntityType) UnmarshalJSON(data []byte) error {
	raw, err := decodeEnum(data, "entity_type", func(v string) bool { return EntityType(v).IsValid() })
	if err != nil {
		return err
	}
	*e = EntityType(raw)
	return nil
}

func EntityTypeValues() []EntityType {
	return []EntityType{EntitySoleProprietor, EntityLLC, EntitySCorp, EntityCCorp, EntityPartnership}
}

// TaxFilingType is the federal return the business files.
type TaxFilingType string

const (
	FilingScheduleC TaxFilingType = "schedule_c"
	FilingForm1120S TaxFilingType = "form_1120s"
	FilingForm1120  TaxFilingType = "form_1120"
	FilingForm1065  TaxFilingType = "form_1065"
)

func (t TaxFilingType) IsValid() bool {
	switch t {
	case FilingScheduleC, FilingForm1120S, FilingForm1120, FilingForm1065:
		return true
	}
	return false
}

func (t TaxFilingType) String() string { return string(t) }

func ParseTaxFilingType(raw string) (TaxFilingType, error) {
	v := TaxFilingType(raw)
	if !v.IsValid() {
		return "", sErrors.EnumViolation("filing_type", raw)
	}
	return v, nil
}

func (t *TaxFilingType) UnmarshalJSON(data []byte) error {
	raw, err := decodeEnum(data, "filing_type", func(v string) bool { return TaxFilingType(v).IsValid() })
	if err != nil {
		return err
	}
	*t = TaxFilingType(raw)
	return nil
}

func TaxFilingTypeValues() []TaxFilingType {
	return []TaxFilingType{FilingScheduleC, FilingForm1120S, FilingForm1120, FilingForm1065}
}
