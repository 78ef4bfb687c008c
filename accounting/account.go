package accounting

import (
	"fmt"

	"contracts/common"
	"contracts/enums"
	"contracts/internal/wire"
	sErrors "contracts/pkg/schema-errors"
)

// Account is a chart-of-accounts node. Parent references form a tree:
// an account never parents itself, and ValidateChart rejects cycles and
// dangling parents across a full chart.
type Account struct {
	ID            common.AccountID  `json:"id"`
	Name          string            `json:"name"`
	Type          enums.AccountType `json:"account_type"`
	SubType       string            `json:"sub_type,omitempty"`
	AccountNumber string            `json:"account_number,omitempty"`
	ScheduleCLine string            `json:"schedule_c_line,omitempty"`
	ParentID      common.AccountID  `json:"parent_id,omitempty"`
	IsActive      bool              `json:"is_active"`
}

// NewAccount constructs a validated, active Account.
func NewAccount(id common.AccountID, name string, accountType enums.AccountType) (Account, error) {
	a := Account{ID: id, Name: name, Type: accountType, IsActive: true}
	if err := a.Validate(); err != nil {
		return Account{}, err
	}
	return a, nil
}

func (a Account) Validate() error {
	if a.ID.IsZero() {
		return sErrors.Missing("id")
	}
	if a.Name == "" {
		return sErrors.Missing("name")
	}
	if a.Type == "" {
		return sErrors.Missing("account_type")
	}
	if !a.Type.IsValid() {
		return sErrors.EnumViolation("account_type", a.Type)
	}
	if a.ParentID == a.ID {
		return sErrors.Invariant("parent_id", "account cannot be its own parent")
	}
	return nil
}

// WithParent returns a copy of the account re-parented under parentID.
func (a Account) WithParent(parentID common.AccountID) (Account, error) {
	if parentID == a.ID {
		return Account{}, sErrors.Invariant("parent_id", "account cannot be its own parent")
	}
	a.ParentID = parentID
	return a, nil
}

func (a *Account) UnmarshalJSON(data []byte) error {
	type alias Account
	var raw alias
	if err := wire.Decode(data, &raw, "account"); err != nil {
		return err
	}
	decoded := Account(raw)
	if err := decoded.Validate(); err != nil {
		return err
	}
	*a = decoded
	return nil
}

// ValidateChart checks a full chart of accounts: IDs are unique, every
// parent reference resolves, and the parent links form a forest (no cycles).
func ValidateChart(accounts []Account) error {
	parents := make(map[common.AccountID]common.AccountID, len(accounts))
	for i, a := range accounts {
		if err := a.Validate(); err != nil {
			return err
		}
		if _, dup := parents[a.ID]; dup {
			return sErrors.Invariant(fmt.Sprintf("accounts.%d.id", i),
				fmt.Sprintf("duplicate account id %q", a.ID))
		}
		parents[a.ID] = a.ParentID
	}
	for i, a := range accounts {
		if !a.ParentID.IsZero() {
			if _, ok := parents[a.ParentID]; !ok {
				return sErrors.Invariant(fmt.Sprintf("accounts.%d.parent_id", i),
					fmt.Sprintf("parent %q does not exist in the chart", a.ParentID))
			}
		}
	}
	// Walk each node to the root; revisiting a node within one walk is a cycle.
	for i, a := range accounts {
		seen := map[common.AccountID]bool{a.ID: true}
		for cur := a.ParentID; !cur.IsZero(); cur = parents[cur] {
			if seen[cur] {
				return sErrors.Invariant(fmt.Sprintf("accounts.%d.parent_id", i),
					fmt.Sprintf("parent chain of %q contains a cycle", a.ID))
			}
			seen[cur] = true
		}
	}
	return nil
}
