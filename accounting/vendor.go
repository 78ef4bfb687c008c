package accounting

import (
	"contracts/common"
	"contracts/internal/wire"
	sErrors "contracts/pkg/schema-errors"
)

// Vendor is a payee reference carried on transactions and journal lines.
type Vendor struct {
	ID             common.VendorID `json:"id"`
	Name           string          `json:"name"`
	DisplayName    string          `json:"display_name,omitempty"`
	Is1099Eligible bool            `json:"is_1099_eligible"`
	IsActive       bool            `json:"is_active"`
}

// NewVendor constructs a validated, active Vendor.
func NewVendor(id common.VendorID, name string) (Vendor, error) {
	v := Vendor{ID: id, Name: name, IsActive: true}
	if err := v.Validate(); err != nil {
		return Vendor{}, err
	}
	return v, nil
}

func (v Vendor) Validate() error {
	if v.ID.IsZero() {
		return sErrors.Missing("id")
	}
	if v.Name == "" {
		return sErrors.Missing("name")
	}
	return nil
}

func (v *Vendor) UnmarshalJSON(data []byte) error {
	type alias Vendor
	var raw alias
	if err := wire.Decode(data, &raw, "vendor"); err != nil {
		return err
	}
	decoded := Vendor(raw)
	if err := decoded.Validate(); err != nil {
		return err
	}
	*v = decoded
	return nil
}
