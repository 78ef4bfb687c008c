package common

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	sErrors "contracts/pkg/schema-errors"
)

// Money is a monetary amount in integer minor units (cents for USD) with an
// ISO 4217 currency code.
//
// Invariants:
//   - Amount is a whole number of minor units (enforced on the wire too:
//     decoding a fractional amount fails, it is never rounded)
//   - Currency is exactly three uppercase ASCII letters
//   - Arithmetic across mismatched currencies is disallowed
type Money struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// NewMoney creates a validated Money value.
func NewMoney(amount int64, currency string) (Money, error) {
	if err := validateCurrency(currency); err != nil {
		return Money{}, err
	}
	return Money{Amount: amount, Currency: currency}, nil
}

// MustMoney creates a Money, panicking if invalid. Use only in tests or when
// the currency is known to be valid.
func MustMoney(amount int64, currency string) Money {
	m, err := NewMoney(amount, currency)
	if err != nil {
		panic(err)
	}
	return m
}

func validateCurrency(currency string) error {
	if currency == "" {
		return sErrors.Missing("currency")
	}
	if len(currency) != 3 {
		return sErrors.TypeMismatch("currency", "currency must be a 3-letter ISO 4217 code")
	}
	for i := 0; i < len(currency); i++ {
		if currency[i] < 'A' || currency[i] > 'Z' {
			return sErrors.TypeMismatch("currency", "currency must be a 3-letter ISO 4217 code")
		}
	}
	return nil
}

func (m Money) IsPositive() bool { return m.Amount > 0 }
func (m Money) IsNegative() bool { return m.Amount < 0 }
func (m Money) IsZero() bool     { return m.Amount == 0 }

// Equal reports field-for-field equality.
func (m Money) Equal(other Money) bool {
	return m == other
}

// Add returns m + other. Fails when the currencies differ.
func (m Money) Add(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, sErrors.Invariant("currency",
			fmt.Sprintf("cannot add %s to %s", other.Currency, m.Currency))
	}
	return Money{Amount: m.Amount + other.Amount, Currency: m.Currency}, nil
}

// Sub returns m - other. Fails when the currencies differ.
func (m Money) Sub(other Money) (Money, error) {
	if m.Currency != other.Currency {
		return Money{}, sErrors.Invariant("currency",
			fmt.Sprintf("cannot subtract %s from %s", other.Currency, m.Currency))
	}
	return Money{Amount: m.Amount - other.Amount, Currency: m.Currency}, nil
}

// Negate returns the amount with its sign flipped.
func (m Money) Negate() Money {
	return Money{Amount: -m.Amount, Currency: m.Currency}
}

func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.Amount, m.Currency)
}

// UnmarshalJSON decodes and validates the canonical wire form
// {"amount": <integer>, "currency": "USD"}. A fractional or string amount is
// a type mismatch, never coerced.
func (m *Money) UnmarshalJSON(data []byte) error {
	var raw struct {
		Amount   *json.Number `json:"amount"`
		Currency *string      `json:"currency"`
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return sErrors.Wrap(err, sErrors.CodeTypeMismatch, "amount", "money must be an object with integer amount")
	}
	if raw.Amount == nil {
		return sErrors.Missing("amount")
	}
	if raw.Currency == nil {
		return sErrors.Missing("currency")
	}
	amount, err := strconv.ParseInt(raw.Amount.String(), 10, 64)
	if err != nil {
		return sErrors.TypeMismatch("amount", "amount must be an integer number of minor units")
	}
	parsed, err := NewMoney(amount, *raw.Currency)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
