package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when an amount or limit is not a number.
var ErrInvalidAmount = errors.New("invalid amount")

// ExpenseID identifies an Expense.
type ExpenseID string

// Expense represents a single recorded outlay.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	// Immutable after creation.
	ID ExpenseID `json:"id"`

	// Amount is the total paid.
	Amount decimal.Decimal `json:"amount"`

	// Category joins the expense to a Budget by name.
	Category Category `json:"category"`

	// Description is free text (e.g., "Groceries").
	Description string `json:"description"`

	// Date is stamped when the expense is added and never changes.
	Date time.Time `json:"date"`

	// Currency is the selected currency code at the last add, edit or relabel.
	Currency CurrencyCode `json:"currency"`

	// PaidBy is the user who paid the full amount.
	PaidBy UserID `json:"paidBy"`

	// SplitBetween lists the users sharing the cost equally.
	// Never empty: defaults to PaidBy.
	SplitBetween []UserID `json:"splitBetween"`
}

// Bounds on accepted amounts: at most maxAmountScale fractional digits
// and maxAmountIntDigits integer digits.
const (
	maxAmountScale     = 8
	maxAmountIntDigits = 20
)

// NormalizeSplit returns split as a set in first-seen order,
// or a single-element split of paidBy when split is empty.
func NormalizeSplit(paidBy UserID, split []UserID) []UserID {
	if len(split) == 0 {
		return []UserID{paidBy}
	}
	seen := make(map[UserID]struct{}, len(split))
	out := make([]UserID, 0, len(split))
	for _, id := range split {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// ParseAmount parses a decimal amount typed by a user.
// Both "12.34" and "12,34" are accepted; thousands separators are not.
// Values beyond maxAmountIntDigits integer digits or maxAmountScale
// fractional digits are rejected.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if d.Exponent() < -maxAmountScale || d.NumDigits()+int(d.Exponent()) > maxAmountIntDigits {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// Clone returns a deep copy of the expense.
func (e Expense) Clone() Expense {
	e.SplitBetween = append([]UserID(nil), e.SplitBetween...)
	return e
}
