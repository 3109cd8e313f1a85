package models

import "github.com/shopspring/decimal"

// Budget represents a spending ceiling for one category.
// At most one budget exists per category.
type Budget struct {
	// Category is the unique key of the budget.
	Category Category `json:"category"`

	// Limit is the spending ceiling. Only field editable by a user.
	Limit decimal.Decimal `json:"limit"`

	// Spent is derived from the expenses sharing the category.
	// Never set directly by a user action.
	Spent decimal.Decimal `json:"spent"`

	// Currency is the selected currency code at creation or last relabel.
	Currency CurrencyCode `json:"currency"`
}

// BudgetStatus classifies how much of a budget is used.
type BudgetStatus int

const (
	// StatusNormal means less than 80% used.
	StatusNormal BudgetStatus = iota
	// StatusNear means at least 80% and less than 100% used.
	StatusNear
	// StatusExceeded means 100% or more used.
	StatusExceeded
)

func (s BudgetStatus) String() string {
	switch s {
	case StatusNear:
		return "near"
	case StatusExceeded:
		return "exceeded"
	default:
		return "normal"
	}
}

// Message returns the warning shown next to a budget, empty for StatusNormal.
func (s BudgetStatus) Message() string {
	switch s {
	case StatusNear:
		return "Near budget limit!"
	case StatusExceeded:
		return "Budget exceeded!"
	default:
		return ""
	}
}
