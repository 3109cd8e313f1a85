// Package ledger owns the expense ledger state and the rules that keep it consistent.
//
// Every mutation is a pure transition from one State to the next. The Manager
// runs each transition, then the derivation pipeline (budget recompute and
// currency relabel), and only then publishes the result, so no reader can
// observe a base change without its derived fields.
package ledger

import "github.com/mmynk/splitledger/internal/models"

// State is the full ledger: the four persisted values.
type State struct {
	// Expenses are ordered most recent first.
	Expenses []models.Expense
	Users    []models.User
	Budgets  []models.Budget
	Currency models.CurrencyCode
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	out := State{Currency: s.Currency}
	if s.Expenses != nil {
		out.Expenses = make([]models.Expense, len(s.Expenses))
		for i, e := range s.Expenses {
			out.Expenses[i] = e.Clone()
		}
	}
	if s.Users != nil {
		out.Users = append([]models.User(nil), s.Users...)
	}
	if s.Budgets != nil {
		out.Budgets = append([]models.Budget(nil), s.Budgets...)
	}
	return out
}

// Expense returns the expense with id.
func (s State) Expense(id models.ExpenseID) (models.Expense, bool) {
	for _, e := range s.Expenses {
		if e.ID == id {
			return e.Clone(), true
		}
	}
	return models.Expense{}, false
}

// Budget returns the budget for category.
func (s State) Budget(category models.Category) (models.Budget, bool) {
	for _, b := range s.Budgets {
		if b.Category == category {
			return b, true
		}
	}
	return models.Budget{}, false
}

// Change is a set of top-level values touched by a transition.
type Change uint8

const (
	ChangeExpenses Change = 1 << iota
	ChangeUsers
	ChangeBudgets
	ChangeCurrency
)

// Has reports whether c includes all of other.
func (c Change) Has(other Change) bool {
	return c&other == other
}
