package ledger

import (
	"errors"
	"time"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
)

// ErrDuplicateBudgetCategory is returned when a category already has a budget.
var ErrDuplicateBudgetCategory = errors.New("budget already exists for category")

// ExpenseInput holds the user-editable fields of an expense.
// Amount is the raw text typed by the user.
type ExpenseInput struct {
	Amount       string
	Category     models.Category
	Description  string
	PaidBy       models.UserID
	SplitBetween []models.UserID
}

// AddUser appends a user. Name validation is the caller's job.
func AddUser(s State, id models.UserID, name string) (State, Change) {
	s = s.Clone()
	s.Users = append(s.Users, models.User{ID: id, Name: name})
	return s, ChangeUsers
}

// AddExpense inserts a new expense at the head of the list, stamped with now
// and the selected currency.
func AddExpense(s State, id models.ExpenseID, now time.Time, in ExpenseInput) (State, Change, error) {
	amount, err := models.ParseAmount(in.Amount)
	if err != nil {
		return s, 0, err
	}

	e := models.Expense{
		ID:           id,
		Amount:       amount,
		Category:     in.Category,
		Description:  in.Description,
		Date:         now,
		Currency:     s.Currency,
		PaidBy:       in.PaidBy,
		SplitBetween: models.NormalizeSplit(in.PaidBy, in.SplitBetween),
	}

	s = s.Clone()
	s.Expenses = append([]models.Expense{e}, s.Expenses...)
	return s, ChangeExpenses, nil
}

// EditExpense replaces the editable fields of expense id and re-stamps its currency.
// A zero Change means id was not found.
func EditExpense(s State, id models.ExpenseID, in ExpenseInput) (State, Change, error) {
	amount, err := models.ParseAmount(in.Amount)
	if err != nil {
		return s, 0, err
	}

	idx := -1
	for i, e := range s.Expenses {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s, 0, nil
	}

	s = s.Clone()
	e := &s.Expenses[idx]
	e.Amount = amount
	e.Category = in.Category
	e.Description = in.Description
	e.PaidBy = in.PaidBy
	e.SplitBetween = models.NormalizeSplit(in.PaidBy, in.SplitBetween)
	e.Currency = s.Currency
	return s, ChangeExpenses, nil
}

// DeleteExpense removes expense id. A zero Change means id was not found.
func DeleteExpense(s State, id models.ExpenseID) (State, Change) {
	if _, ok := s.Expense(id); !ok {
		return s, 0
	}
	s = s.Clone()
	kept := s.Expenses[:0]
	for _, e := range s.Expenses {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.Expenses = kept
	return s, ChangeExpenses
}

// AddBudget creates a budget for category with spent seeded from existing expenses.
func AddBudget(s State, category models.Category, limit string) (State, Change, error) {
	l, err := models.ParseAmount(limit)
	if err != nil {
		return s, 0, err
	}
	if _, exists := s.Budget(category); exists {
		return s, 0, ErrDuplicateBudgetCategory
	}

	s = s.Clone()
	s.Budgets = append(s.Budgets, models.Budget{
		Category: category,
		Limit:    l,
		Spent:    calculator.CategorySpent(s.Expenses, category),
		Currency: s.Currency,
	})
	return s, ChangeBudgets, nil
}

// EditBudget replaces the limit of the budget for category. Spent is untouched.
// A zero Change means the category has no budget.
func EditBudget(s State, category models.Category, limit string) (State, Change, error) {
	l, err := models.ParseAmount(limit)
	if err != nil {
		return s, 0, err
	}
	if _, exists := s.Budget(category); !exists {
		return s, 0, nil
	}

	s = s.Clone()
	for i := range s.Budgets {
		if s.Budgets[i].Category == category {
			s.Budgets[i].Limit = l
		}
	}
	return s, ChangeBudgets, nil
}

// DeleteBudget removes the budget for category. A zero Change means none existed.
func DeleteBudget(s State, category models.Category) (State, Change) {
	if _, exists := s.Budget(category); !exists {
		return s, 0
	}
	s = s.Clone()
	kept := s.Budgets[:0]
	for _, b := range s.Budgets {
		if b.Category != category {
			kept = append(kept, b)
		}
	}
	s.Budgets = kept
	return s, ChangeBudgets
}

// SetCurrency changes the selected currency. The relabel sweep runs in Derive.
func SetCurrency(s State, code models.CurrencyCode) (State, Change) {
	s = s.Clone()
	s.Currency = code
	return s, ChangeCurrency
}

// Derive runs the derivation passes triggered by ch and returns the widened change set.
//   - expenses changed: every budget's Spent is recomputed
//   - currency changed: every expense and budget is relabeled (amounts untouched)
func Derive(s State, ch Change) (State, Change) {
	s = s.Clone()
	if ch.Has(ChangeExpenses) {
		s.Budgets = calculator.RecomputeBudgets(s.Expenses, s.Budgets)
		ch |= ChangeBudgets
	}
	if ch.Has(ChangeCurrency) {
		for i := range s.Expenses {
			s.Expenses[i].Currency = s.Currency
		}
		for i := range s.Budgets {
			s.Budgets[i].Currency = s.Currency
		}
		ch |= ChangeExpenses | ChangeBudgets
	}
	return s, ch
}
