package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/models"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAddExpenseNormalizesSplitAndOrder(t *testing.T) {
	s := State{Currency: "USD"}

	s1, ch, err := AddExpense(s, "e1", testNow, ExpenseInput{Amount: "100", Category: models.CategoryFood, PaidBy: "u1"})
	require.NoError(t, err)
	assert.Equal(t, ChangeExpenses, ch)
	require.Len(t, s1.Expenses, 1)
	assert.Equal(t, []models.UserID{"u1"}, s1.Expenses[0].SplitBetween)
	assert.Equal(t, models.CurrencyCode("USD"), s1.Expenses[0].Currency)
	assert.Equal(t, testNow, s1.Expenses[0].Date)

	s2, _, err := AddExpense(s1, "e2", testNow.Add(time.Minute), ExpenseInput{Amount: "5", Category: models.CategoryBills, PaidBy: "u2"})
	require.NoError(t, err)
	require.Len(t, s2.Expenses, 2)
	assert.Equal(t, models.ExpenseID("e2"), s2.Expenses[0].ID, "newest expense must come first")

	assert.Empty(t, s.Expenses, "input state must not change")
	assert.Len(t, s1.Expenses, 1, "input state must not change")
}

func TestAddExpenseInvalidAmount(t *testing.T) {
	s := State{Currency: "USD"}
	next, ch, err := AddExpense(s, "e1", testNow, ExpenseInput{Amount: "ten", PaidBy: "u1"})
	require.ErrorIs(t, err, models.ErrInvalidAmount)
	assert.Zero(t, ch)
	assert.Empty(t, next.Expenses)
}

func TestEditExpense(t *testing.T) {
	s := State{Currency: "USD"}
	s, _, _ = AddExpense(s, "e1", testNow, ExpenseInput{Amount: "10", Category: models.CategoryFood, PaidBy: "u1"})
	s.Currency = "EUR"

	next, ch, err := EditExpense(s, "e1", ExpenseInput{
		Amount:      "20",
		Category:    models.CategoryBills,
		Description: "Power",
		PaidBy:      "u2",
	})
	require.NoError(t, err)
	assert.Equal(t, ChangeExpenses, ch)

	e, ok := next.Expense("e1")
	require.True(t, ok)
	assert.True(t, e.Amount.Equal(dec("20")))
	assert.Equal(t, models.CategoryBills, e.Category)
	assert.Equal(t, "Power", e.Description)
	assert.Equal(t, []models.UserID{"u2"}, e.SplitBetween)
	assert.Equal(t, models.CurrencyCode("EUR"), e.Currency)
	assert.Equal(t, testNow, e.Date, "date is immutable")

	orig, _ := s.Expense("e1")
	assert.True(t, orig.Amount.Equal(dec("10")), "input state must not change")
}

func TestEditExpenseMiss(t *testing.T) {
	s := State{Currency: "USD"}
	next, ch, err := EditExpense(s, "missing", ExpenseInput{Amount: "1"})
	require.NoError(t, err)
	assert.Zero(t, ch)
	assert.Equal(t, s, next)

	_, _, err = EditExpense(s, "missing", ExpenseInput{Amount: "x"})
	assert.ErrorIs(t, err, models.ErrInvalidAmount)
}

func TestDeleteExpense(t *testing.T) {
	s := State{Currency: "USD"}
	s, _, _ = AddExpense(s, "e1", testNow, ExpenseInput{Amount: "10", PaidBy: "u1"})
	s, _, _ = AddExpense(s, "e2", testNow, ExpenseInput{Amount: "20", PaidBy: "u1"})

	next, ch := DeleteExpense(s, "e1")
	assert.Equal(t, ChangeExpenses, ch)
	require.Len(t, next.Expenses, 1)
	assert.Equal(t, models.ExpenseID("e2"), next.Expenses[0].ID)
	assert.Len(t, s.Expenses, 2, "input state must not change")

	_, ch = DeleteExpense(next, "e1")
	assert.Zero(t, ch)
}

func TestAddBudgetSeedsSpent(t *testing.T) {
	s := State{Currency: "USD"}
	s, _, _ = AddExpense(s, "e1", testNow, ExpenseInput{Amount: "100", Category: models.CategoryFood, PaidBy: "u1"})
	s, _, _ = AddExpense(s, "e2", testNow, ExpenseInput{Amount: "7", Category: models.CategoryBills, PaidBy: "u1"})

	next, ch, err := AddBudget(s, models.CategoryFood, "100")
	require.NoError(t, err)
	assert.Equal(t, ChangeBudgets, ch)

	b, ok := next.Budget(models.CategoryFood)
	require.True(t, ok)
	assert.True(t, b.Spent.Equal(dec("100")))
	assert.Equal(t, models.CurrencyCode("USD"), b.Currency)
}

func TestAddBudgetDuplicate(t *testing.T) {
	s, _, err := AddBudget(State{}, models.CategoryFood, "100")
	require.NoError(t, err)

	next, ch, err := AddBudget(s, models.CategoryFood, "50")
	require.ErrorIs(t, err, ErrDuplicateBudgetCategory)
	assert.Zero(t, ch)
	require.Len(t, next.Budgets, 1)
	assert.True(t, next.Budgets[0].Limit.Equal(dec("100")))

	_, _, err = AddBudget(s, models.CategoryBills, "lots")
	assert.ErrorIs(t, err, models.ErrInvalidAmount)
}

func TestEditBudget(t *testing.T) {
	s, _, _ := AddBudget(State{}, models.CategoryFood, "100")
	s.Budgets[0].Spent = dec("42")

	next, ch, err := EditBudget(s, models.CategoryFood, "250")
	require.NoError(t, err)
	assert.Equal(t, ChangeBudgets, ch)
	assert.True(t, next.Budgets[0].Limit.Equal(dec("250")))
	assert.True(t, next.Budgets[0].Spent.Equal(dec("42")), "spent must be untouched")

	_, ch, err = EditBudget(s, models.CategoryShopping, "1")
	require.NoError(t, err)
	assert.Zero(t, ch)
}

func TestDeleteBudget(t *testing.T) {
	s, _, _ := AddBudget(State{}, models.CategoryFood, "100")

	next, ch := DeleteBudget(s, models.CategoryFood)
	assert.Equal(t, ChangeBudgets, ch)
	assert.Empty(t, next.Budgets)

	_, ch = DeleteBudget(next, models.CategoryFood)
	assert.Zero(t, ch)
}

func TestDeriveRecomputesAndRelabels(t *testing.T) {
	s := State{Currency: "USD"}
	s, _, _ = AddExpense(s, "e1", testNow, ExpenseInput{Amount: "30", Category: models.CategoryFood, PaidBy: "u1"})
	s, _, _ = AddBudget(s, models.CategoryFood, "100")
	s, _, _ = AddBudget(s, models.CategoryOther, "100")
	s, _, _ = AddExpense(s, "e2", testNow, ExpenseInput{Amount: "20", Category: models.CategoryFood, PaidBy: "u1"})

	derived, ch := Derive(s, ChangeExpenses)
	assert.True(t, ch.Has(ChangeExpenses|ChangeBudgets))
	food, _ := derived.Budget(models.CategoryFood)
	assert.True(t, food.Spent.Equal(dec("50")))
	other, _ := derived.Budget(models.CategoryOther)
	assert.True(t, other.Spent.IsZero())

	s, _ = SetCurrency(derived, "EUR")
	relabeled, ch := Derive(s, ChangeCurrency)
	assert.True(t, ch.Has(ChangeExpenses|ChangeBudgets|ChangeCurrency))
	for _, e := range relabeled.Expenses {
		assert.Equal(t, models.CurrencyCode("EUR"), e.Currency)
	}
	for _, b := range relabeled.Budgets {
		assert.Equal(t, models.CurrencyCode("EUR"), b.Currency)
	}
	for _, e := range s.Expenses {
		assert.Equal(t, models.CurrencyCode("USD"), e.Currency, "input state must not change")
	}
}

func TestAddUser(t *testing.T) {
	s, ch := AddUser(State{}, "u1", "Alice")
	assert.Equal(t, ChangeUsers, ch)
	s, _ = AddUser(s, "u2", "Alice")
	assert.Equal(t, []models.User{{ID: "u1", Name: "Alice"}, {ID: "u2", Name: "Alice"}}, s.Users)
}
