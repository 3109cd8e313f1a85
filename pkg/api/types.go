// Package api defines the wire types of the LedgerService RPC surface.
//
// Messages are plain Go structs encoded as JSON. Amounts travel as decimal
// strings so no precision is lost between client and server.
package api

import "time"

// User is a person who pays for or shares expenses.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Expense is a recorded outlay with its derived per-person share.
type Expense struct {
	ID           string    `json:"id"`
	Amount       string    `json:"amount"`
	Category     string    `json:"category"`
	Description  string    `json:"description"`
	Date         time.Time `json:"date"`
	Currency     string    `json:"currency"`
	PaidBy       string    `json:"paidBy"`
	SplitBetween []string  `json:"splitBetween"`
	Share        string    `json:"share"`
}

// Budget is a category ceiling with its derived status.
type Budget struct {
	Category string `json:"category"`
	Limit    string `json:"limit"`
	Spent    string `json:"spent"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
	Message  string `json:"message,omitempty"`
	Progress string `json:"progress"`
}

// Balance is one user's position across all expenses.
type Balance struct {
	UserID     string `json:"userId"`
	TotalPaid  string `json:"totalPaid"`
	TotalOwed  string `json:"totalOwed"`
	NetBalance string `json:"netBalance"`
}

// Debt is a simplified payment that would settle balances.
type Debt struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Amount string `json:"amount"`
}

// Currency is a selectable currency.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
}

type GetLedgerRequest struct{}

// GetLedgerResponse is the full read model shown by the presentation layer.
type GetLedgerResponse struct {
	Currency            string     `json:"currency"`
	CurrencySymbol      string     `json:"currencySymbol"`
	TotalSpent          string     `json:"totalSpent"`
	Expenses            []Expense  `json:"expenses"`
	Users               []User     `json:"users"`
	Budgets             []Budget   `json:"budgets"`
	Balances            []Balance  `json:"balances"`
	Debts               []Debt     `json:"debts"`
	AvailableCategories []string   `json:"availableCategories"`
	Categories          []string   `json:"categories"`
	Currencies          []Currency `json:"currencies"`
}

type AddUserRequest struct {
	Name string `json:"name"`
}

type AddUserResponse struct {
	User User `json:"user"`
}

// ExpenseFields are the user-editable fields of an expense.
type ExpenseFields struct {
	Amount       string   `json:"amount"`
	Category     string   `json:"category"`
	Description  string   `json:"description"`
	PaidBy       string   `json:"paidBy"`
	SplitBetween []string `json:"splitBetween"`
}

type AddExpenseRequest struct {
	ExpenseFields
}

type AddExpenseResponse struct {
	Expense Expense `json:"expense"`
}

type EditExpenseRequest struct {
	ID string `json:"id"`
	ExpenseFields
}

// EditExpenseResponse reports Found=false when the id does not exist.
type EditExpenseResponse struct {
	Found bool `json:"found"`
}

func (r *EditExpenseResponse) GetFound() bool { return r != nil && r.Found }

type DeleteExpenseRequest struct {
	ID string `json:"id"`
}

type DeleteExpenseResponse struct {
	Found bool `json:"found"`
}

func (r *DeleteExpenseResponse) GetFound() bool { return r != nil && r.Found }

type AddBudgetRequest struct {
	Category string `json:"category"`
	Limit    string `json:"limit"`
}

type AddBudgetResponse struct {
	Budget Budget `json:"budget"`
}

type EditBudgetRequest struct {
	Category string `json:"category"`
	Limit    string `json:"limit"`
}

type EditBudgetResponse struct {
	Found bool `json:"found"`
}

func (r *EditBudgetResponse) GetFound() bool { return r != nil && r.Found }

type DeleteBudgetRequest struct {
	Category string `json:"category"`
}

type DeleteBudgetResponse struct {
	Found bool `json:"found"`
}

func (r *DeleteBudgetResponse) GetFound() bool { return r != nil && r.Found }

type SetCurrencyRequest struct {
	Code string `json:"code"`
}

type SetCurrencyResponse struct {
	Currency string `json:"currency"`
}
