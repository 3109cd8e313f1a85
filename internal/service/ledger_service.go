package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/ledger"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/pkg/api"
)

// LedgerService exposes the ledger manager over Connect.
type LedgerService struct {
	ledger *ledger.Manager
}

// NewLedgerService creates a new LedgerService backed by the given manager.
func NewLedgerService(m *ledger.Manager) *LedgerService {
	return &LedgerService{ledger: m}
}

// NewLedgerServiceHandler builds the HTTP handler serving every LedgerService procedure.
// It returns the path prefix to mount it on.
func NewLedgerServiceHandler(svc *LedgerService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(api.Codec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(api.GetLedgerProcedure, connect.NewUnaryHandler(api.GetLedgerProcedure, svc.GetLedger, opts...))
	mux.Handle(api.AddUserProcedure, connect.NewUnaryHandler(api.AddUserProcedure, svc.AddUser, opts...))
	mux.Handle(api.AddExpenseProcedure, connect.NewUnaryHandler(api.AddExpenseProcedure, svc.AddExpense, opts...))
	mux.Handle(api.EditExpenseProcedure, connect.NewUnaryHandler(api.EditExpenseProcedure, svc.EditExpense, opts...))
	mux.Handle(api.DeleteExpenseProcedure, connect.NewUnaryHandler(api.DeleteExpenseProcedure, svc.DeleteExpense, opts...))
	mux.Handle(api.AddBudgetProcedure, connect.NewUnaryHandler(api.AddBudgetProcedure, svc.AddBudget, opts...))
	mux.Handle(api.EditBudgetProcedure, connect.NewUnaryHandler(api.EditBudgetProcedure, svc.EditBudget, opts...))
	mux.Handle(api.DeleteBudgetProcedure, connect.NewUnaryHandler(api.DeleteBudgetProcedure, svc.DeleteBudget, opts...))
	mux.Handle(api.SetCurrencyProcedure, connect.NewUnaryHandler(api.SetCurrencyProcedure, svc.SetCurrency, opts...))

	return "/" + api.ServiceName + "/", mux
}

// toConnectError maps ledger errors onto Connect codes.
func toConnectError(err error) error {
	switch {
	case errors.Is(err, models.ErrInvalidAmount):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, ledger.ErrDuplicateBudgetCategory):
		return connect.NewError(connect.CodeAlreadyExists, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

func toUserIDs(ids []string) []models.UserID {
	out := make([]models.UserID, len(ids))
	for i, id := range ids {
		out[i] = models.UserID(id)
	}
	return out
}

func toExpenseInput(f api.ExpenseFields) ledger.ExpenseInput {
	return ledger.ExpenseInput{
		Amount:       f.Amount,
		Category:     models.Category(f.Category),
		Description:  f.Description,
		PaidBy:       models.UserID(f.PaidBy),
		SplitBetween: toUserIDs(f.SplitBetween),
	}
}

// GetLedger returns the full read model: base collections plus every derived value.
func (s *LedgerService) GetLedger(ctx context.Context, req *connect.Request[api.GetLedgerRequest]) (*connect.Response[api.GetLedgerResponse], error) {
	state := s.ledger.Snapshot()

	resp := &api.GetLedgerResponse{
		Currency:       string(state.Currency),
		CurrencySymbol: models.CurrencySymbol(state.Currency),
		TotalSpent:     calculator.TotalSpent(state.Expenses).StringFixed(2),
		Expenses:       make([]api.Expense, len(state.Expenses)),
		Users:          make([]api.User, len(state.Users)),
		Budgets:        make([]api.Budget, len(state.Budgets)),
	}
	for i, e := range state.Expenses {
		resp.Expenses[i] = expenseToAPI(e)
	}
	for i, u := range state.Users {
		resp.Users[i] = api.User{ID: string(u.ID), Name: u.Name}
	}
	for i, b := range state.Budgets {
		resp.Budgets[i] = budgetToAPI(b)
	}

	balances, debts := calculator.CalculateBalances(state.Expenses)
	for _, b := range balances {
		resp.Balances = append(resp.Balances, api.Balance{
			UserID:     string(b.UserID),
			TotalPaid:  b.TotalPaid.StringFixed(2),
			TotalOwed:  b.TotalOwed.StringFixed(2),
			NetBalance: b.NetBalance.StringFixed(2),
		})
	}
	for _, d := range debts {
		resp.Debts = append(resp.Debts, api.Debt{
			From:   string(d.From),
			To:     string(d.To),
			Amount: d.Amount.StringFixed(2),
		})
	}

	for _, c := range models.AvailableCategories(state.Budgets) {
		resp.AvailableCategories = append(resp.AvailableCategories, string(c))
	}
	for _, c := range models.Categories {
		resp.Categories = append(resp.Categories, string(c))
	}
	for _, c := range models.Currencies {
		resp.Currencies = append(resp.Currencies, api.Currency{Code: string(c.Code), Symbol: c.Symbol})
	}

	return connect.NewResponse(resp), nil
}

func expenseToAPI(e models.Expense) api.Expense {
	split := make([]string, len(e.SplitBetween))
	for i, id := range e.SplitBetween {
		split[i] = string(id)
	}
	return api.Expense{
		ID:           string(e.ID),
		Amount:       e.Amount.String(),
		Category:     string(e.Category),
		Description:  e.Description,
		Date:         e.Date,
		Currency:     string(e.Currency),
		PaidBy:       string(e.PaidBy),
		SplitBetween: split,
		Share:        calculator.SplitShare(e).StringFixed(2),
	}
}

func budgetToAPI(b models.Budget) api.Budget {
	status := calculator.BudgetStatus(b)
	return api.Budget{
		Category: string(b.Category),
		Limit:    b.Limit.String(),
		Spent:    b.Spent.String(),
		Currency: string(b.Currency),
		Status:   status.String(),
		Message:  status.Message(),
		Progress: calculator.BudgetProgress(b).StringFixed(2),
	}
}

// AddUser creates a user.
func (s *LedgerService) AddUser(ctx context.Context, req *connect.Request[api.AddUserRequest]) (*connect.Response[api.AddUserResponse], error) {
	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("name is required"))
	}

	user := s.ledger.AddUser(ctx, name)

	return connect.NewResponse(&api.AddUserResponse{
		User: api.User{ID: string(user.ID), Name: user.Name},
	}), nil
}

// AddExpense records an expense.
func (s *LedgerService) AddExpense(ctx context.Context, req *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	slog.Debug("AddExpense request received",
		"amount", req.Msg.Amount,
		"category", req.Msg.Category,
		"paid_by", req.Msg.PaidBy,
		"split_count", len(req.Msg.SplitBetween),
	)

	e, err := s.ledger.AddExpense(ctx, toExpenseInput(req.Msg.ExpenseFields))
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.AddExpenseResponse{Expense: expenseToAPI(e)}), nil
}

// EditExpense updates an expense. Unknown ids report Found=false.
func (s *LedgerService) EditExpense(ctx context.Context, req *connect.Request[api.EditExpenseRequest]) (*connect.Response[api.EditExpenseResponse], error) {
	found, err := s.ledger.EditExpense(ctx, models.ExpenseID(req.Msg.ID), toExpenseInput(req.Msg.ExpenseFields))
	if err != nil {
		return nil, toConnectError(err)
	}
	if !found {
		slog.Warn("EditExpense: expense not found", "expense_id", req.Msg.ID)
	}
	return connect.NewResponse(&api.EditExpenseResponse{Found: found}), nil
}

// DeleteExpense removes an expense. Unknown ids report Found=false.
func (s *LedgerService) DeleteExpense(ctx context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	found := s.ledger.DeleteExpense(ctx, models.ExpenseID(req.Msg.ID))
	if found {
		slog.Info("Expense deleted", "expense_id", req.Msg.ID)
	}
	return connect.NewResponse(&api.DeleteExpenseResponse{Found: found}), nil
}

// AddBudget creates a budget for a category without one.
func (s *LedgerService) AddBudget(ctx context.Context, req *connect.Request[api.AddBudgetRequest]) (*connect.Response[api.AddBudgetResponse], error) {
	b, err := s.ledger.AddBudget(ctx, models.Category(req.Msg.Category), req.Msg.Limit)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.AddBudgetResponse{Budget: budgetToAPI(b)}), nil
}

// EditBudget changes a budget's limit. Unknown categories report Found=false.
func (s *LedgerService) EditBudget(ctx context.Context, req *connect.Request[api.EditBudgetRequest]) (*connect.Response[api.EditBudgetResponse], error) {
	found, err := s.ledger.EditBudget(ctx, models.Category(req.Msg.Category), req.Msg.Limit)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.EditBudgetResponse{Found: found}), nil
}

// DeleteBudget removes a budget. The client confirms with the user beforehand.
func (s *LedgerService) DeleteBudget(ctx context.Context, req *connect.Request[api.DeleteBudgetRequest]) (*connect.Response[api.DeleteBudgetResponse], error) {
	found := s.ledger.DeleteBudget(ctx, models.Category(req.Msg.Category))
	if found {
		slog.Info("Budget deleted", "category", req.Msg.Category)
	}
	return connect.NewResponse(&api.DeleteBudgetResponse{Found: found}), nil
}

// SetCurrency selects the currency and relabels every expense and budget.
func (s *LedgerService) SetCurrency(ctx context.Context, req *connect.Request[api.SetCurrencyRequest]) (*connect.Response[api.SetCurrencyResponse], error) {
	code := models.CurrencyCode(req.Msg.Code)
	if !models.IsCurrency(code) {
		slog.Warn("SetCurrency: code outside offered set", "currency", code)
	}
	s.ledger.SetCurrency(ctx, code)
	return connect.NewResponse(&api.SetCurrencyResponse{Currency: string(code)}), nil
}
