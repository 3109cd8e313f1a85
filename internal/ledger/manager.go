package ledger

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

// Manager is the single controller owning the ledger State.
// Transitions are serialized; readers only ever see fully derived states.
type Manager struct {
	mu    sync.RWMutex
	state State
	store storage.Store

	newID func() string
	now   func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithIDGenerator overrides uuid-based id generation.
func WithIDGenerator(fn func() string) Option {
	return func(m *Manager) { m.newID = fn }
}

// WithClock overrides time.Now for expense dates.
func WithClock(fn func() time.Time) Option {
	return func(m *Manager) { m.now = fn }
}

// NewManager loads the ledger from store. Missing or corrupt values start empty,
// with defaultCurrency selected. The loaded state is derived before use.
func NewManager(ctx context.Context, store storage.Store, defaultCurrency models.CurrencyCode, opts ...Option) *Manager {
	m := &Manager{
		store: store,
		newID: func() string { return uuid.New().String() },
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}

	loaded := State{
		Expenses: storage.Load(ctx, store, storage.KeyExpenses, []models.Expense{}),
		Users:    storage.Load(ctx, store, storage.KeyUsers, []models.User{}),
		Budgets:  storage.Load(ctx, store, storage.KeyBudgets, []models.Budget{}),
		Currency: storage.Load(ctx, store, storage.KeyCurrency, defaultCurrency),
	}
	m.state, _ = Derive(loaded, ChangeExpenses|ChangeCurrency)

	slog.Info("Ledger loaded",
		"expenses", len(m.state.Expenses),
		"users", len(m.state.Users),
		"budgets", len(m.state.Budgets),
		"currency", m.state.Currency,
	)
	return m
}

// Snapshot returns a deep copy of the current state.
func (m *Manager) Snapshot() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.Clone()
}

// apply runs a transition and the derivation pipeline, publishes the result
// and persists every changed value. It reports whether anything changed.
func (m *Manager) apply(ctx context.Context, op string, fn func(State) (State, Change, error)) (State, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next, ch, err := fn(m.state)
	if err != nil {
		slog.Debug("Ledger operation rejected", "op", op, "error", err)
		return m.state.Clone(), false, err
	}
	if ch == 0 {
		slog.Debug("Ledger operation matched nothing", "op", op)
		return m.state.Clone(), false, nil
	}

	next, ch = Derive(next, ch)
	m.state = next
	m.persist(ctx, ch)

	slog.Debug("Ledger operation applied", "op", op)
	return m.state.Clone(), true, nil
}

// persist saves every value in ch. Failures are logged, never returned.
func (m *Manager) persist(ctx context.Context, ch Change) {
	var errs []error
	if ch.Has(ChangeExpenses) {
		errs = append(errs, storage.Save(ctx, m.store, storage.KeyExpenses, m.state.Expenses))
	}
	if ch.Has(ChangeUsers) {
		errs = append(errs, storage.Save(ctx, m.store, storage.KeyUsers, m.state.Users))
	}
	if ch.Has(ChangeBudgets) {
		errs = append(errs, storage.Save(ctx, m.store, storage.KeyBudgets, m.state.Budgets))
	}
	if ch.Has(ChangeCurrency) {
		errs = append(errs, storage.Save(ctx, m.store, storage.KeyCurrency, m.state.Currency))
	}
	for _, err := range errs {
		if err != nil {
			slog.Error("Failed to persist ledger", "error", err)
		}
	}
}

// AddUser creates a user with a fresh id.
func (m *Manager) AddUser(ctx context.Context, name string) models.User {
	id := models.UserID(m.newID())
	s, _, _ := m.apply(ctx, "add_user", func(s State) (State, Change, error) {
		next, ch := AddUser(s, id, name)
		return next, ch, nil
	})
	slog.Info("User added", "user_id", id, "name", name)
	return s.Users[len(s.Users)-1]
}

// AddExpense records a new expense stamped with the current time and currency.
func (m *Manager) AddExpense(ctx context.Context, in ExpenseInput) (models.Expense, error) {
	id := models.ExpenseID(m.newID())
	now := m.now()
	s, _, err := m.apply(ctx, "add_expense", func(s State) (State, Change, error) {
		return AddExpense(s, id, now, in)
	})
	if err != nil {
		return models.Expense{}, err
	}
	e, _ := s.Expense(id)
	slog.Info("Expense added", "expense_id", id, "category", e.Category, "amount", e.Amount.String())
	return e, nil
}

// EditExpense updates expense id. It returns false if the expense does not exist.
func (m *Manager) EditExpense(ctx context.Context, id models.ExpenseID, in ExpenseInput) (bool, error) {
	_, found, err := m.apply(ctx, "edit_expense", func(s State) (State, Change, error) {
		return EditExpense(s, id, in)
	})
	return found, err
}

// DeleteExpense removes expense id. It returns false if the expense does not exist.
func (m *Manager) DeleteExpense(ctx context.Context, id models.ExpenseID) bool {
	_, found, _ := m.apply(ctx, "delete_expense", func(s State) (State, Change, error) {
		next, ch := DeleteExpense(s, id)
		return next, ch, nil
	})
	return found
}

// AddBudget creates a budget for category.
// Returns ErrDuplicateBudgetCategory if one exists, or models.ErrInvalidAmount.
func (m *Manager) AddBudget(ctx context.Context, category models.Category, limit string) (models.Budget, error) {
	s, _, err := m.apply(ctx, "add_budget", func(s State) (State, Change, error) {
		return AddBudget(s, category, limit)
	})
	if err != nil {
		return models.Budget{}, err
	}
	b, _ := s.Budget(category)
	slog.Info("Budget added", "category", category, "limit", b.Limit.String(), "spent", b.Spent.String())
	return b, nil
}

// EditBudget changes the limit for category. It returns false if there is no budget.
func (m *Manager) EditBudget(ctx context.Context, category models.Category, limit string) (bool, error) {
	_, found, err := m.apply(ctx, "edit_budget", func(s State) (State, Change, error) {
		return EditBudget(s, category, limit)
	})
	return found, err
}

// DeleteBudget removes the budget for category. It returns false if there is none.
// Confirmation is the caller's responsibility.
func (m *Manager) DeleteBudget(ctx context.Context, category models.Category) bool {
	_, found, _ := m.apply(ctx, "delete_budget", func(s State) (State, Change, error) {
		next, ch := DeleteBudget(s, category)
		return next, ch, nil
	})
	return found
}

// SetCurrency selects code and relabels every expense and budget with it.
func (m *Manager) SetCurrency(ctx context.Context, code models.CurrencyCode) {
	m.apply(ctx, "set_currency", func(s State) (State, Change, error) {
		next, ch := SetCurrency(s, code)
		return next, ch, nil
	})
	slog.Info("Currency selected", "currency", code)
}
