package metrics

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/internal/ledger"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage/memory"
)

func TestLedgerCollector(t *testing.T) {
	ctx := context.Background()
	m := ledger.NewManager(ctx, memory.New(), "USD")
	m.AddUser(ctx, "Alice")
	_, err := m.AddExpense(ctx, ledger.ExpenseInput{Amount: "12.5", Category: models.CategoryFood, PaidBy: "u1"})
	require.NoError(t, err)
	_, err = m.AddBudget(ctx, models.CategoryFood, "50")
	require.NoError(t, err)

	c := NewLedgerCollector(m)

	// expenses, users, total spent, budget spent, budget limit
	assert.Equal(t, 5, testutil.CollectAndCount(c))

	expected := `
# HELP splitledger_budget_spent Derived spent amount per budget
# TYPE splitledger_budget_spent gauge
splitledger_budget_spent{category="Food"} 12.5
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected), "splitledger_budget_spent"))
}
