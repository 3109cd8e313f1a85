package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/mmynk/splitledger/internal/ledger"
	"github.com/mmynk/splitledger/internal/models"
)

func TestWriteXLSX(t *testing.T) {
	s := ledger.State{
		Currency: "EUR",
		Users:    []models.User{{ID: "u1", Name: "Alice"}, {ID: "u2", Name: "Bob"}},
		Expenses: []models.Expense{{
			ID:           "e1",
			Amount:       decimal.RequireFromString("90"),
			Category:     models.CategoryFood,
			Description:  "Dinner",
			Date:         time.Date(2024, 1, 2, 19, 30, 0, 0, time.UTC),
			Currency:     "EUR",
			PaidBy:       "u1",
			SplitBetween: []models.UserID{"u1", "u2", "u3"},
		}},
		Budgets: []models.Budget{{
			Category: models.CategoryFood,
			Limit:    decimal.RequireFromString("100"),
			Spent:    decimal.RequireFromString("90"),
			Currency: "EUR",
		}},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, s))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(expensesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Dinner", rows[1][2])
	assert.Equal(t, "Alice", rows[1][6])
	assert.Equal(t, "Alice, Bob, Unknown", rows[1][7])
	assert.Equal(t, "30", rows[1][8])

	budgets, err := f.GetRows(budgetsSheet)
	require.NoError(t, err)
	require.Len(t, budgets, 2)
	assert.Equal(t, []string{"Food", "100", "90", "EUR", "near"}, budgets[1])
}
