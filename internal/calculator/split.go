package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
)

var (
	hundred       = decimal.NewFromInt(100)
	nearThreshold = decimal.NewFromInt(80)
)

// TotalSpent sums every expense amount regardless of category or currency.
func TotalSpent(expenses []models.Expense) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// CategorySpent sums the amounts of expenses in category.
func CategorySpent(expenses []models.Expense, category models.Category) decimal.Decimal {
	total := decimal.Zero
	for _, e := range expenses {
		if e.Category == category {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// RecomputeBudgets returns a copy of budgets with Spent re-derived from expenses.
// Budgets whose category has no expenses are kept with Spent set to zero.
// Spent is floored at zero.
func RecomputeBudgets(expenses []models.Expense, budgets []models.Budget) []models.Budget {
	totals := make(map[models.Category]decimal.Decimal)
	for _, e := range expenses {
		totals[e.Category] = totals[e.Category].Add(e.Amount)
	}

	out := make([]models.Budget, len(budgets))
	for i, b := range budgets {
		spent := totals[b.Category]
		if spent.IsNegative() {
			spent = decimal.Zero
		}
		b.Spent = spent
		out[i] = b
	}
	return out
}

// SplitShare computes each participant's equal share of an expense.
// Repeated participants count once; an empty split counts as one participant.
func SplitShare(e models.Expense) decimal.Decimal {
	n := len(models.NormalizeSplit(e.PaidBy, e.SplitBetween))
	return e.Amount.Div(decimal.NewFromInt(int64(n)))
}

// BudgetPercent returns spent/limit*100. A non-positive limit counts as fully used.
func BudgetPercent(b models.Budget) decimal.Decimal {
	if !b.Limit.IsPositive() {
		return hundred
	}
	return b.Spent.Div(b.Limit).Mul(hundred)
}

// BudgetStatus classifies a budget by percentage used.
// Bands are inclusive at their lower bound: >=100 exceeded, >=80 near.
func BudgetStatus(b models.Budget) models.BudgetStatus {
	pct := BudgetPercent(b)
	switch {
	case pct.GreaterThanOrEqual(hundred):
		return models.StatusExceeded
	case pct.GreaterThanOrEqual(nearThreshold):
		return models.StatusNear
	default:
		return models.StatusNormal
	}
}

// BudgetProgress returns the percentage used, capped at 100, for progress bars.
func BudgetProgress(b models.Budget) decimal.Decimal {
	return decimal.Min(BudgetPercent(b), hundred)
}
