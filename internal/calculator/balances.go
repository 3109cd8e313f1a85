package calculator

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/models"
)

// settleEpsilon ignores leftovers from non-terminating divisions (e.g. 100/3).
var settleEpsilon = decimal.New(1, -2)

// UserBalance represents the balance information for one user.
type UserBalance struct {
	UserID     models.UserID
	NetBalance decimal.Decimal // Positive = owed money, Negative = owes money
	TotalPaid  decimal.Decimal // Total amount paid across all expenses
	TotalOwed  decimal.Decimal // Sum of this user's split shares
}

// DebtEdge represents a debt from one user to another.
type DebtEdge struct {
	From   models.UserID // User who owes
	To     models.UserID // User who is owed
	Amount decimal.Decimal
}

// CalculateBalances computes who paid what and who owes what across expenses.
//
// Algorithm:
// - For each expense: payer contributed +amount, each split member owes SplitShare
// - Aggregate: net_balance = total_paid - total_owed
// - Debts: simplified by greedily matching debtors with creditors
//
// Amounts are summed as-is; currencies are never converted.
// Results are sorted by user id.
func CalculateBalances(expenses []models.Expense) ([]UserBalance, []DebtEdge) {
	balances := make(map[models.UserID]*UserBalance)
	get := func(id models.UserID) *UserBalance {
		b, ok := balances[id]
		if !ok {
			b = &UserBalance{UserID: id}
			balances[id] = b
		}
		return b
	}

	for _, e := range expenses {
		get(e.PaidBy).TotalPaid = get(e.PaidBy).TotalPaid.Add(e.Amount)

		share := SplitShare(e)
		for _, member := range models.NormalizeSplit(e.PaidBy, e.SplitBetween) {
			b := get(member)
			b.TotalOwed = b.TotalOwed.Add(share)
		}
	}

	userBalances := make([]UserBalance, 0, len(balances))
	for _, b := range balances {
		b.NetBalance = b.TotalPaid.Sub(b.TotalOwed)
		userBalances = append(userBalances, *b)
	}
	sort.Slice(userBalances, func(i, j int) bool {
		return userBalances[i].UserID < userBalances[j].UserID
	})

	var creditors, debtors []UserBalance
	for _, b := range userBalances {
		if b.NetBalance.IsPositive() {
			creditors = append(creditors, b)
		} else if b.NetBalance.IsNegative() {
			debtors = append(debtors, b)
		}
	}

	debtorLeft := make(map[models.UserID]decimal.Decimal, len(debtors))
	for _, d := range debtors {
		debtorLeft[d.UserID] = d.NetBalance.Neg()
	}
	creditorLeft := make(map[models.UserID]decimal.Decimal, len(creditors))
	for _, c := range creditors {
		creditorLeft[c.UserID] = c.NetBalance
	}

	var edges []DebtEdge
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor := debtors[i].UserID
		creditor := creditors[j].UserID

		amount := decimal.Min(debtorLeft[debtor], creditorLeft[creditor])
		if amount.GreaterThan(settleEpsilon) {
			edges = append(edges, DebtEdge{From: debtor, To: creditor, Amount: amount})
		}

		debtorLeft[debtor] = debtorLeft[debtor].Sub(amount)
		creditorLeft[creditor] = creditorLeft[creditor].Sub(amount)

		if debtorLeft[debtor].LessThan(settleEpsilon) {
			i++
		}
		if creditorLeft[creditor].LessThan(settleEpsilon) {
			j++
		}
	}

	return userBalances, edges
}
