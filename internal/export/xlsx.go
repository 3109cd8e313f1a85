// Package export renders the ledger as a spreadsheet.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/ledger"
	"github.com/mmynk/splitledger/internal/models"
)

const (
	expensesSheet = "Expenses"
	budgetsSheet  = "Budgets"
	dateLayout    = "2006-01-02 15:04:05"
)

var (
	expenseHeaders = []any{"ID", "Date", "Description", "Category", "Amount", "Currency", "Paid By", "Split Between", "Share"}
	budgetHeaders  = []any{"Category", "Limit", "Spent", "Currency", "Status"}
)

// WriteXLSX writes expenses and budgets to w as a two-sheet workbook.
// User ids are resolved to names.
func WriteXLSX(w io.Writer, s ledger.State) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", expensesSheet); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}
	if _, err := f.NewSheet(budgetsSheet); err != nil {
		return fmt.Errorf("failed to create budgets sheet: %w", err)
	}

	if err := writeRow(f, expensesSheet, 1, expenseHeaders); err != nil {
		return err
	}
	for i, e := range s.Expenses {
		names := make([]string, len(e.SplitBetween))
		for j, id := range e.SplitBetween {
			names[j] = models.UserName(s.Users, id)
		}
		amount, _ := e.Amount.Float64()
		share, _ := calculator.SplitShare(e).Round(2).Float64()
		row := []any{
			string(e.ID),
			e.Date.Format(dateLayout),
			e.Description,
			string(e.Category),
			amount,
			string(e.Currency),
			models.UserName(s.Users, e.PaidBy),
			strings.Join(names, ", "),
			share,
		}
		if err := writeRow(f, expensesSheet, i+2, row); err != nil {
			return err
		}
	}

	if err := writeRow(f, budgetsSheet, 1, budgetHeaders); err != nil {
		return err
	}
	for i, b := range s.Budgets {
		limit, _ := b.Limit.Float64()
		spent, _ := b.Spent.Float64()
		row := []any{string(b.Category), limit, spent, string(b.Currency), calculator.BudgetStatus(b).String()}
		if err := writeRow(f, budgetsSheet, i+2, row); err != nil {
			return err
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("failed to address row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}
