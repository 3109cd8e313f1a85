// Package models defines the core domain models for the expense ledger.
//
// # Models
//
//   - User: A person who pays for or shares expenses
//   - Expense: A single recorded outlay, split equally among participants
//   - Budget: A per-category spending ceiling with a derived running total
//
// # Identifiers
//
// Users, expenses and categories are referenced by distinct string types
// (UserID, ExpenseID, Category) so they cannot be mixed up by accident.
// The underlying representation stays a plain string, which keeps the
// persisted JSON identical to what earlier versions wrote.
//
// # Vocabularies
//
// Categories and currencies are fixed, closed sets. The ledger does not
// validate membership; the presentation layer only offers these values.
package models
