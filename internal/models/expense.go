package models

import "github.com/shopspring/decimal"

// Expense represents a shared cost paid by one member and divided equally
// among SplitBetween. Expenses are never edited once recorded.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// Title is the human-readable name (e.g., "Grocery Shopping").
	Title string

	// Amount is the total paid. Always positive.
	Amount decimal.Decimal

	// PaidBy is the ID of the member who paid.
	PaidBy string

	// SplitBetween holds the IDs of the members sharing the cost.
	// The payer may or may not be included; their own share is never owed to themself.
	SplitBetween []string

	// Category groups expenses for display (e.g., "Groceries", "Utilities").
	Category string

	// Date is the Unix timestamp of the day the expense was incurred.
	Date int64

	// Description is an optional free-form note.
	Description string

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}
