package models

import "github.com/shopspring/decimal"

// Payment represents money transferred between members to clear debts.
// It is a recorded fact; nothing is transacted.
type Payment struct {
	// ID is the unique identifier for the payment (UUID format).
	ID string

	// From is the member who paid (debtor settling up).
	From string

	// To is the member who received payment (creditor being paid).
	To string

	// Amount is the payment amount. Always positive.
	Amount decimal.Decimal

	// Date is the Unix timestamp of the transfer.
	Date int64

	// ExpenseID optionally links the payment to the expense it settles.
	ExpenseID string

	// CreatedAt is the Unix timestamp when the payment was recorded.
	CreatedAt int64
}
