package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/roomledger/internal/models"
)

// CreatePayment persists a new payment to the database.
func (s *SQLiteStore) CreatePayment(ctx context.Context, payment *models.Payment) error {
	// Generate ID if not set
	if payment.ID == "" {
		payment.ID = uuid.New().String()
	}
	if payment.CreatedAt == 0 {
		payment.CreatedAt = time.Now().Unix()
	}
	if payment.Date == 0 {
		payment.Date = payment.CreatedAt
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO payments (id, from_member_id, to_member_id, amount, date, expense_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		payment.ID, payment.From, payment.To, payment.Amount.String(),
		payment.Date, nullable(payment.ExpenseID), payment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert payment: %w", err)
	}

	return nil
}

// ListPayments retrieves every payment in the order it was recorded.
// The ledger applies payments in this order.
func (s *SQLiteStore) ListPayments(ctx context.Context) ([]*models.Payment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, from_member_id, to_member_id, amount, date, expense_id, created_at
		 FROM payments ORDER BY rowid`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		payment := &models.Payment{}
		var amount string
		var expenseID sql.NullString

		if err := rows.Scan(&payment.ID, &payment.From, &payment.To, &amount,
			&payment.Date, &expenseID, &payment.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}

		payment.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("failed to parse amount of payment %s: %w", payment.ID, err)
		}
		payment.ExpenseID = expenseID.String

		payments = append(payments, payment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payments: %w", err)
	}

	return payments, nil
}
