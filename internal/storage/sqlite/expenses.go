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

// CreateExpense persists a new expense and its participants in one transaction.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	// Generate ID if not set
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}
	if expense.Date == 0 {
		expense.Date = expense.CreatedAt
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO expenses (id, title, amount, paid_by, category, date, description, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.Title, expense.Amount.String(), expense.PaidBy, expense.Category,
		expense.Date, nullable(expense.Description), expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	for i, memberID := range expense.SplitBetween {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO expense_participants (expense_id, member_id, position) VALUES (?, ?, ?)",
			expense.ID, memberID, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert participant: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListExpenses retrieves every expense with its participants, newest first.
func (s *SQLiteStore) ListExpenses(ctx context.Context) ([]*models.Expense, error) {
	expenses, err := s.queryExpenses(ctx)
	if err != nil {
		return nil, err
	}

	participants, err := s.queryParticipants(ctx)
	if err != nil {
		return nil, err
	}

	for _, expense := range expenses {
		expense.SplitBetween = participants[expense.ID]
	}

	return expenses, nil
}

func (s *SQLiteStore) queryExpenses(ctx context.Context) ([]*models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, amount, paid_by, category, date, description, created_at
		 FROM expenses ORDER BY rowid DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		expense := &models.Expense{}
		var amount string
		var description sql.NullString

		if err := rows.Scan(&expense.ID, &expense.Title, &amount, &expense.PaidBy, &expense.Category,
			&expense.Date, &description, &expense.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}

		expense.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("failed to parse amount of expense %s: %w", expense.ID, err)
		}
		expense.Description = description.String

		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	return expenses, nil
}

// queryParticipants returns expense ID -> participant IDs in their original order.
func (s *SQLiteStore) queryParticipants(ctx context.Context) (map[string][]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT expense_id, member_id FROM expense_participants ORDER BY expense_id, position",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	participants := make(map[string][]string)
	for rows.Next() {
		var expenseID, memberID string
		if err := rows.Scan(&expenseID, &memberID); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants[expenseID] = append(participants[expenseID], memberID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}

	return participants, nil
}
