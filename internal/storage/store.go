// Package storage provides abstractions for household record storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/roomledger/internal/models"
)

// ErrNotFound is returned when a record lookup matches nothing.
var ErrNotFound = errors.New("not found")

// Store defines the interface for household record operations.
// This abstraction allows swapping storage backends without changing the
// service layer. Expenses and payments are append-only.
type Store interface {
	// CreateMember persists a new member.
	// The member.ID and member.CreatedAt fields will be populated by the store.
	CreateMember(ctx context.Context, member *models.Member) error

	// UpdateMember replaces the mutable fields of an existing member.
	// Returns ErrNotFound if the member does not exist.
	UpdateMember(ctx context.Context, member *models.Member) error

	// GetMember retrieves a member by ID.
	GetMember(ctx context.Context, memberID string) (*models.Member, error)

	// ListMembers returns every member in the order they were added.
	ListMembers(ctx context.Context) ([]*models.Member, error)

	// CreateExpense persists a new expense with its participant set.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// ListExpenses returns every expense, most recently recorded first.
	ListExpenses(ctx context.Context) ([]*models.Expense, error)

	// CreatePayment persists a new payment.
	CreatePayment(ctx context.Context, payment *models.Payment) error

	// ListPayments returns every payment in the order it was recorded.
	ListPayments(ctx context.Context) ([]*models.Payment, error)

	// CreateTask persists a new chore.
	CreateTask(ctx context.Context, task *models.Task) error

	// GetTask retrieves a chore by ID.
	GetTask(ctx context.Context, taskID string) (*models.Task, error)

	// UpdateTask replaces an existing chore.
	UpdateTask(ctx context.Context, task *models.Task) error

	// ListTasks returns every chore, most recently created first.
	ListTasks(ctx context.Context) ([]*models.Task, error)

	// Close releases any resources held by the store.
	Close() error
}
