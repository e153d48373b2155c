package validation

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/roomledger/internal/models"
)

func validExpense() *models.Expense {
	return &models.Expense{
		Title:        "Grocery Shopping",
		Amount:       decimal.RequireFromString("120.50"),
		PaidBy:       "1",
		SplitBetween: []string{"1", "2", "3", "4"},
		Category:     "Groceries",
	}
}

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *Error
	require.True(t, errors.As(err, &verr), "expected *validation.Error, got %T", err)
	return verr.Fields
}

func TestExpense(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(e *models.Expense)
		wantField string
	}{
		{name: "valid", mutate: func(e *models.Expense) {}},
		{name: "zero amount", mutate: func(e *models.Expense) { e.Amount = decimal.Zero }, wantField: "amount"},
		{name: "negative amount", mutate: func(e *models.Expense) { e.Amount = decimal.NewFromInt(-3) }, wantField: "amount"},
		{name: "amount below share precision", mutate: func(e *models.Expense) { e.Amount = decimal.RequireFromString("0.0003") }, wantField: "amount"},
		{name: "smallest splittable amount", mutate: func(e *models.Expense) { e.Amount = decimal.RequireFromString("0.0004") }},
		{name: "empty split", mutate: func(e *models.Expense) { e.SplitBetween = nil }, wantField: "split_between"},
		{name: "duplicate participant", mutate: func(e *models.Expense) { e.SplitBetween = []string{"1", "1"} }, wantField: "split_between"},
		{name: "blank participant", mutate: func(e *models.Expense) { e.SplitBetween = []string{"1", ""} }, wantField: "split_between"},
		{name: "missing payer", mutate: func(e *models.Expense) { e.PaidBy = "" }, wantField: "paid_by"},
		{name: "blank title", mutate: func(e *models.Expense) { e.Title = "   " }, wantField: "title"},
		{name: "missing category", mutate: func(e *models.Expense) { e.Category = "" }, wantField: "category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expense := validExpense()
			tt.mutate(expense)

			err := Expense(expense)
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidExpense)
			assert.Contains(t, fieldsOf(t, err), tt.wantField)
		})
	}
}

func TestPayment(t *testing.T) {
	valid := models.Payment{From: "2", To: "1", Amount: decimal.RequireFromString("30.125")}
	require.NoError(t, Payment(&valid))

	self := valid
	self.To = self.From
	err := Payment(&self)
	require.ErrorIs(t, err, ErrInvalidPayment)
	assert.Contains(t, fieldsOf(t, err), "to")

	zero := valid
	zero.Amount = decimal.Zero
	err = Payment(&zero)
	require.ErrorIs(t, err, ErrInvalidPayment)
	assert.Contains(t, fieldsOf(t, err), "amount")
}

func TestMember(t *testing.T) {
	require.NoError(t, Member(&models.Member{Name: "Alex Chen", Email: "alex@email.com", Color: "#3B82F6"}))
	require.NoError(t, Member(&models.Member{Name: "Alex Chen"}))

	err := Member(&models.Member{Name: "", Email: "not-an-email", Color: "blue"})
	require.ErrorIs(t, err, ErrInvalidMember)
	fields := fieldsOf(t, err)
	assert.Equal(t, "is required", fields["name"])
	assert.Equal(t, "must be a valid email", fields["email"])
	assert.Equal(t, "must be a hex color", fields["color"])
}

func TestTask(t *testing.T) {
	task := models.Task{
		Title:      "Clean Kitchen",
		AssignedTo: "2",
		CreatedBy:  "1",
		DueDate:    1736899200,
		Priority:   models.PriorityHigh,
		Category:   "Cleaning",
	}
	require.NoError(t, Task(&task))

	task.Priority = "urgent"
	task.DueDate = 0
	err := Task(&task)
	require.ErrorIs(t, err, ErrInvalidTask)
	fields := fieldsOf(t, err)
	assert.Contains(t, fields, "priority")
	assert.Contains(t, fields, "due_date")
}

func TestReferences(t *testing.T) {
	known := map[string]bool{"1": true, "2": true}

	require.NoError(t, References(known, map[string][]string{
		"paid_by":       {"1"},
		"split_between": {"1", "2"},
	}))

	err := References(known, map[string][]string{
		"paid_by":       {"1"},
		"split_between": {"2", "7"},
	})
	require.ErrorIs(t, err, ErrUnknownMember)
	assert.Equal(t, `references unknown member "7"`, fieldsOf(t, err)["split_between"])
	assert.Contains(t, err.Error(), "unknown member reference")
}
