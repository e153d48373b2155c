// Package validation rejects malformed household records before they are
// stored, so that the ledger only ever sees well-formed input.
package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/mmynk/roomledger/internal/calculator"
	"github.com/mmynk/roomledger/internal/models"
)

var (
	ErrInvalidMember  = errors.New("invalid member")
	ErrInvalidExpense = errors.New("invalid expense")
	ErrInvalidPayment = errors.New("invalid payment")
	ErrInvalidTask    = errors.New("invalid task")
	ErrUnknownMember  = errors.New("unknown member reference")
)

var validate = validator.New()

// Error describes every field of a record that failed validation.
type Error struct {
	Kind   error
	Fields map[string]string
}

func (e *Error) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, field := range fields {
		parts[i] = fmt.Sprintf("%s %s", field, e.Fields[field])
	}
	return fmt.Sprintf("%v: %s", e.Kind, strings.Join(parts, "; "))
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// checker accumulates field failures for one record.
type checker struct {
	fields map[string]string
}

func (c *checker) fail(field, message string) {
	if c.fields == nil {
		c.fields = make(map[string]string)
	}
	if _, exists := c.fields[field]; !exists {
		c.fields[field] = message
	}
}

// tag runs a validator tag against value and records a readable message on failure.
func (c *checker) tag(field string, value any, tag string) {
	err := validate.Var(value, tag)
	if err == nil {
		return
	}
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		c.fail(field, validationMessage(errs[0]))
		return
	}
	c.fail(field, "is invalid")
}

func (c *checker) positive(field string, amount decimal.Decimal) {
	if !amount.IsPositive() {
		c.fail(field, "must be greater than zero")
	}
}

func (c *checker) err(kind error) error {
	if len(c.fields) == 0 {
		return nil
	}
	return &Error{Kind: kind, Fields: c.fields}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must have at least %s entries", fe.Param())
	case "unique":
		return "must not contain duplicates"
	case "email":
		return "must be a valid email"
	case "hexcolor":
		return "must be a hex color"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	}
	return "is invalid"
}

// Member checks a member record.
func Member(m *models.Member) error {
	var c checker
	c.tag("name", strings.TrimSpace(m.Name), "required")
	c.tag("email", m.Email, "omitempty,email")
	c.tag("color", m.Color, "omitempty,hexcolor")
	return c.err(ErrInvalidMember)
}

// Expense checks an expense record: positive amount and a non-empty,
// duplicate-free participant set.
func Expense(e *models.Expense) error {
	var c checker
	c.tag("title", strings.TrimSpace(e.Title), "required")
	c.positive("amount", e.Amount)
	c.tag("paid_by", e.PaidBy, "required")
	c.tag("split_between", e.SplitBetween, "required,min=1,unique,dive,required")
	c.tag("category", strings.TrimSpace(e.Category), "required")
	if e.Amount.IsPositive() && len(e.SplitBetween) > 0 {
		if _, err := calculator.EqualSplit(e.Amount, len(e.SplitBetween)); err != nil {
			c.fail("amount", fmt.Sprintf("is too small to split among %d participants", len(e.SplitBetween)))
		}
	}
	return c.err(ErrInvalidExpense)
}

// Payment checks a payment record: positive amount between two distinct members.
func Payment(p *models.Payment) error {
	var c checker
	c.tag("from", p.From, "required")
	c.tag("to", p.To, "required")
	c.positive("amount", p.Amount)
	if p.From != "" && p.From == p.To {
		c.fail("to", "must differ from the paying member")
	}
	return c.err(ErrInvalidPayment)
}

// Task checks a chore record.
func Task(t *models.Task) error {
	var c checker
	c.tag("title", strings.TrimSpace(t.Title), "required")
	c.tag("assigned_to", t.AssignedTo, "required")
	c.tag("created_by", t.CreatedBy, "required")
	c.tag("priority", string(t.Priority), "required,oneof=low medium high")
	if t.DueDate == 0 {
		c.fail("due_date", "is required")
	}
	return c.err(ErrInvalidTask)
}

// References reports every id in refs that is not a known member.
func References(known map[string]bool, refs map[string][]string) error {
	var c checker
	for field, ids := range refs {
		for _, id := range ids {
			if !known[id] {
				c.fail(field, fmt.Sprintf("references unknown member %q", id))
			}
		}
	}
	return c.err(ErrUnknownMember)
}
