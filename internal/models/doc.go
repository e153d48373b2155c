// Package models defines the core domain models for Roomledger.
//
// # Records
//
// The household is described by four kinds of records:
//   - Member: a person who can pay, owe, or be assigned chores
//   - Expense: a shared cost paid by one member and split equally among several
//   - Payment: a recorded settlement from one member to another
//   - Task: a chore with an assignee, a due date and a completion state
//
// Balances are not stored. They are derived on demand from the expense and
// payment history by the calculator package.
//
// # Design Principles
//
//  1. **Exact money**: every amount is a decimal.Decimal, never a float
//  2. **Immutable history**: expenses and payments are append-only
//  3. **Avoid circular references**: use ID strings instead of pointers for relationships
package models
