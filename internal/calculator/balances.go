package calculator

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownMember   = errors.New("unknown member reference")
	ErrDuplicateMember = errors.New("duplicate member")
	ErrInvalidExpense  = errors.New("invalid expense")
	ErrInvalidPayment  = errors.New("invalid payment")
)

// ExpenseForBalance represents an expense with the minimal information needed for balance calculations.
type ExpenseForBalance struct {
	ID           string
	Amount       decimal.Decimal
	PaidBy       string
	SplitBetween []string
}

// PaymentForBalance represents a settlement payment with the minimal information needed for balance calculations.
type PaymentForBalance struct {
	ID     string
	From   string // Who paid (debtor settling up)
	To     string // Who received (creditor being paid)
	Amount decimal.Decimal
}

// MemberBalance is the derived ledger position of one member.
type MemberBalance struct {
	MemberID string

	// Owes maps a counterpart to the positive amount this member still owes them.
	Owes map[string]decimal.Decimal

	// Owed maps a counterpart to the positive amount they still owe this member.
	Owed map[string]decimal.Decimal

	// NetBalance is sum(Owed) - sum(Owes). Positive = others owe this member.
	NetBalance decimal.Decimal
}

// ComputeBalances derives one balance per member from the full expense and
// payment history. The result follows the order of memberIDs.
//
// Algorithm:
//   - For each expense: every participant other than the payer owes the payer
//     one equal share. The payer never owes themself.
//   - For each payment, in order: the pairwise debt from -> to is reduced by the
//     payment amount and removed once it reaches zero. Excess is dropped.
//   - NetBalance = total owed to the member - total the member owes.
//
// Any reference to a member outside memberIDs fails the whole computation.
func ComputeBalances(expenses []ExpenseForBalance, payments []PaymentForBalance, memberIDs []string) ([]MemberBalance, error) {
	balances := make([]MemberBalance, len(memberIDs))
	index := make(map[string]*MemberBalance, len(memberIDs))

	for i, id := range memberIDs {
		if _, exists := index[id]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateMember, id)
		}
		balances[i] = MemberBalance{
			MemberID: id,
			Owes:     make(map[string]decimal.Decimal),
			Owed:     make(map[string]decimal.Decimal),
		}
		index[id] = &balances[i]
	}

	for _, expense := range expenses {
		if err := checkExpense(expense, index); err != nil {
			return nil, err
		}

		split, err := EqualSplit(expense.Amount, len(expense.SplitBetween))
		if err != nil {
			return nil, fmt.Errorf("%w %s: %v", ErrInvalidExpense, expense.ID, err)
		}

		payer := index[expense.PaidBy]
		for _, participantID := range expense.SplitBetween {
			if participantID == expense.PaidBy {
				continue
			}
			participant := index[participantID]
			participant.Owes[payer.MemberID] = participant.Owes[payer.MemberID].Add(split.Share)
			payer.Owed[participantID] = payer.Owed[participantID].Add(split.Share)
		}
	}

	for _, payment := range payments {
		if err := checkPayment(payment, index); err != nil {
			return nil, err
		}

		from := index[payment.From]
		to := index[payment.To]
		reduce(from.Owes, payment.To, payment.Amount)
		reduce(to.Owed, payment.From, payment.Amount)
	}

	for i := range balances {
		bal := &balances[i]
		bal.NetBalance = sum(bal.Owed).Sub(sum(bal.Owes))
	}

	return balances, nil
}

// reduce lowers ledger[counterpart] by amount, deleting the entry when nothing remains.
// A missing entry is left untouched.
func reduce(ledger map[string]decimal.Decimal, counterpart string, amount decimal.Decimal) {
	current, ok := ledger[counterpart]
	if !ok {
		return
	}
	remaining := current.Sub(amount)
	if !remaining.IsPositive() {
		delete(ledger, counterpart)
		return
	}
	ledger[counterpart] = remaining
}

func sum(ledger map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, amount := range ledger {
		total = total.Add(amount)
	}
	return total
}

func checkExpense(expense ExpenseForBalance, index map[string]*MemberBalance) error {
	if !expense.Amount.IsPositive() {
		return fmt.Errorf("%w %s: amount must be positive", ErrInvalidExpense, expense.ID)
	}
	if len(expense.SplitBetween) == 0 {
		return fmt.Errorf("%w %s: must have at least one participant", ErrInvalidExpense, expense.ID)
	}
	if _, ok := index[expense.PaidBy]; !ok {
		return fmt.Errorf("%w: expense %s paid by %q", ErrUnknownMember, expense.ID, expense.PaidBy)
	}

	seen := make(map[string]bool, len(expense.SplitBetween))
	for _, participantID := range expense.SplitBetween {
		if seen[participantID] {
			return fmt.Errorf("%w %s: participant %q listed twice", ErrInvalidExpense, expense.ID, participantID)
		}
		seen[participantID] = true
		if _, ok := index[participantID]; !ok {
			return fmt.Errorf("%w: expense %s split with %q", ErrUnknownMember, expense.ID, participantID)
		}
	}
	return nil
}

func checkPayment(payment PaymentForBalance, index map[string]*MemberBalance) error {
	if !payment.Amount.IsPositive() {
		return fmt.Errorf("%w %s: amount must be positive", ErrInvalidPayment, payment.ID)
	}
	if payment.From == payment.To {
		return fmt.Errorf("%w %s: payer and receiver are the same member", ErrInvalidPayment, payment.ID)
	}
	if _, ok := index[payment.From]; !ok {
		return fmt.Errorf("%w: payment %s from %q", ErrUnknownMember, payment.ID, payment.From)
	}
	if _, ok := index[payment.To]; !ok {
		return fmt.Errorf("%w: payment %s to %q", ErrUnknownMember, payment.ID, payment.To)
	}
	return nil
}
