package calculator

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Summary holds the dashboard figures for one member.
type Summary struct {
	MemberID      string
	TotalExpenses decimal.Decimal // Sum of every expense amount
	MyShare       decimal.Decimal // Sum of this member's shares; the payer's includes the rounding residual
	NetBalance    decimal.Decimal
}

// Summarize computes dashboard figures for memberID. The member must be
// present in balances; nobody is treated as the current member implicitly.
func Summarize(expenses []ExpenseForBalance, balances []MemberBalance, memberID string) (Summary, error) {
	var balance *MemberBalance
	for i := range balances {
		if balances[i].MemberID == memberID {
			balance = &balances[i]
			break
		}
	}
	if balance == nil {
		return Summary{}, fmt.Errorf("%w: %q", ErrUnknownMember, memberID)
	}

	summary := Summary{
		MemberID:      memberID,
		TotalExpenses: decimal.Zero,
		MyShare:       decimal.Zero,
		NetBalance:    balance.NetBalance,
	}

	for _, expense := range expenses {
		summary.TotalExpenses = summary.TotalExpenses.Add(expense.Amount)

		if !contains(expense.SplitBetween, memberID) {
			continue
		}
		split, err := EqualSplit(expense.Amount, len(expense.SplitBetween))
		if err != nil {
			return Summary{}, fmt.Errorf("%w %s: %v", ErrInvalidExpense, expense.ID, err)
		}
		summary.MyShare = summary.MyShare.Add(split.Share)
		if expense.PaidBy == memberID {
			summary.MyShare = summary.MyShare.Add(split.Residual)
		}
	}

	return summary, nil
}

func contains(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
