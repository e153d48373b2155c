package calculator

import "github.com/shopspring/decimal"

// DebtEdge represents a suggested transfer from one member to another.
type DebtEdge struct {
	From   string // Member who owes
	To     string // Member who is owed
	Amount decimal.Decimal
}

// SimplifyDebts turns net balances into a short list of transfers that would
// bring every member back to zero. Debtors and creditors are matched greedily
// in balance order, so the result is deterministic for a given input.
func SimplifyDebts(balances []MemberBalance) []DebtEdge {
	type position struct {
		memberID string
		amount   decimal.Decimal // always positive
	}

	var debtors, creditors []position
	for _, bal := range balances {
		switch {
		case bal.NetBalance.IsNegative():
			debtors = append(debtors, position{bal.MemberID, bal.NetBalance.Neg()})
		case bal.NetBalance.IsPositive():
			creditors = append(creditors, position{bal.MemberID, bal.NetBalance})
		}
	}

	var edges []DebtEdge
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor := &debtors[i]
		creditor := &creditors[j]

		// Amount to settle is minimum of what debtor owes and creditor is owed
		amount := decimal.Min(debtor.amount, creditor.amount)
		edges = append(edges, DebtEdge{
			From:   debtor.memberID,
			To:     creditor.memberID,
			Amount: amount,
		})

		debtor.amount = debtor.amount.Sub(amount)
		creditor.amount = creditor.amount.Sub(amount)

		if debtor.amount.IsZero() {
			i++
		}
		if creditor.amount.IsZero() {
			j++
		}
	}

	return edges
}
