package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var household = []string{"1", "2", "3", "4"}

func amt(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func groceries() ExpenseForBalance {
	return ExpenseForBalance{
		ID:           "e1",
		Amount:       amt("120.50"),
		PaidBy:       "1",
		SplitBetween: []string{"1", "2", "3", "4"},
	}
}

func byMember(t *testing.T, balances []MemberBalance) map[string]MemberBalance {
	t.Helper()
	out := make(map[string]MemberBalance, len(balances))
	for _, bal := range balances {
		out[bal.MemberID] = bal
	}
	return out
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Truef(t, got.Equal(amt(want)), "want %s, got %s", want, got)
}

// assertLedgerInvariants checks conservation, mirror symmetry and absence of self-debt.
func assertLedgerInvariants(t *testing.T, balances []MemberBalance) {
	t.Helper()
	members := byMember(t, balances)

	total := decimal.Zero
	for _, bal := range balances {
		total = total.Add(bal.NetBalance)

		assert.NotContains(t, bal.Owes, bal.MemberID, "member %s owes themself", bal.MemberID)
		assert.NotContains(t, bal.Owed, bal.MemberID, "member %s is owed by themself", bal.MemberID)

		for counterpart, amount := range bal.Owes {
			assert.True(t, amount.IsPositive(), "owes[%s] of %s is not positive", counterpart, bal.MemberID)
			mirror, ok := members[counterpart].Owed[bal.MemberID]
			if assert.True(t, ok, "missing mirror of %s owes %s", bal.MemberID, counterpart) {
				assert.True(t, mirror.Equal(amount), "%s owes %s %s but mirror is %s", bal.MemberID, counterpart, amount, mirror)
			}
		}
		for counterpart := range bal.Owed {
			_, ok := members[counterpart].Owes[bal.MemberID]
			assert.True(t, ok, "missing mirror of %s owed by %s", bal.MemberID, counterpart)
		}
	}
	assert.True(t, total.IsZero(), "net balances sum to %s, want 0", total)
}

func TestComputeBalances_EmptyHistory(t *testing.T) {
	balances, err := ComputeBalances(nil, nil, household)
	require.NoError(t, err)
	require.Len(t, balances, len(household))

	for i, bal := range balances {
		assert.Equal(t, household[i], bal.MemberID)
		assert.Empty(t, bal.Owes)
		assert.Empty(t, bal.Owed)
		assert.True(t, bal.NetBalance.IsZero())
	}
}

func TestComputeBalances_EqualSplit(t *testing.T) {
	balances, err := ComputeBalances([]ExpenseForBalance{groceries()}, nil, household)
	require.NoError(t, err)
	assertLedgerInvariants(t, balances)

	members := byMember(t, balances)
	for _, id := range []string{"2", "3", "4"} {
		require.Len(t, members[id].Owes, 1)
		assertDecimal(t, "30.125", members[id].Owes["1"])
		assertDecimal(t, "30.125", members["1"].Owed[id])
		assertDecimal(t, "-30.125", members[id].NetBalance)
	}

	assert.Empty(t, members["1"].Owes)
	assert.Len(t, members["1"].Owed, 3)
	assertDecimal(t, "90.375", members["1"].NetBalance)
}

func TestComputeBalances_PaymentSettlesDebt(t *testing.T) {
	payments := []PaymentForBalance{
		{ID: "p1", From: "2", To: "1", Amount: amt("30.125")},
	}

	balances, err := ComputeBalances([]ExpenseForBalance{groceries()}, payments, household)
	require.NoError(t, err)
	assertLedgerInvariants(t, balances)

	members := byMember(t, balances)
	assert.NotContains(t, members["2"].Owes, "1")
	assert.NotContains(t, members["1"].Owed, "2")
	assert.True(t, members["2"].NetBalance.IsZero())
	assertDecimal(t, "60.25", members["1"].NetBalance)
}

func TestComputeBalances_PartialPayment(t *testing.T) {
	payments := []PaymentForBalance{
		{ID: "p1", From: "3", To: "1", Amount: amt("10")},
	}

	balances, err := ComputeBalances([]ExpenseForBalance{groceries()}, payments, household)
	require.NoError(t, err)
	assertLedgerInvariants(t, balances)

	members := byMember(t, balances)
	assertDecimal(t, "20.125", members["3"].Owes["1"])
	assertDecimal(t, "20.125", members["1"].Owed["3"])
	assertDecimal(t, "80.375", members["1"].NetBalance)
}

func TestComputeBalances_OverpaymentDropsExcess(t *testing.T) {
	payments := []PaymentForBalance{
		{ID: "p1", From: "4", To: "1", Amount: amt("50")},
	}

	balances, err := ComputeBalances([]ExpenseForBalance{groceries()}, payments, household)
	require.NoError(t, err)
	assertLedgerInvariants(t, balances)

	members := byMember(t, balances)
	assert.NotContains(t, members["4"].Owes, "1")
	assert.NotContains(t, members["1"].Owed, "4")
	// No reverse credit is recorded for the excess
	assert.Empty(t, members["4"].Owed)
	assert.True(t, members["4"].NetBalance.IsZero())
}

func TestComputeBalances_PaymentWithoutDebtIsIgnored(t *testing.T) {
	payments := []PaymentForBalance{
		// Member 1 is owed by 2, so a transfer 1 -> 2 has nothing to reduce
		{ID: "p1", From: "1", To: "2", Amount: amt("5")},
	}

	balances, err := ComputeBalances([]ExpenseForBalance{groceries()}, payments, household)
	require.NoError(t, err)
	assertLedgerInvariants(t, balances)

	members := byMember(t, balances)
	assertDecimal(t, "30.125", members["2"].Owes["1"])
	assertDecimal(t, "90.375", members["1"].NetBalance)
}

func TestComputeBalances_PayerIncludedInSplit(t *testing.T) {
	expenses := []ExpenseForBalance{
		{ID: "e1", Amount: amt("100"), PaidBy: "a", SplitBetween: []string{"a", "b"}},
	}

	balances, err := ComputeBalances(expenses, nil, []string{"a", "b"})
	require.NoError(t, err)
	assertLedgerInvariants(t, balances)

	members := byMember(t, balances)
	assert.Empty(t, members["a"].Owes)
	require.Len(t, members["a"].Owed, 1)
	assertDecimal(t, "50", members["a"].Owed["b"])
	assertDecimal(t, "50", members["b"].Owes["a"])
}

func TestComputeBalances_PayerNotInSplit(t *testing.T) {
	expenses := []ExpenseForBalance{
		{ID: "e1", Amount: amt("60"), PaidBy: "a", SplitBetween: []string{"b", "c"}},
	}

	balances, err := ComputeBalances(expenses, nil, []string{"a", "b", "c"})
	require.NoError(t, err)
	assertLedgerInvariants(t, balances)

	members := byMember(t, balances)
	assertDecimal(t, "60", members["a"].NetBalance)
	assertDecimal(t, "30", members["b"].Owes["a"])
	assertDecimal(t, "30", members["c"].Owes["a"])
}

func TestComputeBalances_MutualDebtsStayPairwise(t *testing.T) {
	expenses := []ExpenseForBalance{
		{ID: "e1", Amount: amt("120.50"), PaidBy: "1", SplitBetween: []string{"1", "2", "3", "4"}},
		{ID: "e2", Amount: amt("80.00"), PaidBy: "2", SplitBetween: []string{"1", "2", "3", "4"}},
		{ID: "e3", Amount: amt("45.99"), PaidBy: "3", SplitBetween: []string{"1", "2", "3", "4"}},
	}
	payments := []PaymentForBalance{
		{ID: "p1", From: "2", To: "1", Amount: amt("30.12")},
		{ID: "p2", From: "4", To: "3", Amount: amt("11.50")},
	}

	balances, err := ComputeBalances(expenses, payments, household)
	require.NoError(t, err)
	assertLedgerInvariants(t, balances)

	members := byMember(t, balances)
	// 1 and 2 owe each other in both directions; entries are not netted
	assertDecimal(t, "20", members["1"].Owes["2"])
	assertDecimal(t, "0.005", members["2"].Owes["1"])
	// 45.99 / 4 = 11.4975, overpaid by 4
	assert.NotContains(t, members["4"].Owes, "3")
	assertDecimal(t, "11.4975", members["1"].Owes["3"])
}

func TestComputeBalances_NonTerminatingSplitConserves(t *testing.T) {
	expenses := []ExpenseForBalance{
		{ID: "e1", Amount: amt("100"), PaidBy: "a", SplitBetween: []string{"a", "b", "c"}},
	}

	balances, err := ComputeBalances(expenses, nil, []string{"a", "b", "c"})
	require.NoError(t, err)
	assertLedgerInvariants(t, balances)

	members := byMember(t, balances)
	assertDecimal(t, "33.3333", members["b"].Owes["a"])
	assertDecimal(t, "66.6666", members["a"].NetBalance)
}

func TestComputeBalances_PreservesMemberOrder(t *testing.T) {
	order := []string{"4", "2", "3", "1"}
	balances, err := ComputeBalances([]ExpenseForBalance{groceries()}, nil, order)
	require.NoError(t, err)

	for i, bal := range balances {
		assert.Equal(t, order[i], bal.MemberID)
	}
}

func TestComputeBalances_DoesNotMutateInputs(t *testing.T) {
	expense := groceries()
	payments := []PaymentForBalance{{ID: "p1", From: "2", To: "1", Amount: amt("40")}}

	_, err := ComputeBalances([]ExpenseForBalance{expense}, payments, household)
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2", "3", "4"}, expense.SplitBetween)
	assertDecimal(t, "40", payments[0].Amount)
}

func TestComputeBalances_Errors(t *testing.T) {
	tests := []struct {
		name     string
		expenses []ExpenseForBalance
		payments []PaymentForBalance
		members  []string
		wantErr  error
	}{
		{
			name:     "unknown payer",
			expenses: []ExpenseForBalance{{ID: "e1", Amount: amt("10"), PaidBy: "9", SplitBetween: []string{"1"}}},
			members:  household,
			wantErr:  ErrUnknownMember,
		},
		{
			name:     "unknown participant",
			expenses: []ExpenseForBalance{{ID: "e1", Amount: amt("10"), PaidBy: "1", SplitBetween: []string{"1", "9"}}},
			members:  household,
			wantErr:  ErrUnknownMember,
		},
		{
			name:     "unknown payment receiver",
			payments: []PaymentForBalance{{ID: "p1", From: "1", To: "9", Amount: amt("10")}},
			members:  household,
			wantErr:  ErrUnknownMember,
		},
		{
			name:     "empty participant set",
			expenses: []ExpenseForBalance{{ID: "e1", Amount: amt("10"), PaidBy: "1"}},
			members:  household,
			wantErr:  ErrInvalidExpense,
		},
		{
			name:     "duplicate participant",
			expenses: []ExpenseForBalance{{ID: "e1", Amount: amt("10"), PaidBy: "1", SplitBetween: []string{"2", "2"}}},
			members:  household,
			wantErr:  ErrInvalidExpense,
		},
		{
			name:     "non-positive expense amount",
			expenses: []ExpenseForBalance{{ID: "e1", Amount: amt("0"), PaidBy: "1", SplitBetween: []string{"2"}}},
			members:  household,
			wantErr:  ErrInvalidExpense,
		},
		{
			name:     "amount too small to split",
			expenses: []ExpenseForBalance{{ID: "e1", Amount: amt("0.0001"), PaidBy: "1", SplitBetween: []string{"1", "2", "3"}}},
			members:  household,
			wantErr:  ErrInvalidExpense,
		},
		{
			name:     "payment to self",
			payments: []PaymentForBalance{{ID: "p1", From: "1", To: "1", Amount: amt("10")}},
			members:  household,
			wantErr:  ErrInvalidPayment,
		},
		{
			name:     "negative payment",
			payments: []PaymentForBalance{{ID: "p1", From: "1", To: "2", Amount: amt("-1")}},
			members:  household,
			wantErr:  ErrInvalidPayment,
		},
		{
			name:    "duplicate member",
			members: []string{"1", "1"},
			wantErr: ErrDuplicateMember,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balances, err := ComputeBalances(tt.expenses, tt.payments, tt.members)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, balances)
		})
	}
}
