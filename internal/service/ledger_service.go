package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/roomledger/internal/calculator"
	"github.com/mmynk/roomledger/internal/chores"
	"github.com/mmynk/roomledger/internal/middleware"
	"github.com/mmynk/roomledger/internal/models"
	"github.com/mmynk/roomledger/internal/storage"
)

// LedgerService derives balances, settlement suggestions and dashboards
// from the recorded history. Nothing it returns is stored.
type LedgerService struct {
	store storage.Store
	now   func() time.Time
}

// NewLedgerService creates a new LedgerService with the given storage backend.
func NewLedgerService(store storage.Store) *LedgerService {
	return &LedgerService{store: store, now: time.Now}
}

// ledgerInput is the full history in the shape the calculator consumes.
type ledgerInput struct {
	memberIDs []string
	expenses  []calculator.ExpenseForBalance
	payments  []calculator.PaymentForBalance
}

func (s *LedgerService) loadLedger(ctx context.Context) (*ledgerInput, error) {
	members, err := s.store.ListMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}
	expenses, err := s.store.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	payments, err := s.store.ListPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}

	in := &ledgerInput{
		memberIDs: make([]string, len(members)),
		expenses:  make([]calculator.ExpenseForBalance, len(expenses)),
		payments:  make([]calculator.PaymentForBalance, len(payments)),
	}
	for i, m := range members {
		in.memberIDs[i] = m.ID
	}
	// Stored newest first; the ledger reads history oldest first.
	for i, e := range expenses {
		in.expenses[len(expenses)-1-i] = calculator.ExpenseForBalance{
			ID:           e.ID,
			Amount:       e.Amount,
			PaidBy:       e.PaidBy,
			SplitBetween: e.SplitBetween,
		}
	}
	for i, p := range payments {
		in.payments[i] = calculator.PaymentForBalance{
			ID:     p.ID,
			From:   p.From,
			To:     p.To,
			Amount: p.Amount,
		}
	}
	return in, nil
}

func (s *LedgerService) balances(ctx context.Context) (*ledgerInput, []calculator.MemberBalance, error) {
	in, err := s.loadLedger(ctx)
	if err != nil {
		return nil, nil, err
	}
	balances, err := calculator.ComputeBalances(in.expenses, in.payments, in.memberIDs)
	if err != nil {
		return nil, nil, err
	}
	return in, balances, nil
}

// GetBalances computes every member's pairwise debts and net balance.
func (s *LedgerService) GetBalances(ctx context.Context, req *connect.Request[GetBalancesRequest]) (*connect.Response[GetBalancesResponse], error) {
	_, balances, err := s.balances(ctx)
	if err != nil {
		slog.Error("GetBalances failed", "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*Balance, len(balances))
	for i, b := range balances {
		out[i] = &Balance{
			MemberID:   b.MemberID,
			Owes:       b.Owes,
			Owed:       b.Owed,
			NetBalance: b.NetBalance,
		}
	}

	return connect.NewResponse(&GetBalancesResponse{Balances: out}), nil
}

// SuggestSettlements proposes a short list of transfers that clears every balance.
func (s *LedgerService) SuggestSettlements(ctx context.Context, req *connect.Request[SuggestSettlementsRequest]) (*connect.Response[SuggestSettlementsResponse], error) {
	_, balances, err := s.balances(ctx)
	if err != nil {
		slog.Error("SuggestSettlements failed", "error", err)
		return nil, toConnectError(err)
	}

	edges := calculator.SimplifyDebts(balances)
	out := make([]*Transfer, len(edges))
	for i, e := range edges {
		out[i] = &Transfer{From: e.From, To: e.To, Amount: e.Amount}
	}

	slog.Info("Settlements suggested", "transfers", len(out))

	return connect.NewResponse(&SuggestSettlementsResponse{Transfers: out}), nil
}

// GetDashboard summarizes the ledger and chores for one member. The member
// comes from the request, or else from the session.
func (s *LedgerService) GetDashboard(ctx context.Context, req *connect.Request[GetDashboardRequest]) (*connect.Response[GetDashboardResponse], error) {
	memberID := req.Msg.MemberID
	if memberID == "" {
		memberID = middleware.GetMemberID(ctx)
	}
	if memberID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("member_id required"))
	}

	in, balances, err := s.balances(ctx)
	if err != nil {
		slog.Error("GetDashboard failed", "error", err)
		return nil, toConnectError(err)
	}
	if !slices.Contains(in.memberIDs, memberID) {
		return nil, connect.NewError(connect.CodeNotFound, fmt.Errorf("member %s: %w", memberID, storage.ErrNotFound))
	}

	summary, err := calculator.Summarize(in.expenses, balances, memberID)
	if err != nil {
		return nil, toConnectError(err)
	}

	tasks, err := s.store.ListTasks(ctx)
	if err != nil {
		slog.Error("GetDashboard failed", "error", err)
		return nil, toConnectError(err)
	}
	values := make([]models.Task, len(tasks))
	for i, t := range tasks {
		values[i] = *t
	}
	stats := chores.Summarize(values, memberID, s.now())

	return connect.NewResponse(&GetDashboardResponse{
		MemberID:      memberID,
		TotalExpenses: summary.TotalExpenses,
		MyShare:       summary.MyShare,
		NetBalance:    summary.NetBalance,
		PendingTasks:  stats.Pending,
		OverdueTasks:  stats.Overdue,
		MyTasks:       stats.Mine,
	}), nil
}
