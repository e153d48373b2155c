package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/roomledger/internal/chores"
	"github.com/mmynk/roomledger/internal/models"
	"github.com/mmynk/roomledger/internal/storage"
	"github.com/mmynk/roomledger/internal/validation"
)

// HouseholdService records members, expenses, payments and chores.
// Every record is validated here so that malformed data never reaches the ledger.
type HouseholdService struct {
	store storage.Store
	now   func() time.Time
}

// NewHouseholdService creates a new HouseholdService with the given storage backend.
func NewHouseholdService(store storage.Store) *HouseholdService {
	return &HouseholdService{store: store, now: time.Now}
}

// knownMembers returns the set of member IDs currently in the household.
func (s *HouseholdService) knownMembers(ctx context.Context) (map[string]bool, error) {
	members, err := s.store.ListMembers(ctx)
	if err != nil {
		return nil, err
	}
	known := make(map[string]bool, len(members))
	for _, m := range members {
		known[m.ID] = true
	}
	return known, nil
}

// AddMember adds a member to the household.
func (s *HouseholdService) AddMember(ctx context.Context, req *connect.Request[AddMemberRequest]) (*connect.Response[AddMemberResponse], error) {
	slog.Info("AddMember request received", "name", req.Msg.Name)

	member := &models.Member{
		Name:  req.Msg.Name,
		Email: req.Msg.Email,
		Color: req.Msg.Color,
	}
	if err := validation.Member(member); err != nil {
		return nil, toConnectError(err)
	}

	// Save to storage (generates ID, avatar and CreatedAt)
	if err := s.store.CreateMember(ctx, member); err != nil {
		slog.Error("AddMember failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Member added", "member_id", member.ID)

	return connect.NewResponse(&AddMemberResponse{Member: toMemberMessage(member)}), nil
}

// UpdateMember edits an existing member's name, contact, color or avatar.
func (s *HouseholdService) UpdateMember(ctx context.Context, req *connect.Request[UpdateMemberRequest]) (*connect.Response[UpdateMemberResponse], error) {
	slog.Info("UpdateMember request received", "member_id", req.Msg.MemberID)

	if req.Msg.MemberID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("member_id required"))
	}

	existing, err := s.store.GetMember(ctx, req.Msg.MemberID)
	if err != nil {
		return nil, toConnectError(err)
	}

	member := &models.Member{
		ID:        existing.ID,
		Name:      req.Msg.Name,
		Email:     req.Msg.Email,
		Color:     req.Msg.Color,
		Avatar:    req.Msg.Avatar,
		CreatedAt: existing.CreatedAt,
	}
	if err := validation.Member(member); err != nil {
		return nil, toConnectError(err)
	}

	if err := s.store.UpdateMember(ctx, member); err != nil {
		slog.Error("UpdateMember failed", "member_id", member.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Member updated", "member_id", member.ID)

	return connect.NewResponse(&UpdateMemberResponse{Member: toMemberMessage(member)}), nil
}

// ListMembers returns every member in the order they joined.
func (s *HouseholdService) ListMembers(ctx context.Context, req *connect.Request[ListMembersRequest]) (*connect.Response[ListMembersResponse], error) {
	members, err := s.store.ListMembers(ctx)
	if err != nil {
		slog.Error("ListMembers failed", "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*Member, len(members))
	for i, m := range members {
		out[i] = toMemberMessage(m)
	}

	return connect.NewResponse(&ListMembersResponse{Members: out}), nil
}

// AddExpense records a shared expense.
func (s *HouseholdService) AddExpense(ctx context.Context, req *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error) {
	slog.Info("AddExpense request received",
		"title", req.Msg.Title,
		"amount", req.Msg.Amount.String(),
		"paid_by", req.Msg.PaidBy,
		"participants_count", len(req.Msg.SplitBetween),
	)

	expense := &models.Expense{
		Title:        req.Msg.Title,
		Amount:       req.Msg.Amount,
		PaidBy:       req.Msg.PaidBy,
		SplitBetween: req.Msg.SplitBetween,
		Category:     req.Msg.Category,
		Date:         req.Msg.Date,
		Description:  req.Msg.Description,
	}
	if err := validation.Expense(expense); err != nil {
		return nil, toConnectError(err)
	}

	known, err := s.knownMembers(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	if err := validation.References(known, map[string][]string{
		"paid_by":       {expense.PaidBy},
		"split_between": expense.SplitBetween,
	}); err != nil {
		return nil, toConnectError(err)
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.Error("AddExpense failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Expense added", "expense_id", expense.ID)

	return connect.NewResponse(&AddExpenseResponse{Expense: toExpenseMessage(expense)}), nil
}

// ListExpenses returns every expense, most recent first.
func (s *HouseholdService) ListExpenses(ctx context.Context, req *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error) {
	expenses, err := s.store.ListExpenses(ctx)
	if err != nil {
		slog.Error("ListExpenses failed", "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*Expense, len(expenses))
	for i, e := range expenses {
		out[i] = toExpenseMessage(e)
	}

	return connect.NewResponse(&ListExpensesResponse{Expenses: out}), nil
}

// RecordPayment records a settlement between two members.
func (s *HouseholdService) RecordPayment(ctx context.Context, req *connect.Request[RecordPaymentRequest]) (*connect.Response[RecordPaymentResponse], error) {
	slog.Info("RecordPayment request received",
		"from", req.Msg.From,
		"to", req.Msg.To,
		"amount", req.Msg.Amount.String(),
	)

	payment := &models.Payment{
		From:      req.Msg.From,
		To:        req.Msg.To,
		Amount:    req.Msg.Amount,
		Date:      req.Msg.Date,
		ExpenseID: req.Msg.ExpenseID,
	}
	if err := validation.Payment(payment); err != nil {
		return nil, toConnectError(err)
	}

	known, err := s.knownMembers(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	if err := validation.References(known, map[string][]string{
		"from": {payment.From},
		"to":   {payment.To},
	}); err != nil {
		return nil, toConnectError(err)
	}

	if payment.ExpenseID != "" {
		if err := s.checkExpenseExists(ctx, payment.ExpenseID); err != nil {
			return nil, toConnectError(err)
		}
	}

	if err := s.store.CreatePayment(ctx, payment); err != nil {
		slog.Error("RecordPayment failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Payment recorded", "payment_id", payment.ID)

	return connect.NewResponse(&RecordPaymentResponse{Payment: toPaymentMessage(payment)}), nil
}

func (s *HouseholdService) checkExpenseExists(ctx context.Context, expenseID string) error {
	expenses, err := s.store.ListExpenses(ctx)
	if err != nil {
		return err
	}
	for _, e := range expenses {
		if e.ID == expenseID {
			return nil
		}
	}
	return fmt.Errorf("expense %s: %w", expenseID, storage.ErrNotFound)
}

// ListPayments returns every payment in the order it was recorded.
func (s *HouseholdService) ListPayments(ctx context.Context, req *connect.Request[ListPaymentsRequest]) (*connect.Response[ListPaymentsResponse], error) {
	payments, err := s.store.ListPayments(ctx)
	if err != nil {
		slog.Error("ListPayments failed", "error", err)
		return nil, toConnectError(err)
	}

	out := make([]*Payment, len(payments))
	for i, p := range payments {
		out[i] = toPaymentMessage(p)
	}

	return connect.NewResponse(&ListPaymentsResponse{Payments: out}), nil
}

// AddTask creates a chore. New chores always start open.
func (s *HouseholdService) AddTask(ctx context.Context, req *connect.Request[AddTaskRequest]) (*connect.Response[AddTaskResponse], error) {
	slog.Info("AddTask request received", "title", req.Msg.Title, "assigned_to", req.Msg.AssignedTo)

	task := &models.Task{
		Title:       req.Msg.Title,
		Description: req.Msg.Description,
		AssignedTo:  req.Msg.AssignedTo,
		CreatedBy:   req.Msg.CreatedBy,
		DueDate:     req.Msg.DueDate,
		Priority:    models.Priority(req.Msg.Priority),
		Category:    req.Msg.Category,
	}
	if err := validation.Task(task); err != nil {
		return nil, toConnectError(err)
	}

	known, err := s.knownMembers(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	if err := validation.References(known, map[string][]string{
		"assigned_to": {task.AssignedTo},
		"created_by":  {task.CreatedBy},
	}); err != nil {
		return nil, toConnectError(err)
	}

	if err := s.store.CreateTask(ctx, task); err != nil {
		slog.Error("AddTask failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Task added", "task_id", task.ID)

	return connect.NewResponse(&AddTaskResponse{Task: toTaskMessage(task, s.now())}), nil
}

// ToggleTask flips a chore between open and completed.
func (s *HouseholdService) ToggleTask(ctx context.Context, req *connect.Request[ToggleTaskRequest]) (*connect.Response[ToggleTaskResponse], error) {
	slog.Info("ToggleTask request received", "task_id", req.Msg.TaskID)

	if req.Msg.TaskID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("task_id required"))
	}

	task, err := s.store.GetTask(ctx, req.Msg.TaskID)
	if err != nil {
		return nil, toConnectError(err)
	}

	now := s.now()
	chores.Toggle(task, now)

	if err := s.store.UpdateTask(ctx, task); err != nil {
		slog.Error("ToggleTask failed", "task_id", task.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Task toggled", "task_id", task.ID, "completed", task.Completed)

	return connect.NewResponse(&ToggleTaskResponse{Task: toTaskMessage(task, now)}), nil
}

// ListTasks returns chores, newest first, optionally filtered.
func (s *HouseholdService) ListTasks(ctx context.Context, req *connect.Request[ListTasksRequest]) (*connect.Response[ListTasksResponse], error) {
	status, err := chores.ParseStatus(req.Msg.Status)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	tasks, err := s.store.ListTasks(ctx)
	if err != nil {
		slog.Error("ListTasks failed", "error", err)
		return nil, toConnectError(err)
	}

	now := s.now()
	out := make([]*Task, 0, len(tasks))
	for _, t := range tasks {
		if req.Msg.AssignedTo != "" && t.AssignedTo != req.Msg.AssignedTo {
			continue
		}
		if !status.Matches(*t, now) {
			continue
		}
		out = append(out, toTaskMessage(t, now))
	}

	return connect.NewResponse(&ListTasksResponse{Tasks: out}), nil
}

func toMemberMessage(m *models.Member) *Member {
	return &Member{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Color:     m.Color,
		Avatar:    m.Avatar,
		CreatedAt: m.CreatedAt,
	}
}

func toExpenseMessage(e *models.Expense) *Expense {
	return &Expense{
		ID:           e.ID,
		Title:        e.Title,
		Amount:       e.Amount,
		PaidBy:       e.PaidBy,
		SplitBetween: e.SplitBetween,
		Category:     e.Category,
		Date:         e.Date,
		Description:  e.Description,
		CreatedAt:    e.CreatedAt,
	}
}

func toPaymentMessage(p *models.Payment) *Payment {
	return &Payment{
		ID:        p.ID,
		From:      p.From,
		To:        p.To,
		Amount:    p.Amount,
		Date:      p.Date,
		ExpenseID: p.ExpenseID,
		CreatedAt: p.CreatedAt,
	}
}

func toTaskMessage(t *models.Task, now time.Time) *Task {
	return &Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		AssignedTo:  t.AssignedTo,
		CreatedBy:   t.CreatedBy,
		DueDate:     t.DueDate,
		Priority:    string(t.Priority),
		Category:    t.Category,
		Completed:   t.Completed,
		CompletedAt: t.CompletedAt,
		Overdue:     chores.IsOverdue(*t, now),
	}
}
