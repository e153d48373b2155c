package service

import "github.com/shopspring/decimal"

// Wire messages. Amounts travel as decimal strings ("30.125") and timestamps as Unix seconds.

type Member struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Color     string `json:"color,omitempty"`
	Avatar    string `json:"avatar"`
	CreatedAt int64  `json:"createdAt"`
}

type AddMemberRequest struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Color string `json:"color,omitempty"`
}

type AddMemberResponse struct {
	Member *Member `json:"member"`
}

type UpdateMemberRequest struct {
	MemberID string `json:"memberId"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Color    string `json:"color,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

type UpdateMemberResponse struct {
	Member *Member `json:"member"`
}

type ListMembersRequest struct{}

type ListMembersResponse struct {
	Members []*Member `json:"members"`
}

type Expense struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	Amount       decimal.Decimal `json:"amount"`
	PaidBy       string          `json:"paidBy"`
	SplitBetween []string        `json:"splitBetween"`
	Category     string          `json:"category"`
	Date         int64           `json:"date"`
	Description  string          `json:"description,omitempty"`
	CreatedAt    int64           `json:"createdAt"`
}

type AddExpenseRequest struct {
	Title        string          `json:"title"`
	Amount       decimal.Decimal `json:"amount"`
	PaidBy       string          `json:"paidBy"`
	SplitBetween []string        `json:"splitBetween"`
	Category     string          `json:"category"`
	Date         int64           `json:"date,omitempty"`
	Description  string          `json:"description,omitempty"`
}

type AddExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type ListExpensesRequest struct{}

type ListExpensesResponse struct {
	Expenses []*Expense `json:"expenses"`
}

type Payment struct {
	ID        string          `json:"id"`
	From      string          `json:"from"`
	To        string          `json:"to"`
	Amount    decimal.Decimal `json:"amount"`
	Date      int64           `json:"date"`
	ExpenseID string          `json:"expenseId,omitempty"`
	CreatedAt int64           `json:"createdAt"`
}

type RecordPaymentRequest struct {
	From      string          `json:"from"`
	To        string          `json:"to"`
	Amount    decimal.Decimal `json:"amount"`
	Date      int64           `json:"date,omitempty"`
	ExpenseID string          `json:"expenseId,omitempty"`
}

type RecordPaymentResponse struct {
	Payment *Payment `json:"payment"`
}

type ListPaymentsRequest struct{}

type ListPaymentsResponse struct {
	Payments []*Payment `json:"payments"`
}

type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	AssignedTo  string `json:"assignedTo"`
	CreatedBy   string `json:"createdBy"`
	DueDate     int64  `json:"dueDate"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
	Completed   bool   `json:"completed"`
	CompletedAt int64  `json:"completedAt,omitempty"`
	Overdue     bool   `json:"overdue"`
}

type AddTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	AssignedTo  string `json:"assignedTo"`
	CreatedBy   string `json:"createdBy"`
	DueDate     int64  `json:"dueDate"`
	Priority    string `json:"priority"`
	Category    string `json:"category"`
}

type AddTaskResponse struct {
	Task *Task `json:"task"`
}

type ToggleTaskRequest struct {
	TaskID string `json:"taskId"`
}

type ToggleTaskResponse struct {
	Task *Task `json:"task"`
}

type ListTasksRequest struct {
	// AssignedTo limits the result to one member's chores when set.
	AssignedTo string `json:"assignedTo,omitempty"`
	// Status is one of all, pending, completed or overdue. Empty means all.
	Status string `json:"status,omitempty"`
}

type ListTasksResponse struct {
	Tasks []*Task `json:"tasks"`
}

type Balance struct {
	MemberID   string                     `json:"memberId"`
	Owes       map[string]decimal.Decimal `json:"owes"`
	Owed       map[string]decimal.Decimal `json:"owed"`
	NetBalance decimal.Decimal            `json:"netBalance"`
}

type GetBalancesRequest struct{}

type GetBalancesResponse struct {
	Balances []*Balance `json:"balances"`
}

type Transfer struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Amount decimal.Decimal `json:"amount"`
}

type SuggestSettlementsRequest struct{}

type SuggestSettlementsResponse struct {
	Transfers []*Transfer `json:"transfers"`
}

type GetDashboardRequest struct {
	// MemberID selects whose dashboard to build. Falls back to the session member.
	MemberID string `json:"memberId,omitempty"`
}

type GetDashboardResponse struct {
	MemberID      string          `json:"memberId"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	MyShare       decimal.Decimal `json:"myShare"`
	NetBalance    decimal.Decimal `json:"netBalance"`
	PendingTasks  int             `json:"pendingTasks"`
	OverdueTasks  int             `json:"overdueTasks"`
	MyTasks       int             `json:"myTasks"`
}
