package service

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

const (
	// HouseholdServiceName is the fully-qualified name of the HouseholdService.
	HouseholdServiceName = "roomledger.v1.HouseholdService"
	// LedgerServiceName is the fully-qualified name of the LedgerService.
	LedgerServiceName = "roomledger.v1.LedgerService"
)

// Procedure paths, in the form Connect routes them: /<service>/<method>.
const (
	HouseholdServiceAddMemberProcedure     = "/" + HouseholdServiceName + "/AddMember"
	HouseholdServiceUpdateMemberProcedure  = "/" + HouseholdServiceName + "/UpdateMember"
	HouseholdServiceListMembersProcedure   = "/" + HouseholdServiceName + "/ListMembers"
	HouseholdServiceAddExpenseProcedure    = "/" + HouseholdServiceName + "/AddExpense"
	HouseholdServiceListExpensesProcedure  = "/" + HouseholdServiceName + "/ListExpenses"
	HouseholdServiceRecordPaymentProcedure = "/" + HouseholdServiceName + "/RecordPayment"
	HouseholdServiceListPaymentsProcedure  = "/" + HouseholdServiceName + "/ListPayments"
	HouseholdServiceAddTaskProcedure       = "/" + HouseholdServiceName + "/AddTask"
	HouseholdServiceToggleTaskProcedure    = "/" + HouseholdServiceName + "/ToggleTask"
	HouseholdServiceListTasksProcedure     = "/" + HouseholdServiceName + "/ListTasks"

	LedgerServiceGetBalancesProcedure        = "/" + LedgerServiceName + "/GetBalances"
	LedgerServiceSuggestSettlementsProcedure = "/" + LedgerServiceName + "/SuggestSettlements"
	LedgerServiceGetDashboardProcedure       = "/" + LedgerServiceName + "/GetDashboard"
)

func handlerOptions(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)
}

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(JSONCodec{})}, opts...)
}

// NewHouseholdServiceHandler builds an HTTP handler for svc. It returns the
// path prefix to mount the handler on.
func NewHouseholdServiceHandler(svc *HouseholdService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(HouseholdServiceAddMemberProcedure, connect.NewUnaryHandler(HouseholdServiceAddMemberProcedure, svc.AddMember, opts...))
	mux.Handle(HouseholdServiceUpdateMemberProcedure, connect.NewUnaryHandler(HouseholdServiceUpdateMemberProcedure, svc.UpdateMember, opts...))
	mux.Handle(HouseholdServiceListMembersProcedure, connect.NewUnaryHandler(HouseholdServiceListMembersProcedure, svc.ListMembers, opts...))
	mux.Handle(HouseholdServiceAddExpenseProcedure, connect.NewUnaryHandler(HouseholdServiceAddExpenseProcedure, svc.AddExpense, opts...))
	mux.Handle(HouseholdServiceListExpensesProcedure, connect.NewUnaryHandler(HouseholdServiceListExpensesProcedure, svc.ListExpenses, opts...))
	mux.Handle(HouseholdServiceRecordPaymentProcedure, connect.NewUnaryHandler(HouseholdServiceRecordPaymentProcedure, svc.RecordPayment, opts...))
	mux.Handle(HouseholdServiceListPaymentsProcedure, connect.NewUnaryHandler(HouseholdServiceListPaymentsProcedure, svc.ListPayments, opts...))
	mux.Handle(HouseholdServiceAddTaskProcedure, connect.NewUnaryHandler(HouseholdServiceAddTaskProcedure, svc.AddTask, opts...))
	mux.Handle(HouseholdServiceToggleTaskProcedure, connect.NewUnaryHandler(HouseholdServiceToggleTaskProcedure, svc.ToggleTask, opts...))
	mux.Handle(HouseholdServiceListTasksProcedure, connect.NewUnaryHandler(HouseholdServiceListTasksProcedure, svc.ListTasks, opts...))
	return "/" + HouseholdServiceName + "/", mux
}

// NewLedgerServiceHandler builds an HTTP handler for svc. It returns the
// path prefix to mount the handler on.
func NewLedgerServiceHandler(svc *LedgerService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(LedgerServiceGetBalancesProcedure, connect.NewUnaryHandler(LedgerServiceGetBalancesProcedure, svc.GetBalances, opts...))
	mux.Handle(LedgerServiceSuggestSettlementsProcedure, connect.NewUnaryHandler(LedgerServiceSuggestSettlementsProcedure, svc.SuggestSettlements, opts...))
	mux.Handle(LedgerServiceGetDashboardProcedure, connect.NewUnaryHandler(LedgerServiceGetDashboardProcedure, svc.GetDashboard, opts...))
	return "/" + LedgerServiceName + "/", mux
}

// HouseholdClient is a client for the HouseholdService.
type HouseholdClient struct {
	addMember     *connect.Client[AddMemberRequest, AddMemberResponse]
	updateMember  *connect.Client[UpdateMemberRequest, UpdateMemberResponse]
	listMembers   *connect.Client[ListMembersRequest, ListMembersResponse]
	addExpense    *connect.Client[AddExpenseRequest, AddExpenseResponse]
	listExpenses  *connect.Client[ListExpensesRequest, ListExpensesResponse]
	recordPayment *connect.Client[RecordPaymentRequest, RecordPaymentResponse]
	listPayments  *connect.Client[ListPaymentsRequest, ListPaymentsResponse]
	addTask       *connect.Client[AddTaskRequest, AddTaskResponse]
	toggleTask    *connect.Client[ToggleTaskRequest, ToggleTaskResponse]
	listTasks     *connect.Client[ListTasksRequest, ListTasksResponse]
}

// NewHouseholdClient constructs a client for the HouseholdService at baseURL.
func NewHouseholdClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *HouseholdClient {
	opts = clientOptions(opts)
	return &HouseholdClient{
		addMember:     connect.NewClient[AddMemberRequest, AddMemberResponse](httpClient, baseURL+HouseholdServiceAddMemberProcedure, opts...),
		updateMember:  connect.NewClient[UpdateMemberRequest, UpdateMemberResponse](httpClient, baseURL+HouseholdServiceUpdateMemberProcedure, opts...),
		listMembers:   connect.NewClient[ListMembersRequest, ListMembersResponse](httpClient, baseURL+HouseholdServiceListMembersProcedure, opts...),
		addExpense:    connect.NewClient[AddExpenseRequest, AddExpenseResponse](httpClient, baseURL+HouseholdServiceAddExpenseProcedure, opts...),
		listExpenses:  connect.NewClient[ListExpensesRequest, ListExpensesResponse](httpClient, baseURL+HouseholdServiceListExpensesProcedure, opts...),
		recordPayment: connect.NewClient[RecordPaymentRequest, RecordPaymentResponse](httpClient, baseURL+HouseholdServiceRecordPaymentProcedure, opts...),
		listPayments:  connect.NewClient[ListPaymentsRequest, ListPaymentsResponse](httpClient, baseURL+HouseholdServiceListPaymentsProcedure, opts...),
		addTask:       connect.NewClient[AddTaskRequest, AddTaskResponse](httpClient, baseURL+HouseholdServiceAddTaskProcedure, opts...),
		toggleTask:    connect.NewClient[ToggleTaskRequest, ToggleTaskResponse](httpClient, baseURL+HouseholdServiceToggleTaskProcedure, opts...),
		listTasks:     connect.NewClient[ListTasksRequest, ListTasksResponse](httpClient, baseURL+HouseholdServiceListTasksProcedure, opts...),
	}
}

func (c *HouseholdClient) AddMember(ctx context.Context, req *connect.Request[AddMemberRequest]) (*connect.Response[AddMemberResponse], error) {
	return c.addMember.CallUnary(ctx, req)
}

func (c *HouseholdClient) UpdateMember(ctx context.Context, req *connect.Request[UpdateMemberRequest]) (*connect.Response[UpdateMemberResponse], error) {
	return c.updateMember.CallUnary(ctx, req)
}

func (c *HouseholdClient) ListMembers(ctx context.Context, req *connect.Request[ListMembersRequest]) (*connect.Response[ListMembersResponse], error) {
	return c.listMembers.CallUnary(ctx, req)
}

func (c *HouseholdClient) AddExpense(ctx context.Context, req *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error) {
	return c.addExpense.CallUnary(ctx, req)
}

func (c *HouseholdClient) ListExpenses(ctx context.Context, req *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error) {
	return c.listExpenses.CallUnary(ctx, req)
}

func (c *HouseholdClient) RecordPayment(ctx context.Context, req *connect.Request[RecordPaymentRequest]) (*connect.Response[RecordPaymentResponse], error) {
	return c.recordPayment.CallUnary(ctx, req)
}

func (c *HouseholdClient) ListPayments(ctx context.Context, req *connect.Request[ListPaymentsRequest]) (*connect.Response[ListPaymentsResponse], error) {
	return c.listPayments.CallUnary(ctx, req)
}

func (c *HouseholdClient) AddTask(ctx context.Context, req *connect.Request[AddTaskRequest]) (*connect.Response[AddTaskResponse], error) {
	return c.addTask.CallUnary(ctx, req)
}

func (c *HouseholdClient) ToggleTask(ctx context.Context, req *connect.Request[ToggleTaskRequest]) (*connect.Response[ToggleTaskResponse], error) {
	return c.toggleTask.CallUnary(ctx, req)
}

func (c *HouseholdClient) ListTasks(ctx context.Context, req *connect.Request[ListTasksRequest]) (*connect.Response[ListTasksResponse], error) {
	return c.listTasks.CallUnary(ctx, req)
}

// LedgerClient is a client for the LedgerService.
type LedgerClient struct {
	getBalances        *connect.Client[GetBalancesRequest, GetBalancesResponse]
	suggestSettlements *connect.Client[SuggestSettlementsRequest, SuggestSettlementsResponse]
	getDashboard       *connect.Client[GetDashboardRequest, GetDashboardResponse]
}

// NewLedgerClient constructs a client for the LedgerService at baseURL.
func NewLedgerClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *LedgerClient {
	opts = clientOptions(opts)
	return &LedgerClient{
		getBalances:        connect.NewClient[GetBalancesRequest, GetBalancesResponse](httpClient, baseURL+LedgerServiceGetBalancesProcedure, opts...),
		suggestSettlements: connect.NewClient[SuggestSettlementsRequest, SuggestSettlementsResponse](httpClient, baseURL+LedgerServiceSuggestSettlementsProcedure, opts...),
		getDashboard:       connect.NewClient[GetDashboardRequest, GetDashboardResponse](httpClient, baseURL+LedgerServiceGetDashboardProcedure, opts...),
	}
}

func (c *LedgerClient) GetBalances(ctx context.Context, req *connect.Request[GetBalancesRequest]) (*connect.Response[GetBalancesResponse], error) {
	return c.getBalances.CallUnary(ctx, req)
}

func (c *LedgerClient) SuggestSettlements(ctx context.Context, req *connect.Request[SuggestSettlementsRequest]) (*connect.Response[SuggestSettlementsResponse], error) {
	return c.suggestSettlements.CallUnary(ctx, req)
}

func (c *LedgerClient) GetDashboard(ctx context.Context, req *connect.Request[GetDashboardRequest]) (*connect.Response[GetDashboardResponse], error) {
	return c.getDashboard.CallUnary(ctx, req)
}
