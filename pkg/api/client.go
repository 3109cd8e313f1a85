package api

import (
	"context"
	"strings"

	"connectrpc.com/connect"
)

// ServiceName is the fully-qualified name of the ledger service.
const ServiceName = "splitledger.v1.LedgerService"

// Procedure paths, one per RPC.
const (
	GetLedgerProcedure     = "/" + ServiceName + "/GetLedger"
	AddUserProcedure       = "/" + ServiceName + "/AddUser"
	AddExpenseProcedure    = "/" + ServiceName + "/AddExpense"
	EditExpenseProcedure   = "/" + ServiceName + "/EditExpense"
	DeleteExpenseProcedure = "/" + ServiceName + "/DeleteExpense"
	AddBudgetProcedure     = "/" + ServiceName + "/AddBudget"
	EditBudgetProcedure    = "/" + ServiceName + "/EditBudget"
	DeleteBudgetProcedure  = "/" + ServiceName + "/DeleteBudget"
	SetCurrencyProcedure   = "/" + ServiceName + "/SetCurrency"
)

// Client calls the LedgerService.
type Client struct {
	getLedger     *connect.Client[GetLedgerRequest, GetLedgerResponse]
	addUser       *connect.Client[AddUserRequest, AddUserResponse]
	addExpense    *connect.Client[AddExpenseRequest, AddExpenseResponse]
	editExpense   *connect.Client[EditExpenseRequest, EditExpenseResponse]
	deleteExpense *connect.Client[DeleteExpenseRequest, DeleteExpenseResponse]
	addBudget     *connect.Client[AddBudgetRequest, AddBudgetResponse]
	editBudget    *connect.Client[EditBudgetRequest, EditBudgetResponse]
	deleteBudget  *connect.Client[DeleteBudgetRequest, DeleteBudgetResponse]
	setCurrency   *connect.Client[SetCurrencyRequest, SetCurrencyResponse]
}

// NewClient creates a Client for the server at baseURL (e.g. http://localhost:8080).
func NewClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *Client {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(Codec{})}, opts...)
	return &Client{
		getLedger:     connect.NewClient[GetLedgerRequest, GetLedgerResponse](httpClient, baseURL+GetLedgerProcedure, opts...),
		addUser:       connect.NewClient[AddUserRequest, AddUserResponse](httpClient, baseURL+AddUserProcedure, opts...),
		addExpense:    connect.NewClient[AddExpenseRequest, AddExpenseResponse](httpClient, baseURL+AddExpenseProcedure, opts...),
		editExpense:   connect.NewClient[EditExpenseRequest, EditExpenseResponse](httpClient, baseURL+EditExpenseProcedure, opts...),
		deleteExpense: connect.NewClient[DeleteExpenseRequest, DeleteExpenseResponse](httpClient, baseURL+DeleteExpenseProcedure, opts...),
		addBudget:     connect.NewClient[AddBudgetRequest, AddBudgetResponse](httpClient, baseURL+AddBudgetProcedure, opts...),
		editBudget:    connect.NewClient[EditBudgetRequest, EditBudgetResponse](httpClient, baseURL+EditBudgetProcedure, opts...),
		deleteBudget:  connect.NewClient[DeleteBudgetRequest, DeleteBudgetResponse](httpClient, baseURL+DeleteBudgetProcedure, opts...),
		setCurrency:   connect.NewClient[SetCurrencyRequest, SetCurrencyResponse](httpClient, baseURL+SetCurrencyProcedure, opts...),
	}
}

func (c *Client) GetLedger(ctx context.Context, req *connect.Request[GetLedgerRequest]) (*connect.Response[GetLedgerResponse], error) {
	return c.getLedger.CallUnary(ctx, req)
}

func (c *Client) AddUser(ctx context.Context, req *connect.Request[AddUserRequest]) (*connect.Response[AddUserResponse], error) {
	return c.addUser.CallUnary(ctx, req)
}

func (c *Client) AddExpense(ctx context.Context, req *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error) {
	return c.addExpense.CallUnary(ctx, req)
}

func (c *Client) EditExpense(ctx context.Context, req *connect.Request[EditExpenseRequest]) (*connect.Response[EditExpenseResponse], error) {
	return c.editExpense.CallUnary(ctx, req)
}

func (c *Client) DeleteExpense(ctx context.Context, req *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error) {
	return c.deleteExpense.CallUnary(ctx, req)
}

func (c *Client) AddBudget(ctx context.Context, req *connect.Request[AddBudgetRequest]) (*connect.Response[AddBudgetResponse], error) {
	return c.addBudget.CallUnary(ctx, req)
}

func (c *Client) EditBudget(ctx context.Context, req *connect.Request[EditBudgetRequest]) (*connect.Response[EditBudgetResponse], error) {
	return c.editBudget.CallUnary(ctx, req)
}

func (c *Client) DeleteBudget(ctx context.Context, req *connect.Request[DeleteBudgetRequest]) (*connect.Response[DeleteBudgetResponse], error) {
	return c.deleteBudget.CallUnary(ctx, req)
}

func (c *Client) SetCurrency(ctx context.Context, req *connect.Request[SetCurrencyRequest]) (*connect.Response[SetCurrencyResponse], error) {
	return c.setCurrency.CallUnary(ctx, req)
}
