package middleware

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitledger/pkg/api"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func captureLogs(t *testing.T) *syncBuffer {
	t.Helper()
	buf := &syncBuffer{}
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return buf
}

func newLoggedClient(t *testing.T) *api.Client {
	t.Helper()
	opts := []connect.HandlerOption{
		connect.WithCodec(api.Codec{}),
		connect.WithInterceptors(LoggingInterceptor()),
	}
	mux := http.NewServeMux()
	mux.Handle(api.DeleteExpenseProcedure, connect.NewUnaryHandler(api.DeleteExpenseProcedure,
		func(_ context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
			return connect.NewResponse(&api.DeleteExpenseResponse{Found: req.Msg.ID == "e1"}), nil
		}, opts...))
	mux.Handle(api.AddBudgetProcedure, connect.NewUnaryHandler(api.AddBudgetProcedure,
		func(context.Context, *connect.Request[api.AddBudgetRequest]) (*connect.Response[api.AddBudgetResponse], error) {
			return nil, connect.NewError(connect.CodeAlreadyExists, errors.New("budget already exists"))
		}, opts...))

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return api.NewClient(http.DefaultClient, server.URL)
}

func TestLoggingInterceptor(t *testing.T) {
	logs := captureLogs(t)
	client := newLoggedClient(t)
	ctx := context.Background()

	_, err := client.DeleteExpense(ctx, connect.NewRequest(&api.DeleteExpenseRequest{ID: "e1"}))
	require.NoError(t, err)
	assert.Contains(t, logs.String(), `"msg":"Ledger op ok","op":"DeleteExpense"`)
	assert.Contains(t, logs.String(), `"found":true`)

	_, err = client.DeleteExpense(ctx, connect.NewRequest(&api.DeleteExpenseRequest{ID: "missing"}))
	require.NoError(t, err)
	assert.Contains(t, logs.String(), `"msg":"Ledger op missed","op":"DeleteExpense"`)
	assert.Contains(t, logs.String(), `"found":false`)

	_, err = client.AddBudget(ctx, connect.NewRequest(&api.AddBudgetRequest{Category: "Food", Limit: "10"}))
	require.Error(t, err)
	assert.Contains(t, logs.String(), `"level":"WARN","msg":"Ledger op rejected","op":"AddBudget"`)
	assert.Contains(t, logs.String(), `"code":"already_exists"`)
}

func TestOpName(t *testing.T) {
	assert.Equal(t, "AddExpense", opName(api.AddExpenseProcedure))
	assert.Equal(t, "bare", opName("bare"))
}
