package middleware

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"connectrpc.com/connect"
)

// finder is implemented by responses of operations that may miss their target.
type finder interface {
	GetFound() bool
}

// LoggingInterceptor returns a Connect interceptor that logs every ledger RPC.
// Each line carries the ledger op and duration. Edit and delete calls also
// log whether their target existed; errors log their Connect code.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			op := opName(req.Spec().Procedure)

			resp, err := next(ctx, req)

			attrs := []any{"op", op, "duration_ms", time.Since(start).Milliseconds()}
			if err != nil {
				attrs = append(attrs, "peer", req.Peer().Addr)
				var connectErr *connect.Error
				if errors.As(err, &connectErr) && connectErr.Code() != connect.CodeInternal {
					slog.Warn("Ledger op rejected", append(attrs, "code", connectErr.Code(), "error", connectErr.Message())...)
				} else {
					slog.Error("Ledger op failed", append(attrs, "error", err)...)
				}
				return resp, err
			}

			if f, ok := resp.Any().(finder); ok {
				attrs = append(attrs, "found", f.GetFound())
				if !f.GetFound() {
					slog.Info("Ledger op missed", attrs...)
					return resp, err
				}
			}
			slog.Info("Ledger op ok", attrs...)
			return resp, err
		}
	}
}

// opName returns the method part of a procedure path ("/pkg.Service/Method").
func opName(procedure string) string {
	if i := strings.LastIndex(procedure, "/"); i >= 0 {
		return procedure[i+1:]
	}
	return procedure
}
