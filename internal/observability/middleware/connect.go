package middleware

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"
	"github.com/KasumiMercury/primind-auth/internal/auth/domain/autherr"
	"github.com/KasumiMercury/primind-auth/internal/observability/logging"
)

const requestIDHeader = "x-request-id"

func ConnectLoggingInterceptor(module logging.Module) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if req.Spec().IsClient {
				return next(ctx, req)
			}

			requestID := logging.ValidateAndExtractRequestID(req.Header().Get(requestIDHeader))

			ctx = logging.WithRequestID(ctx, requestID)
			if module != "" {
				ctx = logging.WithModule(ctx, module)
			}

			req.Header().Set(requestIDHeader, requestID)

			procedure := req.Spec().Procedure

			resp, err := next(ctx, req)
			if err != nil {
				attrs := []any{
					slog.String("event", "rpc.request.fail"),
					slog.String("procedure", procedure),
					slog.String("error", err.Error()),
					slog.String("code", connect.CodeOf(err).String()),
				}

				for _, attr := range autherr.LogAttrs(err) {
					attrs = append(attrs, attr)
				}

				slog.ErrorContext(ctx, "rpc failed", attrs...)
			} else {
				slog.InfoContext(ctx, "rpc completed",
					slog.String("event", "rpc.request.finish"),
					slog.String("procedure", procedure),
				)
			}

			return resp, err
		}
	}
}
