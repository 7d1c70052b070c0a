package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/KasumiMercury/primind-auth/internal/observability/logging"
	"github.com/KasumiMercury/primind-auth/internal/observability/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/KasumiMercury/primind-auth/internal/observability/middleware"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// HTTPLogging assigns a request id, starts a server span and logs the
// outcome of plain HTTP routes.
func HTTPLogging(module logging.Module, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := logging.ValidateAndExtractRequestID(r.Header.Get(requestIDHeader))

		ctx := tracing.ExtractFromHTTPRequest(r)
		ctx = logging.WithRequestID(ctx, requestID)

		if module != "" {
			ctx = logging.WithModule(ctx, module)
		}

		ctx, span := otel.Tracer(tracerName).Start(ctx, r.Method+" "+r.URL.Path,
			trace.WithSpanKind(trace.SpanKindServer),
		)
		defer span.End()

		w.Header().Set(requestIDHeader, requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		next.ServeHTTP(rec, r.WithContext(ctx))

		span.SetAttributes(attribute.Int("http.response.status_code", rec.status))

		level := slog.LevelInfo
		if rec.status >= http.StatusInternalServerError {
			level = slog.LevelError
		}

		slog.Log(ctx, level, "http request completed",
			slog.String("event", "http.request.finish"),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Duration("duration", time.Since(start)),
		)
	})
}
