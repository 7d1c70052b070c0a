package observability

import (
	"context"
	"log/slog"
	"os"

	"github.com/KasumiMercury/primind-auth/internal/observability/logging"
	"github.com/KasumiMercury/primind-auth/internal/observability/tracing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

type Config struct {
	ServiceInfo   logging.ServiceInfo
	Environment   logging.Environment
	SamplingRate  float64
	OTLPEndpoint  string
	DefaultModule logging.Module
}

type Resources struct {
	Logger  *slog.Logger
	tracing *tracing.Provider
}

// Init installs the default slog logger, the global tracer provider and the
// W3C trace context propagator.
func Init(ctx context.Context, cfg Config) (*Resources, error) {
	logger := logging.NewLogger(os.Stdout, cfg.ServiceInfo, cfg.Environment, cfg.DefaultModule)
	slog.SetDefault(logger)

	tp, err := tracing.NewProvider(ctx, tracing.Config{
		ServiceName:    cfg.ServiceInfo.Name,
		ServiceVersion: cfg.ServiceInfo.Version,
		Environment:    string(cfg.Environment),
		SamplingRate:   cfg.SamplingRate,
		OTLPEndpoint:   cfg.OTLPEndpoint,
	})
	if err != nil {
		return nil, err
	}

	otel.SetTracerProvider(tp.TracerProvider())
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return &Resources{Logger: logger, tracing: tp}, nil
}

func (r *Resources) Shutdown(ctx context.Context) error {
	if r == nil || r.tracing == nil {
		return nil
	}

	return r.tracing.Shutdown(ctx)
}
