package main

import (
	"context"
	"os"
	"strconv"

	"github.com/KasumiMercury/primind-auth/internal/observability"
	"github.com/KasumiMercury/primind-auth/internal/observability/logging"
)

func initObservability(ctx context.Context) (*observability.Resources, error) {
	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "primind-auth"
	}

	env := logging.EnvDev
	if e := os.Getenv("ENV"); e != "" {
		env = logging.Environment(e)
	}

	samplingRate := 1.0
	if raw := os.Getenv("OTEL_SAMPLING_RATE"); raw != "" {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
			samplingRate = parsed
		}
	}

	return observability.Init(ctx, observability.Config{
		ServiceInfo: logging.ServiceInfo{
			Name:     serviceName,
			Version:  Version,
			Revision: os.Getenv("REVISION"),
		},
		Environment:   env,
		SamplingRate:  samplingRate,
		OTLPEndpoint:  os.Getenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT"),
		DefaultModule: logging.Module("central"),
	})
}
