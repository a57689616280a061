package bootstrap

import (
	"context"
	"log/slog"

	"foodshare/internal/pkg/config"
	"foodshare/internal/pkg/tracing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/fx"
)

var TracingModule = fx.Module("tracing",
	fx.Provide(
		NewTracerProvider,
	),
	// spans are created through the global provider, so force construction
	fx.Invoke(func(*sdktrace.TracerProvider) {}),
)

func NewTracerProvider(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*sdktrace.TracerProvider, error) {
	tp, err := tracing.InitTracerProvider(cfg.Tracing, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return tracing.Shutdown(ctx, tp)
		},
	})

	return tp, nil
}
