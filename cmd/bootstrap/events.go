package bootstrap

import (
	"context"
	"log/slog"
	"strings"

	"foodshare/internal/infra/events"
	"foodshare/internal/pkg/clock"
	"foodshare/internal/pkg/config"
	"foodshare/internal/usecase/shared"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewPublisher,
		NewRelay,
	),
	fx.Invoke(registerRelay),
)

// NewPublisher falls back to logging events when no Kafka brokers are set.
func NewPublisher(cfg config.Config, logger *slog.Logger) events.Publisher {
	brokers := make([]string, 0, len(cfg.Kafka.Brokers))
	for _, b := range cfg.Kafka.Brokers {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}

	if len(brokers) == 0 {
		logger.Info("no kafka brokers configured, outbox events will be logged")
		return events.NewLogPublisher(logger)
	}

	kafkaCfg := cfg.Kafka
	kafkaCfg.Brokers = brokers
	return events.NewKafkaPublisher(events.NewKafkaWriter(kafkaCfg))
}

func NewRelay(uow shared.UnitOfWork, publisher events.Publisher, clk clock.Clock, cfg config.Config, logger *slog.Logger) *events.Relay {
	return events.NewRelay(uow, publisher, clk, cfg.Outbox, logger)
}

func registerRelay(lc fx.Lifecycle, relay *events.Relay) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			relay.Start(ctx)
			return nil
		},
		OnStop: relay.Stop,
	})
}
