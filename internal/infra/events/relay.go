package events

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"foodshare/internal/pkg/clock"
	"foodshare/internal/pkg/config"
	"foodshare/internal/pkg/metrics"
	"foodshare/internal/pkg/tracing"
	"foodshare/internal/usecase/shared"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const maxBackoff = 10 * time.Minute

// Relay drains the outbox table into a Publisher. Several relays may run
// against the same database; SKIP LOCKED hands each row to one of them.
type Relay struct {
	uow       shared.UnitOfWork
	publisher Publisher
	clock     clock.Clock
	cfg       config.OutboxConfig
	logger    *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRelay(uow shared.UnitOfWork, publisher Publisher, clk clock.Clock, cfg config.OutboxConfig, logger *slog.Logger) *Relay {
	return &Relay{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
		cfg:       cfg,
		logger:    logger,
	}
}

func (r *Relay) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(context.WithoutCancel(ctx))
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		r.loop(ctx)
	}()
	r.logger.Info("outbox relay started", slog.Duration("interval", r.cfg.PollInterval))
}

func (r *Relay) Stop(ctx context.Context) error {
	if r.cancel != nil {
		r.cancel()
	}

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	r.logger.Info("outbox relay stopped")
	return r.publisher.Close()
}

func (r *Relay) loop(ctx context.Context) {
	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := r.RunOnce(ctx); err != nil && ctx.Err() == nil {
				r.logger.Error("outbox relay batch failed", slog.String("error", err.Error()))
			}
		}
	}
}

// RunOnce publishes one batch of due events and returns how many were sent.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	sent := 0
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		sent = 0
		now := r.clock.Now()
		due, err := tx.Outbox().LockDue(ctx, tx.DB(), now, r.cfg.BatchSize)
		if err != nil {
			return err
		}

		for _, ev := range due {
			if pubErr := r.publish(ctx, ev); pubErr != nil {
				attempts := ev.Attempts + 1
				failed := attempts >= r.cfg.MaxAttempts
				runAt := now.Add(r.backoff(attempts))
				if err := tx.Outbox().MarkRetry(ctx, tx.DB(), ev.ID, pubErr.Error(), runAt, failed); err != nil {
					return err
				}
				if failed {
					metrics.OutboxEventsTotal.WithLabelValues("failed").Inc()
					r.logger.Error("outbox event gave up",
						slog.String("event_id", ev.ID.String()),
						slog.String("kind", ev.Kind),
						slog.Int("attempts", int(attempts)),
						slog.String("error", pubErr.Error()))
				} else {
					metrics.OutboxEventsTotal.WithLabelValues("retry").Inc()
					r.logger.Warn("outbox event publish failed",
						slog.String("event_id", ev.ID.String()),
						slog.Int("attempts", int(attempts)),
						slog.Time("next_run_at", runAt),
						slog.String("error", pubErr.Error()))
				}
				continue
			}

			if err := tx.Outbox().MarkSent(ctx, tx.DB(), ev.ID); err != nil {
				return err
			}
			metrics.OutboxEventsTotal.WithLabelValues("sent").Inc()
			sent++
		}
		return nil
	})
	return sent, err
}

func (r *Relay) publish(ctx context.Context, ev shared.OutboxEvent) error {
	ctx = tracing.ExtractMap(ctx, ev.Headers)
	ctx, span := tracing.Start(ctx, "outbox.publish")
	defer span.End()
	span.SetAttributes(
		attribute.String("event.kind", ev.Kind),
		attribute.String("event.aggregate_id", ev.AggregateID.String()),
	)

	if err := r.publisher.Publish(ctx, ev); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// backoff doubles per attempt from BaseBackoff, capped at maxBackoff.
func (r *Relay) backoff(attempts int32) time.Duration {
	d := r.cfg.BaseBackoff
	for i := int32(1); i < attempts; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}
