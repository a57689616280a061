package commands

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"foodshare/internal/pkg/errs"
	"foodshare/internal/usecase/shared"
)

const janitorInterval = 15 * time.Minute

// IdempotencyJanitor periodically purges idempotency keys past their expiry.
type IdempotencyJanitor struct {
	uow      shared.UnitOfWork
	logger   *slog.Logger
	interval time.Duration

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewIdempotencyJanitor(uow shared.UnitOfWork, logger *slog.Logger) *IdempotencyJanitor {
	return &IdempotencyJanitor{
		uow:      uow,
		logger:   logger,
		interval: janitorInterval,
	}
}

func (j *IdempotencyJanitor) Start(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	j.cancel = cancel

	j.wg.Add(1)
	go func() {
		defer j.wg.Done()
		ticker := time.NewTicker(j.interval)
		defer ticker.Stop()

		for {
			select {
			case <-runCtx.Done():
				return
			case <-ticker.C:
				if _, err := j.RunOnce(runCtx); err != nil {
					j.logger.Warn("idempotency sweep failed", "error", err)
				}
			}
		}
	}()

	return nil
}

func (j *IdempotencyJanitor) Stop(ctx context.Context) error {
	if j.cancel == nil {
		return nil
	}
	j.cancel()

	done := make(chan struct{})
	go func() {
		j.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (j *IdempotencyJanitor) RunOnce(ctx context.Context) (int64, error) {
	var purged int64
	err := j.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Idempotency().DeleteExpired(ctx, tx.DB())
		if err != nil {
			return err
		}
		purged = n
		return nil
	})
	if err != nil {
		return 0, errs.Wrap(err, "failed to purge expired idempotency keys")
	}

	if purged > 0 {
		j.logger.Info("purged expired idempotency keys", "count", purged)
	}
	return purged, nil
}
