package repository

import (
	"context"
	"encoding/json"
	"time"

	"foodshare/internal/infra"
	sqlc "foodshare/internal/infra/sqlc/generated"
	"foodshare/internal/pkg/pgconv"
	"foodshare/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OutboxWriteQueries interface {
	CreateOutboxEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateOutboxEventParams) error
	LockDueOutboxEvents(ctx context.Context, db sqlc.DBTX, arg sqlc.LockDueOutboxEventsParams) ([]sqlc.OutboxEvents, error)
	MarkOutboxEventSent(ctx context.Context, db sqlc.DBTX, id uuid.UUID) error
	MarkOutboxEventRetry(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkOutboxEventRetryParams) error
}

type OutboxRepository struct {
	queries OutboxWriteQueries
	db      sqlc.DBTX
}

func NewOutboxRepository(queries OutboxWriteQueries, db sqlc.DBTX) *OutboxRepository {
	return &OutboxRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OutboxRepository) Enqueue(ctx context.Context, tx sqlc.DBTX, msg shared.OutboxMessage) error {
	headers, err := json.Marshal(msg.Headers)
	if err != nil {
		return infra.WrapRepoErr("failed to encode outbox headers", err)
	}

	params := sqlc.CreateOutboxEventParams{
		Kind:        msg.Kind,
		Topic:       msg.Topic,
		AggregateID: msg.AggregateID,
		Payload:     msg.Payload,
		Headers:     headers,
		RunAt:       pgconv.TimeToPgtype(msg.RunAt),
	}

	if err := r.queries.CreateOutboxEvent(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to enqueue outbox event", err)
	}

	return nil
}

// LockDue must run inside a transaction; rows stay locked until it ends.
func (r *OutboxRepository) LockDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int32) ([]shared.OutboxEvent, error) {
	rows, err := r.queries.LockDueOutboxEvents(ctx, tx, sqlc.LockDueOutboxEventsParams{
		Now:       pgconv.TimeToPgtype(now),
		BatchSize: limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock due outbox events", err)
	}

	events := make([]shared.OutboxEvent, 0, len(rows))
	for _, row := range rows {
		headers := map[string]string{}
		if len(row.Headers) > 0 {
			if err := json.Unmarshal(row.Headers, &headers); err != nil {
				return nil, infra.WrapRepoErr("failed to decode outbox headers", err)
			}
		}
		events = append(events, shared.OutboxEvent{
			ID:          row.ID,
			Kind:        row.Kind,
			Topic:       row.Topic,
			AggregateID: row.AggregateID,
			Payload:     row.Payload,
			Headers:     headers,
			Attempts:    row.Attempts,
		})
	}
	return events, nil
}

func (r *OutboxRepository) MarkSent(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) error {
	if err := r.queries.MarkOutboxEventSent(ctx, tx, id); err != nil {
		return infra.WrapRepoErr("failed to mark outbox event sent", err)
	}
	return nil
}

func (r *OutboxRepository) MarkRetry(ctx context.Context, tx sqlc.DBTX, id uuid.UUID, lastErr string, runAt time.Time, failed bool) error {
	status := shared.OutboxStatusQueued
	if failed {
		status = shared.OutboxStatusFailed
	}

	params := sqlc.MarkOutboxEventRetryParams{
		Status:    status,
		LastError: pgtype.Text{String: lastErr, Valid: lastErr != ""},
		RunAt:     pgconv.TimeToPgtype(runAt),
		ID:        id,
	}

	if err := r.queries.MarkOutboxEventRetry(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to reschedule outbox event", err)
	}
	return nil
}
