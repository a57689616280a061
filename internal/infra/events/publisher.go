package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"foodshare/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	KindListingCreated = "listing.created"
	KindListingClaimed = "listing.claimed"
)

// Envelope is the JSON value published for every event.
type Envelope struct {
	ID          uuid.UUID       `json:"id"`
	Kind        string          `json:"kind"`
	AggregateID uuid.UUID       `json:"aggregate_id"`
	OccurredAt  time.Time       `json:"occurred_at"`
	Data        json.RawMessage `json:"data"`
}

func NewEnvelope(kind string, aggregateID uuid.UUID, occurredAt time.Time, data any) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{
		ID:          uuid.New(),
		Kind:        kind,
		AggregateID: aggregateID,
		OccurredAt:  occurredAt.UTC(),
		Data:        raw,
	})
}

type Publisher interface {
	Publish(ctx context.Context, ev shared.OutboxEvent) error
	Close() error
}

// LogPublisher writes events to the structured log. Used when no brokers are
// configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, ev shared.OutboxEvent) error {
	p.logger.Info("event published",
		slog.String("event_id", ev.ID.String()),
		slog.String("kind", ev.Kind),
		slog.String("topic", ev.Topic),
		slog.String("aggregate_id", ev.AggregateID.String()),
		slog.String("payload", string(ev.Payload)))
	return nil
}

func (p *LogPublisher) Close() error { return nil }
