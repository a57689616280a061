//go:build unit

package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"foodshare/internal/infra/events"
	"foodshare/internal/pkg/clock"
	"foodshare/internal/pkg/config"
	"foodshare/internal/usecase/shared"
	eventsmock "foodshare/tests/mock/events"
	sharedmock "foodshare/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var relayNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type relayFixture struct {
	uow       *sharedmock.MockUnitOfWork
	tx        *sharedmock.MockTx
	outbox    *sharedmock.MockOutboxRepository
	publisher *eventsmock.MockPublisher
	relay     *events.Relay
	cfg       config.OutboxConfig
}

func newRelayFixture(t *testing.T) *relayFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &relayFixture{
		uow:       sharedmock.NewMockUnitOfWork(ctrl),
		tx:        sharedmock.NewMockTx(ctrl),
		outbox:    sharedmock.NewMockOutboxRepository(ctrl),
		publisher: eventsmock.NewMockPublisher(ctrl),
		cfg:       config.NewTestConfig().Outbox,
	}
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.tx.EXPECT().Outbox().Return(f.outbox).AnyTimes()
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.relay = events.NewRelay(f.uow, f.publisher, clock.NewMockClock(relayNow), f.cfg, logger)
	return f
}

func outboxEvent(attempts int32) shared.OutboxEvent {
	return shared.OutboxEvent{
		ID:          uuid.New(),
		Kind:        events.KindListingClaimed,
		Topic:       "foodshare.listing-events",
		AggregateID: uuid.New(),
		Payload:     []byte(`{}`),
		Attempts:    attempts,
	}
}

func TestRelay_RunOnce(t *testing.T) {
	t.Run("publishes and marks every due event", func(t *testing.T) {
		f := newRelayFixture(t)
		first, second := outboxEvent(0), outboxEvent(0)
		f.outbox.EXPECT().LockDue(gomock.Any(), gomock.Any(), relayNow, f.cfg.BatchSize).
			Return([]shared.OutboxEvent{first, second}, nil)
		gomock.InOrder(
			f.publisher.EXPECT().Publish(gomock.Any(), first).Return(nil),
			f.outbox.EXPECT().MarkSent(gomock.Any(), gomock.Any(), first.ID).Return(nil),
			f.publisher.EXPECT().Publish(gomock.Any(), second).Return(nil),
			f.outbox.EXPECT().MarkSent(gomock.Any(), gomock.Any(), second.ID).Return(nil),
		)

		sent, err := f.relay.RunOnce(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 2, sent)
	})

	t.Run("nothing due", func(t *testing.T) {
		f := newRelayFixture(t)
		f.outbox.EXPECT().LockDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		sent, err := f.relay.RunOnce(context.Background())

		require.NoError(t, err)
		assert.Zero(t, sent)
	})

	t.Run("publish failure schedules a retry with backoff", func(t *testing.T) {
		f := newRelayFixture(t)
		ev := outboxEvent(1)
		f.outbox.EXPECT().LockDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]shared.OutboxEvent{ev}, nil)
		f.publisher.EXPECT().Publish(gomock.Any(), ev).Return(errors.New("broker down"))
		// second attempt doubles the base backoff
		f.outbox.EXPECT().MarkRetry(gomock.Any(), gomock.Any(), ev.ID, "broker down", relayNow.Add(2*f.cfg.BaseBackoff), false).Return(nil)

		sent, err := f.relay.RunOnce(context.Background())

		require.NoError(t, err)
		assert.Zero(t, sent)
	})

	t.Run("last attempt marks the event failed", func(t *testing.T) {
		f := newRelayFixture(t)
		ev := outboxEvent(f.cfg.MaxAttempts - 1)
		f.outbox.EXPECT().LockDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]shared.OutboxEvent{ev}, nil)
		f.publisher.EXPECT().Publish(gomock.Any(), ev).Return(errors.New("broker down"))
		f.outbox.EXPECT().MarkRetry(gomock.Any(), gomock.Any(), ev.ID, "broker down", gomock.Any(), true).Return(nil)

		_, err := f.relay.RunOnce(context.Background())

		require.NoError(t, err)
	})

	t.Run("one failure does not block the rest of the batch", func(t *testing.T) {
		f := newRelayFixture(t)
		bad, good := outboxEvent(0), outboxEvent(0)
		f.outbox.EXPECT().LockDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]shared.OutboxEvent{bad, good}, nil)
		f.publisher.EXPECT().Publish(gomock.Any(), bad).Return(errors.New("boom"))
		f.outbox.EXPECT().MarkRetry(gomock.Any(), gomock.Any(), bad.ID, "boom", relayNow.Add(f.cfg.BaseBackoff), false).Return(nil)
		f.publisher.EXPECT().Publish(gomock.Any(), good).Return(nil)
		f.outbox.EXPECT().MarkSent(gomock.Any(), gomock.Any(), good.ID).Return(nil)

		sent, err := f.relay.RunOnce(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 1, sent)
	})

	t.Run("storage error aborts the batch", func(t *testing.T) {
		f := newRelayFixture(t)
		f.outbox.EXPECT().LockDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

		_, err := f.relay.RunOnce(context.Background())

		require.ErrorIs(t, err, assert.AnError)
	})
}

func TestRelay_StartStop(t *testing.T) {
	f := newRelayFixture(t)
	f.outbox.EXPECT().LockDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	f.publisher.EXPECT().Close().Return(nil)

	f.relay.Start(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, f.relay.Stop(ctx))
}

func TestNewEnvelope(t *testing.T) {
	id := uuid.New()
	raw, err := events.NewEnvelope(events.KindListingCreated, id, relayNow, map[string]string{"title": "Bread"})
	require.NoError(t, err)

	env := mustEnvelope(t, raw)
	assert.JSONEq(t, `{"title":"Bread"}`, string(env.Data))
	assert.Equal(t, events.KindListingCreated, env.Kind)
	assert.Equal(t, id, env.AggregateID)
	assert.True(t, relayNow.Equal(env.OccurredAt))
	assert.NotEqual(t, uuid.Nil, env.ID)
}

func mustEnvelope(t *testing.T, raw []byte) events.Envelope {
	t.Helper()
	var env events.Envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return env
}
