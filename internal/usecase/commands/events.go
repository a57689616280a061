package commands

import (
	"context"
	"time"

	"foodshare/internal/domain/listing"
	"foodshare/internal/infra/events"
	"foodshare/internal/pkg/tracing"
	"foodshare/internal/usecase/shared"

	"github.com/google/uuid"
)

type listingCreatedEvent struct {
	ListingID  uuid.UUID `json:"listing_id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	Title      string    `json:"title"`
	Category   string    `json:"category"`
	ExpiryTime time.Time `json:"expiry_time"`
}

type listingClaimedEvent struct {
	ListingID  uuid.UUID `json:"listing_id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	ClaimantID uuid.UUID `json:"claimant_id"`
	ClaimedAt  time.Time `json:"claimed_at"`
}

func enqueueListingCreated(ctx context.Context, tx shared.Tx, topic string, l *listing.Listing, now time.Time) error {
	payload, err := events.NewEnvelope(events.KindListingCreated, l.ID(), now, listingCreatedEvent{
		ListingID:  l.ID(),
		OwnerID:    l.OwnerID(),
		Title:      l.Title().String(),
		Category:   l.Category().String(),
		ExpiryTime: l.ExpiryTime(),
	})
	if err != nil {
		return err
	}
	return tx.Outbox().Enqueue(ctx, tx.DB(), shared.OutboxMessage{
		Kind:        events.KindListingCreated,
		Topic:       topic,
		AggregateID: l.ID(),
		Payload:     payload,
		Headers:     tracing.InjectMap(ctx),
		RunAt:       now,
	})
}

func enqueueListingClaimed(ctx context.Context, tx shared.Tx, topic string, l *listing.Listing) error {
	claimedAt := *l.ClaimedAt()
	payload, err := events.NewEnvelope(events.KindListingClaimed, l.ID(), claimedAt, listingClaimedEvent{
		ListingID:  l.ID(),
		OwnerID:    l.OwnerID(),
		ClaimantID: *l.ClaimedBy(),
		ClaimedAt:  claimedAt,
	})
	if err != nil {
		return err
	}
	return tx.Outbox().Enqueue(ctx, tx.DB(), shared.OutboxMessage{
		Kind:        events.KindListingClaimed,
		Topic:       topic,
		AggregateID: l.ID(),
		Payload:     payload,
		Headers:     tracing.InjectMap(ctx),
		RunAt:       claimedAt,
	})
}
