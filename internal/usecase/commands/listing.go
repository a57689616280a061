package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"time"

	"foodshare/internal/domain/listing"
	reqdto "foodshare/internal/handler/dto/request"
	"foodshare/internal/pkg/clock"
	"foodshare/internal/pkg/config"
	"foodshare/internal/pkg/errs"
	"foodshare/internal/pkg/metrics"
	"foodshare/internal/pkg/tracing"
	"foodshare/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

const createListingEndpoint = "POST /api/listings"

var (
	ErrIdempotencyKeyReused   = errs.Mark(errs.New("idempotency key reused with a different request"), errs.ErrIdempotencyMismatch)
	ErrIdempotencyKeyInFlight = errs.Mark(errs.New("request with this idempotency key is still processing"), errs.ErrIdempotencyInProgress)
	errCompletedWithoutResult = errs.New("completed idempotency key missing result listing")
)

type CreateListingResult struct {
	Listing  *listing.Listing
	Replayed bool
}

type ListingCommands interface {
	CreateListing(ctx context.Context, req reqdto.CreateListingRequest, ownerID uuid.UUID, idempotencyKey *uuid.UUID) (*CreateListingResult, error)
}

type listingCommandsImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	cfg    config.ListingConfig
	topic  string
	logger *slog.Logger
}

func NewListingCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config, logger *slog.Logger) ListingCommands {
	return &listingCommandsImpl{
		uow:    uow,
		clock:  clk,
		cfg:    cfg.Listing,
		topic:  cfg.Kafka.Topic,
		logger: logger,
	}
}

func (c *listingCommandsImpl) CreateListing(ctx context.Context, req reqdto.CreateListingRequest, ownerID uuid.UUID, idempotencyKey *uuid.UUID) (*CreateListingResult, error) {
	ctx, span := tracing.Start(ctx, "listing.create")
	defer span.End()
	span.SetAttributes(attribute.Bool("idempotent", idempotencyKey != nil))

	result, err := c.createListing(ctx, req, ownerID, idempotencyKey)
	switch {
	case err != nil:
		span.RecordError(err)
		label := "error"
		if errs.Is(err, errs.ErrValidation) {
			label = "rejected"
		}
		metrics.ListingsCreatedTotal.WithLabelValues(label).Inc()
		return nil, err
	case result.Replayed:
		metrics.ListingsCreatedTotal.WithLabelValues("replayed").Inc()
	default:
		metrics.ListingsCreatedTotal.WithLabelValues("created").Inc()
	}
	return result, nil
}

func (c *listingCommandsImpl) createListing(ctx context.Context, req reqdto.CreateListingRequest, ownerID uuid.UUID, idempotencyKey *uuid.UUID) (*CreateListingResult, error) {
	now := c.clock.Now()

	if idempotencyKey != nil {
		replay, err := c.reserveKey(ctx, *idempotencyKey, ownerID, calculateRequestHash(req), now)
		if err != nil {
			return nil, err
		}
		if replay != nil {
			return &CreateListingResult{Listing: replay, Replayed: true}, nil
		}
	}

	l, err := listing.NewListing(req.ToDomainInput(ownerID), now, c.cfg.MinLeadTime)
	if err != nil {
		c.releaseKey(ctx, idempotencyKey, ownerID)
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Listings().Create(ctx, tx.DB(), l); err != nil {
			return err
		}
		if err := enqueueListingCreated(ctx, tx, c.topic, l, now); err != nil {
			return err
		}
		if idempotencyKey != nil {
			return tx.Idempotency().MarkCompleted(ctx, tx.DB(), *idempotencyKey, ownerID, l.ID())
		}
		return nil
	})
	if err != nil {
		c.releaseKey(ctx, idempotencyKey, ownerID)
		return nil, err
	}

	c.logger.Info("listing created",
		slog.String("listing_id", l.ID().String()),
		slog.String("owner_id", ownerID.String()),
		slog.String("category", l.Category().String()))
	return &CreateListingResult{Listing: l}, nil
}

// reserveKey claims the key for this request. It returns the stored listing
// when the key already completed with the same request body.
func (c *listingCommandsImpl) reserveKey(ctx context.Context, key, ownerID uuid.UUID, requestHash string, now time.Time) (*listing.Listing, error) {
	expiresAt := now.Add(c.cfg.IdempotencyTTL)

	var replay *listing.Listing
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		replay = nil
		inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, ownerID, createListingEndpoint, requestHash, expiresAt)
		if err != nil {
			return err
		}
		if inserted {
			return nil
		}

		existing, err := tx.Reads().IdempotencyByKey(ctx, key, ownerID)
		if err != nil {
			return err
		}

		if !existing.ExpiresAt.After(now) {
			reclaimed, err := tx.Idempotency().ClaimExpired(ctx, tx.DB(), key, ownerID, requestHash, expiresAt, now)
			if err != nil {
				return err
			}
			if !reclaimed {
				return ErrIdempotencyKeyInFlight
			}
			return nil
		}

		if existing.RequestHash != requestHash {
			return ErrIdempotencyKeyReused
		}

		switch existing.Status {
		case shared.IdempotencyStatusCompleted:
			if existing.ResultListingID == nil {
				return errCompletedWithoutResult
			}
			replay, err = tx.Reads().ListingByID(ctx, *existing.ResultListingID)
			return err
		default:
			return ErrIdempotencyKeyInFlight
		}
	})
	if err != nil {
		return nil, err
	}
	return replay, nil
}

// releaseKey frees a reserved key after a failed create so the client can retry.
func (c *listingCommandsImpl) releaseKey(ctx context.Context, key *uuid.UUID, ownerID uuid.UUID) {
	if key == nil {
		return
	}
	ctx = context.WithoutCancel(ctx)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Idempotency().Release(ctx, tx.DB(), *key, ownerID)
	})
	if err != nil {
		c.logger.Warn("failed to release idempotency key",
			slog.String("key", key.String()),
			slog.String("error", err.Error()))
	}
}

func calculateRequestHash(req reqdto.CreateListingRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
