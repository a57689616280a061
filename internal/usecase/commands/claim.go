package commands

import (
	"context"
	"log/slog"
	"time"

	"foodshare/internal/domain/claim"
	"foodshare/internal/domain/listing"
	"foodshare/internal/infra"
	"foodshare/internal/pkg/clock"
	"foodshare/internal/pkg/config"
	"foodshare/internal/pkg/errs"
	"foodshare/internal/pkg/metrics"
	"foodshare/internal/pkg/tracing"
	"foodshare/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type ClaimCommands interface {
	ClaimListing(ctx context.Context, listingID, claimantID uuid.UUID) (*listing.Listing, error)
}

type claimCommandsImpl struct {
	uow     shared.UnitOfWork
	guard   ClaimGuard
	clock   clock.Clock
	policy  claim.SelfClaimPolicy
	timeout time.Duration
	topic   string
	logger  *slog.Logger
}

func NewClaimCommands(uow shared.UnitOfWork, guard ClaimGuard, clk clock.Clock, cfg config.Config, logger *slog.Logger) (ClaimCommands, error) {
	policy, err := claim.ParseSelfClaimPolicy(cfg.Claim.SelfClaimPolicy)
	if err != nil {
		return nil, err
	}
	return &claimCommandsImpl{
		uow:     uow,
		guard:   guard,
		clock:   clk,
		policy:  policy,
		timeout: cfg.Claim.Timeout,
		topic:   cfg.Kafka.Topic,
		logger:  logger,
	}, nil
}

func (c *claimCommandsImpl) ClaimListing(ctx context.Context, listingID, claimantID uuid.UUID) (*listing.Listing, error) {
	ctx, span := tracing.Start(ctx, "listing.claim", trace.WithAttributes(
		attribute.String("listing.id", listingID.String()),
		attribute.String("claimant.id", claimantID.String()),
	))
	defer span.End()

	l, err := c.claim(ctx, listingID, claimantID)
	outcome := metrics.Outcome(err)
	metrics.ClaimAttemptsTotal.WithLabelValues(outcome).Inc()
	span.SetAttributes(attribute.String("claim.outcome", outcome))
	if err != nil {
		span.RecordError(err)
		if outcome == metrics.OutcomeStorageUnavailable || outcome == metrics.OutcomeError {
			span.SetStatus(codes.Error, err.Error())
		}
		return nil, err
	}
	return l, nil
}

func (c *claimCommandsImpl) claim(ctx context.Context, listingID, claimantID uuid.UUID) (*listing.Listing, error) {
	if c.guard.IsClaimed(ctx, listingID) {
		metrics.ClaimGuardHitsTotal.Inc()
		return nil, listing.ErrAlreadyClaimed
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	now := c.clock.Now()
	var (
		claimed        *listing.Listing
		durablyClaimed bool
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		durablyClaimed = false
		l, err := tx.Listings().MarkClaimed(ctx, tx.DB(), listingID, claimantID, now, c.policy.AllowsSelfClaim())
		if err != nil {
			if !infra.IsKind(err, infra.KindNotFound) {
				return err
			}
			current, rerr := c.currentState(ctx, tx, listingID)
			if rerr != nil {
				return rerr
			}
			durablyClaimed = current != nil && current.IsClaimed()
			return claim.ClassifyRejection(current, claimantID, now, c.policy)
		}

		rec, err := claim.NewRecord(l)
		if err != nil {
			return err
		}
		if err := tx.Claims().Create(ctx, tx.DB(), rec); err != nil {
			return err
		}
		if err := enqueueListingClaimed(ctx, tx, c.topic, l); err != nil {
			return err
		}
		claimed = l
		return nil
	})

	if err != nil {
		if durablyClaimed {
			c.remember(ctx, listingID)
		}
		if ctx.Err() != nil && !errs.Is(err, errs.ErrStorageUnavailable) {
			return nil, errs.Mark(err, errs.ErrStorageUnavailable)
		}
		return nil, err
	}

	c.remember(ctx, listingID)
	c.logger.Info("listing claimed",
		slog.String("listing_id", listingID.String()),
		slog.String("claimant_id", claimantID.String()))
	return claimed, nil
}

// currentState returns nil when the listing does not exist.
func (c *claimCommandsImpl) currentState(ctx context.Context, tx shared.Tx, listingID uuid.UUID) (*listing.Listing, error) {
	l, err := tx.Reads().ListingByID(ctx, listingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return l, nil
}

// remember writes the tombstone. Only committed claims reach here, and a
// claimed listing never reverts, so a tombstone is never stale.
func (c *claimCommandsImpl) remember(ctx context.Context, listingID uuid.UUID) {
	if err := c.guard.MarkClaimed(context.WithoutCancel(ctx), listingID); err != nil {
		c.logger.Warn("failed to record claim tombstone",
			slog.String("listing_id", listingID.String()),
			slog.String("error", err.Error()))
	}
}
