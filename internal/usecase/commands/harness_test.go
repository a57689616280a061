//go:build unit

package commands

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"foodshare/internal/usecase/shared"
	sharedmock "foodshare/tests/mock/shared"

	"github.com/google/uuid"
	"go.uber.org/mock/gomock"
)

// txHarness wires a mocked unit of work whose Within runs the callback
// against one mocked transaction.
type txHarness struct {
	ctrl        *gomock.Controller
	uow         *sharedmock.MockUnitOfWork
	tx          *sharedmock.MockTx
	reads       *sharedmock.MockCommandReads
	listings    *sharedmock.MockListingRepository
	claims      *sharedmock.MockClaimRepository
	users       *sharedmock.MockUserRepository
	idempotency *sharedmock.MockIdempotencyRepository
	outbox      *sharedmock.MockOutboxRepository
}

func newTxHarness(t *testing.T) *txHarness {
	ctrl := gomock.NewController(t)
	h := &txHarness{
		ctrl:        ctrl,
		uow:         sharedmock.NewMockUnitOfWork(ctrl),
		tx:          sharedmock.NewMockTx(ctrl),
		reads:       sharedmock.NewMockCommandReads(ctrl),
		listings:    sharedmock.NewMockListingRepository(ctrl),
		claims:      sharedmock.NewMockClaimRepository(ctrl),
		users:       sharedmock.NewMockUserRepository(ctrl),
		idempotency: sharedmock.NewMockIdempotencyRepository(ctrl),
		outbox:      sharedmock.NewMockOutboxRepository(ctrl),
	}

	h.tx.EXPECT().DB().Return(nil).AnyTimes()
	h.tx.EXPECT().Reads().Return(h.reads).AnyTimes()
	h.tx.EXPECT().Listings().Return(h.listings).AnyTimes()
	h.tx.EXPECT().Claims().Return(h.claims).AnyTimes()
	h.tx.EXPECT().Users().Return(h.users).AnyTimes()
	h.tx.EXPECT().Idempotency().Return(h.idempotency).AnyTimes()
	h.tx.EXPECT().Outbox().Return(h.outbox).AnyTimes()
	h.uow.EXPECT().CommandReads().Return(h.reads).AnyTimes()

	return h
}

// expectWithin lets the next n Within calls run their callback.
func (h *txHarness) expectWithin(n int) {
	h.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, h.tx)
		}).Times(n)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeGuard struct {
	mu      sync.Mutex
	claimed map[uuid.UUID]bool
}

func newFakeGuard() *fakeGuard {
	return &fakeGuard{claimed: map[uuid.UUID]bool{}}
}

func (g *fakeGuard) IsClaimed(_ context.Context, id uuid.UUID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.claimed[id]
}

func (g *fakeGuard) MarkClaimed(_ context.Context, id uuid.UUID) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.claimed[id] = true
	return nil
}
