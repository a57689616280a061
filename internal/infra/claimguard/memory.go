package claimguard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
)

// MemoryGuard is a bounded per-process tombstone set. Evicting an entry only
// costs a database round trip on the next attempt.
type MemoryGuard struct {
	cache *lru.Cache
}

func NewMemoryGuard(size int) (*MemoryGuard, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create claim guard cache: %w", err)
	}
	return &MemoryGuard{cache: cache}, nil
}

func (g *MemoryGuard) IsClaimed(_ context.Context, listingID uuid.UUID) bool {
	return g.cache.Contains(listingID)
}

func (g *MemoryGuard) MarkClaimed(_ context.Context, listingID uuid.UUID) error {
	g.cache.Add(listingID, struct{}{})
	return nil
}

func (g *MemoryGuard) Len() int {
	return g.cache.Len()
}
