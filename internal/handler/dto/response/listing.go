package response

import (
	"time"

	"foodshare/internal/domain/listing"
	"foodshare/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ListingResponse struct {
	ID                 uuid.UUID  `json:"id"`
	OwnerID            uuid.UUID  `json:"owner_id"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	Category           string     `json:"category"`
	Quantity           string     `json:"quantity"`
	Location           string     `json:"location"`
	PickupInstructions *string    `json:"pickup_instructions,omitempty"`
	ExpiryTime         time.Time  `json:"expiry_time"`
	CreatedAt          time.Time  `json:"created_at"`
	ClaimState         string     `json:"claim_state"`
	ClaimedBy          *uuid.UUID `json:"claimed_by,omitempty"`
	ClaimedAt          *time.Time `json:"claimed_at,omitempty"`
}

type ListingListResponse struct {
	Items      []*ListingResponse `json:"items"`
	NextCursor *string            `json:"next_cursor,omitempty"`
}

func FromListingView(v *queries.ListingView) *ListingResponse {
	res := &ListingResponse{}
	_ = copier.Copy(res, v)
	return res
}

func FromListing(l *listing.Listing) *ListingResponse {
	res := &ListingResponse{}
	_ = copier.Copy(res, l.ToSnapshot())
	return res
}

func FromListingViews(items []*queries.ListingView, next *queries.Cursor) *ListingListResponse {
	res := &ListingListResponse{Items: make([]*ListingResponse, len(items))}
	for i, it := range items {
		res.Items[i] = FromListingView(it)
	}
	if next != nil {
		res.NextCursor = &next.After
	}
	return res
}
