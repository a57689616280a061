package listing

import (
	"time"

	"foodshare/internal/pkg/errs"

	"github.com/google/uuid"
)

type Listing struct {
	id                 uuid.UUID
	ownerID            uuid.UUID
	title              Title
	description        Description
	category           Category
	quantity           Quantity
	location           Location
	pickupInstructions *string
	expiryTime         time.Time
	createdAt          time.Time
	claimState         ClaimState
	claimedBy          *uuid.UUID
	claimedAt          *time.Time
}

type NewListingInput struct {
	OwnerID            uuid.UUID
	Title              string
	Description        string
	Category           string
	Quantity           string
	Location           string
	PickupInstructions *string
	ExpiryTime         time.Time
}

func NewListing(in NewListingInput, now time.Time, minLead time.Duration) (*Listing, error) {
	if in.OwnerID == uuid.Nil {
		return nil, ErrInvalidOwner
	}
	title, err := NewTitle(in.Title)
	if err != nil {
		return nil, err
	}
	description, err := NewDescription(in.Description)
	if err != nil {
		return nil, err
	}
	category, err := NewCategory(in.Category)
	if err != nil {
		return nil, err
	}
	quantity, err := NewQuantity(in.Quantity)
	if err != nil {
		return nil, err
	}
	location, err := NewLocation(in.Location)
	if err != nil {
		return nil, err
	}
	pickup, err := NewPickupInstructions(in.PickupInstructions)
	if err != nil {
		return nil, err
	}
	if err := ValidateExpiry(in.ExpiryTime, now, minLead); err != nil {
		return nil, err
	}

	return &Listing{
		id:                 uuid.New(),
		ownerID:            in.OwnerID,
		title:              title,
		description:        description,
		category:           category,
		quantity:           quantity,
		location:           location,
		pickupInstructions: pickup,
		expiryTime:         in.ExpiryTime.UTC(),
		createdAt:          now.UTC(),
		claimState:         ClaimStateOpen,
	}, nil
}

// Snapshot is the persisted shape of a listing.
type Snapshot struct {
	ID                 uuid.UUID
	OwnerID            uuid.UUID
	Title              string
	Description        string
	Category           string
	Quantity           string
	Location           string
	PickupInstructions *string
	ExpiryTime         time.Time
	CreatedAt          time.Time
	ClaimState         string
	ClaimedBy          *uuid.UUID
	ClaimedAt          *time.Time
}

// Reconstruct rebuilds a listing from storage and re-checks the claim invariant.
func Reconstruct(s Snapshot) (*Listing, error) {
	state, err := ParseClaimState(s.ClaimState)
	if err != nil {
		return nil, err
	}
	category, err := NewCategory(s.Category)
	if err != nil {
		return nil, err
	}
	l := &Listing{
		id:                 s.ID,
		ownerID:            s.OwnerID,
		title:              Title{value: s.Title},
		description:        Description{value: s.Description},
		category:           category,
		quantity:           Quantity{value: s.Quantity},
		location:           Location{value: s.Location},
		pickupInstructions: s.PickupInstructions,
		expiryTime:         s.ExpiryTime,
		createdAt:          s.CreatedAt,
		claimState:         state,
		claimedBy:          s.ClaimedBy,
		claimedAt:          s.ClaimedAt,
	}
	if err := l.checkInvariant(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Listing) checkInvariant() error {
	switch l.claimState {
	case ClaimStateOpen:
		if l.claimedBy != nil || l.claimedAt != nil {
			return errs.Wrap(ErrInvalidState, "open listing carries claim fields")
		}
	case ClaimStateClaimed:
		if l.claimedBy == nil || l.claimedAt == nil {
			return errs.Wrap(ErrInvalidState, "claimed listing missing claimant or time")
		}
		if l.claimedAt.Before(l.createdAt) {
			return ErrClaimBeforeCreation
		}
	}
	return nil
}

func (l *Listing) IsOpen() bool    { return l.claimState == ClaimStateOpen }
func (l *Listing) IsClaimed() bool { return l.claimState == ClaimStateClaimed }

func (l *Listing) IsExpired(now time.Time) bool {
	return !now.Before(l.expiryTime)
}

// CheckClaimable reports why a claim by claimantID at now would be rejected.
// The order matches the storage-side classification: claimed, expired, self.
func (l *Listing) CheckClaimable(claimantID uuid.UUID, now time.Time, allowSelfClaim bool) error {
	if l.IsClaimed() {
		return ErrAlreadyClaimed
	}
	if l.IsExpired(now) {
		return ErrListingExpired
	}
	if !allowSelfClaim && l.ownerID == claimantID {
		return ErrSelfClaim
	}
	return nil
}

// MarkClaimed is the in-memory form of the conditional update.
func (l *Listing) MarkClaimed(claimantID uuid.UUID, now time.Time, allowSelfClaim bool) error {
	if err := l.CheckClaimable(claimantID, now, allowSelfClaim); err != nil {
		return err
	}
	if now.Before(l.createdAt) {
		return ErrClaimBeforeCreation
	}
	at := now
	by := claimantID
	l.claimState = ClaimStateClaimed
	l.claimedBy = &by
	l.claimedAt = &at
	return nil
}

func (l *Listing) ToSnapshot() Snapshot {
	return Snapshot{
		ID:                 l.id,
		OwnerID:            l.ownerID,
		Title:              l.title.String(),
		Description:        l.description.String(),
		Category:           l.category.String(),
		Quantity:           l.quantity.String(),
		Location:           l.location.String(),
		PickupInstructions: l.pickupInstructions,
		ExpiryTime:         l.expiryTime,
		CreatedAt:          l.createdAt,
		ClaimState:         l.claimState.String(),
		ClaimedBy:          l.claimedBy,
		ClaimedAt:          l.claimedAt,
	}
}

func (l *Listing) ID() uuid.UUID               { return l.id }
func (l *Listing) OwnerID() uuid.UUID          { return l.ownerID }
func (l *Listing) Title() Title                { return l.title }
func (l *Listing) Description() Description    { return l.description }
func (l *Listing) Category() Category          { return l.category }
func (l *Listing) Quantity() Quantity          { return l.quantity }
func (l *Listing) Location() Location          { return l.location }
func (l *Listing) PickupInstructions() *string { return l.pickupInstructions }
func (l *Listing) ExpiryTime() time.Time       { return l.expiryTime }
func (l *Listing) CreatedAt() time.Time        { return l.createdAt }
func (l *Listing) ClaimState() ClaimState      { return l.claimState }
func (l *Listing) ClaimedBy() *uuid.UUID       { return l.claimedBy }
func (l *Listing) ClaimedAt() *time.Time       { return l.claimedAt }
