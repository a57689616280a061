package listing

import "foodshare/internal/pkg/errs"

type Category string

const (
	CategoryVegetables Category = "vegetables"
	CategoryFruits     Category = "fruits"
	CategoryBread      Category = "bread"
	CategoryPrepared   Category = "prepared"
	CategoryDairy      Category = "dairy"
)

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryVegetables, CategoryFruits, CategoryBread, CategoryPrepared, CategoryDairy:
		return true
	default:
		return false
	}
}

func NewCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}

func AllCategories() []Category {
	return []Category{CategoryVegetables, CategoryFruits, CategoryBread, CategoryPrepared, CategoryDairy}
}

// ClaimState only ever moves from Open to Claimed.
type ClaimState string

const (
	ClaimStateOpen    ClaimState = "open"
	ClaimStateClaimed ClaimState = "claimed"
)

func (s ClaimState) String() string { return string(s) }

func ParseClaimState(s string) (ClaimState, error) {
	switch ClaimState(s) {
	case ClaimStateOpen, ClaimStateClaimed:
		return ClaimState(s), nil
	default:
		return "", errs.Wrapf(ErrInvalidState, "unknown claim state %q", s)
	}
}

var (
	ErrEmptyTitle          = errs.Mark(errs.New("title cannot be empty"), errs.ErrValidation)
	ErrTitleTooLong        = errs.Mark(errs.New("title exceeds maximum length"), errs.ErrValidation)
	ErrEmptyDescription    = errs.Mark(errs.New("description cannot be empty"), errs.ErrValidation)
	ErrDescriptionTooLong  = errs.Mark(errs.New("description exceeds maximum length"), errs.ErrValidation)
	ErrInvalidCategory     = errs.Mark(errs.New("invalid category"), errs.ErrValidation)
	ErrEmptyQuantity       = errs.Mark(errs.New("quantity cannot be empty"), errs.ErrValidation)
	ErrQuantityTooLong     = errs.Mark(errs.New("quantity exceeds maximum length"), errs.ErrValidation)
	ErrEmptyLocation       = errs.Mark(errs.New("location cannot be empty"), errs.ErrValidation)
	ErrLocationTooLong     = errs.Mark(errs.New("location exceeds maximum length"), errs.ErrValidation)
	ErrPickupTooLong       = errs.Mark(errs.New("pickup instructions exceed maximum length"), errs.ErrValidation)
	ErrExpiryTooSoon       = errs.Mark(errs.New("expiry time must be at least one hour from now"), errs.ErrValidation)
	ErrInvalidOwner        = errs.Mark(errs.New("owner id is required"), errs.ErrValidation)
	ErrInvalidState        = errs.New("invalid listing state")
	ErrListingNotFound     = errs.Mark(errs.New("listing not found"), errs.ErrNotFound)
	ErrAlreadyClaimed      = errs.Mark(errs.New("listing already claimed"), errs.ErrAlreadyClaimed)
	ErrListingExpired      = errs.Mark(errs.New("listing expired"), errs.ErrExpired)
	ErrSelfClaim           = errs.Mark(errs.New("owners cannot claim their own listing"), errs.ErrSelfClaim)
	ErrClaimBeforeCreation = errs.New("claim time precedes listing creation")
)
