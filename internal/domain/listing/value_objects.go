package listing

import (
	"strings"
	"time"
	"unicode/utf8"

	"foodshare/internal/pkg/ptr"
)

const (
	MaxTitleLength       = 120
	MaxDescriptionLength = 2000
	MaxQuantityLength    = 64
	MaxLocationLength    = 200
	MaxPickupLength      = 500
)

const DefaultMinimumLeadTime = time.Hour

type Title struct {
	value string
}

func NewTitle(s string) (Title, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Title{}, ErrEmptyTitle
	}
	if utf8.RuneCountInString(t) > MaxTitleLength {
		return Title{}, ErrTitleTooLong
	}
	return Title{value: t}, nil
}

func (t Title) String() string { return t.value }

type Description struct {
	value string
}

func NewDescription(s string) (Description, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Description{}, ErrEmptyDescription
	}
	if utf8.RuneCountInString(t) > MaxDescriptionLength {
		return Description{}, ErrDescriptionTooLong
	}
	return Description{value: t}, nil
}

func (d Description) String() string { return d.value }

// Quantity is an opaque descriptor such as "2-3 servings".
type Quantity struct {
	value string
}

func NewQuantity(s string) (Quantity, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Quantity{}, ErrEmptyQuantity
	}
	if utf8.RuneCountInString(t) > MaxQuantityLength {
		return Quantity{}, ErrQuantityTooLong
	}
	return Quantity{value: t}, nil
}

func (q Quantity) String() string { return q.value }

type Location struct {
	value string
}

func NewLocation(s string) (Location, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Location{}, ErrEmptyLocation
	}
	if utf8.RuneCountInString(t) > MaxLocationLength {
		return Location{}, ErrLocationTooLong
	}
	return Location{value: t}, nil
}

func (l Location) String() string { return l.value }

// NewPickupInstructions returns nil for blank input.
func NewPickupInstructions(s *string) (*string, error) {
	t := strings.TrimSpace(ptr.Deref(s))
	if t == "" {
		return nil, nil
	}
	if utf8.RuneCountInString(t) > MaxPickupLength {
		return nil, ErrPickupTooLong
	}
	return &t, nil
}

// ValidateExpiry requires expiry >= now + lead.
func ValidateExpiry(expiry, now time.Time, lead time.Duration) error {
	if expiry.Before(now.Add(lead)) {
		return ErrExpiryTooSoon
	}
	return nil
}
