package request

import (
	"time"

	"foodshare/internal/domain/listing"

	"github.com/google/uuid"
)

type CreateListingRequest struct {
	Title              string    `json:"title" binding:"required"`
	Description        string    `json:"description" binding:"required"`
	Category           string    `json:"category" binding:"required,oneof=vegetables fruits bread prepared dairy"`
	Quantity           string    `json:"quantity" binding:"required"`
	Location           string    `json:"location" binding:"required"`
	PickupInstructions *string   `json:"pickup_instructions,omitempty"`
	ExpiryTime         time.Time `json:"expiry_time" binding:"required"`
}

func (r *CreateListingRequest) ToDomainInput(ownerID uuid.UUID) listing.NewListingInput {
	return listing.NewListingInput{
		OwnerID:            ownerID,
		Title:              r.Title,
		Description:        r.Description,
		Category:           r.Category,
		Quantity:           r.Quantity,
		Location:           r.Location,
		PickupInstructions: r.PickupInstructions,
		ExpiryTime:         r.ExpiryTime,
	}
}

type ListListingsQuery struct {
	Category *string `form:"category" binding:"omitempty,oneof=vegetables fruits bread prepared dairy"`
	Q        string  `form:"q" binding:"max=120"`
	Limit    int     `form:"limit" binding:"omitempty,min=1,max=200"`
	After    string  `form:"after"`
}

type PageQuery struct {
	Limit int    `form:"limit" binding:"omitempty,min=1,max=200"`
	After string `form:"after"`
}
