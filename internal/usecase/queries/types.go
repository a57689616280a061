package queries

import (
	"time"

	"github.com/google/uuid"
)

// ListingView represents read-optimized listing data
type ListingView struct {
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

// UserView represents read-optimized user data without credentials
type UserView struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	DisplayName string     `json:"display_name"`
	Location    string     `json:"location"`
	Role        string     `json:"role"`
	Verified    bool       `json:"verified"`
	IsActive    bool       `json:"is_active"`
	LastLogin   *time.Time `json:"last_login,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type ProfileView struct {
	UserView
	TotalDonations int64 `json:"total_donations"`
	TotalClaims    int64 `json:"total_claims"`
	ImpactScore    int64 `json:"impact_score"`
}

type PersonalStatsView struct {
	UserID        uuid.UUID `json:"user_id"`
	MealsShared   int64     `json:"meals_shared"`
	MealsClaimed  int64     `json:"meals_claimed"`
	FoodSavedKg   float64   `json:"food_saved_kg"`
	CO2SavedKg    float64   `json:"co2_saved_kg"`
	CommunityRank int       `json:"community_rank"`
}

type ChallengeView struct {
	Goal        int       `json:"goal"`
	Progress    int       `json:"progress"`
	Remaining   int       `json:"remaining"`
	Completed   bool      `json:"completed"`
	PeriodStart time.Time `json:"period_start"`
	PeriodEnd   time.Time `json:"period_end"`
}

type AchievementView struct {
	Code        string `json:"code"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Unlocked    bool   `json:"unlocked"`
}

// DashboardView is the signed-in user's stats page.
type DashboardView struct {
	PersonalStatsView
	ImpactScore  int64             `json:"impact_score"`
	StreakDays   int               `json:"streak_days"`
	Challenge    ChallengeView     `json:"challenge"`
	Achievements []AchievementView `json:"achievements"`
}
