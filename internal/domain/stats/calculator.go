package stats

import (
	"math"
	"time"

	"github.com/google/uuid"
)

const (
	MealWeightKg   = 0.5
	CO2FactorPerKg = 2.3

	ImpactPerShare = 5
	ImpactPerClaim = 2
)

type Personal struct {
	MealsShared  int64
	MealsClaimed int64
	FoodSavedKg  float64
	CO2SavedKg   float64
}

func ComputePersonal(mealsShared, mealsClaimed int64) Personal {
	food := float64(mealsShared+mealsClaimed) * MealWeightKg
	return Personal{
		MealsShared:  mealsShared,
		MealsClaimed: mealsClaimed,
		FoodSavedKg:  food,
		CO2SavedKg:   math.Round(food * CO2FactorPerKg),
	}
}

func ImpactScore(mealsShared, mealsClaimed int64) int64 {
	return ImpactPerShare*mealsShared + ImpactPerClaim*mealsClaimed
}

// Contributor is one owner's row from the listings GROUP BY.
type Contributor struct {
	OwnerID        uuid.UUID
	Listings       int64
	FirstListingAt time.Time
}

// ahead reports whether a ranks before b.
func ahead(a, b Contributor) bool {
	if a.Listings != b.Listings {
		return a.Listings > b.Listings
	}
	if !a.FirstListingAt.Equal(b.FirstListingAt) {
		return a.FirstListingAt.Before(b.FirstListingAt)
	}
	return a.OwnerID.String() < b.OwnerID.String()
}

// CommunityRank is 1-based. It scans every contributor once, so the cost is
// O(contributors) per call on top of the aggregate query that produced them.
// Users without listings rank after all contributors.
func CommunityRank(contributors []Contributor, userID uuid.UUID) int {
	var me *Contributor
	for i := range contributors {
		if contributors[i].OwnerID == userID && contributors[i].Listings > 0 {
			me = &contributors[i]
			break
		}
	}

	active := 0
	for _, c := range contributors {
		if c.Listings > 0 {
			active++
		}
	}
	if me == nil {
		return active + 1
	}

	rank := 1
	for _, c := range contributors {
		if c.OwnerID == me.OwnerID || c.Listings == 0 {
			continue
		}
		if ahead(c, *me) {
			rank++
		}
	}
	return rank
}
