//go:build unit

package stats_test

import (
	"testing"
	"time"

	"foodshare/internal/domain/stats"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestComputePersonal(t *testing.T) {
	tests := []struct {
		name            string
		shared, claimed int64
		want            stats.Personal
	}{
		{name: "no activity", want: stats.Personal{}},
		{name: "one shared", shared: 1, want: stats.Personal{MealsShared: 1, FoodSavedKg: 0.5, CO2SavedKg: 1}},
		// 1.5 * 2.3 = 3.45
		{name: "rounds down", shared: 2, claimed: 1, want: stats.Personal{MealsShared: 2, MealsClaimed: 1, FoodSavedKg: 1.5, CO2SavedKg: 3}},
		// 2.5 * 2.3 = 5.75
		{name: "rounds up", shared: 3, claimed: 2, want: stats.Personal{MealsShared: 3, MealsClaimed: 2, FoodSavedKg: 2.5, CO2SavedKg: 6}},
		{name: "twenty meals", shared: 12, claimed: 8, want: stats.Personal{MealsShared: 12, MealsClaimed: 8, FoodSavedKg: 10, CO2SavedKg: 23}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stats.ComputePersonal(tt.shared, tt.claimed)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Personal mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestImpactScore(t *testing.T) {
	assert.Equal(t, int64(0), stats.ImpactScore(0, 0))
	assert.Equal(t, int64(19), stats.ImpactScore(3, 2))
}

func TestCommunityRank(t *testing.T) {
	t0 := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	a := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	b := uuid.MustParse("00000000-0000-0000-0000-00000000000b")
	c := uuid.MustParse("00000000-0000-0000-0000-00000000000c")
	d := uuid.MustParse("00000000-0000-0000-0000-00000000000d")

	contributors := []stats.Contributor{
		{OwnerID: c, Listings: 3, FirstListingAt: t0.Add(2 * time.Hour)},
		{OwnerID: a, Listings: 5, FirstListingAt: t0.Add(5 * time.Hour)},
		{OwnerID: b, Listings: 3, FirstListingAt: t0.Add(time.Hour)},
		{OwnerID: d, Listings: 3, FirstListingAt: t0.Add(time.Hour)},
	}

	tests := []struct {
		name string
		user uuid.UUID
		want int
	}{
		{name: "most listings first", user: a, want: 1},
		{name: "tie broken by earliest first listing", user: b, want: 2},
		{name: "exact tie broken by owner id", user: d, want: 3},
		{name: "later first listing", user: c, want: 4},
		{name: "non contributor ranks last", user: uuid.New(), want: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stats.CommunityRank(contributors, tt.user))
		})
	}

	t.Run("empty community", func(t *testing.T) {
		assert.Equal(t, 1, stats.CommunityRank(nil, a))
	})
}

func TestStreakDays(t *testing.T) {
	loc := time.UTC
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, loc)
	day := func(offset int) time.Time { return now.AddDate(0, 0, offset) }

	tests := []struct {
		name     string
		activity []time.Time
		want     int
	}{
		{name: "no activity", want: 0},
		{name: "today only", activity: []time.Time{day(0)}, want: 1},
		{name: "ending yesterday", activity: []time.Time{day(-1), day(-2)}, want: 2},
		{name: "gap breaks streak", activity: []time.Time{day(0), day(-1), day(-3)}, want: 2},
		{name: "duplicates on one day", activity: []time.Time{day(0), day(0).Add(-time.Hour), day(-1)}, want: 2},
		{name: "last activity two days ago", activity: []time.Time{day(-2)}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stats.StreakDays(tt.activity, now, loc))
		})
	}

	t.Run("days follow the configured zone", func(t *testing.T) {
		tokyo := time.FixedZone("JST", 9*60*60)
		// 2025-06-10 01:00 JST and 2025-06-09 23:00 JST
		n := time.Date(2025, 6, 9, 16, 0, 0, 0, time.UTC)
		prev := time.Date(2025, 6, 9, 14, 0, 0, 0, time.UTC)
		assert.Equal(t, 2, stats.StreakDays([]time.Time{n, prev}, n, tokyo))
		assert.Equal(t, 1, stats.StreakDays([]time.Time{n, prev}, n, time.UTC))
	})
}

func TestMonthlyChallenge(t *testing.T) {
	now := time.Date(2025, 2, 14, 9, 0, 0, 0, time.UTC)

	got := stats.MonthlyChallenge(4, 10, now, time.UTC)
	assert.Equal(t, 10, got.Goal)
	assert.Equal(t, 4, got.Progress)
	assert.Equal(t, 6, got.Remaining)
	assert.False(t, got.Completed)
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), got.PeriodStart)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), got.PeriodEnd)

	done := stats.MonthlyChallenge(12, 10, now, time.UTC)
	assert.True(t, done.Completed)
	assert.Equal(t, 0, done.Remaining)

	defaulted := stats.MonthlyChallenge(0, 0, now, nil)
	assert.Equal(t, stats.DefaultChallengeGoal, defaulted.Goal)
}

func TestAchievements(t *testing.T) {
	unlocked := func(list []stats.Achievement) map[stats.AchievementCode]bool {
		m := map[stats.AchievementCode]bool{}
		for _, a := range list {
			m[a.Code] = a.Unlocked
		}
		return m
	}

	none := unlocked(stats.Achievements(stats.ComputePersonal(0, 0), 0))
	assert.Equal(t, map[stats.AchievementCode]bool{
		stats.AchievementFirstTimer:      false,
		stats.AchievementCommunityHelper: false,
		stats.AchievementEcoWarrior:      false,
	}, none)

	all := unlocked(stats.Achievements(stats.ComputePersonal(15, 5), 5))
	assert.True(t, all[stats.AchievementFirstTimer])
	assert.True(t, all[stats.AchievementCommunityHelper])
	assert.True(t, all[stats.AchievementEcoWarrior])
}
