package stats

type AchievementCode string

const (
	AchievementFirstTimer      AchievementCode = "first_timer"
	AchievementCommunityHelper AchievementCode = "community_helper"
	AchievementEcoWarrior      AchievementCode = "eco_warrior"
)

const (
	CommunityHelperThreshold = 5
	EcoWarriorThresholdKg    = 10.0
)

type Achievement struct {
	Code        AchievementCode
	Title       string
	Description string
	Unlocked    bool
}

// Achievements always returns every badge so clients can render locked ones.
func Achievements(p Personal, listingsClaimedByOthers int64) []Achievement {
	return []Achievement{
		{
			Code:        AchievementFirstTimer,
			Title:       "First Timer",
			Description: "Shared your first meal",
			Unlocked:    p.MealsShared >= 1,
		},
		{
			Code:        AchievementCommunityHelper,
			Title:       "Community Helper",
			Description: "Had 5 of your listings claimed",
			Unlocked:    listingsClaimedByOthers >= CommunityHelperThreshold,
		},
		{
			Code:        AchievementEcoWarrior,
			Title:       "Eco Warrior",
			Description: "Saved 10kg of food",
			Unlocked:    p.FoodSavedKg >= EcoWarriorThresholdKg,
		},
	}
}
