package stats

import "time"

const DefaultChallengeGoal = 10

type Challenge struct {
	Goal        int
	Progress    int
	Remaining   int
	Completed   bool
	PeriodStart time.Time
	PeriodEnd   time.Time
}

// MonthBounds returns [start, end) of the calendar month containing now in loc.
func MonthBounds(now time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	l := now.In(loc)
	start := time.Date(l.Year(), l.Month(), 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}

func MonthlyChallenge(sharedThisMonth int, goal int, now time.Time, loc *time.Location) Challenge {
	if goal <= 0 {
		goal = DefaultChallengeGoal
	}
	start, end := MonthBounds(now, loc)
	remaining := goal - sharedThisMonth
	if remaining < 0 {
		remaining = 0
	}
	return Challenge{
		Goal:        goal,
		Progress:    sharedThisMonth,
		Remaining:   remaining,
		Completed:   sharedThisMonth >= goal,
		PeriodStart: start,
		PeriodEnd:   end,
	}
}
