package stats

import "time"

func dayKey(t time.Time, loc *time.Location) time.Time {
	l := t.In(loc)
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, loc)
}

// StreakDays counts consecutive local calendar days with activity, ending today
// or, when nothing happened yet today, ending yesterday.
func StreakDays(activity []time.Time, now time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.UTC
	}
	days := make(map[time.Time]struct{}, len(activity))
	for _, a := range activity {
		days[dayKey(a, loc)] = struct{}{}
	}

	cursor := dayKey(now, loc)
	if _, ok := days[cursor]; !ok {
		cursor = cursor.AddDate(0, 0, -1)
	}

	streak := 0
	for {
		if _, ok := days[cursor]; !ok {
			return streak
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
}
