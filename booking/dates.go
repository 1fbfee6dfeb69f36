package booking

import (
	"time"

	"kinobilet-cli/model"
)

// SameDay reports whether two timestamps fall on the same calendar day,
// ignoring time of day.
func SameDay(a time.Time, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// FilterByDay keeps the sessions whose start timestamp falls on the
// given calendar day.
func FilterByDay(sessions []model.Session, day time.Time) []model.Session {
	var filtered []model.Session
	for _, session := range sessions {
		if SameDay(session.StartAt, day) {
			filtered = append(filtered, session)
		}
	}
	return filtered
}

// TruncateDate drops the time-of-day component.
func TruncateDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
