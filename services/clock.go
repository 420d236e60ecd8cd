package services

import "time"

// Clock abstracts wall-clock reads so tests can simulate day boundaries and
// cooldown expiry.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the real wall clock.
func SystemClock() Clock { return systemClock{} }

// DayOf formats t as the UTC calendar date used as the leaderboard key.
func DayOf(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
