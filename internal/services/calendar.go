package services

import "time"

// daysBetween counts calendar-day boundaries from a to b in loc.
// The result is negative when b falls on an earlier day than a.
func daysBetween(a, b time.Time, loc *time.Location) int {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}

// inclusiveDays is the number of calendar days from since to now, counting both ends.
func inclusiveDays(since, now time.Time, loc *time.Location) int {
	return max(daysBetween(since, now, loc)+1, 1)
}
