package domain

import "time"

// Billing rows are keyed by calendar month, always normalized to the first
// day of the month in UTC. Range helpers derive the last day from the next
// month's start so December rollover and leap years need no special cases.

// MonthStart truncates t to the first day of its calendar month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// NextMonthStart returns the first day of the month after t's month.
func NextMonthStart(t time.Time) time.Time {
	return MonthStart(t).AddDate(0, 1, 0)
}

// MonthRange returns the inclusive [first day, last day] range of t's month.
func MonthRange(t time.Time) (first, last time.Time) {
	first = MonthStart(t)
	last = NextMonthStart(t).AddDate(0, 0, -1)
	return first, last
}

// PrevMonthRange returns the inclusive [first day, last day] range of the
// month before t's month.
func PrevMonthRange(t time.Time) (first, last time.Time) {
	start := MonthStart(t)
	return start.AddDate(0, -1, 0), start.AddDate(0, 0, -1)
}
