package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMonthStartNormalizesAnyDay(t *testing.T) {
	want := date(2025, time.March, 1)
	assert.Equal(t, want, MonthStart(date(2025, time.March, 1)))
	assert.Equal(t, want, MonthStart(date(2025, time.March, 15)))
	assert.Equal(t, want, MonthStart(date(2025, time.March, 31)))
}

func TestMonthRangeDecemberRollover(t *testing.T) {
	first, last := MonthRange(date(2025, time.December, 15))
	assert.Equal(t, date(2025, time.December, 1), first)
	assert.Equal(t, date(2025, time.December, 31), last)
	assert.Equal(t, date(2026, time.January, 1), NextMonthStart(date(2025, time.December, 15)))
}

func TestMonthRangeLeapYear(t *testing.T) {
	first, last := MonthRange(date(2024, time.February, 10))
	assert.Equal(t, date(2024, time.February, 1), first)
	assert.Equal(t, date(2024, time.February, 29), last)

	_, last2025 := MonthRange(date(2025, time.February, 10))
	assert.Equal(t, date(2025, time.February, 28), last2025)
}

func TestPrevMonthRangeAcrossYearBoundary(t *testing.T) {
	first, last := PrevMonthRange(date(2026, time.January, 5))
	assert.Equal(t, date(2025, time.December, 1), first)
	assert.Equal(t, date(2025, time.December, 31), last)
}
