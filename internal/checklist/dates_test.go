package checklist

import (
	"testing"
	"time"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestAddMonthsClampsDayOfMonth(t *testing.T) {
	cases := []struct {
		in     time.Time
		months int
		want   time.Time
	}{
		{date(2026, time.March, 31), -1, date(2026, time.February, 28)},
		{date(2024, time.March, 31), -1, date(2024, time.February, 29)},
		{date(2026, time.January, 31), 1, date(2026, time.February, 28)},
		{date(2026, time.January, 15), 12, date(2027, time.January, 15)},
		{date(2026, time.January, 15), -13, date(2024, time.December, 15)},
	}
	for _, tc := range cases {
		if got := addMonths(tc.in, tc.months); !got.Equal(tc.want) {
			t.Errorf("addMonths(%v, %d) = %v, want %v", tc.in, tc.months, got, tc.want)
		}
	}
}

func TestSubMonthsTruncatesFractions(t *testing.T) {
	wedding := date(2027, time.June, 1)

	if got := subMonths(wedding, 0.5); !got.Equal(wedding) {
		t.Errorf("subMonths 0.5 should be a no-op, got %v", got)
	}
	if got := subMonths(wedding, 1.9); !got.Equal(date(2027, time.May, 1)) {
		t.Errorf("subMonths 1.9 should subtract one month, got %v", got)
	}
}

func TestSubWeeksTruncatesFractions(t *testing.T) {
	wedding := date(2027, time.June, 1)

	if got := subWeeks(wedding, 0.5); !got.Equal(wedding) {
		t.Errorf("subWeeks 0.5 should be a no-op, got %v", got)
	}
	if got := subWeeks(wedding, 2.7); !got.Equal(date(2027, time.May, 18)) {
		t.Errorf("subWeeks 2.7 should subtract two weeks, got %v", got)
	}
}

func TestWholeMonthsBetween(t *testing.T) {
	cases := []struct {
		later, earlier time.Time
		want           int
	}{
		{date(2027, time.June, 1), date(2026, time.June, 1), 12},
		{date(2026, time.July, 14), date(2026, time.June, 15), 0},
		{date(2026, time.July, 15), date(2026, time.June, 15), 1},
		{date(2026, time.March, 30), date(2026, time.January, 31), 1},
		{date(2026, time.January, 1), date(2026, time.June, 1), -5},
		{date(2026, time.June, 1), date(2026, time.June, 1), 0},
	}
	for _, tc := range cases {
		if got := wholeMonthsBetween(tc.later, tc.earlier); got != tc.want {
			t.Errorf("wholeMonthsBetween(%v, %v) = %d, want %d", tc.later, tc.earlier, got, tc.want)
		}
	}
}

func TestWholeWeeksBetween(t *testing.T) {
	cases := []struct {
		later, earlier time.Time
		want           int
	}{
		{date(2026, time.June, 15), date(2026, time.June, 1), 2},
		{date(2026, time.June, 14), date(2026, time.June, 1), 1},
		{date(2026, time.June, 3), date(2026, time.June, 1), 0},
		{date(2026, time.June, 1), date(2026, time.June, 8), -1},
	}
	for _, tc := range cases {
		if got := wholeWeeksBetween(tc.later, tc.earlier); got != tc.want {
			t.Errorf("wholeWeeksBetween(%v, %v) = %d, want %d", tc.later, tc.earlier, got, tc.want)
		}
	}
}
