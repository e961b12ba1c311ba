package checklist

import "time"

// Date helpers with truncating semantics: fractional month and week amounts
// truncate toward zero, differences count whole calendar months and whole
// 7-day periods. The scheduling rules depend on these exact semantics, so
// none of the helpers round.

// wholeMonthsBetween returns the number of full calendar months from earlier
// to later. Negative when later precedes earlier.
func wholeMonthsBetween(later, earlier time.Time) int {
	sign := 1
	if later.Before(earlier) {
		later, earlier = earlier, later
		sign = -1
	}

	months := (later.Year()-earlier.Year())*12 + int(later.Month()) - int(earlier.Month())
	// The calendar difference can overshoot by one when the day of month (or
	// time of day) hasn't been reached yet.
	for months > 0 && addMonths(earlier, months).After(later) {
		months--
	}

	return sign * months
}

// wholeWeeksBetween returns the number of full 7-day periods from earlier to
// later, truncated toward zero.
func wholeWeeksBetween(later, earlier time.Time) int {
	days := int(later.Sub(earlier).Hours() / 24)
	return days / 7
}

// addMonths shifts t by the given number of calendar months, clamping the day
// of month to the last day of the target month (Mar 31 minus one month is
// Feb 28, not Mar 3).
func addMonths(t time.Time, months int) time.Time {
	total := int(t.Month()) - 1 + months
	year := t.Year() + total/12
	rem := total % 12
	if rem < 0 {
		rem += 12
		year--
	}
	month := time.Month(rem + 1)

	day := t.Day()
	if last := daysInMonth(year, month); day > last {
		day = last
	}

	hour, min, sec := t.Clock()
	return time.Date(year, month, day, hour, min, sec, t.Nanosecond(), t.Location())
}

// subMonths subtracts a possibly fractional number of months from t. The
// amount truncates toward zero, so subtracting 0.5 months is a no-op.
func subMonths(t time.Time, months float64) time.Time {
	return addMonths(t, -int(months))
}

// subWeeks subtracts a possibly fractional number of weeks from t. The
// amount truncates toward zero before being converted to days.
func subWeeks(t time.Time, weeks float64) time.Time {
	return t.AddDate(0, 0, -int(weeks)*7)
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
