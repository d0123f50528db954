package tariff

import "time"

// calendarDays lists the midnight of every calendar date the interval touches,
// from the start date to the end date inclusive, in the interval's location.
func calendarDays(interval Span) []time.Time {
	loc := interval.Start.Location()
	y, m, d := interval.Start.Date()
	first := time.Date(y, m, d, 0, 0, 0, 0, loc)
	ey, em, ed := interval.End.In(loc).Date()
	last := time.Date(ey, em, ed, 0, 0, 0, 0, loc)

	var days []time.Time
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		days = append(days, day)
	}
	return days
}

// touchedDays is the cyclic-day footprint of the interval; the cheap
// prefilter run before any rule is walked day by day.
func touchedDays(interval Span) daySet {
	if interval.Duration() >= daysPerWeek*24*time.Hour {
		return allDays
	}
	var set daySet
	for _, day := range calendarDays(interval) {
		set |= 1 << uint(WeekDayOf(day))
	}
	return set
}
