package tariff

import "time"

// WeekDay is a cyclic day index with Monday = 0 and Sunday = 6.
type WeekDay int

const (
	Monday WeekDay = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

const daysPerWeek = 7

var weekDayNames = [daysPerWeek]string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// WeekDayOf maps an instant to its cyclic day in the instant's own location.
// time.Weekday counts from Sunday = 0, so Sunday becomes 6 and the rest shift down.
func WeekDayOf(t time.Time) WeekDay {
	return WeekDay((int(t.Weekday()) + daysPerWeek - 1) % daysPerWeek)
}

func (d WeekDay) Valid() bool {
	return d >= Monday && d <= Sunday
}

func (d WeekDay) Next() WeekDay {
	return (d + 1) % daysPerWeek
}

func (d WeekDay) String() string {
	if !d.Valid() {
		return "invalid"
	}
	return weekDayNames[d]
}

// daySet is a bitmask over the seven cyclic days.
type daySet uint8

const allDays daySet = 1<<daysPerWeek - 1

func (s daySet) has(d WeekDay) bool {
	return s&(1<<uint(d)) != 0
}

func (s daySet) intersects(o daySet) bool {
	return s&o != 0
}

// cyclicRange returns the days from start to end inclusive, wrapping past Sunday.
func cyclicRange(start, end WeekDay) daySet {
	var s daySet
	for d := start; ; d = d.Next() {
		s |= 1 << uint(d)
		if d == end {
			return s
		}
	}
}
