package model

// Day is an index into the teaching week, Monday first.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
)

// Week lists the teaching days in scheduling order.
var Week = []Day{Monday, Tuesday, Wednesday, Thursday, Friday}

var dayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

func (d Day) String() string {
	if d < Monday || d > Friday {
		return "Unknown"
	}
	return dayNames[d]
}

// Teaching hours run from DayStartHour (inclusive) to DayEndHour (exclusive).
const (
	DayStartHour   = 8
	DayEndHour     = 16
	BreakStartHour = 12
)

// BreakEndHour returns the first teaching hour after the midday break.
// Friday's break runs two hours to cover congregational prayer.
func BreakEndHour(d Day) int {
	if d == Friday {
		return 14
	}
	return 13
}

// IsBreakHour reports whether the given hour falls inside the day's break.
func IsBreakHour(d Day, hour int) bool {
	return hour >= BreakStartHour && hour < BreakEndHour(d)
}
