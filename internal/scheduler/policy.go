package scheduler

import "strings"

// Domain policies encoded in roster naming conventions. Kept as named
// predicates so they can be swapped for structured fields later.

// IsLabSubject reports whether a subject is taught as a laboratory. Lab
// subjects are taught to half-class groups in two separate 3-hour blocks.
func IsLabSubject(subject string) bool {
	return strings.HasSuffix(strings.ToLower(strings.TrimSpace(subject)), "lab")
}

// IsLabRoom reports whether a room's free-text type marks it as a laboratory.
func IsLabRoom(roomType string) bool {
	return strings.Contains(strings.ToLower(roomType), "lab")
}

// HasRestrictedStart reports whether the teacher may not take the first hour
// of the day. Such teachers start at 9:00 instead of 8:00.
func HasRestrictedStart(teacher string) bool {
	return strings.HasSuffix(strings.ToLower(strings.TrimSpace(teacher)), "main")
}

// EarliestStartHour returns the first hour the teacher may be booked.
func EarliestStartHour(teacher string) int {
	if HasRestrictedStart(teacher) {
		return 9
	}
	return 8
}
