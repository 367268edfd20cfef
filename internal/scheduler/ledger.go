package scheduler

import "github.com/nexai/timetablegen/pkg/model"

type hourKey struct {
	day  model.Day
	hour int
}

// Ledger records which rooms, teachers and sections are occupied per
// (day, hour). It is scoped to a single generation run and must never be
// shared across concurrent runs.
type Ledger struct {
	rooms    map[hourKey]map[string]struct{}
	teachers map[hourKey]map[string]struct{}
	sections map[hourKey]map[string]struct{}
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{
		rooms:    make(map[hourKey]map[string]struct{}),
		teachers: make(map[hourKey]map[string]struct{}),
		sections: make(map[hourKey]map[string]struct{}),
	}
}

func occupy(m map[hourKey]map[string]struct{}, k hourKey, id string) {
	set, ok := m[k]
	if !ok {
		set = make(map[string]struct{})
		m[k] = set
	}
	set[id] = struct{}{}
}

func occupied(m map[hourKey]map[string]struct{}, k hourKey, id string) bool {
	_, ok := m[k][id]
	return ok
}

// RoomFree reports whether the room is unbooked at the given hour.
func (l *Ledger) RoomFree(day model.Day, hour int, roomID string) bool {
	return !occupied(l.rooms, hourKey{day, hour}, roomID)
}

// TeacherFree reports whether the teacher is unbooked at the given hour.
func (l *Ledger) TeacherFree(day model.Day, hour int, teacher string) bool {
	return !occupied(l.teachers, hourKey{day, hour}, teacher)
}

// SectionFree reports whether the section is unbooked at the given hour.
func (l *Ledger) SectionFree(day model.Day, hour int, section string) bool {
	return !occupied(l.sections, hourKey{day, hour}, section)
}

// Commit marks every hour of the booking's window as occupied by its room,
// teacher and section. Adding an occupant twice is a no-op.
func (l *Ledger) Commit(b model.Booking) {
	for _, h := range b.Hours() {
		k := hourKey{b.Day, h}
		occupy(l.rooms, k, b.RoomID)
		occupy(l.teachers, k, b.Teacher)
		occupy(l.sections, k, b.Section)
	}
}

// RoomCount returns how many rooms are booked at the given hour.
func (l *Ledger) RoomCount(day model.Day, hour int) int {
	return len(l.rooms[hourKey{day, hour}])
}
