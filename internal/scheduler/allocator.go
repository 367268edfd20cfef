package scheduler

import (
	"fmt"

	apperrors "github.com/nexai/timetablegen/pkg/errors"
	"github.com/nexai/timetablegen/pkg/model"
)

// Allocate tries to assign a day, a contiguous hour window and a room to
// every session, committing each placement to the ledger before the next
// session is searched. The search is first-fit with no backtracking: a
// committed booking is never revisited, so a run can report infeasibility
// even when a different placement order would have succeeded.
//
// Either every session is placed and the full booking list is returned, or
// the run fails with Infeasible and no bookings are returned.
func Allocate(sessions []model.Session, rooms []model.Room, ledger *Ledger) ([]model.Booking, error) {
	bookings := make([]model.Booking, 0, len(sessions))
	for _, session := range sessions {
		booking, placed := tryPlaceSession(session, rooms, ledger)
		if !placed {
			return nil, apperrors.Clone(apperrors.ErrInfeasible,
				fmt.Sprintf("could not place %q for section %q with %s anywhere in the week",
					session.Subject, session.Section, session.Teacher))
		}
		ledger.Commit(booking)
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

// tryPlaceSession walks days in week order and start hours in ascending
// order, returning the first feasible booking.
func tryPlaceSession(session model.Session, rooms []model.Room, ledger *Ledger) (model.Booking, bool) {
	earliest := EarliestStartHour(session.Teacher)
	for _, day := range model.Week {
		for start := earliest; start <= model.DayEndHour-session.DurationHours; start++ {
			if windowHitsBreak(day, start, session.DurationHours) {
				continue
			}
			room, ok := findRoom(session, rooms, ledger, day, start)
			if !ok {
				continue
			}
			return model.Booking{
				Section:   session.Section,
				Subject:   session.Subject,
				Teacher:   session.Teacher,
				Day:       day,
				StartHour: start,
				EndHour:   start + session.DurationHours,
				RoomID:    room.ID,
				IsLab:     session.IsLab,
			}, true
		}
	}
	return model.Booking{}, false
}

// windowHitsBreak rejects windows that overlap the day's break even
// partially.
func windowHitsBreak(day model.Day, start, duration int) bool {
	for h := start; h < start+duration; h++ {
		if model.IsBreakHour(day, h) {
			return true
		}
	}
	return false
}

// findRoom scans the room roster in order and returns the first room whose
// type matches the session and whose room, teacher and section are all free
// for every hour of the window. First fit only; alternatives are never
// compared.
func findRoom(session model.Session, rooms []model.Room, ledger *Ledger, day model.Day, start int) (model.Room, bool) {
	for _, room := range rooms {
		if IsLabRoom(room.Type) != session.IsLab {
			continue
		}
		free := true
		for h := start; h < start+session.DurationHours; h++ {
			if !ledger.RoomFree(day, h, room.ID) ||
				!ledger.TeacherFree(day, h, session.Teacher) ||
				!ledger.SectionFree(day, h, session.Section) {
				free = false
				break
			}
		}
		if free {
			return room, true
		}
	}
	return model.Room{}, false
}
