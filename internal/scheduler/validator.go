package scheduler

import (
	"fmt"

	"github.com/nexai/timetablegen/pkg/model"
)

type occupant struct {
	kind string
	id   string
}

// Validate checks a committed run for double bookings, break overlaps and
// room type mismatches. Returns false and a report for invalid runs.
func Validate(bookings []model.Booking, rooms []model.Room) (bool, string) {
	var message string
	valid := true
	hasCollision := false
	hasBreakOverlap := false
	hasRoomMismatch := false

	roomTypes := make(map[string]string, len(rooms))
	for _, r := range rooms {
		roomTypes[r.ID] = r.Type
	}

	seen := make(map[hourKey]map[occupant]string)
	for _, b := range bookings {
		label := fmt.Sprintf("%s / %s", b.Section, b.Subject)
		for _, h := range b.Hours() {
			k := hourKey{b.Day, h}
			if seen[k] == nil {
				seen[k] = make(map[occupant]string)
			}
			for _, occ := range []occupant{
				{"room", b.RoomID},
				{"teacher", b.Teacher},
				{"section", b.Section},
			} {
				if prev, clash := seen[k][occ]; clash {
					valid = false
					hasCollision = true
					message += fmt.Sprintf("- %s %s booked twice at %s %d:00 (%s and %s)\n",
						occ.kind, occ.id, b.Day, h, prev, label)
				} else {
					seen[k][occ] = label
				}
			}
			if model.IsBreakHour(b.Day, h) {
				valid = false
				hasBreakOverlap = true
				message += fmt.Sprintf("- %s overlaps the %s break at %d:00\n", label, b.Day, h)
			}
		}
		if IsLabRoom(roomTypes[b.RoomID]) != b.IsLab {
			valid = false
			hasRoomMismatch = true
			message += fmt.Sprintf("- %s placed in room %s which does not match its lab requirement\n", label, b.RoomID)
		}
	}

	if hasRoomMismatch {
		message = "[FAIL]: Room type check.\n" + message
	} else {
		message = "[  OK]: Room type check.\n" + message
	}
	if hasBreakOverlap {
		message = "[FAIL]: Break overlap check.\n" + message
	} else {
		message = "[  OK]: Break overlap check.\n" + message
	}
	if hasCollision {
		message = "[FAIL]: Double booking check.\n" + message
	} else {
		message = "[  OK]: Double booking check.\n" + message
	}

	return valid, message
}
