package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nexai/timetablegen/pkg/model"
)

var validatorRooms = []model.Room{
	{ID: "R1", Type: "classroom"},
	{ID: "L1", Type: "computer lab"},
}

func TestValidateAcceptsCleanRun(t *testing.T) {
	bookings := []model.Booking{
		{Section: "CS1", Subject: "Math", Teacher: "Mr Khan", Day: model.Monday, StartHour: 8, EndHour: 10, RoomID: "R1"},
		{Section: "CS2", Subject: "Math", Teacher: "Mr Khan", Day: model.Monday, StartHour: 10, EndHour: 12, RoomID: "R1"},
	}
	valid, report := Validate(bookings, validatorRooms)
	assert.True(t, valid, report)
	assert.Contains(t, report, "[  OK]: Double booking check.")
}

func TestValidateCatchesDoubleBookedRoom(t *testing.T) {
	bookings := []model.Booking{
		{Section: "CS1", Subject: "Math", Teacher: "Mr Khan", Day: model.Monday, StartHour: 8, EndHour: 10, RoomID: "R1"},
		{Section: "CS2", Subject: "Physics", Teacher: "Ms Noor", Day: model.Monday, StartHour: 9, EndHour: 11, RoomID: "R1"},
	}
	valid, report := Validate(bookings, validatorRooms)
	assert.False(t, valid)
	assert.Contains(t, report, "[FAIL]: Double booking check.")
	assert.Contains(t, report, "room R1")
}

func TestValidateCatchesBreakOverlap(t *testing.T) {
	bookings := []model.Booking{
		{Section: "CS1", Subject: "Math", Teacher: "Mr Khan", Day: model.Friday, StartHour: 12, EndHour: 14, RoomID: "R1"},
	}
	valid, report := Validate(bookings, validatorRooms)
	assert.False(t, valid)
	assert.Contains(t, report, "[FAIL]: Break overlap check.")
}

func TestValidateCatchesRoomTypeMismatch(t *testing.T) {
	bookings := []model.Booking{
		{Section: "CS1", Subject: "Networks Lab (Odd Roll#)", Teacher: "Ms Noor", Day: model.Monday, StartHour: 8, EndHour: 11, RoomID: "R1", IsLab: true},
	}
	valid, report := Validate(bookings, validatorRooms)
	assert.False(t, valid)
	assert.Contains(t, report, "[FAIL]: Room type check.")
}
