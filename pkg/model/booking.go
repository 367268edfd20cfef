package model

import "fmt"

// Booking is a committed (session, day, window, room) assignment. Once
// recorded it is permanent for the rest of the run.
type Booking struct {
	Section   string
	Subject   string
	Teacher   string
	Day       Day
	StartHour int
	EndHour   int
	RoomID    string
	IsLab     bool
}

// Hours expands the booked window into its hour keys.
func (b Booking) Hours() []int {
	hours := make([]int, 0, b.EndHour-b.StartHour)
	for h := b.StartHour; h < b.EndHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

func (b Booking) StartLabel() string {
	return fmt.Sprintf("%d:00", b.StartHour)
}

func (b Booking) EndLabel() string {
	return fmt.Sprintf("%d:00", b.EndHour)
}

func (b Booking) RoomLabel() string {
	return "[" + b.RoomID + "]"
}

// Timetable maps a section name to its committed bookings.
type Timetable map[string][]Booking

// BookingCSVRow is the flat export format of one booking.
type BookingCSVRow struct {
	Section string `csv:"section"`
	Day     string `csv:"day"`
	Start   string `csv:"start"`
	End     string `csv:"end"`
	Subject string `csv:"subject"`
	Teacher string `csv:"teacher"`
	Room    string `csv:"room"`
}
