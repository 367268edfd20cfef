package model

// Room is read-only reference data; the type string is free text and rooms
// containing "lab" (case-insensitive) are treated as laboratory rooms.
type Room struct {
	ID   string `csv:"room id" validate:"required"`
	Type string `csv:"type"`
}
