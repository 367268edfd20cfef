package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nexai/timetablegen/pkg/model"
)

func TestLedgerCommitMarksEveryHour(t *testing.T) {
	ledger := NewLedger()
	ledger.Commit(model.Booking{
		Section: "CS1", Teacher: "Mr Khan", RoomID: "R1",
		Day: model.Monday, StartHour: 9, EndHour: 12,
	})

	for h := 9; h < 12; h++ {
		assert.False(t, ledger.RoomFree(model.Monday, h, "R1"))
		assert.False(t, ledger.TeacherFree(model.Monday, h, "Mr Khan"))
		assert.False(t, ledger.SectionFree(model.Monday, h, "CS1"))
	}
	assert.True(t, ledger.RoomFree(model.Monday, 8, "R1"))
	assert.True(t, ledger.RoomFree(model.Monday, 12, "R1"))
	assert.True(t, ledger.RoomFree(model.Tuesday, 9, "R1"))
}

func TestLedgerKeysAreIndependent(t *testing.T) {
	ledger := NewLedger()
	ledger.Commit(model.Booking{
		Section: "CS1", Teacher: "Mr Khan", RoomID: "R1",
		Day: model.Monday, StartHour: 8, EndHour: 9,
	})

	assert.True(t, ledger.RoomFree(model.Monday, 8, "R2"))
	assert.True(t, ledger.TeacherFree(model.Monday, 8, "Ms Noor"))
	assert.True(t, ledger.SectionFree(model.Monday, 8, "CS2"))
}

func TestLedgerCommitIsIdempotent(t *testing.T) {
	ledger := NewLedger()
	b := model.Booking{
		Section: "CS1", Teacher: "Mr Khan", RoomID: "R1",
		Day: model.Friday, StartHour: 14, EndHour: 16,
	}
	ledger.Commit(b)
	ledger.Commit(b)

	assert.Equal(t, 1, ledger.RoomCount(model.Friday, 14))
	assert.Equal(t, 1, ledger.RoomCount(model.Friday, 15))
}
