package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	timeslotModel "timetable_backend/internals/features/timetable/timeslots/model"
)

func TestBusyTeachersPartitionsAllTeachers(t *testing.T) {
	store := newFakeStore()
	a := TeacherInfo{ID: mustID("00000000-0000-0000-0000-0000000000b1"), Name: "Adams", LessonsWeekly: 20}
	b := TeacherInfo{ID: mustID("00000000-0000-0000-0000-0000000000b2"), Name: "Baker", LessonsWeekly: 20}
	c := TeacherInfo{ID: mustID("00000000-0000-0000-0000-0000000000b3"), Name: "Clark", LessonsWeekly: 20}
	store.teachers = []TeacherInfo{a, b, c}
	store.addSlot(timeslotModel.DayMon, timeslotModel.Unit2, SlotFact{TeacherID: a.ID})
	store.addSlot(timeslotModel.DayMon, timeslotModel.Unit2, SlotFact{TeacherID: b.ID})

	busy, err := NewOccupancy(store).BusyTeachers(timeslotModel.DayMon, timeslotModel.Unit2)
	require.NoError(t, err)
	require.Len(t, busy, 2)

	// every teacher is either busy or free, never both
	free := 0
	for _, ti := range store.teachers {
		if _, ok := busy[ti.ID]; !ok {
			free++
		}
	}
	require.Equal(t, len(store.teachers), len(busy)+free)
	_, cBusy := busy[c.ID]
	require.False(t, cBusy)
}

func TestBusyRoomsEmptyWhenNothingScheduled(t *testing.T) {
	store := newFakeStore()

	busy, err := NewOccupancy(store).BusyRooms(timeslotModel.DayFri, timeslotModel.Unit5)
	require.NoError(t, err)
	require.Empty(t, busy)
}
