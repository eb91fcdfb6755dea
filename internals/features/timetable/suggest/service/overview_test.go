package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	timeslotModel "timetable_backend/internals/features/timetable/timeslots/model"
)

func TestSnapshotListsFreeComputerRoomsOnly(t *testing.T) {
	store := newFakeStore()
	freeICT := RoomInfo{ID: mustID("00000000-0000-0000-0000-000000000091"), Number: "IT1", Description: "ICT", Capacity: 30}
	busyICT := RoomInfo{ID: mustID("00000000-0000-0000-0000-000000000092"), Number: "IT2", Description: "Computing", Capacity: 30}
	plain := RoomInfo{ID: mustID("00000000-0000-0000-0000-000000000093"), Number: "A1", Capacity: 30}
	store.rooms = []RoomInfo{freeICT, busyICT, plain}
	store.addSlot(timeslotModel.DayMon, timeslotModel.Unit2, SlotFact{RoomID: busyICT.ID})

	got, err := NewOverview(store, store, store).Snapshot(timeslotModel.DayMon, timeslotModel.Unit2, "")
	require.NoError(t, err)
	require.Len(t, got.Rooms, 1)
	require.Equal(t, "IT1", got.Rooms[0].Number)
	require.NotNil(t, got.Teachers)
	require.Empty(t, got.Teachers)
}

func TestSnapshotAddsFreeCompetentTeachersForSubject(t *testing.T) {
	store := newFakeStore()
	busyT := TeacherInfo{ID: mustID("00000000-0000-0000-0000-0000000000a1"), Name: "Adams", LessonsWeekly: 20}
	freeT := TeacherInfo{ID: mustID("00000000-0000-0000-0000-0000000000a2"), Name: "Baker", LessonsWeekly: 20}
	other := TeacherInfo{ID: mustID("00000000-0000-0000-0000-0000000000a3"), Name: "Clark", LessonsWeekly: 20}
	store.teachers = []TeacherInfo{busyT, freeT, other}
	store.competency["Computing"] = map[uuid.UUID]struct{}{busyT.ID: {}, freeT.ID: {}}
	store.addSlot(timeslotModel.DayFri, timeslotModel.Unit1, SlotFact{TeacherID: busyT.ID})

	got, err := NewOverview(store, store, store).Snapshot(timeslotModel.DayFri, timeslotModel.Unit1, "Computing")
	require.NoError(t, err)
	require.Len(t, got.Teachers, 1)
	require.Equal(t, "Baker", got.Teachers[0].Name)
}
