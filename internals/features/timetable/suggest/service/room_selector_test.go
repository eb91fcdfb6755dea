package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"timetable_backend/internals/configs"
	timeslotModel "timetable_backend/internals/features/timetable/timeslots/model"
)

func testPolicy() configs.SuggestionPolicy {
	return configs.SuggestionPolicy{
		LockstepSubjects: []string{"Maths", "English", "PE", "PSHE"},
		APSubject:        "AP",
	}
}

func newSelector(store *fakeStore) *RoomSelector {
	return NewRoomSelector(store, store, store, store, testPolicy())
}

func TestSelectExcludesSmallAndBusyRooms(t *testing.T) {
	store := newFakeStore()
	small := RoomInfo{ID: mustID("00000000-0000-0000-0000-000000000021"), Number: "R1", Capacity: 10}
	taken := RoomInfo{ID: mustID("00000000-0000-0000-0000-000000000022"), Number: "R2", Capacity: 30}
	open := RoomInfo{ID: mustID("00000000-0000-0000-0000-000000000023"), Number: "R3", Capacity: 30}
	store.rooms = []RoomInfo{small, taken, open}
	store.pupils["7B2"] = 28
	store.addSlot(timeslotModel.DayMon, timeslotModel.Unit2, SlotFact{RoomID: taken.ID})

	rooms, err := newSelector(store).Select("History", timeslotModel.DayMon, timeslotModel.Unit2, "Hume", "7B2")
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	require.Equal(t, "R3", rooms[0].Number)
}

func TestSelectPrefersTeacherHabitualRooms(t *testing.T) {
	store := newFakeStore()
	own := RoomInfo{ID: mustID("00000000-0000-0000-0000-000000000031"), Number: "H1", Capacity: 30}
	other := RoomInfo{ID: mustID("00000000-0000-0000-0000-000000000032"), Number: "Z9", Capacity: 30}
	store.rooms = []RoomInfo{own, other}
	store.pupils["8A1"] = 25
	store.habitualByName["Hume"] = map[uuid.UUID]struct{}{own.ID: {}}

	rooms, err := newSelector(store).Select("History", timeslotModel.DayTue, timeslotModel.Unit1, "Hume", "8A1")
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	require.Equal(t, "H1", rooms[0].Number)
}

func TestSelectIgnoresHabitualRoomsForAdditionalProvision(t *testing.T) {
	store := newFakeStore()
	own := RoomInfo{ID: mustID("00000000-0000-0000-0000-000000000041"), Number: "H1", Capacity: 30}
	other := RoomInfo{ID: mustID("00000000-0000-0000-0000-000000000042"), Number: "Z9", Capacity: 30}
	store.rooms = []RoomInfo{own, other}
	store.pupils["8A1"] = 25
	store.habitualByName["Hume"] = map[uuid.UUID]struct{}{own.ID: {}}

	rooms, err := newSelector(store).Select("AP", timeslotModel.DayTue, timeslotModel.Unit1, "Hume", "8A1")
	require.NoError(t, err)
	require.Len(t, rooms, 2)
}

func TestSelectOrdersDepartmentTaggedRoomsFirst(t *testing.T) {
	store := newFakeStore()
	generic := RoomInfo{ID: mustID("00000000-0000-0000-0000-000000000051"), Number: "A1", Capacity: 30}
	tagged := RoomInfo{ID: mustID("00000000-0000-0000-0000-000000000052"), Number: "S5", Capacity: 30, Description: "Science"}
	store.rooms = []RoomInfo{generic, tagged}
	store.pupils["9C1"] = 20

	rooms, err := newSelector(store).Select("Science", timeslotModel.DayWed, timeslotModel.Unit4, "Curie", "9C1")
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	require.Equal(t, "S5", rooms[0].Number)
	require.Equal(t, "A1", rooms[1].Number)
}

func TestSelectTreatsICTAndComputingAsInterchangeable(t *testing.T) {
	store := newFakeStore()
	ict := RoomInfo{ID: mustID("00000000-0000-0000-0000-000000000061"), Number: "IT1", Capacity: 30, Description: "ICT"}
	comp := RoomInfo{ID: mustID("00000000-0000-0000-0000-000000000062"), Number: "CS1", Capacity: 30, Description: "Computing"}
	plain := RoomInfo{ID: mustID("00000000-0000-0000-0000-000000000063"), Number: "A1", Capacity: 30}
	store.rooms = []RoomInfo{ict, comp, plain}
	store.pupils["7A1"] = 22

	rooms, err := newSelector(store).Select("Computing", timeslotModel.DayThu, timeslotModel.Unit5, "Lovelace", "7A1")
	require.NoError(t, err)
	require.Len(t, rooms, 3)
	require.Equal(t, "CS1", rooms[0].Number)
	require.Equal(t, "IT1", rooms[1].Number)
	require.Equal(t, "A1", rooms[2].Number)
}

func TestSelectUnknownClassCode(t *testing.T) {
	store := newFakeStore()

	_, err := newSelector(store).Select("History", timeslotModel.DayMon, timeslotModel.Unit1, "Hume", "nope")
	require.ErrorIs(t, err, ErrNotFound)
}
