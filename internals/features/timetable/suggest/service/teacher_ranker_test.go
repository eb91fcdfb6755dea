package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	timeslotModel "timetable_backend/internals/features/timetable/timeslots/model"
)

func TestRankSkipsBusyAndExhaustedTeachers(t *testing.T) {
	store := newFakeStore()

	busyT := TeacherInfo{ID: mustID("00000000-0000-0000-0000-000000000001"), Name: "Adams", LessonsWeekly: 20}
	freeT := TeacherInfo{ID: mustID("00000000-0000-0000-0000-000000000002"), Name: "Baker", LessonsWeekly: 20}
	fullT := TeacherInfo{ID: mustID("00000000-0000-0000-0000-000000000003"), Name: "Clark", LessonsWeekly: 18}
	store.teachers = []TeacherInfo{busyT, freeT, fullT}

	store.addSlot(timeslotModel.DayMon, timeslotModel.Unit2, SlotFact{TeacherID: busyT.ID, ClassCode: "7B1"})
	store.teacherLoad[freeT.ID] = 12 // 8 remaining
	store.teacherLoad[fullT.ID] = 18 // exhausted

	store.competency["Science"] = map[uuid.UUID]struct{}{
		busyT.ID: {}, freeT.ID: {}, fullT.ID: {},
	}

	ranked, err := NewTeacherRanker(store, store).Rank("Science", timeslotModel.DayMon, timeslotModel.Unit2)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	require.Equal(t, "Baker", ranked[0].Name)
	require.Equal(t, 8, ranked[0].Remaining)
}

func TestRankOrdersByRemainingThenName(t *testing.T) {
	store := newFakeStore()

	a := TeacherInfo{ID: mustID("00000000-0000-0000-0000-00000000000a"), Name: "Young", LessonsWeekly: 20}
	b := TeacherInfo{ID: mustID("00000000-0000-0000-0000-00000000000b"), Name: "Old", LessonsWeekly: 20}
	c := TeacherInfo{ID: mustID("00000000-0000-0000-0000-00000000000c"), Name: "Mead", LessonsWeekly: 25}
	store.teachers = []TeacherInfo{a, b, c}

	store.teacherLoad[a.ID] = 15 // 5 remaining
	store.teacherLoad[b.ID] = 15 // 5 remaining
	store.teacherLoad[c.ID] = 15 // 10 remaining

	store.competency["Maths"] = map[uuid.UUID]struct{}{a.ID: {}, b.ID: {}, c.ID: {}}

	ranked, err := NewTeacherRanker(store, store).Rank("Maths", timeslotModel.DayTue, timeslotModel.Unit1)
	require.NoError(t, err)
	require.Len(t, ranked, 3)
	require.Equal(t, []string{"Mead", "Old", "Young"}, []string{ranked[0].Name, ranked[1].Name, ranked[2].Name})
	require.True(t, ranked[0].Remaining >= ranked[1].Remaining)
	require.True(t, ranked[1].Remaining >= ranked[2].Remaining)
}

func TestRankFiltersByCompetencyAndAttachesRooms(t *testing.T) {
	store := newFakeStore()

	hist := TeacherInfo{ID: mustID("00000000-0000-0000-0000-000000000011"), Name: "Hume", LessonsWeekly: 20}
	sci := TeacherInfo{ID: mustID("00000000-0000-0000-0000-000000000012"), Name: "Curie", LessonsWeekly: 20}
	store.teachers = []TeacherInfo{hist, sci}

	store.competency["History"] = map[uuid.UUID]struct{}{hist.ID: {}}
	store.habitualRooms[hist.ID] = []string{"H1", "H2"}

	ranked, err := NewTeacherRanker(store, store).Rank("History", timeslotModel.DayWed, timeslotModel.Unit3)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	require.Equal(t, "Hume", ranked[0].Name)
	require.Equal(t, []string{"H1", "H2"}, ranked[0].RoomNumbers)
}

func TestRankEmptyWhenNobodyCompetent(t *testing.T) {
	store := newFakeStore()
	store.teachers = []TeacherInfo{
		{ID: uuid.New(), Name: "Solo", LessonsWeekly: 10},
	}

	ranked, err := NewTeacherRanker(store, store).Rank("Latin", timeslotModel.DayFri, timeslotModel.UnitForm)
	require.NoError(t, err)
	require.Empty(t, ranked)
}
