package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	timeslotModel "timetable_backend/internals/features/timetable/timeslots/model"
)

func newEngine(store *fakeStore) *SubjectEngine {
	return NewSubjectEngine(store, store, testPolicy())
}

func yr7Subjects() []SubjectInfo {
	return []SubjectInfo{
		{ID: mustID("00000000-0000-0000-0000-000000000071"), Name: "Maths", Count: 5},
		{ID: mustID("00000000-0000-0000-0000-000000000072"), Name: "English", Count: 5},
		{ID: mustID("00000000-0000-0000-0000-000000000073"), Name: "History", Count: 2},
		{ID: mustID("00000000-0000-0000-0000-000000000074"), Name: "Science", Count: 4},
	}
}

func TestSuggestBlockedWhenParallelClassHasLockstepSubject(t *testing.T) {
	store := newFakeStore()
	store.subjectsByYear["Yr7"] = yr7Subjects()
	// 7B1 already sits in Maths at this slot; 7B2 must follow.
	store.addSlot(timeslotModel.DayMon, timeslotModel.Unit2, SlotFact{SubjectName: "Maths", ClassCode: "7B1"})

	got, err := newEngine(store).Suggest("Yr7", timeslotModel.DayMon, timeslotModel.Unit2, "7B2")
	require.NoError(t, err)
	require.NotNil(t, got.Blocked)
	require.Equal(t, "Maths", got.Blocked.Name)
	require.Empty(t, got.Ranked)
}

func TestSuggestIgnoresOtherYearHalf(t *testing.T) {
	store := newFakeStore()
	store.subjectsByYear["Yr7"] = yr7Subjects()
	// 7A1 is the other half; its Maths lesson does not bind 7B2.
	store.addSlot(timeslotModel.DayMon, timeslotModel.Unit2, SlotFact{SubjectName: "Maths", ClassCode: "7A1"})

	got, err := newEngine(store).Suggest("Yr7", timeslotModel.DayMon, timeslotModel.Unit2, "7B2")
	require.NoError(t, err)
	require.Nil(t, got.Blocked)
	require.NotEmpty(t, got.Ranked)
}

func TestSuggestExcludesLockstepOnceHalfDiverged(t *testing.T) {
	store := newFakeStore()
	store.subjectsByYear["Yr7"] = yr7Subjects()
	// A parallel class already has a non-lockstep lesson here, so no
	// lockstep subject can start in this half at this slot.
	store.addSlot(timeslotModel.DayTue, timeslotModel.Unit3, SlotFact{SubjectName: "History", ClassCode: "7B1"})

	got, err := newEngine(store).Suggest("Yr7", timeslotModel.DayTue, timeslotModel.Unit3, "7B2")
	require.NoError(t, err)
	require.Nil(t, got.Blocked)
	for _, s := range got.Ranked {
		require.NotContains(t, []string{"Maths", "English", "PE", "PSHE"}, s.Name)
	}
	require.Len(t, got.Ranked, 2) // History and Science remain
}

func TestSuggestRanksByDeficitAndDropsSatisfied(t *testing.T) {
	store := newFakeStore()
	store.subjectsByYear["Yr7"] = yr7Subjects()
	store.classSubjects["7B2|Maths"] = 2   // deficit 3
	store.classSubjects["7B2|English"] = 5 // satisfied, dropped
	store.classSubjects["7B2|Science"] = 2 // deficit 2
	store.classSubjects["7B2|History"] = 0 // deficit 2

	got, err := newEngine(store).Suggest("Yr7", timeslotModel.DayWed, timeslotModel.Unit1, "7B2")
	require.NoError(t, err)
	require.Nil(t, got.Blocked)
	require.Len(t, got.Ranked, 3)
	require.Equal(t, "Maths", got.Ranked[0].Name)
	require.Equal(t, 3, got.Ranked[0].Deficit)
	// equal deficits break ties alphabetically
	require.Equal(t, "History", got.Ranked[1].Name)
	require.Equal(t, "Science", got.Ranked[2].Name)
}

func TestSuggestBlockedSubjectMissingFromYear(t *testing.T) {
	store := newFakeStore()
	store.subjectsByYear["Yr7"] = []SubjectInfo{
		{ID: mustID("00000000-0000-0000-0000-000000000081"), Name: "History", Count: 2},
	}
	store.addSlot(timeslotModel.DayMon, timeslotModel.Unit2, SlotFact{SubjectName: "PE", ClassCode: "7B1"})

	_, err := newEngine(store).Suggest("Yr7", timeslotModel.DayMon, timeslotModel.Unit2, "7B2")
	require.ErrorIs(t, err, ErrNotFound)
}
