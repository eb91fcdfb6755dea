package service

import (
	"sort"

	"github.com/google/uuid"

	timeslotModel "timetable_backend/internals/features/timetable/timeslots/model"
)

/* =======================================================
   In-memory fixtures implementing the reader contracts.
   ======================================================= */

type fakeStore struct {
	slots          map[string][]SlotFact
	teacherLoad    map[uuid.UUID]int
	classSubjects  map[string]int
	teachers       []TeacherInfo
	competency     map[string]map[uuid.UUID]struct{}
	habitualRooms  map[uuid.UUID][]string
	habitualByName map[string]map[uuid.UUID]struct{}
	rooms          []RoomInfo
	pupils         map[string]int
	subjectsByYear map[string][]SubjectInfo
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		slots:          map[string][]SlotFact{},
		teacherLoad:    map[uuid.UUID]int{},
		classSubjects:  map[string]int{},
		competency:     map[string]map[uuid.UUID]struct{}{},
		habitualRooms:  map[uuid.UUID][]string{},
		habitualByName: map[string]map[uuid.UUID]struct{}{},
		pupils:         map[string]int{},
		subjectsByYear: map[string][]SubjectInfo{},
	}
}

func slotKey(day timeslotModel.Weekday, unit timeslotModel.Unit) string {
	return string(day) + "|" + string(unit)
}

func (f *fakeStore) addSlot(day timeslotModel.Weekday, unit timeslotModel.Unit, fact SlotFact) {
	k := slotKey(day, unit)
	f.slots[k] = append(f.slots[k], fact)
}

func (f *fakeStore) SlotsAt(day timeslotModel.Weekday, unit timeslotModel.Unit) ([]SlotFact, error) {
	return append([]SlotFact(nil), f.slots[slotKey(day, unit)]...), nil
}

func (f *fakeStore) CountForTeacher(teacherID uuid.UUID) (int, error) {
	return f.teacherLoad[teacherID], nil
}

func (f *fakeStore) CountForClassSubject(classCode, subjectName string) (int, error) {
	return f.classSubjects[classCode+"|"+subjectName], nil
}

func (f *fakeStore) AllTeachers() ([]TeacherInfo, error) {
	return append([]TeacherInfo(nil), f.teachers...), nil
}

func (f *fakeStore) CompetentTeacherIDs(subjectName string) (map[uuid.UUID]struct{}, error) {
	out := map[uuid.UUID]struct{}{}
	for id := range f.competency[subjectName] {
		out[id] = struct{}{}
	}
	return out, nil
}

func (f *fakeStore) HabitualRoomNumbers(teacherID uuid.UUID) ([]string, error) {
	return append([]string(nil), f.habitualRooms[teacherID]...), nil
}

func (f *fakeStore) HabitualRoomIDsByName(teacherName string) (map[uuid.UUID]struct{}, error) {
	out := map[uuid.UUID]struct{}{}
	for id := range f.habitualByName[teacherName] {
		out[id] = struct{}{}
	}
	return out, nil
}

func (f *fakeStore) AllRooms() ([]RoomInfo, error) {
	return append([]RoomInfo(nil), f.rooms...), nil
}

func (f *fakeStore) RoomsWithCapacityAtLeast(n int) ([]RoomInfo, error) {
	out := []RoomInfo{}
	for _, r := range f.rooms {
		if r.Capacity >= n {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

func (f *fakeStore) PupilCount(classCode string) (int, error) {
	n, ok := f.pupils[classCode]
	if !ok {
		return 0, ErrNotFound
	}
	return n, nil
}

func (f *fakeStore) SubjectsOfYearGroup(yearGroupName string) ([]SubjectInfo, error) {
	return append([]SubjectInfo(nil), f.subjectsByYear[yearGroupName]...), nil
}

// compile-time interface checks
var (
	_ ScheduleReader = (*fakeStore)(nil)
	_ TeacherReader  = (*fakeStore)(nil)
	_ RoomReader     = (*fakeStore)(nil)
	_ ClassReader    = (*fakeStore)(nil)
	_ SubjectReader  = (*fakeStore)(nil)
)

func mustID(s string) uuid.UUID {
	return uuid.MustParse(s)
}
