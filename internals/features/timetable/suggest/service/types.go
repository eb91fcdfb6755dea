package service

import (
	"errors"

	"github.com/google/uuid"

	timeslotModel "timetable_backend/internals/features/timetable/timeslots/model"
)

// ErrNotFound is returned by readers when a name/code lookup
// misses; controllers translate it to a 404.
var ErrNotFound = errors.New("not found")

/* =======================================================
   Read-side projections
   The suggestion services never touch gorm models directly;
   they work on these flat views hydrated by a repository.
   ======================================================= */

type TeacherInfo struct {
	ID            uuid.UUID `json:"teacher_id"`
	Name          string    `json:"teacher_name"`
	LessonsWeekly int       `json:"teacher_lessons_weekly"`
}

type RoomInfo struct {
	ID          uuid.UUID `json:"room_id"`
	Number      string    `json:"room_number"`
	Type        string    `json:"room_type"`
	Description string    `json:"room_description,omitempty"` // "" when untagged
	Capacity    int       `json:"room_capacity"`
}

type SubjectInfo struct {
	ID    uuid.UUID `json:"subject_id"`
	Name  string    `json:"subject_name"`
	Count int       `json:"subject_count"` // required weekly lessons
}

// SlotFact is one scheduled lesson at a (day, unit), with the
// names the services filter on already resolved.
type SlotFact struct {
	TeacherID    uuid.UUID
	RoomID       uuid.UUID
	SubjectID    uuid.UUID
	ClassGroupID uuid.UUID
	SubjectName  string
	ClassCode    string
}

/* =======================================================
   Repository contracts
   Small per-concern readers so tests can swap in in-memory
   fixtures. One gorm type implements all of them.
   ======================================================= */

type ScheduleReader interface {
	// SlotsAt returns every lesson scheduled at (day, unit).
	SlotsAt(day timeslotModel.Weekday, unit timeslotModel.Unit) ([]SlotFact, error)
	// CountForTeacher counts all lessons assigned to a teacher over the week.
	CountForTeacher(teacherID uuid.UUID) (int, error)
	// CountForClassSubject counts how often a class already has a subject scheduled.
	CountForClassSubject(classCode, subjectName string) (int, error)
}

type TeacherReader interface {
	AllTeachers() ([]TeacherInfo, error)
	// CompetentTeacherIDs is the set of teachers whose competency list contains the subject.
	CompetentTeacherIDs(subjectName string) (map[uuid.UUID]struct{}, error)
	// HabitualRoomNumbers lists the room numbers a teacher usually teaches in.
	HabitualRoomNumbers(teacherID uuid.UUID) ([]string, error)
	// HabitualRoomIDsByName resolves a teacher by name to their habitual room set.
	// Unknown teachers yield an empty set, not an error: a missing name only
	// weakens room prioritization.
	HabitualRoomIDsByName(teacherName string) (map[uuid.UUID]struct{}, error)
}

type RoomReader interface {
	AllRooms() ([]RoomInfo, error)
	// RoomsWithCapacityAtLeast returns rooms that hold at least n pupils,
	// ordered by room number.
	RoomsWithCapacityAtLeast(n int) ([]RoomInfo, error)
}

type ClassReader interface {
	// PupilCount returns the pupil count of a class, or ErrNotFound.
	PupilCount(classCode string) (int, error)
}

type SubjectReader interface {
	// SubjectsOfYearGroup lists the subjects owned by a year group ("Yr7").
	SubjectsOfYearGroup(yearGroupName string) ([]SubjectInfo, error)
}
