package service

import (
	"github.com/google/uuid"

	"timetable_backend/internals/configs"
	timeslotModel "timetable_backend/internals/features/timetable/timeslots/model"
)

/* =======================================================
   Free-room selector
   capacity filter, minus busy, teacher-habitual
   prioritization, then department affinity ordering.
   ======================================================= */

type RoomSelector struct {
	Slots    ScheduleReader
	Rooms    RoomReader
	Teachers TeacherReader
	Classes  ClassReader
	Policy   configs.SuggestionPolicy
}

func NewRoomSelector(slots ScheduleReader, rooms RoomReader, teachers TeacherReader, classes ClassReader, policy configs.SuggestionPolicy) *RoomSelector {
	return &RoomSelector{Slots: slots, Rooms: rooms, Teachers: teachers, Classes: classes, Policy: policy}
}

// Select returns candidate rooms for a lesson, best first:
// habitually-used rooms of the teacher when any are free (except
// for the additional-provision subject, which has no dedicated
// rooms), then department-tagged rooms ahead of generic ones.
// Rooms smaller than the class never appear.
func (s *RoomSelector) Select(subject string, day timeslotModel.Weekday, unit timeslotModel.Unit, teacherName, classCode string) ([]RoomInfo, error) {
	busy, err := NewOccupancy(s.Slots).BusyRooms(day, unit)
	if err != nil {
		return nil, err
	}

	pupils, err := s.Classes.PupilCount(classCode)
	if err != nil {
		return nil, err // ErrNotFound for an unknown class code
	}

	eligible, err := s.Rooms.RoomsWithCapacityAtLeast(pupils)
	if err != nil {
		return nil, err
	}

	free := make([]RoomInfo, 0, len(eligible))
	for _, room := range eligible {
		if _, used := busy[room.ID]; !used {
			free = append(free, room)
		}
	}

	habitual, err := s.Teachers.HabitualRoomIDsByName(teacherName)
	if err != nil {
		return nil, err
	}

	prioritized := intersectRooms(free, habitual)

	pool := free
	if len(prioritized) > 0 && subject != s.Policy.APSubject {
		pool = prioritized
	}

	tagged := make([]RoomInfo, 0, len(pool))
	rest := make([]RoomInfo, 0, len(pool))
	for _, room := range pool {
		if departmentMatches(subject, room.Description) {
			tagged = append(tagged, room)
		} else {
			rest = append(rest, room)
		}
	}

	// Tagged rooms first, the rest behind them; when nothing is
	// tagged for the subject the whole pool comes back untagged.
	if len(tagged) == 0 {
		return pool, nil
	}
	return append(tagged, rest...), nil
}

// ICT and Computing rooms are interchangeable: some rooms exist
// for computer science, others are bookable IT suites, and both
// serve either subject.
func departmentMatches(subject, description string) bool {
	if subject == "ICT" || subject == "Computing" {
		return description == "ICT" || description == "Computing"
	}
	return description == subject
}

func intersectRooms(rooms []RoomInfo, ids map[uuid.UUID]struct{}) []RoomInfo {
	out := make([]RoomInfo, 0, len(rooms))
	for _, room := range rooms {
		if _, ok := ids[room.ID]; ok {
			out = append(out, room)
		}
	}
	return out
}
