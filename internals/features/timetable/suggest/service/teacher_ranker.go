package service

import (
	"sort"

	timeslotModel "timetable_backend/internals/features/timetable/timeslots/model"
)

/* =======================================================
   Free-teacher ranker
   all minus busy, compute remaining quota, drop exhausted,
   sort by deficit, intersect with subject competency.
   ======================================================= */

type RankedTeacher struct {
	TeacherInfo
	// Remaining weekly lessons: quota minus everything already assigned.
	Remaining int `json:"remaining"`
	// Rooms the teacher habitually teaches in.
	RoomNumbers []string `json:"room_numbers"`
}

type TeacherRanker struct {
	Slots    ScheduleReader
	Teachers TeacherReader
}

func NewTeacherRanker(slots ScheduleReader, teachers TeacherReader) *TeacherRanker {
	return &TeacherRanker{Slots: slots, Teachers: teachers}
}

// Rank returns the free teachers competent in the subject at
// (day, unit), most-remaining-hours first. Equal remaining
// breaks ties on name, then id, so the order is deterministic.
func (r *TeacherRanker) Rank(subject string, day timeslotModel.Weekday, unit timeslotModel.Unit) ([]RankedTeacher, error) {
	busy, err := NewOccupancy(r.Slots).BusyTeachers(day, unit)
	if err != nil {
		return nil, err
	}

	all, err := r.Teachers.AllTeachers()
	if err != nil {
		return nil, err
	}

	ranked := make([]RankedTeacher, 0, len(all))
	for _, t := range all {
		if _, taken := busy[t.ID]; taken {
			continue
		}
		assigned, err := r.Slots.CountForTeacher(t.ID)
		if err != nil {
			return nil, err
		}
		remaining := t.LessonsWeekly - assigned
		if remaining == 0 {
			continue
		}
		ranked = append(ranked, RankedTeacher{TeacherInfo: t, Remaining: remaining})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Remaining != ranked[j].Remaining {
			return ranked[i].Remaining > ranked[j].Remaining
		}
		if ranked[i].Name != ranked[j].Name {
			return ranked[i].Name < ranked[j].Name
		}
		return ranked[i].ID.String() < ranked[j].ID.String()
	})

	competent, err := r.Teachers.CompetentTeacherIDs(subject)
	if err != nil {
		return nil, err
	}

	out := ranked[:0]
	for _, t := range ranked {
		if _, ok := competent[t.ID]; !ok {
			continue
		}
		rooms, err := r.Teachers.HabitualRoomNumbers(t.ID)
		if err != nil {
			return nil, err
		}
		t.RoomNumbers = rooms
		out = append(out, t)
	}
	return out, nil
}
