package service

import (
	"sort"
	"strings"

	"timetable_backend/internals/configs"
	timeslotModel "timetable_backend/internals/features/timetable/timeslots/model"
	yearModel "timetable_backend/internals/features/timetable/years/model"
)

/* =======================================================
   Subject suggestion engine
   Lockstep ("blocked") subjects short-circuit: once one is
   on the grid for a year-half at a slot, every parallel
   class must take the same subject there. Otherwise rank
   the class's subjects by deficit.
   ======================================================= */

type RankedSubject struct {
	SubjectInfo
	// How many more weekly lessons the class still needs.
	Deficit int `json:"deficit"`
}

// Suggestion is either a single forced lockstep subject or a
// ranked deficit list, never both.
type Suggestion struct {
	Blocked *SubjectInfo    `json:"blocked,omitempty"`
	Ranked  []RankedSubject `json:"ranked,omitempty"`
}

type SubjectEngine struct {
	Slots    ScheduleReader
	Subjects SubjectReader
	Policy   configs.SuggestionPolicy
}

func NewSubjectEngine(slots ScheduleReader, subjects SubjectReader, policy configs.SuggestionPolicy) *SubjectEngine {
	return &SubjectEngine{Slots: slots, Subjects: subjects, Policy: policy}
}

func (e *SubjectEngine) Suggest(yearGroupName string, day timeslotModel.Weekday, unit timeslotModel.Unit, classCode string) (*Suggestion, error) {
	yearSubjects, err := e.Subjects.SubjectsOfYearGroup(yearGroupName)
	if err != nil {
		return nil, err
	}

	half := yearModel.YearHalf(classCode)
	halfSlots, err := e.halfSlotsAt(day, unit, half)
	if err != nil {
		return nil, err
	}

	// Sub-algorithm A: lockstep detection over the year-half.
	for _, fact := range halfSlots {
		if !e.Policy.IsLockstep(fact.SubjectName) {
			continue
		}
		blocked := findSubjectByName(yearSubjects, fact.SubjectName)
		if blocked == nil {
			return nil, ErrNotFound
		}
		return &Suggestion{Blocked: blocked}, nil
	}

	// Once a non-lockstep subject sits in this half at this slot,
	// the class cannot pick up a group subject mid-stream.
	excludeLockstep := false
	for _, fact := range halfSlots {
		if !e.Policy.IsLockstep(fact.SubjectName) {
			excludeLockstep = true
			break
		}
	}

	// Sub-algorithm B: deficit ranking.
	ranked := make([]RankedSubject, 0, len(yearSubjects))
	for _, subj := range yearSubjects {
		if excludeLockstep && e.Policy.IsLockstep(subj.Name) {
			continue
		}
		scheduled, err := e.Slots.CountForClassSubject(classCode, subj.Name)
		if err != nil {
			return nil, err
		}
		deficit := subj.Count - scheduled
		if deficit == 0 {
			continue
		}
		ranked = append(ranked, RankedSubject{SubjectInfo: subj, Deficit: deficit})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Deficit != ranked[j].Deficit {
			return ranked[i].Deficit > ranked[j].Deficit
		}
		if ranked[i].Name != ranked[j].Name {
			return ranked[i].Name < ranked[j].Name
		}
		return ranked[i].ID.String() < ranked[j].ID.String()
	})

	return &Suggestion{Ranked: ranked}, nil
}

func (e *SubjectEngine) halfSlotsAt(day timeslotModel.Weekday, unit timeslotModel.Unit, half string) ([]SlotFact, error) {
	facts, err := e.Slots.SlotsAt(day, unit)
	if err != nil {
		return nil, err
	}
	out := facts[:0]
	for _, f := range facts {
		if strings.HasPrefix(f.ClassCode, half) {
			out = append(out, f)
		}
	}
	return out, nil
}

func findSubjectByName(subjects []SubjectInfo, name string) *SubjectInfo {
	for i := range subjects {
		if subjects[i].Name == name {
			return &subjects[i]
		}
	}
	return nil
}
