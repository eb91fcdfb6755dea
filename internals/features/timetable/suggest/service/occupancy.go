package service

import (
	"github.com/google/uuid"

	timeslotModel "timetable_backend/internals/features/timetable/timeslots/model"
)

/* =======================================================
   Occupancy resolver
   Projects busy teacher/room ids out of the timeslot rows
   at one (day, unit). Read-only; empty sets when nothing
   is scheduled.
   ======================================================= */

type Occupancy struct {
	Slots ScheduleReader
}

func NewOccupancy(slots ScheduleReader) *Occupancy {
	return &Occupancy{Slots: slots}
}

func (o *Occupancy) BusyTeachers(day timeslotModel.Weekday, unit timeslotModel.Unit) (map[uuid.UUID]struct{}, error) {
	facts, err := o.Slots.SlotsAt(day, unit)
	if err != nil {
		return nil, err
	}
	busy := make(map[uuid.UUID]struct{}, len(facts))
	for _, f := range facts {
		busy[f.TeacherID] = struct{}{}
	}
	return busy, nil
}

func (o *Occupancy) BusyRooms(day timeslotModel.Weekday, unit timeslotModel.Unit) (map[uuid.UUID]struct{}, error) {
	facts, err := o.Slots.SlotsAt(day, unit)
	if err != nil {
		return nil, err
	}
	busy := make(map[uuid.UUID]struct{}, len(facts))
	for _, f := range facts {
		busy[f.RoomID] = struct{}{}
	}
	return busy, nil
}
