package service

import (
	timeslotModel "timetable_backend/internals/features/timetable/timeslots/model"
)

/* =======================================================
   Overview aggregator
   One read-only dashboard composition: free ICT/Computing
   rooms at the slot, plus the free competent teachers when
   a subject is supplied. No quota filter and no room
   affinity here; it is a quick glance, not a ranking.
   ======================================================= */

type OverviewResult struct {
	Rooms    []RoomInfo    `json:"rooms"`
	Teachers []TeacherInfo `json:"teachers"`
}

type Overview struct {
	Slots    ScheduleReader
	Rooms    RoomReader
	Teachers TeacherReader
}

func NewOverview(slots ScheduleReader, rooms RoomReader, teachers TeacherReader) *Overview {
	return &Overview{Slots: slots, Rooms: rooms, Teachers: teachers}
}

func (o *Overview) Snapshot(day timeslotModel.Weekday, unit timeslotModel.Unit, subject string) (*OverviewResult, error) {
	occupancy := NewOccupancy(o.Slots)

	busyRooms, err := occupancy.BusyRooms(day, unit)
	if err != nil {
		return nil, err
	}

	all, err := o.Rooms.AllRooms()
	if err != nil {
		return nil, err
	}

	freeICT := make([]RoomInfo, 0)
	for _, room := range all {
		if _, used := busyRooms[room.ID]; used {
			continue
		}
		if room.Description == "ICT" || room.Description == "Computing" {
			freeICT = append(freeICT, room)
		}
	}

	result := &OverviewResult{Rooms: freeICT, Teachers: []TeacherInfo{}}

	if subject != "" {
		busyTeachers, err := occupancy.BusyTeachers(day, unit)
		if err != nil {
			return nil, err
		}
		competent, err := o.Teachers.CompetentTeacherIDs(subject)
		if err != nil {
			return nil, err
		}
		teachers, err := o.Teachers.AllTeachers()
		if err != nil {
			return nil, err
		}
		for _, t := range teachers {
			if _, busy := busyTeachers[t.ID]; busy {
				continue
			}
			if _, ok := competent[t.ID]; ok {
				result.Teachers = append(result.Teachers, t)
			}
		}
	}

	return result, nil
}
