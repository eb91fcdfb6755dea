package model

import (
	"strings"
	"time"

	"github.com/google/uuid"

	roomModel "timetable_backend/internals/features/timetable/rooms/model"
	subjectModel "timetable_backend/internals/features/timetable/subjects/model"
	teacherModel "timetable_backend/internals/features/timetable/teachers/model"
	yearModel "timetable_backend/internals/features/timetable/years/model"
)

/* =======================================================
   Enums: weekday and unit
   ======================================================= */

type Weekday string

const (
	DayMon Weekday = "Mon"
	DayTue Weekday = "Tue"
	DayWed Weekday = "Wed"
	DayThu Weekday = "Thu"
	DayFri Weekday = "Fri"
)

var Weekdays = []Weekday{DayMon, DayTue, DayWed, DayThu, DayFri}

type Unit string

const (
	Unit1    Unit = "Unit1"
	Unit2    Unit = "Unit2"
	Unit3    Unit = "Unit3"
	Unit4    Unit = "Unit4"
	Unit5    Unit = "Unit5"
	UnitForm Unit = "Form"
)

var Units = []Unit{Unit1, Unit2, Unit3, Unit4, Unit5, UnitForm}

// ParseDay validates a weekday string from a request.
func ParseDay(s string) (Weekday, bool) {
	d := Weekday(strings.TrimSpace(s))
	for _, day := range Weekdays {
		if d == day {
			return d, true
		}
	}
	return "", false
}

// ParseUnit accepts a bare number ("2" → Unit2), a full unit
// name ("Unit2") or the literal "Form".
func ParseUnit(s string) (Unit, bool) {
	v := strings.TrimSpace(s)
	if v == "" {
		return "", false
	}
	if v >= "1" && v <= "5" && len(v) == 1 {
		v = "Unit" + v
	}
	u := Unit(v)
	for _, unit := range Units {
		if u == unit {
			return u, true
		}
	}
	return "", false
}

/* =======================================================
   TimeslotModel: maps to table timeslots
   The central fact table: one row = one scheduled lesson.
   The store does NOT guard double-booking; freeness is the
   suggestion services' concern at query time.
   ======================================================= */

type TimeslotModel struct {
	// PK
	TimeslotID uuid.UUID `json:"timeslot_id" gorm:"type:uuid;primaryKey;column:timeslot_id;default:gen_random_uuid()"`

	TimeslotDay  Weekday `json:"timeslot_day" gorm:"type:varchar(3);not null;index:idx_timeslots_day_unit;column:timeslot_day"`
	TimeslotUnit Unit    `json:"timeslot_unit" gorm:"type:varchar(6);not null;index:idx_timeslots_day_unit;column:timeslot_unit"`

	TimeslotTeacherID    uuid.UUID `json:"timeslot_teacher_id" gorm:"type:uuid;not null;index;column:timeslot_teacher_id"`
	TimeslotRoomID       uuid.UUID `json:"timeslot_room_id" gorm:"type:uuid;not null;index;column:timeslot_room_id"`
	TimeslotSubjectID    uuid.UUID `json:"timeslot_subject_id" gorm:"type:uuid;not null;index;column:timeslot_subject_id"`
	TimeslotClassGroupID uuid.UUID `json:"timeslot_class_group_id" gorm:"type:uuid;not null;index;column:timeslot_class_group_id"`

	// Relations declared so AutoMigrate emits the cascade FKs:
	// removing a teacher, room, subject or class removes its lessons.
	Teacher    *teacherModel.TeacherModel `json:"-" gorm:"foreignKey:TimeslotTeacherID;constraint:OnDelete:CASCADE"`
	Room       *roomModel.RoomModel       `json:"-" gorm:"foreignKey:TimeslotRoomID;constraint:OnDelete:CASCADE"`
	Subject    *subjectModel.SubjectModel `json:"-" gorm:"foreignKey:TimeslotSubjectID;constraint:OnDelete:CASCADE"`
	ClassGroup *yearModel.ClassGroupModel `json:"-" gorm:"foreignKey:TimeslotClassGroupID;constraint:OnDelete:CASCADE"`

	TimeslotCreatedAt time.Time `json:"timeslot_created_at" gorm:"column:timeslot_created_at;not null;autoCreateTime"`
	TimeslotUpdatedAt time.Time `json:"timeslot_updated_at" gorm:"column:timeslot_updated_at;not null;autoUpdateTime"`
}

func (TimeslotModel) TableName() string {
	return "timeslots"
}
