package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   TeacherModel: maps to table teachers
   Habitual rooms and subject competencies live in explicit
   join tables owned by this package; resolution happens in
   the repositories, never through lazy relations.
   ======================================================= */

type TeacherModel struct {
	// PK
	TeacherID uuid.UUID `json:"teacher_id" gorm:"type:uuid;primaryKey;column:teacher_id;default:gen_random_uuid()"`

	TeacherName string `json:"teacher_name" gorm:"type:varchar(50);not null;uniqueIndex;column:teacher_name"`

	// Weekly lesson quota; remaining = quota - assigned timeslots
	TeacherLessonsWeekly int `json:"teacher_lessons_weekly" gorm:"type:int;not null;default:0;column:teacher_lessons_weekly"`

	TeacherCreatedAt time.Time `json:"teacher_created_at" gorm:"column:teacher_created_at;not null;autoCreateTime"`
	TeacherUpdatedAt time.Time `json:"teacher_updated_at" gorm:"column:teacher_updated_at;not null;autoUpdateTime"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}

/* =======================================================
   Join tables
   ======================================================= */

// TeacherRoomModel: rooms a teacher habitually teaches in.
type TeacherRoomModel struct {
	TeacherRoomTeacherID uuid.UUID `json:"teacher_room_teacher_id" gorm:"type:uuid;primaryKey;column:teacher_room_teacher_id"`
	TeacherRoomRoomID    uuid.UUID `json:"teacher_room_room_id" gorm:"type:uuid;primaryKey;column:teacher_room_room_id"`
}

func (TeacherRoomModel) TableName() string {
	return "teacher_rooms"
}

// TeacherSubjectModel: subjects a teacher is competent to teach.
type TeacherSubjectModel struct {
	TeacherSubjectTeacherID uuid.UUID `json:"teacher_subject_teacher_id" gorm:"type:uuid;primaryKey;column:teacher_subject_teacher_id"`
	TeacherSubjectSubjectID uuid.UUID `json:"teacher_subject_subject_id" gorm:"type:uuid;primaryKey;column:teacher_subject_subject_id"`
}

func (TeacherSubjectModel) TableName() string {
	return "teacher_subjects"
}
