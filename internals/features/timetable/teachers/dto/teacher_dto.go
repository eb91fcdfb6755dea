package dto

import (
	"strings"

	"timetable_backend/internals/features/timetable/teachers/model"
)

/* =======================================================
   Request DTOs
   Habitual rooms and competencies travel as id lists; the
   controller rewrites the join tables from them.
   ======================================================= */

type CreateTeacherRequest struct {
	TeacherName          string   `json:"teacher_name" validate:"required,max=50"`
	TeacherLessonsWeekly int      `json:"teacher_lessons_weekly" validate:"gte=0"`
	RoomIDs              []string `json:"room_ids,omitempty" validate:"omitempty,dive,uuid4"`
	SubjectIDs           []string `json:"subject_ids,omitempty" validate:"omitempty,dive,uuid4"`
}

func (r *CreateTeacherRequest) Normalize() {
	r.TeacherName = strings.TrimSpace(r.TeacherName)
}

type UpdateTeacherRequest struct {
	TeacherName          *string   `json:"teacher_name,omitempty" validate:"omitempty,max=50"`
	TeacherLessonsWeekly *int      `json:"teacher_lessons_weekly,omitempty" validate:"omitempty,gte=0"`
	RoomIDs              *[]string `json:"room_ids,omitempty" validate:"omitempty,dive,uuid4"`
	SubjectIDs           *[]string `json:"subject_ids,omitempty" validate:"omitempty,dive,uuid4"`
}

/* =======================================================
   Response DTO
   ======================================================= */

type TeacherResponse struct {
	TeacherID            string   `json:"teacher_id"`
	TeacherName          string   `json:"teacher_name"`
	TeacherLessonsWeekly int      `json:"teacher_lessons_weekly"`
	RoomNumbers          []string `json:"room_numbers"`
	SubjectNames         []string `json:"subject_names"`
}

func ToTeacherResponse(m model.TeacherModel, roomNumbers, subjectNames []string) TeacherResponse {
	if roomNumbers == nil {
		roomNumbers = []string{}
	}
	if subjectNames == nil {
		subjectNames = []string{}
	}
	return TeacherResponse{
		TeacherID:            m.TeacherID.String(),
		TeacherName:          m.TeacherName,
		TeacherLessonsWeekly: m.TeacherLessonsWeekly,
		RoomNumbers:          roomNumbers,
		SubjectNames:         subjectNames,
	}
}
