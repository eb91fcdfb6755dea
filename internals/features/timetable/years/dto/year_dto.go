package dto

import (
	"strings"

	timeslotDTO "timetable_backend/internals/features/timetable/timeslots/dto"
	"timetable_backend/internals/features/timetable/years/model"
)

/* =======================================================
   Request DTOs
   ======================================================= */

type CreateYearGroupRequest struct {
	Year int `json:"year" validate:"required,min=1,max=13"`
}

type CreateClassGroupRequest struct {
	ClassGroupCode      string   `json:"class_group_code" validate:"required,min=2,max=10"`
	ClassGroupNumPupils int      `json:"class_group_num_pupils" validate:"min=0"`
	SubjectIDs          []string `json:"subject_ids" validate:"omitempty,dive,uuid4"`
}

func (r *CreateClassGroupRequest) Normalize() {
	r.ClassGroupCode = strings.TrimSpace(r.ClassGroupCode)
}

type UpdateClassGroupRequest struct {
	ClassGroupCode      *string   `json:"class_group_code,omitempty" validate:"omitempty,min=2,max=10"`
	ClassGroupNumPupils *int      `json:"class_group_num_pupils,omitempty" validate:"omitempty,min=0"`
	SubjectIDs          *[]string `json:"subject_ids,omitempty" validate:"omitempty,dive,uuid4"`
}

/* =======================================================
   Response DTOs
   ======================================================= */

type ClassGroupResponse struct {
	ClassGroupID        string   `json:"class_group_id"`
	ClassGroupCode      string   `json:"class_group_code"`
	ClassGroupNumPupils int      `json:"class_group_num_pupils"`
	SubjectNames        []string `json:"subject_names"`
}

func ToClassGroupResponse(m model.ClassGroupModel, subjectNames []string) ClassGroupResponse {
	if subjectNames == nil {
		subjectNames = []string{}
	}
	return ClassGroupResponse{
		ClassGroupID:        m.ClassGroupID.String(),
		ClassGroupCode:      m.ClassGroupCode,
		ClassGroupNumPupils: m.ClassGroupNumPupils,
		SubjectNames:        subjectNames,
	}
}

// YearDetailResponse is the full picture of one year group: its
// classes and every lesson currently on the grid for them.
type YearDetailResponse struct {
	YearGroupName string                         `json:"year_group_name"`
	Classes       []ClassGroupResponse           `json:"classes"`
	Timeslots     []timeslotDTO.TimeslotResponse `json:"timeslots"`
}
