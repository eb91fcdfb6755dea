package dto

import (
	"strings"
	"time"

	"timetable_backend/internals/features/timetable/subjects/model"
)

/* =======================================================
   REQUESTS
   ======================================================= */

type CreateSubjectRequest struct {
	SubjectName  string `json:"subject_name" validate:"required,min=1,max=50"`
	SubjectYear  int    `json:"subject_year" validate:"required,min=1,max=13"`
	SubjectBlock *int   `json:"subject_block,omitempty" validate:"omitempty,min=0"`
	SubjectCount int    `json:"subject_count" validate:"min=0"`
}

func (r *CreateSubjectRequest) Normalize() {
	r.SubjectName = strings.TrimSpace(r.SubjectName)
}

type UpdateSubjectRequest struct {
	SubjectName  *string `json:"subject_name,omitempty" validate:"omitempty,min=1,max=50"`
	SubjectBlock *int    `json:"subject_block,omitempty" validate:"omitempty,min=0"`
	SubjectCount *int    `json:"subject_count,omitempty" validate:"omitempty,min=0"`
}

/* =======================================================
   RESPONSES
   ======================================================= */

type SubjectResponse struct {
	SubjectID        string    `json:"subject_id"`
	SubjectName      string    `json:"subject_name"`
	SubjectYearGroup string    `json:"subject_year_group"`
	SubjectBlock     *int      `json:"subject_block,omitempty"`
	SubjectCount     int       `json:"subject_count"`
	SubjectCreatedAt time.Time `json:"subject_created_at"`
}

func ToSubjectResponse(m model.SubjectModel, yearGroupName string, blockNumber *int) SubjectResponse {
	return SubjectResponse{
		SubjectID:        m.SubjectID.String(),
		SubjectName:      m.SubjectName,
		SubjectYearGroup: yearGroupName,
		SubjectBlock:     blockNumber,
		SubjectCount:     m.SubjectCount,
		SubjectCreatedAt: m.SubjectCreatedAt,
	}
}
