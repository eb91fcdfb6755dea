package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   SubjectModel: maps to table subjects
   (subject_name, subject_year_group_id) is unique in
   practice; lookups by name within a year group rely on it.
   ======================================================= */

type SubjectModel struct {
	// PK
	SubjectID uuid.UUID `json:"subject_id" gorm:"type:uuid;primaryKey;column:subject_id;default:gen_random_uuid()"`

	SubjectName string `json:"subject_name" gorm:"type:varchar(50);not null;index;column:subject_name"`

	// Owning year group
	SubjectYearGroupID uuid.UUID `json:"subject_year_group_id" gorm:"type:uuid;not null;index;column:subject_year_group_id"`

	// Optional block grouping (SET NULL on block delete)
	SubjectBlockID *uuid.UUID `json:"subject_block_id,omitempty" gorm:"type:uuid;column:subject_block_id"`

	// Required weekly lesson count; deficit = count - scheduled
	SubjectCount int `json:"subject_count" gorm:"type:int;not null;default:0;column:subject_count"`

	SubjectCreatedAt time.Time `json:"subject_created_at" gorm:"column:subject_created_at;not null;autoCreateTime"`
	SubjectUpdatedAt time.Time `json:"subject_updated_at" gorm:"column:subject_updated_at;not null;autoUpdateTime"`
}

func (SubjectModel) TableName() string {
	return "subjects"
}
