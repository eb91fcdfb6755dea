package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   ClassGroupModel: maps to table class_groups
   The class code encodes the year-half: "7B2" belongs to
   half "7B", parallel with "7B1".
   ======================================================= */

type ClassGroupModel struct {
	// PK
	ClassGroupID uuid.UUID `json:"class_group_id" gorm:"type:uuid;primaryKey;column:class_group_id;default:gen_random_uuid()"`

	ClassGroupCode      string `json:"class_group_code" gorm:"type:varchar(10);not null;uniqueIndex;column:class_group_code"`
	ClassGroupNumPupils int    `json:"class_group_num_pupils" gorm:"type:int;not null;default:0;column:class_group_num_pupils"`

	ClassGroupCreatedAt time.Time `json:"class_group_created_at" gorm:"column:class_group_created_at;not null;autoCreateTime"`
	ClassGroupUpdatedAt time.Time `json:"class_group_updated_at" gorm:"column:class_group_updated_at;not null;autoUpdateTime"`
}

func (ClassGroupModel) TableName() string {
	return "class_groups"
}

// YearHalf extracts the half prefix from a class code: "7B2" → "7B".
// Codes shorter than two runes come back unchanged.
func YearHalf(classCode string) string {
	code := strings.TrimSpace(classCode)
	if len(code) < 2 {
		return code
	}
	return code[:2]
}

/* =======================================================
   Join table
   ======================================================= */

// ClassGroupSubjectModel: subjects a class takes.
type ClassGroupSubjectModel struct {
	ClassGroupSubjectClassGroupID uuid.UUID `json:"class_group_subject_class_group_id" gorm:"type:uuid;primaryKey;column:class_group_subject_class_group_id"`
	ClassGroupSubjectSubjectID    uuid.UUID `json:"class_group_subject_subject_id" gorm:"type:uuid;primaryKey;column:class_group_subject_subject_id"`
}

func (ClassGroupSubjectModel) TableName() string {
	return "class_group_subjects"
}
