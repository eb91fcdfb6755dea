package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   YearGroupModel: maps to table year_groups
   ======================================================= */

type YearGroupModel struct {
	// PK
	YearGroupID uuid.UUID `json:"year_group_id" gorm:"type:uuid;primaryKey;column:year_group_id;default:gen_random_uuid()"`

	// e.g. "Yr7"
	YearGroupName string `json:"year_group_name" gorm:"type:varchar(4);not null;uniqueIndex;column:year_group_name"`

	YearGroupCreatedAt time.Time `json:"year_group_created_at" gorm:"column:year_group_created_at;not null;autoCreateTime"`
	YearGroupUpdatedAt time.Time `json:"year_group_updated_at" gorm:"column:year_group_updated_at;not null;autoUpdateTime"`
}

func (YearGroupModel) TableName() string {
	return "year_groups"
}

// YearGroupNameFor builds the canonical name from a year number: 7 → "Yr7".
func YearGroupNameFor(year int) string {
	return fmt.Sprintf("Yr%d", year)
}

/* =======================================================
   Join table
   ======================================================= */

// YearGroupClassModel: classes that belong to a year group.
type YearGroupClassModel struct {
	YearGroupClassYearGroupID  uuid.UUID `json:"year_group_class_year_group_id" gorm:"type:uuid;primaryKey;column:year_group_class_year_group_id"`
	YearGroupClassClassGroupID uuid.UUID `json:"year_group_class_class_group_id" gorm:"type:uuid;primaryKey;column:year_group_class_class_group_id"`
}

func (YearGroupClassModel) TableName() string {
	return "year_group_classes"
}
