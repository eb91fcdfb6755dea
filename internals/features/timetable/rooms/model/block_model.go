package model

import (
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   BlockModel: maps to table blocks
   A building block on the school site. Rooms and subjects
   reference it loosely (SET NULL on delete).
   ======================================================= */

type BlockModel struct {
	BlockID     uuid.UUID `json:"block_id" gorm:"type:uuid;primaryKey;column:block_id;default:gen_random_uuid()"`
	BlockNumber int       `json:"block_number" gorm:"type:int;not null;default:0;column:block_number"`

	BlockCreatedAt time.Time `json:"block_created_at" gorm:"column:block_created_at;not null;autoCreateTime"`
	BlockUpdatedAt time.Time `json:"block_updated_at" gorm:"column:block_updated_at;not null;autoUpdateTime"`
}

func (BlockModel) TableName() string {
	return "blocks"
}
