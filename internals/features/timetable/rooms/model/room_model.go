package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =======================================================
   Enum room type
   ======================================================= */

type RoomType string

const (
	RoomTypeClassRoom    RoomType = "ClassRoom"
	RoomTypeComputerRoom RoomType = "ComputerRoom"
)

// Department tags a room can carry. The tag drives the
// subject-to-room affinity in the room selector; ICT and
// Computing are treated as interchangeable there.
var RoomDescriptions = []string{
	"Science", "Computing", "Food", "Art", "Construction",
	"English", "Hums", "ICT", "P16", "Maths", "PE", "BSt",
	"MFL", "Music", "Sp Hall", "Nurture", "Dr St", "Da St",
}

/* =======================================================
   RoomModel: maps to table rooms
   ======================================================= */

type RoomModel struct {
	// PK
	RoomID uuid.UUID `json:"room_id" gorm:"type:uuid;primaryKey;column:room_id;default:gen_random_uuid()"`

	// Short code painted on the door, e.g. "C12"
	RoomNumber string `json:"room_number" gorm:"type:varchar(8);not null;uniqueIndex;column:room_number"`

	RoomType RoomType `json:"room_type" gorm:"type:varchar(16);not null;column:room_type"`

	// Department tag (nullable)
	RoomDescription *string `json:"room_description,omitempty" gorm:"type:varchar(50);column:room_description"`

	// Pupil capacity, never negative
	RoomCapacity int `json:"room_capacity" gorm:"type:int;not null;default:0;check:room_capacity >= 0;column:room_capacity"`

	// Owning block (nullable)
	RoomBlockID *uuid.UUID  `json:"room_block_id,omitempty" gorm:"type:uuid;column:room_block_id"`
	Block       *BlockModel `json:"block,omitempty" gorm:"foreignKey:RoomBlockID;constraint:OnDelete:SET NULL"`

	// Free-form facility list, e.g. ["projector","gas taps"]
	RoomFacilities datatypes.JSON `json:"room_facilities,omitempty" gorm:"type:jsonb;column:room_facilities"`

	RoomCreatedAt time.Time `json:"room_created_at" gorm:"column:room_created_at;not null;autoCreateTime"`
	RoomUpdatedAt time.Time `json:"room_updated_at" gorm:"column:room_updated_at;not null;autoUpdateTime"`
}

func (RoomModel) TableName() string {
	return "rooms"
}
