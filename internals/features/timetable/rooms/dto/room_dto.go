package dto

import (
	"strings"

	"gorm.io/datatypes"

	"timetable_backend/internals/features/timetable/rooms/model"
)

/* =======================================================
   Request DTOs
   ======================================================= */

type CreateRoomRequest struct {
	RoomNumber      string         `json:"room_number" validate:"required,max=8"`
	RoomType        string         `json:"room_type" validate:"required,oneof=ClassRoom ComputerRoom"`
	RoomDescription *string        `json:"room_description,omitempty" validate:"omitempty,max=50"`
	RoomCapacity    int            `json:"room_capacity" validate:"gte=0"`
	RoomBlockID     *string        `json:"room_block_id,omitempty" validate:"omitempty,uuid4"`
	RoomFacilities  datatypes.JSON `json:"room_facilities,omitempty"`
}

func (r *CreateRoomRequest) Normalize() {
	r.RoomNumber = strings.TrimSpace(r.RoomNumber)
	if r.RoomDescription != nil {
		d := strings.TrimSpace(*r.RoomDescription)
		if d == "" {
			r.RoomDescription = nil
		} else {
			r.RoomDescription = &d
		}
	}
}

type UpdateRoomRequest struct {
	RoomNumber      *string         `json:"room_number,omitempty" validate:"omitempty,max=8"`
	RoomType        *string         `json:"room_type,omitempty" validate:"omitempty,oneof=ClassRoom ComputerRoom"`
	RoomDescription *string         `json:"room_description,omitempty" validate:"omitempty,max=50"`
	RoomCapacity    *int            `json:"room_capacity,omitempty" validate:"omitempty,gte=0"`
	RoomBlockID     *string         `json:"room_block_id,omitempty" validate:"omitempty,uuid4"`
	RoomFacilities  *datatypes.JSON `json:"room_facilities,omitempty"`
}

/* =======================================================
   Response DTO
   ======================================================= */

type RoomResponse struct {
	RoomID          string         `json:"room_id"`
	RoomNumber      string         `json:"room_number"`
	RoomType        string         `json:"room_type"`
	RoomDescription *string        `json:"room_description,omitempty"`
	RoomCapacity    int            `json:"room_capacity"`
	RoomBlockID     *string        `json:"room_block_id,omitempty"`
	RoomFacilities  datatypes.JSON `json:"room_facilities,omitempty"`
}

func ToRoomResponse(m model.RoomModel) RoomResponse {
	resp := RoomResponse{
		RoomID:          m.RoomID.String(),
		RoomNumber:      m.RoomNumber,
		RoomType:        string(m.RoomType),
		RoomDescription: m.RoomDescription,
		RoomCapacity:    m.RoomCapacity,
		RoomFacilities:  m.RoomFacilities,
	}
	if m.RoomBlockID != nil {
		id := m.RoomBlockID.String()
		resp.RoomBlockID = &id
	}
	return resp
}
