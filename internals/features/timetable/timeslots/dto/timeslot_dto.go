package dto

import (
	"github.com/google/uuid"
)

/* =======================================================
   Request DTOs
   Names come in from the frontend; the controller resolves
   them to ids server-side.
   ======================================================= */

type CreateTimeslotRequest struct {
	Day        string `json:"day" validate:"required,oneof=Mon Tue Wed Thu Fri"`
	Unit       string `json:"unit" validate:"required"`
	Teacher    string `json:"teacher" validate:"required"`
	Room       string `json:"room" validate:"required"`
	Subject    string `json:"subject" validate:"required"`
	ClassGroup string `json:"class_group" validate:"required"`
}

/* =======================================================
   Response DTO: names resolved, never raw ids
   ======================================================= */

type TimeslotResponse struct {
	ID         uuid.UUID `json:"id"`
	Day        string    `json:"day"`
	Unit       string    `json:"unit"`
	Teacher    string    `json:"teacher"`
	Room       string    `json:"room"`
	Subject    string    `json:"subject"`
	ClassGroup string    `json:"class_group"`
}
