package dto

import (
	"strings"

	"robles/internal/domains/room/model"
	"robles/shared"
	"robles/shared/constant"
)

type CreateRoomRequest struct {
	Number        string   `json:"number" validate:"required"`
	Floor         *int     `json:"floor"`
	Type          *string  `json:"type"`
	Status        *string  `json:"status"`
	PricePerNight *float64 `json:"price_per_night"`
	Capacity      *int     `json:"capacity"`
	Amenities     *string  `json:"amenities"`
}

// ToModel applies the creation defaults: floor 1, type standard, capacity at
// least 1, price clamped to zero, and any unknown status coerced to
// available.
func (c *CreateRoomRequest) ToModel() model.Room {
	floor := 1
	if c.Floor != nil {
		floor = *c.Floor
	}

	if floor < 0 {
		floor = 0
	}

	roomType := model.DefaultType
	if c.Type != nil {
		if trimmed := strings.ToLower(strings.TrimSpace(*c.Type)); trimmed != "" {
			roomType = trimmed
		}
	}

	status := constant.RoomStatusAvailable
	if c.Status != nil {
		if s := strings.ToLower(strings.TrimSpace(*c.Status)); model.ValidStatus(s) {
			status = s
		}
	}

	price := 0.0
	if c.PricePerNight != nil && *c.PricePerNight > 0 {
		price = *c.PricePerNight
	}

	capacity := 1
	if c.Capacity != nil && *c.Capacity > 1 {
		capacity = *c.Capacity
	}

	var amenities *string

	if c.Amenities != nil {
		if trimmed := strings.TrimSpace(*c.Amenities); trimmed != "" {
			amenities = &trimmed
		}
	}

	return model.Room{
		ID:            shared.NewID(model.IDPrefix, model.IDHexLength),
		Number:        strings.TrimSpace(c.Number),
		Floor:         floor,
		Type:          roomType,
		Status:        status,
		PricePerNight: price,
		Capacity:      capacity,
		Amenities:     amenities,
	}
}

type UpdateRoomRequest struct {
	Number        *string  `db:"number"          json:"number"`
	Floor         *int     `db:"floor"           json:"floor"`
	Type          *string  `db:"type"            json:"type"`
	Status        *string  `db:"status"          json:"status"`
	PricePerNight *float64 `db:"price_per_night" json:"price_per_night"`
	Capacity      *int     `db:"capacity"        json:"capacity"`
	Amenities     *string  `db:"amenities"       json:"amenities"`
}

type UpdateRoomStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type RoomResponse struct {
	ID            string  `json:"id"`
	Number        string  `json:"number"`
	Floor         int     `json:"floor"`
	Type          string  `json:"type"`
	Status        string  `json:"status"`
	PricePerNight float64 `json:"price_per_night"`
	Capacity      int     `json:"capacity"`
	Amenities     *string `json:"amenities"`
	Image         *string `json:"image"`
	Gallery       *string `json:"gallery"`
}

func (r *RoomResponse) FromModel(m model.Room) {
	r.ID = m.ID
	r.Number = m.Number
	r.Floor = m.Floor
	r.Type = m.Type
	r.Status = m.Status
	r.PricePerNight = m.PricePerNight
	r.Capacity = m.Capacity
	r.Amenities = m.Amenities
	r.Image = m.Image
	r.Gallery = m.Gallery
}

func RoomsFromModels(models []model.Room) []RoomResponse {
	rooms := make([]RoomResponse, len(models))
	for i, m := range models {
		rooms[i].FromModel(m)
	}

	return rooms
}
