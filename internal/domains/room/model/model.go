package model

import "robles/shared/constant"

const (
	TableName  = "rooms"
	EntityName = "room"

	IDPrefix    = "room"
	IDHexLength = 12

	FieldID            = "id"
	FieldNumber        = "number"
	FieldFloor         = "floor"
	FieldType          = "type"
	FieldStatus        = "status"
	FieldPricePerNight = "price_per_night"
	FieldCapacity      = "capacity"
	FieldAmenities     = "amenities"
	FieldImage         = "image"
	FieldGallery       = "gallery"

	DefaultType = "standard"
)

type Room struct {
	ID            string  `db:"id"`
	Number        string  `db:"number"`
	Floor         int     `db:"floor"`
	Type          string  `db:"type"`
	Status        string  `db:"status"`
	PricePerNight float64 `db:"price_per_night"`
	Capacity      int     `db:"capacity"`
	Amenities     *string `db:"amenities"`
	Image         *string `db:"image"`
	Gallery       *string `db:"gallery"`
}

func ValidStatus(status string) bool {
	switch status {
	case constant.RoomStatusAvailable,
		constant.RoomStatusOccupied,
		constant.RoomStatusMaintenance,
		constant.RoomStatusCleaning:
		return true
	default:
		return false
	}
}

