package model

import (
	"time"

	"robles/shared/constant"
)

const (
	EntityName = "web_booking"
	TableName  = "web_bookings"

	IDPrefix    = "wb"
	IDHexLength = 12

	FieldID         = "id"
	FieldStatus     = "status"
	FieldTotalPrice = "total_price"
	FieldCreatedAt  = "created_at"
)

type WebBooking struct {
	ID         string    `db:"id"`
	GuestName  string    `db:"guest_name"`
	Email      string    `db:"email"`
	Phone      *string   `db:"phone"`
	Type       string    `db:"type"`
	ItemID     string    `db:"item_id"`
	ItemName   string    `db:"item_name"`
	CheckIn    string    `db:"check_in"`
	CheckOut   string    `db:"check_out"`
	Guests     int       `db:"guests"`
	TotalPrice float64   `db:"total_price"`
	Status     string    `db:"status"`
	CreatedAt  time.Time `db:"created_at"`
}

func ValidStatus(status string) bool {
	switch status {
	case constant.BookingStatusConfirmed,
		constant.BookingStatusCancelled,
		constant.BookingStatusCheckedIn,
		constant.BookingStatusCheckedOut:
		return true
	default:
		return false
	}
}
