package model

import "time"

const (
	EntityName = "review"
	TableName  = "reviews"

	IDPrefix    = "review"
	IDHexLength = 12

	FieldID         = "id"
	FieldIsApproved = "is_approved"
	FieldCreatedAt  = "created_at"

	// Public listings clamp the requested page size to this range.
	MinLimit     = 1
	MaxLimit     = 100
	DefaultLimit = 50
)

type Review struct {
	ID         string    `db:"id"`
	GuestName  string    `db:"guest_name"`
	Rating     int       `db:"rating"`
	Comment    string    `db:"comment"`
	IsApproved bool      `db:"is_approved"`
	CreatedAt  time.Time `db:"created_at"`
}
