package model

import "time"

const (
	EntityName = "contact_message"
	TableName  = "contact_messages"

	IDPrefix    = "contact"
	IDHexLength = 12

	FieldID        = "id"
	FieldCreatedAt = "created_at"
)

type ContactMessage struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Whatsapp  string    `db:"whatsapp"`
	Subject   string    `db:"subject"`
	Message   string    `db:"message"`
	CreatedAt time.Time `db:"created_at"`
}
