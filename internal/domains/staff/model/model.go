package model

import "time"

const (
	EntityName = "staff"
	TableName  = "staff"

	FieldID    = "id"
	FieldEmail = "email"
)

type Staff struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Password  string    `db:"password"`
	Role      string    `db:"role"`
	CreatedAt time.Time `db:"created_at"`
}
