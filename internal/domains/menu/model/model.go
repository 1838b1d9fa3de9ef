package model

const (
	EntityName = "menu_item"
	TableName  = "menu_items"

	IDPrefix    = "menu"
	IDHexLength = 8

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldCategory    = "category"
	FieldImage       = "image"
	FieldAvailable   = "available"
)

type MenuItem struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
	Price       float64 `db:"price"`
	Category    string  `db:"category"`
	Image       *string `db:"image"`
	Available   bool    `db:"available"`
}
