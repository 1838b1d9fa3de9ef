package model

const (
	EntityName = "dining_area"
	TableName  = "dining_areas"

	IDPrefix    = "da"
	IDHexLength = 8

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldImage       = "image"
	FieldSchedule    = "schedule"
	FieldFeatures    = "features"
)

type DiningArea struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
	Image       *string `db:"image"`
	Schedule    *string `db:"schedule"`
	Features    *string `db:"features"`
}
