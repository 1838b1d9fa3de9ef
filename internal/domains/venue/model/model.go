package model

import "github.com/jmoiron/sqlx/types"

const (
	TableName  = "venues"
	EntityName = "venue"

	IDPrefix    = "venue"
	IDHexLength = 12

	FieldID           = "id"
	FieldName         = "name"
	FieldDescription  = "description"
	FieldPricePerHour = "price_per_hour"
	FieldCapacity     = "capacity"
	FieldSize         = "size"
	FieldFeatures     = "features"
	FieldImage        = "image"
	FieldGallery      = "gallery"
)

const (
	ArrangementTableName  = "venue_capacity_arrangements"
	ArrangementEntityName = "venue_capacity_arrangement"

	ArrangementIDPrefix    = "arr"
	ArrangementIDHexLength = 12

	ArrangementFieldID           = "id"
	ArrangementFieldVenueID      = "venue_id"
	ArrangementFieldName         = "name"
	ArrangementFieldCapacity     = "capacity"
	ArrangementFieldLayoutType   = "layout_type"
	ArrangementFieldLayoutSchema = "layout_schema"
	ArrangementFieldSortOrder    = "sort_order"
)

type Venue struct {
	ID           string  `db:"id"`
	Name         string  `db:"name"`
	Description  *string `db:"description"`
	PricePerHour float64 `db:"price_per_hour"`
	Capacity     int     `db:"capacity"`
	Size         *int    `db:"size"`
	Features     *string `db:"features"`
	Image        *string `db:"image"`
	Gallery      *string `db:"gallery"`
}

// CapacityArrangement is the seated capacity of a venue for one layout
// (auditorium, boardroom, u-shape, ...). Rows belong to exactly one venue and
// are removed with it.
type CapacityArrangement struct {
	ID           string             `db:"id"`
	VenueID      string             `db:"venue_id"`
	Name         string             `db:"name"`
	Capacity     int                `db:"capacity"`
	LayoutType   *string            `db:"layout_type"`
	LayoutSchema types.NullJSONText `db:"layout_schema"`
	SortOrder    int                `db:"sort_order"`
}
