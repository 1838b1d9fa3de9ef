package dto

import (
	"encoding/json"
	"strings"

	"robles/internal/domains/venue/model"
	"robles/shared"

	"github.com/jmoiron/sqlx/types"
)

type CreateVenueRequest struct {
	Name         string   `json:"name" validate:"required"`
	Description  *string  `json:"description"`
	PricePerHour *float64 `json:"price_per_hour"`
	Capacity     *int     `json:"capacity"`
	Size         *int     `json:"size"`
	Features     *string  `json:"features"`
}

func (c *CreateVenueRequest) ToModel() model.Venue {
	price := 0.0
	if c.PricePerHour != nil {
		price = *c.PricePerHour
	}

	capacity := 0
	if c.Capacity != nil {
		capacity = *c.Capacity
	}

	var description, features *string

	if c.Description != nil {
		if trimmed := strings.TrimSpace(*c.Description); trimmed != "" {
			description = &trimmed
		}
	}

	if c.Features != nil {
		if trimmed := strings.TrimSpace(*c.Features); trimmed != "" {
			features = &trimmed
		}
	}

	return model.Venue{
		ID:           shared.NewID(model.IDPrefix, model.IDHexLength),
		Name:         strings.TrimSpace(c.Name),
		Description:  description,
		PricePerHour: price,
		Capacity:     capacity,
		Size:         c.Size,
		Features:     features,
	}
}

type UpdateVenueRequest struct {
	Name         *string  `db:"name"           json:"name"`
	Description  *string  `db:"description"    json:"description"`
	PricePerHour *float64 `db:"price_per_hour" json:"price_per_hour"`
	Capacity     *int     `db:"capacity"       json:"capacity"`
	Size         *int     `db:"size"           json:"size"`
	Features     *string  `db:"features"       json:"features"`
}

type VenueResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	PricePerHour float64 `json:"price_per_hour"`
	Capacity     int     `json:"capacity"`
	Size         *int    `json:"size"`
	Features     *string `json:"features"`
	Image        *string `json:"image"`
	Gallery      *string `json:"gallery"`
}

func (r *VenueResponse) FromModel(m model.Venue) {
	r.ID = m.ID
	r.Name = m.Name
	r.Description = m.Description
	r.PricePerHour = m.PricePerHour
	r.Capacity = m.Capacity
	r.Size = m.Size
	r.Features = m.Features
	r.Image = m.Image
	r.Gallery = m.Gallery
}

func VenuesFromModels(models []model.Venue) []VenueResponse {
	venues := make([]VenueResponse, len(models))
	for i, m := range models {
		venues[i].FromModel(m)
	}

	return venues
}

type CreateArrangementRequest struct {
	Name         string          `json:"name" validate:"required"`
	Capacity     int             `json:"capacity"`
	LayoutType   *string         `json:"layout_type"`
	LayoutSchema json.RawMessage `json:"layout_schema"`
	SortOrder    *int            `json:"sort_order"`
}

func (c *CreateArrangementRequest) ToModel(venueID string) model.CapacityArrangement {
	sortOrder := 0
	if c.SortOrder != nil {
		sortOrder = *c.SortOrder
	}

	return model.CapacityArrangement{
		ID:           shared.NewID(model.ArrangementIDPrefix, model.ArrangementIDHexLength),
		VenueID:      venueID,
		Name:         c.Name,
		Capacity:     c.Capacity,
		LayoutType:   c.LayoutType,
		LayoutSchema: NullJSON(c.LayoutSchema),
		SortOrder:    sortOrder,
	}
}

type UpdateArrangementRequest struct {
	Name         *string         `json:"name"`
	Capacity     *int            `json:"capacity"`
	LayoutType   *string         `json:"layout_type"`
	LayoutSchema json.RawMessage `json:"layout_schema"`
	SortOrder    *int            `json:"sort_order"`
}

type ArrangementResponse struct {
	ID           string          `json:"id"`
	VenueID      string          `json:"venue_id"`
	Name         string          `json:"name"`
	Capacity     int             `json:"capacity"`
	LayoutType   *string         `json:"layout_type"`
	LayoutSchema json.RawMessage `json:"layout_schema"`
	SortOrder    int             `json:"sort_order"`
}

func (r *ArrangementResponse) FromModel(m model.CapacityArrangement) {
	r.ID = m.ID
	r.VenueID = m.VenueID
	r.Name = m.Name
	r.Capacity = m.Capacity
	r.LayoutType = m.LayoutType
	r.SortOrder = m.SortOrder

	if m.LayoutSchema.Valid {
		r.LayoutSchema = json.RawMessage(m.LayoutSchema.JSONText)
	}
}

func ArrangementsFromModels(models []model.CapacityArrangement) []ArrangementResponse {
	arrangements := make([]ArrangementResponse, len(models))
	for i, m := range models {
		arrangements[i].FromModel(m)
	}

	return arrangements
}

// NullJSON treats an absent or JSON-null schema as no value.
func NullJSON(raw json.RawMessage) types.NullJSONText {
	if len(raw) == 0 || string(raw) == "null" {
		return types.NullJSONText{}
	}

	return types.NullJSONText{JSONText: types.JSONText(raw), Valid: true}
}
