package dto

import (
	"strings"

	"robles/internal/domains/menu/model"
	"robles/shared"
)

type CreateMenuItemRequest struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"     validate:"required"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category" validate:"required"`
	Image       *string `json:"image"`
	Available   *bool   `json:"available"`
}

func (c *CreateMenuItemRequest) ToModel() model.MenuItem {
	id := strings.TrimSpace(c.ID)
	if id == "" {
		id = shared.NewID(model.IDPrefix, model.IDHexLength)
	}

	available := true
	if c.Available != nil {
		available = *c.Available
	}

	return model.MenuItem{
		ID:          id,
		Name:        c.Name,
		Description: c.Description,
		Price:       c.Price,
		Category:    c.Category,
		Image:       c.Image,
		Available:   available,
	}
}

type UpdateMenuItemRequest struct {
	Name        *string  `db:"name"        json:"name"`
	Description *string  `db:"description" json:"description"`
	Price       *float64 `db:"price"       json:"price"`
	Category    *string  `db:"category"    json:"category"`
	Image       *string  `db:"image"       json:"image"`
	Available   *bool    `db:"available"   json:"available"`
}

type MenuItemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       *string `json:"image"`
	Available   bool    `json:"available"`
}

func (r *MenuItemResponse) FromModel(m model.MenuItem) {
	r.ID = m.ID
	r.Name = m.Name
	r.Description = m.Description
	r.Price = m.Price
	r.Category = m.Category
	r.Image = m.Image
	r.Available = m.Available
}

func MenuItemsFromModels(models []model.MenuItem) []MenuItemResponse {
	items := make([]MenuItemResponse, len(models))
	for i, m := range models {
		items[i].FromModel(m)
	}

	return items
}
