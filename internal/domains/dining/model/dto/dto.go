package dto

import (
	"strings"

	"robles/internal/domains/dining/model"
	"robles/shared"
)

type CreateDiningAreaRequest struct {
	ID          string  `json:"id"`
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	Schedule    *string `json:"schedule"`
	Features    *string `json:"features"`
}

func (c *CreateDiningAreaRequest) ToModel() model.DiningArea {
	id := strings.TrimSpace(c.ID)
	if id == "" {
		id = shared.NewID(model.IDPrefix, model.IDHexLength)
	}

	return model.DiningArea{
		ID:          id,
		Name:        c.Name,
		Description: c.Description,
		Schedule:    c.Schedule,
		Features:    c.Features,
	}
}

type UpdateDiningAreaRequest struct {
	Name        *string `db:"name"        json:"name"`
	Description *string `db:"description" json:"description"`
	Schedule    *string `db:"schedule"    json:"schedule"`
	Features    *string `db:"features"    json:"features"`
}

type DiningAreaResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	Schedule    *string `json:"schedule"`
	Features    *string `json:"features"`
}

func (r *DiningAreaResponse) FromModel(m model.DiningArea) {
	r.ID = m.ID
	r.Name = m.Name
	r.Description = m.Description
	r.Image = m.Image
	r.Schedule = m.Schedule
	r.Features = m.Features
}

func DiningAreasFromModels(models []model.DiningArea) []DiningAreaResponse {
	areas := make([]DiningAreaResponse, len(models))
	for i, m := range models {
		areas[i].FromModel(m)
	}

	return areas
}
