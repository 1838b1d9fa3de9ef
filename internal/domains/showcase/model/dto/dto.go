package dto

import "robles/internal/domains/showcase/model"

type ShowcaseImageResponse struct {
	ID        string `json:"id"`
	ImageURL  string `json:"image_url"`
	SortOrder int    `json:"sort_order"`
}

func (r *ShowcaseImageResponse) FromModel(m model.ShowcaseImage) {
	r.ID = m.ID
	r.ImageURL = m.ImageURL
	r.SortOrder = m.SortOrder
}

func ShowcaseImagesFromModels(models []model.ShowcaseImage) []ShowcaseImageResponse {
	images := make([]ShowcaseImageResponse, len(models))
	for i, m := range models {
		images[i].FromModel(m)
	}

	return images
}
