package dto

import (
	"strings"
	"time"

	"robles/internal/domains/review/model"
	"robles/shared"
	"robles/shared/constant"
	"robles/shared/timezone"
)

type CreateReviewRequest struct {
	GuestName string `json:"guest_name"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// ToModel normalizes the submitted review. Ratings outside [1, 5] are
// clamped and new reviews always await moderation.
func (c *CreateReviewRequest) ToModel() model.Review {
	rating := c.Rating
	if rating < 1 {
		rating = 1
	}

	if rating > 5 {
		rating = 5
	}

	return model.Review{
		ID:         shared.NewID(model.IDPrefix, model.IDHexLength),
		GuestName:  strings.TrimSpace(c.GuestName),
		Rating:     rating,
		Comment:    strings.TrimSpace(c.Comment),
		IsApproved: false,
		CreatedAt:  time.Now(),
	}
}

type UpdateReviewRequest struct {
	IsApproved *bool `json:"is_approved"`
}

type ReviewResponse struct {
	ID         string `json:"id"`
	GuestName  string `json:"guest_name"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	IsApproved bool   `json:"is_approved"`
	CreatedAt  string `json:"created_at"`
}

func (r *ReviewResponse) FromModel(m model.Review) {
	r.ID = m.ID
	r.GuestName = m.GuestName
	r.Rating = m.Rating
	r.Comment = m.Comment
	r.IsApproved = m.IsApproved
	r.CreatedAt = timezone.Format(m.CreatedAt, constant.DateFormat)
}

func ReviewsFromModels(models []model.Review) []ReviewResponse {
	reviews := make([]ReviewResponse, len(models))
	for i, m := range models {
		reviews[i].FromModel(m)
	}

	return reviews
}
