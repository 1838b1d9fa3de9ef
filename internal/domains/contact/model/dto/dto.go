package dto

import (
	"time"

	"robles/internal/domains/contact/model"
	"robles/shared"
	"robles/shared/constant"
	"robles/shared/timezone"
)

type CreateContactMessageRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required"`
	Whatsapp string `json:"whatsapp" validate:"required"`
	Subject  string `json:"subject"  validate:"required"`
	Message  string `json:"message"  validate:"required"`
}

func (c *CreateContactMessageRequest) ToModel() model.ContactMessage {
	return model.ContactMessage{
		ID:        shared.NewID(model.IDPrefix, model.IDHexLength),
		Name:      c.Name,
		Email:     c.Email,
		Whatsapp:  c.Whatsapp,
		Subject:   c.Subject,
		Message:   c.Message,
		CreatedAt: time.Now(),
	}
}

type ContactMessageResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Whatsapp  string `json:"whatsapp"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

func (r *ContactMessageResponse) FromModel(m model.ContactMessage) {
	r.ID = m.ID
	r.Name = m.Name
	r.Email = m.Email
	r.Whatsapp = m.Whatsapp
	r.Subject = m.Subject
	r.Message = m.Message
	r.CreatedAt = timezone.Format(m.CreatedAt, constant.DateFormat)
}

func ContactMessagesFromModels(models []model.ContactMessage) []ContactMessageResponse {
	messages := make([]ContactMessageResponse, len(models))
	for i, m := range models {
		messages[i].FromModel(m)
	}

	return messages
}
