package dto

import "robles/internal/domains/staff/model"

type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

func (r *LoginResponse) FromModel(m model.Staff) {
	r.ID = m.ID
	r.Email = m.Email
	r.Name = m.Name
	r.Role = m.Role
}
