package dto

import (
	"time"

	"robles/internal/domains/booking/model"
	"robles/shared"
	"robles/shared/constant"
	"robles/shared/timezone"
)

type CreateBookingRequest struct {
	GuestName  string  `json:"guest_name"  validate:"required"`
	Email      string  `json:"email"       validate:"required,email"`
	Phone      *string `json:"phone"`
	Type       string  `json:"type"        validate:"required,oneof=room venue"`
	ItemID     string  `json:"item_id"     validate:"required"`
	ItemName   string  `json:"item_name"   validate:"required"`
	CheckIn    string  `json:"check_in"    validate:"required"`
	CheckOut   string  `json:"check_out"   validate:"required"`
	Guests     int     `json:"guests"      validate:"required"`
	TotalPrice float64 `json:"total_price"`
}

// ToModel builds the booking row. Web bookings are confirmed on arrival;
// the dashboard moves them through the rest of the lifecycle.
func (c *CreateBookingRequest) ToModel() model.WebBooking {
	return model.WebBooking{
		ID:         shared.NewID(model.IDPrefix, model.IDHexLength),
		GuestName:  c.GuestName,
		Email:      c.Email,
		Phone:      c.Phone,
		Type:       c.Type,
		ItemID:     c.ItemID,
		ItemName:   c.ItemName,
		CheckIn:    c.CheckIn,
		CheckOut:   c.CheckOut,
		Guests:     c.Guests,
		TotalPrice: c.TotalPrice,
		Status:     constant.BookingStatusConfirmed,
		CreatedAt:  time.Now(),
	}
}

type CreateBookingResponse struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	EmailSent bool   `json:"email_sent"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type BookingStatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type ReservationResponse struct {
	ID          string  `json:"id"`
	GuestName   string  `json:"guest_name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone"`
	Type        string  `json:"type"`
	ItemID      string  `json:"item_id"`
	ItemName    string  `json:"item_name"`
	CheckIn     string  `json:"check_in"`
	CheckOut    string  `json:"check_out"`
	Guests      int     `json:"guests"`
	TotalPrice  float64 `json:"total_price"`
	TotalAmount float64 `json:"total_amount"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
}

func (r *ReservationResponse) FromModel(m model.WebBooking) {
	r.ID = m.ID
	r.GuestName = m.GuestName
	r.Email = m.Email
	r.Phone = m.Phone
	r.Type = m.Type
	r.ItemID = m.ItemID
	r.ItemName = m.ItemName
	r.CheckIn = m.CheckIn
	r.CheckOut = m.CheckOut
	r.Guests = m.Guests
	r.TotalPrice = m.TotalPrice
	r.TotalAmount = m.TotalPrice
	r.Status = m.Status
	r.CreatedAt = timezone.Format(m.CreatedAt, constant.DateFormat)
}

func ReservationsFromModels(models []model.WebBooking) []ReservationResponse {
	reservations := make([]ReservationResponse, len(models))
	for i, m := range models {
		reservations[i].FromModel(m)
	}

	return reservations
}

type DashboardStatsResponse struct {
	TotalReservations int     `json:"total_reservations"`
	OccupiedRooms     int     `json:"occupied_rooms"`
	TotalRooms        int     `json:"total_rooms"`
	UpcomingEvents    int     `json:"upcoming_events"`
	Revenue           float64 `json:"revenue"`
}
