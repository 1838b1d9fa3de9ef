package dto

import "robles/internal/domains/hotelinfo/model"

type UpdateHotelInfoRequest struct {
	Phone        *string `db:"phone"         json:"phone"`
	Email        *string `db:"email"         json:"email"`
	Address      *string `db:"address"       json:"address"`
	Whatsapp     *string `db:"whatsapp"      json:"whatsapp"`
	FacebookURL  *string `db:"facebook_url"  json:"facebook_url"`
	InstagramURL *string `db:"instagram_url" json:"instagram_url"`
	TwitterURL   *string `db:"twitter_url"   json:"twitter_url"`
	OpeningHours *string `db:"opening_hours" json:"opening_hours"`
}

type HotelInfoResponse struct {
	Phone        *string `json:"phone"`
	Email        *string `json:"email"`
	Address      *string `json:"address"`
	Whatsapp     *string `json:"whatsapp"`
	FacebookURL  *string `json:"facebook_url"`
	InstagramURL *string `json:"instagram_url"`
	TwitterURL   *string `json:"twitter_url"`
	OpeningHours *string `json:"opening_hours"`
}

func (r *HotelInfoResponse) FromModel(m model.HotelInfo) {
	r.Phone = m.Phone
	r.Email = m.Email
	r.Address = m.Address
	r.Whatsapp = m.Whatsapp
	r.FacebookURL = m.FacebookURL
	r.InstagramURL = m.InstagramURL
	r.TwitterURL = m.TwitterURL
	r.OpeningHours = m.OpeningHours
}
