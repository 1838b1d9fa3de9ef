package model

const (
	EntityName = "hotel_info"
	TableName  = "hotel_info"

	// There is a single editable row.
	RowID = 1

	FieldID = "id"
)

type HotelInfo struct {
	ID           int     `db:"id"`
	Phone        *string `db:"phone"`
	Email        *string `db:"email"`
	Address      *string `db:"address"`
	Whatsapp     *string `db:"whatsapp"`
	FacebookURL  *string `db:"facebook_url"`
	InstagramURL *string `db:"instagram_url"`
	TwitterURL   *string `db:"twitter_url"`
	OpeningHours *string `db:"opening_hours"`
}

// Default carries the hotel's published contact details, returned until
// the panel saves its own values.
func Default() HotelInfo {
	phone := "310 437 4492"
	email := "hotelroble@hotmail.com"
	address := "Hotel Los Robles, Cl. 28 #314 a 3-174, Quibdó, Chocó"
	whatsapp := "+573104374492"
	facebook := ""
	instagram := ""
	twitter := ""
	openingHours := "24 horas, 7 días a la semana"

	return HotelInfo{
		ID:           RowID,
		Phone:        &phone,
		Email:        &email,
		Address:      &address,
		Whatsapp:     &whatsapp,
		FacebookURL:  &facebook,
		InstagramURL: &instagram,
		TwitterURL:   &twitter,
		OpeningHours: &openingHours,
	}
}
