package model

import "time"

const (
	IDHexLength = 12

	FieldID        = "id"
	FieldImageURL  = "image_url"
	FieldSortOrder = "sort_order"
)

// Collection identifies one of the public image showcases. Each one has
// its own table, id prefix, and upload destination.
type Collection struct {
	EntityName string
	TableName  string
	IDPrefix   string
	SubPath    string
	Category   string
}

var (
	HeroCarousel = Collection{
		EntityName: "hero_carousel_image",
		TableName:  "hero_carousel_images",
		IDPrefix:   "hero",
		SubPath:    "hero-carousel",
		Category:   "hero",
	}

	Gallery = Collection{
		EntityName: "gallery_image",
		TableName:  "gallery_images",
		IDPrefix:   "gallery",
		SubPath:    "gallery",
		Category:   "gallery",
	}

	RestaurantGallery = Collection{
		EntityName: "restaurant_gallery_image",
		TableName:  "restaurant_gallery_images",
		IDPrefix:   "restaurant-gallery",
		SubPath:    "restaurant-gallery",
		Category:   "restaurant",
	}
)

type ShowcaseImage struct {
	ID        string    `db:"id"`
	ImageURL  string    `db:"image_url"`
	SortOrder int       `db:"sort_order"`
	CreatedAt time.Time `db:"created_at"`
}
