package models

import "time"

type Shoe struct {
	ID          int       `json:"id"`
	Slug        string    `json:"slug"`
	Name        string    `json:"name"`
	ImageSrc    string    `json:"image_src"`
	Price       int       `json:"price"`
	SalePrice   *int      `json:"sale_price"`
	ReleaseDate time.Time `json:"release_date"`
	NumOfColors int       `json:"num_of_colors"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Variant classifies the shoe as of now. It is never stored on the shoe.
func (s Shoe) Variant(now time.Time, windowDays int) Variant {
	return ClassifyVariant(s.SalePrice, s.ReleaseDate, now, windowDays)
}
