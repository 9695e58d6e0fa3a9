package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date accepts either RFC 3339 timestamps or plain YYYY-MM-DD dates.
type Date struct {
	time.Time
}

func ParseDate(s string) (Date, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return Date{t}, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected RFC3339 or YYYY-MM-DD", s)
	}
	return Date{t}, nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.Format(time.RFC3339))
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type CreateShoeRequest struct {
	Slug        string `json:"slug" binding:"required,max=120"`
	Name        string `json:"name" binding:"required,max=200"`
	ImageSrc    string `json:"image_src"`
	Price       *int   `json:"price" binding:"required,min=0"`
	SalePrice   *int   `json:"sale_price" binding:"omitempty,min=0"`
	ReleaseDate *Date  `json:"release_date" binding:"required"`
	NumOfColors int    `json:"num_of_colors" binding:"required,min=1"`
}

// UpdateShoeRequest only touches the fields that are present. ClearSalePrice
// ends a sale, since a null sale_price cannot be told apart from an omitted one.
type UpdateShoeRequest struct {
	Name           *string `json:"name" binding:"omitempty,max=200"`
	ImageSrc       *string `json:"image_src"`
	Price          *int    `json:"price" binding:"omitempty,min=0"`
	SalePrice      *int    `json:"sale_price" binding:"omitempty,min=0"`
	ClearSalePrice bool    `json:"clear_sale_price"`
	ReleaseDate    *Date   `json:"release_date"`
	NumOfColors    *int    `json:"num_of_colors" binding:"omitempty,min=1"`
}
