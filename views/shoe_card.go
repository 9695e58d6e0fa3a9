// Package views turns shoes into card display trees and renders them as HTML.
// Nothing here touches storage or the network; every style value comes in
// through the Theme argument.
package views

import (
	"time"

	"shoe-store/models"
	"shoe-store/utils"
)

// Badge is the corner label of a card. Default cards have none.
type Badge struct {
	Label           string `json:"label"`
	BackgroundColor string `json:"background_color"`
	Color           string `json:"color"`
	FontWeight      int    `json:"font_weight"`
}

type TextStyle struct {
	Color      string `json:"color,omitempty"`
	FontWeight int    `json:"font_weight,omitempty"`
}

// ShoeCard is the display tree of one product card.
type ShoeCard struct {
	Slug           string         `json:"slug"`
	Href           string         `json:"href"`
	Variant        models.Variant `json:"variant"`
	ImageSrc       string         `json:"image_src"`
	ImageAlt       string         `json:"image_alt"`
	Name           string         `json:"name"`
	Price          string         `json:"price"`
	PriceStruck    bool           `json:"price_struck"`
	SalePrice      string         `json:"sale_price,omitempty"`
	ColorInfo      string         `json:"color_info"`
	Badge          *Badge         `json:"badge"`
	NameStyle      TextStyle      `json:"name_style"`
	ColorInfoStyle TextStyle      `json:"color_info_style"`
	SalePriceStyle *TextStyle     `json:"sale_price_style,omitempty"`
}

// NewShoeCard classifies the shoe as of now and builds its card.
func NewShoeCard(shoe models.Shoe, now time.Time, windowDays int, theme models.Theme, prices *utils.PriceFormatter) ShoeCard {
	return BuildShoeCard(shoe, shoe.Variant(now, windowDays), theme, prices)
}

// BuildShoeCard builds the card for an already classified shoe.
func BuildShoeCard(shoe models.Shoe, variant models.Variant, theme models.Theme, prices *utils.PriceFormatter) ShoeCard {
	card := ShoeCard{
		Slug:      shoe.Slug,
		Href:      "/shoe/" + shoe.Slug,
		Variant:   variant,
		ImageSrc:  shoe.ImageSrc,
		Name:      shoe.Name,
		Price:     prices.Format(shoe.Price),
		ColorInfo: utils.Pluralize("Color", shoe.NumOfColors),
		NameStyle: TextStyle{
			Color:      theme.Colors.Gray900,
			FontWeight: theme.Weights.Medium,
		},
		ColorInfoStyle: TextStyle{Color: theme.Colors.Gray700},
	}

	switch variant {
	case models.VariantOnSale:
		card.PriceStruck = true
		if shoe.SalePrice != nil {
			card.SalePrice = prices.Format(*shoe.SalePrice)
		}
		card.SalePriceStyle = &TextStyle{
			Color:      theme.Colors.Primary,
			FontWeight: theme.Weights.Medium,
		}
		card.Badge = newBadge(theme.Labels.OnSale, theme.Colors.Primary, theme)
	case models.VariantNewRelease:
		card.Badge = newBadge(theme.Labels.NewRelease, theme.Colors.Secondary, theme)
	case models.VariantDefault:
	}

	return card
}

func newBadge(label, background string, theme models.Theme) *Badge {
	return &Badge{
		Label:           label,
		BackgroundColor: background,
		Color:           theme.Colors.White,
		FontWeight:      theme.Weights.Medium,
	}
}
