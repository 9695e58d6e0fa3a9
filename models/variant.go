package models

import (
	"fmt"
	"time"

	"shoe-store/utils"
)

// Variant is the display classification of a shoe card. Exactly one
// applies to a shoe at a given moment.
type Variant int

const (
	VariantDefault Variant = iota
	VariantOnSale
	VariantNewRelease
)

func (v Variant) String() string {
	switch v {
	case VariantOnSale:
		return "on-sale"
	case VariantNewRelease:
		return "new-release"
	default:
		return "default"
	}
}

func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Variant) UnmarshalText(text []byte) error {
	switch string(text) {
	case "default":
		*v = VariantDefault
	case "on-sale":
		*v = VariantOnSale
	case "new-release":
		*v = VariantNewRelease
	default:
		return fmt.Errorf("unknown variant %q", text)
	}
	return nil
}

// ClassifyVariant picks the card variant. A sale price always wins, even
// for a shoe that was also released within the window.
func ClassifyVariant(salePrice *int, releaseDate, now time.Time, windowDays int) Variant {
	switch {
	case salePrice != nil:
		return VariantOnSale
	case utils.IsRecent(releaseDate, now, windowDays):
		return VariantNewRelease
	default:
		return VariantDefault
	}
}
