package models

import (
	"errors"
	"fmt"
	"regexp"
)

type ThemeColors struct {
	White     string `mapstructure:"white" json:"white"`
	Primary   string `mapstructure:"primary" json:"primary"`
	Secondary string `mapstructure:"secondary" json:"secondary"`
	Gray700   string `mapstructure:"gray_700" json:"gray_700"`
	Gray900   string `mapstructure:"gray_900" json:"gray_900"`
}

type ThemeWeights struct {
	Normal int `mapstructure:"normal" json:"normal"`
	Medium int `mapstructure:"medium" json:"medium"`
	Bold   int `mapstructure:"bold" json:"bold"`
}

type ThemeLabels struct {
	OnSale     string `mapstructure:"on_sale" json:"on_sale"`
	NewRelease string `mapstructure:"new_release" json:"new_release"`
}

// Theme carries every style value the card renderer needs.
type Theme struct {
	Colors  ThemeColors  `mapstructure:"colors" json:"colors"`
	Weights ThemeWeights `mapstructure:"weights" json:"weights"`
	Labels  ThemeLabels  `mapstructure:"labels" json:"labels"`
}

func DefaultTheme() Theme {
	return Theme{
		Colors: ThemeColors{
			White:     "hsl(0deg 0% 100%)",
			Primary:   "hsl(340deg 65% 47%)",
			Secondary: "hsl(240deg 60% 63%)",
			Gray700:   "hsl(220deg 5% 40%)",
			Gray900:   "hsl(220deg 3% 20%)",
		},
		Weights: ThemeWeights{
			Normal: 500,
			Medium: 600,
			Bold:   800,
		},
		Labels: ThemeLabels{
			OnSale:     "Sale",
			NewRelease: "Just Released!",
		},
	}
}

// cssColor accepts hex colors, color functions such as hsl() and rgb(), and
// bare keywords. Nothing that could end a declaration gets through.
var cssColor = regexp.MustCompile(`^(?:#[0-9a-fA-F]{3,8}|(?:rgba?|hsla?|hwb|lab|lch|oklab|oklch)\([0-9a-zA-Z.%,/+\- ]*\)|[a-zA-Z]+)$`)

// IsCSSColor reports whether v is safe to place in a style attribute as a color.
func IsCSSColor(v string) bool {
	return cssColor.MatchString(v)
}

func (t Theme) Validate() error {
	c := t.Colors
	for name, v := range map[string]string{
		"white":     c.White,
		"primary":   c.Primary,
		"secondary": c.Secondary,
		"gray_700":  c.Gray700,
		"gray_900":  c.Gray900,
	} {
		if v == "" {
			return fmt.Errorf("theme: color %s must be set", name)
		}
		if !IsCSSColor(v) {
			return fmt.Errorf("theme: color %s is not a CSS color: %q", name, v)
		}
	}
	if t.Weights.Normal <= 0 || t.Weights.Medium <= 0 || t.Weights.Bold <= 0 {
		return errors.New("theme: font weights must be positive")
	}
	if t.Labels.OnSale == "" || t.Labels.NewRelease == "" {
		return errors.New("theme: badge labels must be set")
	}
	return nil
}
