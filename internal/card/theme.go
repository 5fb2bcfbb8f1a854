package card

import "strings"

// Theme groups the four colors a card is rendered with.
type Theme struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

// Layout groups the presentation options of a card.
type Layout struct {
	Style     string `json:"style"`
	Alignment string `json:"alignment"`
	Font      string `json:"font"`
}

// Shape is the outline a card is clipped to.
type Shape string

const (
	ShapeRectangle Shape = "rectangle"
	ShapeRounded   Shape = "rounded"
	ShapeCircle    Shape = "circle"
	ShapeHexagon   Shape = "hexagon"
)

// ThemeColor selects one color slot of a Theme.
type ThemeColor string

const (
	ColorPrimary    ThemeColor = "primary"
	ColorSecondary  ThemeColor = "secondary"
	ColorBackground ThemeColor = "background"
	ColorText       ThemeColor = "text"
)

const (
	LayoutModern   = "modern"
	LayoutClassic  = "classic"
	LayoutMinimal  = "minimal"
	LayoutCreative = "creative"

	DefaultAlignment = "center"
	DefaultFont      = "Inter"
)

// Fonts lists the selectable font families, first entry is the default.
var Fonts = []string{
	"Inter",
	"Roboto",
	"Open Sans",
	"Lato",
	"Montserrat",
	"Source Sans Pro",
	"Raleway",
	"Poppins",
	"Nunito",
	"Playfair Display",
}

var layoutStyles = []string{LayoutModern, LayoutClassic, LayoutMinimal, LayoutCreative}

var alignments = []string{"left", "center", "right"}

// DefaultTheme returns the palette a fresh draft starts with.
func DefaultTheme() Theme {
	return Theme{
		Primary:    "#3B82F6",
		Secondary:  "#1E40AF",
		Background: "#FFFFFF",
		Text:       "#1F2937",
	}
}

// DefaultLayout returns the layout a fresh draft starts with.
func DefaultLayout() Layout {
	return Layout{Style: LayoutModern, Alignment: DefaultAlignment, Font: DefaultFont}
}

// DefaultShape is the outline a fresh draft starts with.
const DefaultShape = ShapeRectangle

// ValidShape reports whether s is one of the known card shapes.
func ValidShape(s Shape) bool {
	switch s {
	case ShapeRectangle, ShapeRounded, ShapeCircle, ShapeHexagon:
		return true
	}
	return false
}

// ValidLayoutStyle reports whether style is a known layout style.
func ValidLayoutStyle(style string) bool {
	for _, s := range layoutStyles {
		if s == style {
			return true
		}
	}
	return false
}

// ValidAlignment reports whether a is a known alignment.
func ValidAlignment(a string) bool {
	for _, v := range alignments {
		if v == a {
			return true
		}
	}
	return false
}

// ValidFont reports whether font is in the selectable font list.
func ValidFont(font string) bool {
	for _, f := range Fonts {
		if f == font {
			return true
		}
	}
	return false
}

// ValidThemeColor reports whether key addresses a Theme slot.
func ValidThemeColor(key ThemeColor) bool {
	switch key {
	case ColorPrimary, ColorSecondary, ColorBackground, ColorText:
		return true
	}
	return false
}

// ValidHexColor reports whether v looks like a #RGB or #RRGGBB value.
func ValidHexColor(v string) bool {
	if len(v) != 4 && len(v) != 7 {
		return false
	}
	if !strings.HasPrefix(v, "#") {
		return false
	}
	for _, r := range v[1:] {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
