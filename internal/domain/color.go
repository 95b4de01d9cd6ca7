package domain

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
)

// Color is an accent color as a hex string, e.g. "#545454".
type Color string

// Swatch is a named entry of the accent palette.
type Swatch struct {
	Name  string
	Color Color
}

// DefaultColor is the neutral gray every mount starts with unless
// configured otherwise.
const DefaultColor Color = "#545454"

// Palette is the fixed set of accent swatches, in display order.
var Palette = []Swatch{
	{Name: "default", Color: DefaultColor},
	{Name: "nature", Color: "#8C916C"},
	{Name: "mud", Color: "#95714F"},
	{Name: "ocean", Color: "#56768D"},
	{Name: "rose", Color: "#EFBDBD"},
	{Name: "pistachio", Color: "#B6C687"},
}

// Valid reports whether c is one of the palette colors.
func (c Color) Valid() bool {
	return SwatchIndex(c) >= 0
}

// SwatchIndex returns the palette index of c, or -1.
func SwatchIndex(c Color) int {
	for i, s := range Palette {
		if strings.EqualFold(string(s.Color), string(c)) {
			return i
		}
	}
	return -1
}

// SwatchName returns the palette name of c, or the color itself when it is
// not part of the palette.
func SwatchName(c Color) string {
	if i := SwatchIndex(c); i >= 0 {
		return Palette[i].Name
	}
	return string(c)
}

// LookupSwatch resolves a swatch by exact name, by hex value, or by the best
// fuzzy match against the palette names ("pist" finds "pistachio").
func LookupSwatch(query string) (Swatch, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Swatch{}, fmt.Errorf("%w: empty name", ErrUnknownColor)
	}

	for _, s := range Palette {
		if s.Name == q {
			return s, nil
		}
	}
	if i := SwatchIndex(Color(q)); i >= 0 {
		return Palette[i], nil
	}

	names := make([]string, len(Palette))
	for i, s := range Palette {
		names[i] = s.Name
	}
	matches := fuzzy.Find(q, names)
	if len(matches) == 0 {
		return Swatch{}, fmt.Errorf("%w %q", ErrUnknownColor, query)
	}
	return Palette[matches[0].Index], nil
}
