package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// TCell returns the color as a tcell.Color.
func (c RGB) TCell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Hex returns the color formatted as "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to an RGB.
func ParseHexColor(hex string) (RGB, error) {
	// Remove leading # if present
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color length: %s", hex)
	}

	r, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid red component in %s: %w", hex, err)
	}

	g, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid green component in %s: %w", hex, err)
	}

	b, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid blue component in %s: %w", hex, err)
	}

	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// MustParseHexColor converts a hex color string to RGB, panicking on error.
func MustParseHexColor(hex string) RGB {
	color, err := ParseHexColor(hex)
	if err != nil {
		panic(err)
	}
	return color
}
