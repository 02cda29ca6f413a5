package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts a "#RRGGBB" or "RRGGBB" string from a data file.
func ParseHexColor(hex string) (tcell.Color, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return tcell.ColorDefault, fmt.Errorf("color %q: want 6 hex digits", hex)
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("color %q: %w", hex, err)
	}
	return tcell.NewHexColor(int32(v)), nil
}

// FormatHexColor is the inverse of ParseHexColor. Colors without an RGB
// value, such as tcell.ColorDefault, format as the empty string.
func FormatHexColor(c tcell.Color) string {
	v := c.Hex()
	if v < 0 {
		return ""
	}
	return fmt.Sprintf("#%06X", v)
}

// colorOrWhite is used for template glyphs; a bad color is not fatal.
func colorOrWhite(hex string) tcell.Color {
	color, err := ParseHexColor(hex)
	if err != nil {
		return tcell.ColorWhite
	}
	return color
}
