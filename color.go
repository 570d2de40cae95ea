package pixed

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a cell color with 8-bit red, green, blue and alpha channels.
// Channels are not premultiplied. Two colors are equal only when all four
// channels match, so Color values can be compared with ==.
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA returns the alpha-premultiplied components scaled to [0, 0xffff].
// It implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// RGBA64 returns the alpha-premultiplied 16-bit form of c.
func (c Color) RGBA64() color.RGBA64 {
	r, g, b, a := c.RGBA()
	return color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: uint16(a)}
}

// NRGBA converts the color to the standard library's non-premultiplied type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromColor converts a standard color.Color to a Color.
func FromColor(c color.Color) Color {
	n, _ := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Opaque reports whether the alpha channel is fully set.
func (c Color) Opaque() bool {
	return c.A == 255
}

// Hex formats the color as "#rrggbb" when opaque and "#rrggbbaa" otherwise.
func (c Color) Hex() string {
	if c.Opaque() {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// ParseHex parses a hex color string.
// Supported formats: "RGB", "RRGGBB", "RRGGBBAA", each with an optional
// leading '#'. Alpha defaults to 255.
func ParseHex(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	alpha := uint8(255)
	switch len(hex) {
	case 3, 6:
	case 8:
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		alpha = uint8(a)
		hex = hex[:6]
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	cc, err := colorful.Hex("#" + hex)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	r, g, b := cc.RGB255()
	return Color{R: r, G: g, B: b, A: alpha}, nil
}

// MustParseHex is like ParseHex but panics on malformed input.
// Intended for package-level color literals.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(255, 0, 0)
	Green       = RGB(0, 255, 0)
	Blue        = RGB(0, 0, 255)
	Transparent = Color{}

	// GridLine is the cell border color drawn by DrawGrid.
	GridLine = RGB(0xcc, 0xcc, 0xcc)
)
