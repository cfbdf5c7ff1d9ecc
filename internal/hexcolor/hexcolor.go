// Package hexcolor converts between #RRGGBB strings and 8-bit RGB triples.
package hexcolor

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var ErrInvalidHex = errors.New("invalid hex colour")

var hexPattern = regexp.MustCompile(`^#?[0-9A-Fa-f]{6}$`)

// Match finds #RRGGBB tokens inside free text.
var Match = regexp.MustCompile(`#[0-9A-Fa-f]{6}`)

type RGB struct {
	R, G, B uint8
}

// Parse accepts "#RRGGBB" or "RRGGBB" in either case. Anything that is not
// exactly six hex digits yields ErrInvalidHex.
func Parse(value string) (RGB, error) {
	if !hexPattern.MatchString(value) {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, value)
	}
	c, err := colorful.Hex("#" + strings.TrimPrefix(value, "#"))
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidHex, value)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

func Valid(value string) bool {
	return hexPattern.MatchString(value)
}

func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Triple joins the decimal channels, e.g. Triple(", ") -> "26, 27, 38".
func (c RGB) Triple(sep string) string {
	parts := []string{
		strconv.Itoa(int(c.R)),
		strconv.Itoa(int(c.G)),
		strconv.Itoa(int(c.B)),
	}
	return strings.Join(parts, sep)
}

// Normalize returns the canonical lowercase "#rrggbb" form. Invalid input is
// returned unchanged.
func Normalize(value string) string {
	if !hexPattern.MatchString(value) {
		return value
	}
	return "#" + strings.ToLower(strings.TrimPrefix(value, "#"))
}

// Bare strips the leading '#'.
func Bare(value string) string {
	return strings.TrimPrefix(value, "#")
}

// Contrast picks a readable label colour for text drawn on top of value.
func Contrast(value string) string {
	rgb, err := Parse(value)
	if err != nil {
		return "#ffffff"
	}
	c := colorful.Color{
		R: float64(rgb.R) / 255.0,
		G: float64(rgb.G) / 255.0,
		B: float64(rgb.B) / 255.0,
	}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return "#000000"
	}
	return "#ffffff"
}
