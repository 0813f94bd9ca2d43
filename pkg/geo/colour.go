package geo

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Colour is an 8-bit RGBA colour. It parses from hex notation (#RGB, #RGBA,
// #RRGGBB, #RRGGBBAA) or an SVG 1.1 colour name such as "black".
type Colour color.RGBA

// RGBA implements color.Color.
func (c Colour) RGBA() (r, g, b, a uint32) {
	return color.RGBA(c).RGBA()
}

// Hex renders the colour as #rrggbb, with an alpha pair appended when the
// colour is not fully opaque.
func (c Colour) Hex() string {
	if c.A != 0xff {
		return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String returns the hex form.
func (c Colour) String() string { return c.Hex() }

// MarshalText implements encoding.TextMarshaler so colours serialise as hex
// strings in JSON and YAML.
func (c Colour) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Colour) UnmarshalText(text []byte) error {
	parsed, err := ParseColour(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColour interprets s as a hex colour or an SVG colour name.
func ParseColour(s string) (Colour, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Colour{}, fmt.Errorf("empty colour")
	}
	if s[0] == '#' {
		return parseHexColour(s)
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return Colour(c), nil
	}
	return Colour{}, fmt.Errorf("unknown colour name %q", s)
}

func parseHexColour(s string) (Colour, error) {
	hex := s[1:]
	switch len(hex) {
	case 3, 4:
		// Expand shorthand digits: #abc becomes #aabbcc.
		var sb strings.Builder
		for _, ch := range hex {
			sb.WriteRune(ch)
			sb.WriteRune(ch)
		}
		hex = sb.String()
	case 6, 8:
	default:
		return Colour{}, fmt.Errorf("hex colour %q: want 3, 4, 6 or 8 digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return Colour{}, fmt.Errorf("hex colour %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return Colour{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
