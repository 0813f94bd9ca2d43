package pitch

import (
	"fmt"
	"strings"

	"github.com/minimav/pitchplot/pkg/geo"
)

// Orientation selects which way the pitch length runs in figure space.
type Orientation int

const (
	// Horizontal lays the pitch length along the x axis. The attacking half
	// is on the left.
	Horizontal Orientation = iota
	// Vertical lays the pitch length along the y axis. The attacking half is
	// at the bottom.
	Vertical
)

// ParseOrientation reads an orientation from its lowercase name. Matching is
// case-insensitive and ignores surrounding space.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal":
		return Horizontal, nil
	case "vertical":
		return Vertical, nil
	}
	return Horizontal, fmt.Errorf("unknown orientation %q (want horizontal or vertical)", s)
}

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("orientation(%d)", int(o))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Orientation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Orientation) UnmarshalText(text []byte) error {
	parsed, err := ParseOrientation(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// Apply maps a pitch-relative point into figure space. Horizontal is the
// identity and Vertical exchanges the axes, so applying the transform twice
// yields the original point.
func (o Orientation) Apply(p geo.Point) geo.Point {
	if o == Vertical {
		return p.Swap()
	}
	return p
}

// ApplyRect maps a pitch-relative rect into figure space.
func (o Orientation) ApplyRect(r geo.Rect) geo.Rect {
	if o == Vertical {
		return r.Swap()
	}
	return r
}

// ApplyPoints maps a point slice into figure space. The input is left
// untouched.
func (o Orientation) ApplyPoints(pts []geo.Point) []geo.Point {
	out := make([]geo.Point, len(pts))
	for i, p := range pts {
		out[i] = o.Apply(p)
	}
	return out
}
