// Package pitch models the measurements and orientation of an association
// football pitch. All distances are metres in pitch-relative coordinates:
// origin at the bottom-left corner flag, x along the pitch length, y along
// the pitch width.
package pitch

import (
	"errors"
	"fmt"
	"math"
)

// Regulation measurements. The laws of the game fix the boxes in yards, so
// the metric defaults carry the conversion.
const (
	DefaultLength = 105.0
	DefaultWidth  = 68.0

	yardsPerMetre = 1.09361
)

// ErrInvalidDimension reports a pitch measurement that is out of range or
// inconsistent with the other measurements.
var ErrInvalidDimension = errors.New("invalid pitch dimension")

// Dimensions holds every measurement the marking generator needs. Values are
// metres. The zero value is not usable; build one with Default or New.
type Dimensions struct {
	Length              float64 `json:"length" yaml:"length"`
	Width               float64 `json:"width" yaml:"width"`
	PenaltyBoxLength    float64 `json:"penalty_box_length" yaml:"penalty_box_length"`
	PenaltyBoxWidth     float64 `json:"penalty_box_width" yaml:"penalty_box_width"`
	SixYardBoxLength    float64 `json:"six_yard_box_length" yaml:"six_yard_box_length"`
	SixYardBoxWidth     float64 `json:"six_yard_box_width" yaml:"six_yard_box_width"`
	PenaltySpotDistance float64 `json:"penalty_spot_distance" yaml:"penalty_spot_distance"`
	CentreCircleRadius  float64 `json:"centre_circle_radius" yaml:"centre_circle_radius"`
	CornerArcRadius     float64 `json:"corner_arc_radius" yaml:"corner_arc_radius"`
}

// Option overrides a single measurement in New.
type Option func(*overrides)

type overrides struct {
	length              *float64
	width               *float64
	penaltyBoxLength    *float64
	penaltyBoxWidth     *float64
	sixYardBoxLength    *float64
	sixYardBoxWidth     *float64
	penaltySpotDistance *float64
	centreCircleRadius  *float64
	cornerArcRadius     *float64
}

// WithLength overrides the pitch length in metres.
func WithLength(metres float64) Option {
	return func(o *overrides) { o.length = &metres }
}

// WithWidth overrides the pitch width in metres.
func WithWidth(metres float64) Option {
	return func(o *overrides) { o.width = &metres }
}

// WithPenaltyBoxLength overrides how far the penalty box extends from the
// goal line.
func WithPenaltyBoxLength(metres float64) Option {
	return func(o *overrides) { o.penaltyBoxLength = &metres }
}

// WithPenaltyBoxWidth overrides the penalty box width.
func WithPenaltyBoxWidth(metres float64) Option {
	return func(o *overrides) { o.penaltyBoxWidth = &metres }
}

// WithSixYardBoxLength overrides how far the six-yard box extends from the
// goal line.
func WithSixYardBoxLength(metres float64) Option {
	return func(o *overrides) { o.sixYardBoxLength = &metres }
}

// WithSixYardBoxWidth overrides the six-yard box width.
func WithSixYardBoxWidth(metres float64) Option {
	return func(o *overrides) { o.sixYardBoxWidth = &metres }
}

// WithPenaltySpotDistance overrides the distance from the goal line to the
// penalty spot.
func WithPenaltySpotDistance(metres float64) Option {
	return func(o *overrides) { o.penaltySpotDistance = &metres }
}

// WithCentreCircleRadius overrides the centre circle radius.
func WithCentreCircleRadius(metres float64) Option {
	return func(o *overrides) { o.centreCircleRadius = &metres }
}

// WithCornerArcRadius overrides the corner arc radius.
func WithCornerArcRadius(metres float64) Option {
	return func(o *overrides) { o.cornerArcRadius = &metres }
}

// New builds a validated set of dimensions. Measurements that are not
// overridden follow the regulation ratios, recomputed from the (possibly
// overridden) pitch length and width so that resizing the pitch keeps a
// consistent marking set.
func New(opts ...Option) (Dimensions, error) {
	var o overrides
	for _, opt := range opts {
		opt(&o)
	}

	length := valueOr(o.length, DefaultLength)
	width := valueOr(o.width, DefaultWidth)
	penaltyBoxLength := valueOr(o.penaltyBoxLength, 18/yardsPerMetre)

	d := Dimensions{
		Length:              length,
		Width:               width,
		PenaltyBoxLength:    penaltyBoxLength,
		PenaltyBoxWidth:     valueOr(o.penaltyBoxWidth, 0.6*width),
		SixYardBoxLength:    valueOr(o.sixYardBoxLength, penaltyBoxLength/3),
		SixYardBoxWidth:     valueOr(o.sixYardBoxWidth, 0.3*width),
		PenaltySpotDistance: valueOr(o.penaltySpotDistance, 2*penaltyBoxLength/3),
		CentreCircleRadius:  valueOr(o.centreCircleRadius, length/10),
		CornerArcRadius:     valueOr(o.cornerArcRadius, 1/yardsPerMetre),
	}
	if err := d.Validate(); err != nil {
		return Dimensions{}, err
	}
	return d, nil
}

func valueOr(v *float64, fallback float64) float64 {
	if v != nil {
		return *v
	}
	return fallback
}

// Default returns the regulation dimensions. It never fails.
func Default() Dimensions {
	d, _ := New()
	return d
}

// Validate checks every measurement for range and mutual consistency.
// Failures wrap ErrInvalidDimension.
func (d Dimensions) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"length", d.Length},
		{"width", d.Width},
		{"penalty box length", d.PenaltyBoxLength},
		{"penalty box width", d.PenaltyBoxWidth},
		{"six yard box length", d.SixYardBoxLength},
		{"six yard box width", d.SixYardBoxWidth},
		{"penalty spot distance", d.PenaltySpotDistance},
		{"centre circle radius", d.CentreCircleRadius},
		{"corner arc radius", d.CornerArcRadius},
	}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidDimension, f.name, f.value)
		}
		if f.value <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidDimension, f.name, f.value)
		}
	}

	if d.PenaltyBoxLength >= d.Length/2 {
		return fmt.Errorf("%w: penalty box length %v must fit inside half the pitch length %v",
			ErrInvalidDimension, d.PenaltyBoxLength, d.Length)
	}
	if d.PenaltyBoxWidth >= d.Width {
		return fmt.Errorf("%w: penalty box width %v must be narrower than the pitch width %v",
			ErrInvalidDimension, d.PenaltyBoxWidth, d.Width)
	}
	if d.SixYardBoxLength >= d.PenaltyBoxLength {
		return fmt.Errorf("%w: six yard box length %v must be shorter than the penalty box length %v",
			ErrInvalidDimension, d.SixYardBoxLength, d.PenaltyBoxLength)
	}
	if d.SixYardBoxWidth >= d.PenaltyBoxWidth {
		return fmt.Errorf("%w: six yard box width %v must be narrower than the penalty box width %v",
			ErrInvalidDimension, d.SixYardBoxWidth, d.PenaltyBoxWidth)
	}
	if d.PenaltySpotDistance >= d.Length/2 {
		return fmt.Errorf("%w: penalty spot distance %v must be before the halfway line at %v",
			ErrInvalidDimension, d.PenaltySpotDistance, d.Length/2)
	}
	if d.CentreCircleRadius >= d.Width/2 || d.CentreCircleRadius >= d.Length/2 {
		return fmt.Errorf("%w: centre circle radius %v must fit inside the pitch %vx%v",
			ErrInvalidDimension, d.CentreCircleRadius, d.Length, d.Width)
	}
	if d.CornerArcRadius >= d.Width/2 || d.CornerArcRadius >= d.Length/2 {
		return fmt.Errorf("%w: corner arc radius %v must fit inside the pitch %vx%v",
			ErrInvalidDimension, d.CornerArcRadius, d.Length, d.Width)
	}
	return nil
}

// MidLength returns the x coordinate of the halfway line.
func (d Dimensions) MidLength() float64 { return d.Length / 2 }

// MidWidth returns the y coordinate of the pitch centre.
func (d Dimensions) MidWidth() float64 { return d.Width / 2 }

// PenaltyBoxWidthMin returns the lower y edge of the penalty box.
func (d Dimensions) PenaltyBoxWidthMin() float64 { return (d.Width - d.PenaltyBoxWidth) / 2 }

// PenaltyBoxWidthMax returns the upper y edge of the penalty box.
func (d Dimensions) PenaltyBoxWidthMax() float64 { return (d.Width + d.PenaltyBoxWidth) / 2 }

// SixYardBoxWidthMin returns the lower y edge of the six-yard box.
func (d Dimensions) SixYardBoxWidthMin() float64 { return (d.Width - d.SixYardBoxWidth) / 2 }

// SixYardBoxWidthMax returns the upper y edge of the six-yard box.
func (d Dimensions) SixYardBoxWidthMax() float64 { return (d.Width + d.SixYardBoxWidth) / 2 }
