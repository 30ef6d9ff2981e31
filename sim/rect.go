package sim

import "math"

// Default removal zone size, anchored at the bottom-right corner
const (
	DefaultZoneWidth  = 80.0
	DefaultZoneHeight = 60.0
)

// Rect is an axis-aligned rectangle: origin (X, Y) and size (W, H)
type Rect struct {
	X, Y, W, H float64
}

// DefaultDeleteZone returns the default removal zone for a boundary of the given size
func DefaultDeleteZone(width, height float64) Rect {
	return Rect{
		X: width - DefaultZoneWidth,
		Y: height - DefaultZoneHeight,
		W: DefaultZoneWidth,
		H: DefaultZoneHeight,
	}
}

// Contains reports whether (x, y) lies inside r, edges included
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Normalize returns r with non-finite values zeroed and a non-negative size.
// A negative width or height moves the origin so the covered area is unchanged.
func (r Rect) Normalize() Rect {
	r.X, r.Y = finiteOr(r.X, 0), finiteOr(r.Y, 0)
	r.W, r.H = finiteOr(r.W, 0), finiteOr(r.H, 0)
	if r.W < 0 {
		r.X += r.W
		r.W = -r.W
	}
	if r.H < 0 {
		r.Y += r.H
		r.H = -r.H
	}
	return r
}

func finiteOr(v, fallback float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}
