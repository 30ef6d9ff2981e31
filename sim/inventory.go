package sim

import "math"

// PickUpAt moves the active ball nearest to (px, py) into the inventory.
// Only balls whose center is within the pickup radius qualify; among equally
// near balls the earliest in the active set wins. Reports false if none qualify.
func (w *World) PickUpAt(px, py float64) (Ball, bool) {
	best := -1
	bestDist := 0.0
	for i, b := range w.balls {
		d := math.Hypot(b.X-px, b.Y-py)
		if d > w.pickupRadius {
			continue
		}
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	if best < 0 {
		return Ball{}, false
	}

	b := w.balls[best]
	w.balls = append(w.balls[:best], w.balls[best+1:]...)
	w.inventory = append(w.inventory, b)
	return *b, true
}

// ReleaseAt pops the most recently held ball, places it at (px, py) and
// launches it away from the world center. A release exactly at the center
// launches along angle 0 (to the right).
func (w *World) ReleaseAt(px, py float64) (Ball, bool) {
	dx := px - w.width/2
	dy := py - w.height/2
	angle := 0.0
	if dx != 0 || dy != 0 {
		angle = math.Atan2(dy, dx)
	}
	return w.ReleaseAtAngle(px, py, angle)
}

// ReleaseAtAngle pops the most recently held ball, places it at (px, py) and
// launches it along angle (radians, 0 = +X). Reports false if the inventory is empty.
func (w *World) ReleaseAtAngle(px, py, angle float64) (Ball, bool) {
	n := len(w.inventory)
	if n == 0 {
		return Ball{}, false
	}

	b := w.inventory[n-1]
	w.inventory[n-1] = nil
	w.inventory = w.inventory[:n-1]

	b.X, b.Y = px, py
	b.VX = math.Cos(angle) * w.releaseSpeed
	b.VY = math.Sin(angle) * w.releaseSpeed
	w.balls = append(w.balls, b)
	return *b, true
}
