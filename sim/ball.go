package sim

// Default ball radius
const DefaultRadius = 15.0

// Ball is a circular particle. Radius and ID are fixed when the world creates it.
type Ball struct {
	X, Y   float64 // Position (center)
	VX, VY float64 // Velocity, units per second
	Color  RGB

	radius float64
	id     uint64
}

// ID returns the identifier assigned by the world at creation
func (b Ball) ID() uint64 {
	return b.id
}

// Radius returns the ball's radius
func (b Ball) Radius() float64 {
	return b.radius
}

// touches reports whether two balls overlap or are tangent
func (b *Ball) touches(o *Ball) bool {
	dx := b.X - o.X
	dy := b.Y - o.Y
	reach := b.radius + o.radius
	return dx*dx+dy*dy <= reach*reach
}
