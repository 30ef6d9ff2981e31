package sim

import "math"

// Default interaction parameters
const (
	DefaultPickupRadius = 50.0
	DefaultReleaseSpeed = 8.0
)

// World holds every ball, split between the active set (subject to physics)
// and the inventory (held, frozen). A ball lives in exactly one of the two
// until it is destroyed by the removal zone.
//
// A World is not safe for concurrent use; the driver calls it from one loop.
type World struct {
	width, height float64
	balls         []*Ball // Active, in creation/insertion order
	inventory     []*Ball // Held, last element is released first
	zone          Rect
	pickupRadius  float64
	releaseSpeed  float64
	nextID        uint64
}

// Option configures a World at construction
type Option func(*World)

// WithDeleteZone overrides the default bottom-right removal zone
func WithDeleteZone(r Rect) Option {
	return func(w *World) {
		w.zone = r.Normalize()
	}
}

// WithPickupRadius sets the pickup radius; non-positive values are ignored
func WithPickupRadius(radius float64) Option {
	return func(w *World) {
		if radius > 0 && !math.IsInf(radius, 0) {
			w.pickupRadius = radius
		}
	}
}

// WithReleaseSpeed sets the release speed; non-positive values are ignored
func WithReleaseSpeed(speed float64) Option {
	return func(w *World) {
		if speed > 0 && !math.IsInf(speed, 0) {
			w.releaseSpeed = speed
		}
	}
}

// NewWorld creates an empty world with the given boundary size
func NewWorld(width, height float64, opts ...Option) *World {
	w := &World{
		width:        clampDimension(width),
		height:       clampDimension(height),
		pickupRadius: DefaultPickupRadius,
		releaseSpeed: DefaultReleaseSpeed,
		nextID:       1,
	}
	w.zone = DefaultDeleteZone(w.width, w.height)
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// CreateBall adds a new ball with the default radius to the active set
func (w *World) CreateBall(x, y, vx, vy float64, c RGB) Ball {
	b := &Ball{
		X:      x,
		Y:      y,
		VX:     vx,
		VY:     vy,
		Color:  c,
		radius: DefaultRadius,
		id:     w.nextID,
	}
	w.nextID++
	w.balls = append(w.balls, b)
	return *b
}

// Advance runs one step of dt seconds: move, bounce, mix, remove.
// Non-finite or non-positive dt is ignored.
func (w *World) Advance(dt float64) {
	if !(dt > 0) || math.IsInf(dt, 1) {
		return
	}
	w.move(dt)
	w.bounceWalls()
	w.mixColors()
	w.removeInZone()
}

// move integrates positions of active balls
func (w *World) move(dt float64) {
	for _, b := range w.balls {
		b.X += b.VX * dt
		b.Y += b.VY * dt
	}
}

// bounceWalls clamps balls tangent to the boundary and points velocity inward.
// Axes are handled independently so a corner hit reflects both.
func (w *World) bounceWalls() {
	for _, b := range w.balls {
		if b.X-b.radius < 0 {
			b.X = b.radius
			b.VX = math.Abs(b.VX)
		}
		if b.X+b.radius > w.width {
			b.X = w.width - b.radius
			b.VX = -math.Abs(b.VX)
		}
		if b.Y-b.radius < 0 {
			b.Y = b.radius
			b.VY = math.Abs(b.VY)
		}
		if b.Y+b.radius > w.height {
			b.Y = w.height - b.radius
			b.VY = -math.Abs(b.VY)
		}
	}
}

// mixColors visits every touching pair once, outer index before inner, and
// gives both balls the mix of their current colors. Balls touching more than
// one neighbour form a chain; once the pass ends every ball in a chain takes
// the color of the chain's last mixed pair so all touching pairs agree.
func (w *World) mixColors() {
	n := len(w.balls)
	if n < 2 {
		return
	}

	type mixed struct {
		i     int
		color RGB
	}
	var commits []mixed
	sets := newDisjointSet(n)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			bi, bj := w.balls[i], w.balls[j]
			if !bi.touches(bj) {
				continue
			}
			c := Mix(bi.Color, bj.Color)
			bi.Color, bj.Color = c, c
			sets.union(i, j)
			commits = append(commits, mixed{i, c})
		}
	}
	if len(commits) == 0 {
		return
	}

	// Settle chains
	final := make(map[int]RGB, len(commits))
	for _, m := range commits {
		final[sets.find(m.i)] = m.color
	}
	for k, b := range w.balls {
		if c, ok := final[sets.find(k)]; ok {
			b.Color = c
		}
	}
}

// removeInZone drops active balls whose center lies inside the removal zone
func (w *World) removeInZone() {
	kept := w.balls[:0]
	for _, b := range w.balls {
		if !w.zone.Contains(b.X, b.Y) {
			kept = append(kept, b)
		}
	}
	for i := len(kept); i < len(w.balls); i++ {
		w.balls[i] = nil
	}
	w.balls = kept
}

// Balls returns a snapshot of the active set
func (w *World) Balls() []Ball {
	return snapshot(w.balls)
}

// Inventory returns a snapshot of held balls, oldest first
func (w *World) Inventory() []Ball {
	return snapshot(w.inventory)
}

// ActiveCount returns the number of active balls
func (w *World) ActiveCount() int {
	return len(w.balls)
}

// InventoryCount returns the number of held balls
func (w *World) InventoryCount() int {
	return len(w.inventory)
}

// DeleteZone returns the removal zone
func (w *World) DeleteZone() Rect {
	return w.zone
}

// SetDeleteZone replaces the removal zone. Inverted rectangles are normalized.
func (w *World) SetDeleteZone(x, y, width, height float64) {
	w.zone = Rect{X: x, Y: y, W: width, H: height}.Normalize()
}

// Size returns the boundary dimensions
func (w *World) Size() (width, height float64) {
	return w.width, w.height
}

// Resize changes the boundary. The removal zone is left where it is;
// callers re-anchor it with SetDeleteZone.
func (w *World) Resize(width, height float64) {
	w.width = clampDimension(width)
	w.height = clampDimension(height)
}

// PickupRadius returns the pickup radius
func (w *World) PickupRadius() float64 {
	return w.pickupRadius
}

// ReleaseSpeed returns the release speed
func (w *World) ReleaseSpeed() float64 {
	return w.releaseSpeed
}

func snapshot(src []*Ball) []Ball {
	out := make([]Ball, len(src))
	for i, b := range src {
		out[i] = *b
	}
	return out
}

func clampDimension(v float64) float64 {
	if !(v >= 1) || math.IsInf(v, 1) {
		return 1
	}
	return v
}

// disjointSet groups indices of balls that touch directly or through a chain
type disjointSet []int

func newDisjointSet(n int) disjointSet {
	s := make(disjointSet, n)
	for i := range s {
		s[i] = i
	}
	return s
}

func (s disjointSet) find(i int) int {
	for s[i] != i {
		s[i] = s[s[i]]
		i = s[i]
	}
	return i
}

func (s disjointSet) union(a, b int) {
	ra, rb := s.find(a), s.find(b)
	if ra != rb {
		s[rb] = ra
	}
}
