package sim

import (
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"
)

// Spawn tuning
const (
	SpawnMargin   = 80.0  // Keep new balls this far from the boundary
	SpawnMaxSpeed = 2.0   // Per-axis speed bound for new balls
	flowScale     = 0.005 // World units to noise units
)

// Spawner seeds a world with a starting population. Positions and colors
// are random; initial headings follow a Perlin noise flow field so nearby
// balls drift in similar directions.
type Spawner struct {
	rng     *rand.Rand
	flow    *perlin.Perlin
	palette []RGB
}

// NewSpawner creates a deterministic spawner for the given seed
func NewSpawner(seed int64, palette []RGB) *Spawner {
	if len(palette) == 0 {
		palette = []RGB{{255, 0, 0}}
	}
	return &Spawner{
		rng:     rand.New(rand.NewSource(seed)),
		flow:    perlin.NewPerlin(2, 2, 3, seed),
		palette: palette,
	}
}

// Populate adds count balls to w
func (s *Spawner) Populate(w *World, count int) {
	width, height := w.Size()
	for i := 0; i < count; i++ {
		x := s.coord(width)
		y := s.coord(height)
		vx, vy := s.heading(x, y)
		c := s.palette[s.rng.Intn(len(s.palette))]
		w.CreateBall(x, y, vx, vy, c)
	}
}

// coord picks a position along an axis of the given extent, inside the margin
func (s *Spawner) coord(extent float64) float64 {
	span := extent - 2*SpawnMargin
	if span <= 0 {
		return extent / 2
	}
	return SpawnMargin + s.rng.Float64()*span
}

// heading samples the flow field at (x, y)
func (s *Spawner) heading(x, y float64) (float64, float64) {
	angle := s.flow.Noise2D(x*flowScale, y*flowScale) * 2 * math.Pi
	speed := SpawnMaxSpeed * s.rng.Float64()
	return math.Cos(angle) * speed, math.Sin(angle) * speed
}
