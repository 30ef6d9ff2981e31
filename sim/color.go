package sim

import "math"

// Brightness cap applied to mixed colors (sum of channels)
const MaxMixSum = 550

// RGB is a ball color. Channels are bytes, so they always stay in [0,255].
type RGB struct {
	R, G, B uint8
}

// ClampRGB builds a color from arbitrary integer channels, clamping each to [0,255]
func ClampRGB(r, g, b int) RGB {
	return RGB{clampChannel(r), clampChannel(g), clampChannel(b)}
}

// RGBA implements color.Color so the renderer can draw an RGB directly
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Sum returns r+g+b
func (c RGB) Sum() int {
	return int(c.R) + int(c.G) + int(c.B)
}

// Mix blends two colors paint-style: 60% multiplicative, 40% average.
// The result never exceeds MaxMixSum in total brightness, so repeated
// mixing darkens toward saturated tones instead of drifting to white.
func Mix(c1, c2 RGB) RGB {
	r := mixChannel(int(c1.R), int(c2.R))
	g := mixChannel(int(c1.G), int(c2.G))
	b := mixChannel(int(c1.B), int(c2.B))

	// Desaturation guard. Truncation keeps the scaled sum at or below the cap.
	if total := r + g + b; total > MaxMixSum {
		scale := float64(MaxMixSum) / float64(total)
		r = int(float64(r) * scale)
		g = int(float64(g) * scale)
		b = int(float64(b) * scale)
	}

	return ClampRGB(r, g, b)
}

// mixChannel mixes a single channel pair
func mixChannel(a, b int) int {
	avg := (a + b) / 2
	sub := (a * b) / 255
	return int(math.Round(0.6*float64(sub) + 0.4*float64(avg)))
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
