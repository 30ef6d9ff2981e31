package sim

import "testing"

func TestMixRedBlue(t *testing.T) {
	got := Mix(RGB{255, 0, 0}, RGB{0, 0, 255})
	want := RGB{51, 0, 51}
	if got != want {
		t.Fatalf("mix red/blue: got=%v want=%v", got, want)
	}
}

func TestMixKnownValues(t *testing.T) {
	tests := []struct {
		name   string
		c1, c2 RGB
		want   RGB
	}{
		{"black with black", RGB{0, 0, 0}, RGB{0, 0, 0}, RGB{0, 0, 0}},
		{"red with itself", RGB{255, 0, 0}, RGB{255, 0, 0}, RGB{255, 0, 0}},
		// 255*3 = 765 > 550, scaled by 550/765 and truncated
		{"white with white", RGB{255, 255, 255}, RGB{255, 255, 255}, RGB{183, 183, 183}},
		// avg 127, sub 0 -> round(50.8) = 51
		{"white with black", RGB{255, 255, 255}, RGB{0, 0, 0}, RGB{51, 51, 51}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mix(tt.c1, tt.c2); got != tt.want {
				t.Fatalf("got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestMixSymmetricAndBounded(t *testing.T) {
	levels := []uint8{0, 1, 63, 127, 128, 200, 254, 255}
	var colors []RGB
	for _, r := range levels {
		for _, g := range levels {
			for _, b := range levels {
				colors = append(colors, RGB{r, g, b})
			}
		}
	}
	for i := 0; i < len(colors); i += 7 {
		for j := 0; j < len(colors); j += 5 {
			a, b := colors[i], colors[j]
			ab, ba := Mix(a, b), Mix(b, a)
			if ab != ba {
				t.Fatalf("mix not symmetric for %v,%v: %v vs %v", a, b, ab, ba)
			}
			if ab.Sum() > MaxMixSum {
				t.Fatalf("mix of %v,%v too bright: %v sum=%d", a, b, ab, ab.Sum())
			}
		}
	}
}

func TestClampRGB(t *testing.T) {
	got := ClampRGB(-20, 128, 300)
	if got != (RGB{0, 128, 255}) {
		t.Fatalf("clamp: got=%v", got)
	}
}

func TestRGBImplementsColor(t *testing.T) {
	r, g, b, a := RGB{255, 0, 128}.RGBA()
	if r != 0xffff || g != 0 || b != 0x8080 || a != 0xffff {
		t.Fatalf("RGBA: got=%x,%x,%x,%x", r, g, b, a)
	}
}
