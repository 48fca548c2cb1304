package textkit

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"red", Red, true},
		{"  GREEN ", Green, true},
		{"#00f", Blue, true},
		{"#ff0000", Red, true},
		{"#00ff0080", Color{G: 1, A: 128.0 / 255}, true},
		{"0xFF0000FF", Blue, true},
		{"rgb(255,0,0)", Red, true},
		{"rgba(0, 0, 255, 0.5)", Color{B: 1, A: 0.5}, true},
		{"", Color{}, false},
		{"nocolor", Color{}, false},
		{"#12", Color{}, false},
		{"rgb(1,2)", Color{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseColor(tt.in)
			if ok != tt.ok {
				t.Fatalf("ParseColor(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if ok && !colorNear(got, tt.want) {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorPremultiply(t *testing.T) {
	c := RGBA(1, 0.5, 0, 0.5).Premultiply()
	if !colorNear(c, Color{R: 0.5, G: 0.25, B: 0, A: 0.5}) {
		t.Errorf("Premultiply() = %+v", c)
	}
}

func TestColorPremultipliedRGBA(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want [4]uint8
	}{
		{"opaque", Red, [4]uint8{255, 0, 0, 255}},
		{"half", RGBA(1, 0, 0, 0.5), [4]uint8{128, 0, 0, 128}},
		{"transparent", Transparent, [4]uint8{0, 0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.PremultipliedRGBA()
			if [4]uint8{got.R, got.G, got.B, got.A} != tt.want {
				t.Errorf("PremultipliedRGBA() = %+v, want %v", got, tt.want)
			}
		})
	}
}

func TestColorNRGBA(t *testing.T) {
	got := RGBA(1, 0, 0.5, 1).NRGBA()
	if got.R != 255 || got.G != 0 || got.B != 128 || got.A != 255 {
		t.Errorf("NRGBA() = %+v", got)
	}
}

func colorNear(a, b Color) bool {
	const eps = 1.0 / 255
	d := func(x, y float32) bool { return x-y < eps && y-x < eps }
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}
