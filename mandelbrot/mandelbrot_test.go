package mandelbrot

import (
	"mandelbrot/task"
	"testing"
)

func TestPixelToPoint(t *testing.T) {
	got := PixelToPoint(Bounds{Width: 100, Height: 100}, task.Coordinate{Column: 25, Row: 75}, complex(-1.0, 1.0), complex(1.0, -1.0))
	if got != complex(-0.5, -0.5) {
		t.Errorf("PixelToPoint = %v, want (-0.5-0.5i)", got)
	}
}

func TestPixelToPointCorners(t *testing.T) {
	bounds := Bounds{Width: 40, Height: 20}
	upperLeft, lowerRight := complex(-2.0, 1.0), complex(2.0, -1.0)

	if got := PixelToPoint(bounds, task.Coordinate{}, upperLeft, lowerRight); got != upperLeft {
		t.Errorf("origin pixel = %v, want %v", got, upperLeft)
	}
	if got := PixelToPoint(bounds, task.Coordinate{Column: 40, Row: 20}, upperLeft, lowerRight); got != lowerRight {
		t.Errorf("one past the last pixel = %v, want %v", got, lowerRight)
	}
}

func TestPixelToPointMonotonic(t *testing.T) {
	bounds := Bounds{Width: 37, Height: 23}
	upperLeft, lowerRight := complex(-1.20, 0.35), complex(-1.0, 0.20)

	for row := 0; row < bounds.Height; row++ {
		for column := 0; column < bounds.Width; column++ {
			p := PixelToPoint(bounds, task.Coordinate{Column: column, Row: row}, upperLeft, lowerRight)
			right := PixelToPoint(bounds, task.Coordinate{Column: column + 1, Row: row}, upperLeft, lowerRight)
			below := PixelToPoint(bounds, task.Coordinate{Column: column, Row: row + 1}, upperLeft, lowerRight)
			if real(right) <= real(p) {
				t.Fatalf("real part not increasing at (%d, %d): %v -> %v", column, row, p, right)
			}
			if imag(below) >= imag(p) {
				t.Fatalf("imaginary part not decreasing at (%d, %d): %v -> %v", column, row, p, below)
			}
		}
	}
}

func TestEscapeTime(t *testing.T) {
	tests := []struct {
		name        string
		c           complex128
		limit       uint
		wantCount   uint
		wantEscaped bool
	}{
		{"origin", 0, 225, 0, false},
		{"origin with limit 1", 0, 1, 0, false},
		{"period two cycle", -1, 1000, 0, false},
		{"far away", 3, 225, 0, true},
		{"on the real axis at 2", 2, 225, 1, true},
		{"on the real axis at 1", 1, 225, 2, true},
		{"imaginary unit stays bounded", complex(0, 1), 225, 0, false},
		{"zero limit never escapes", 3, 0, 0, false},
		{"limit reached before escaping", 1, 2, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, escaped := EscapeTime(tt.c, tt.limit)
			if count != tt.wantCount || escaped != tt.wantEscaped {
				t.Errorf("EscapeTime(%v, %d) = (%d, %t), want (%d, %t)", tt.c, tt.limit, count, escaped, tt.wantCount, tt.wantEscaped)
			}
		})
	}
}

func TestIntensity(t *testing.T) {
	tests := []struct {
		count   uint
		escaped bool
		want    byte
	}{
		{0, false, 0},
		{17, false, 0},
		{0, true, 255},
		{1, true, 254},
		{224, true, 31},
		{255, true, 0},
		{256, true, 255},
	}

	for _, tt := range tests {
		if got := Intensity(tt.count, tt.escaped); got != tt.want {
			t.Errorf("Intensity(%d, %t) = %d, want %d", tt.count, tt.escaped, got, tt.want)
		}
	}
}

func TestRenderBand(t *testing.T) {
	bounds := Bounds{Width: 4, Height: 2}
	pixels := make([]byte, bounds.Pixels())
	upperLeft, lowerRight := complex(-4.0, 2.0), complex(4.0, -2.0)

	RenderBand(pixels, bounds, upperLeft, lowerRight, 225)

	for row := 0; row < bounds.Height; row++ {
		for column := 0; column < bounds.Width; column++ {
			point := PixelToPoint(bounds, task.Coordinate{Column: column, Row: row}, upperLeft, lowerRight)
			want := Intensity(EscapeTime(point, 225))
			if got := pixels[row*bounds.Width+column]; got != want {
				t.Errorf("pixel (%d, %d) = %d, want %d", column, row, got, want)
			}
		}
	}

	// (-4, 2) escapes on the first iteration
	if pixels[0] != 255 {
		t.Errorf("upper left pixel = %d, want 255", pixels[0])
	}
	// (0, 0) never escapes
	if pixels[1*bounds.Width+2] != 0 {
		t.Errorf("origin pixel = %d, want 0", pixels[1*bounds.Width+2])
	}
}

func TestRenderBandEmpty(t *testing.T) {
	RenderBand([]byte{}, Bounds{Width: 10, Height: 0}, complex(-1, 1), complex(1, -1), 225)
	RenderBand(nil, Bounds{Width: 10, Height: 0}, complex(-1, 1), complex(1, -1), 225)
}

func TestRenderBandSizeMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for a buffer that does not match the bounds")
		}
	}()
	RenderBand(make([]byte, 5), Bounds{Width: 2, Height: 2}, complex(-1, 1), complex(1, -1), 225)
}

func TestBandViewport(t *testing.T) {
	bounds := Bounds{Width: 8, Height: 8}
	viewport := Viewport{UpperLeft: complex(-2, 2), LowerRight: complex(2, -2)}

	bands := task.Partition(bounds.Width, bounds.Height, 2, task.Ceil)
	top := BandViewport(bounds, viewport, bands[0])
	bottom := BandViewport(bounds, viewport, bands[1])

	if top.UpperLeft != viewport.UpperLeft {
		t.Errorf("top band upper left = %v, want %v", top.UpperLeft, viewport.UpperLeft)
	}
	if top.LowerRight != complex(2, 0) || bottom.UpperLeft != complex(-2, 0) {
		t.Errorf("bands should meet on the real axis: %v, %v", top.LowerRight, bottom.UpperLeft)
	}
	if bottom.LowerRight != viewport.LowerRight {
		t.Errorf("bottom band lower right = %v, want %v", bottom.LowerRight, viewport.LowerRight)
	}
}

func TestMandelbrotSettingsDefaults(t *testing.T) {
	m := NewMandelbrot(Settings{})
	settings := m.Settings()

	if settings.MaxIterations != DefaultMaxIterations {
		t.Errorf("MaxIterations = %d, want %d", settings.MaxIterations, DefaultMaxIterations)
	}
	if settings.Workers != DefaultWorkers {
		t.Errorf("Workers = %d, want %d", settings.Workers, DefaultWorkers)
	}
	if settings.Partition != task.Ceil {
		t.Errorf("Partition = %s, want %s", settings.Partition, task.Ceil)
	}

	if _, escaped := m.EscapeTime(0); escaped {
		t.Error("origin should not escape")
	}
}
