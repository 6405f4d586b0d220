package draw

import (
	"image"
	"image/color"
	"testing"

	"github.com/BeatGlow/fbdraw/pixel"
)

var testGeometry = pixel.Geometry{Width: 64, Height: 48, Stride: 128}

const red pixel.Color = 0xF800

// recorder records the order in which pixels are set.
type recorder struct {
	*image.RGBA
	points []image.Point
}

func newRecorder(r image.Rectangle) *recorder {
	return &recorder{RGBA: image.NewRGBA(r)}
}

func (r *recorder) Set(x, y int, c color.Color) {
	r.points = append(r.points, image.Pt(x, y))
	r.RGBA.Set(x, y, c)
}

func abs2(p image.Point) (int, int) {
	return abs(p.X), abs(p.Y)
}

func TestLine(t *testing.T) {
	tests := []struct {
		a, b image.Point
	}{
		{image.Pt(0, 0), image.Pt(0, 0)},
		{image.Pt(0, 0), image.Pt(5, 0)},
		{image.Pt(5, 0), image.Pt(0, 0)},
		{image.Pt(3, 1), image.Pt(3, 20)},
		{image.Pt(3, 20), image.Pt(3, 1)},
		{image.Pt(0, 0), image.Pt(20, 20)},
		{image.Pt(20, 0), image.Pt(0, 20)},
		{image.Pt(0, 20), image.Pt(20, 0)},
		{image.Pt(20, 20), image.Pt(0, 0)},
		// All eight octants around (30, 20).
		{image.Pt(30, 20), image.Pt(45, 25)},
		{image.Pt(30, 20), image.Pt(35, 40)},
		{image.Pt(30, 20), image.Pt(25, 40)},
		{image.Pt(30, 20), image.Pt(10, 25)},
		{image.Pt(30, 20), image.Pt(10, 15)},
		{image.Pt(30, 20), image.Pt(25, 0)},
		{image.Pt(30, 20), image.Pt(35, 0)},
		{image.Pt(30, 20), image.Pt(50, 15)},
	}
	for _, test := range tests {
		t.Run(test.a.String()+"-"+test.b.String(), func(it *testing.T) {
			r := newRecorder(testGeometry.Bounds())
			LinePt(r, test.a, test.b, red)

			dx, dy := abs2(test.b.Sub(test.a))
			if want := max(dx, dy) + 1; len(r.points) != want {
				it.Fatalf("expected %d pixels, got %d: %v", want, len(r.points), r.points)
			}
			if v := r.points[0]; !v.Eq(test.a) {
				it.Errorf("expected first pixel at %s, got %s", test.a, v)
			}
			if v := r.points[len(r.points)-1]; !v.Eq(test.b) {
				it.Errorf("expected last pixel at %s, got %s", test.b, v)
			}
			seen := make(map[image.Point]bool)
			for i, p := range r.points {
				if seen[p] {
					it.Errorf("pixel %s plotted twice", p)
				}
				seen[p] = true
				if i == 0 {
					continue
				}
				// 8-connected: every step moves to a neighbouring pixel.
				if sx, sy := abs2(p.Sub(r.points[i-1])); max(sx, sy) != 1 {
					it.Errorf("gap between %s and %s", r.points[i-1], p)
				}
			}
		})
	}
}

func TestLineOctant(t *testing.T) {
	s := pixel.New(testGeometry)
	Line(s, 0, 0, 5, 2, red)

	want := []image.Point{{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}, {5, 2}}
	testSurfaceEquals(t, s, want, red)
}

func TestLineHorizontal(t *testing.T) {
	s := pixel.New(testGeometry)
	Line(s, 0, 0, 5, 0, red)

	var want []image.Point
	for x := 0; x <= 5; x++ {
		want = append(want, image.Pt(x, 0))
	}
	testSurfaceEquals(t, s, want, red)
}

func TestLinePoint(t *testing.T) {
	s := pixel.New(testGeometry)
	Line(s, 7, 9, 7, 9, red)
	testSurfaceEquals(t, s, []image.Point{{7, 9}}, red)
}

func TestLineClipped(t *testing.T) {
	s := pixel.New(testGeometry)
	Line(s, -10, 5, testGeometry.Width+10, 5, red)

	var want []image.Point
	for x := 0; x < testGeometry.Width; x++ {
		want = append(want, image.Pt(x, 5))
	}
	testSurfaceEquals(t, s, want, red)

	s.Clear()
	Line(s, -10, -10, -1, -50, red)
	testSurfaceEquals(t, s, nil, red)
}

func TestPixel(t *testing.T) {
	s := pixel.New(testGeometry)
	for _, p := range []image.Point{{-1, 0}, {0, -1}, {testGeometry.Width, 0}, {0, testGeometry.Height}, {-5, -5}} {
		Pixel(s, p.X, p.Y, red)
	}
	testSurfaceEquals(t, s, nil, red)

	Pixel(s, 3, 4, color.RGBA{R: 0xff, A: 0xff})
	if v := s.Pix[3+4*testGeometry.Width]; v != red {
		t.Errorf("expected pixel (3,4) to be %#04x, got %#04x", red, v)
	}

	// Non-surface destinations get the same bounds policy.
	r := newRecorder(testGeometry.Bounds())
	Pixel(r, -1, -1, red)
	Pixel(r, testGeometry.Width, 0, red)
	if len(r.points) != 0 {
		t.Errorf("expected no pixels to be set, got %v", r.points)
	}
}

func TestRectangle(t *testing.T) {
	s := pixel.New(testGeometry)
	Rectangle(s, image.Rect(1, 1, 4, 4), red)

	want := []image.Point{
		{1, 1}, {2, 1}, {3, 1},
		{1, 2}, {3, 2},
		{1, 3}, {2, 3}, {3, 3},
	}
	testSurfaceEquals(t, s, want, red)
}

func TestBox(t *testing.T) {
	s := pixel.New(testGeometry)
	Box(s, image.Rect(2, 2, 4, 5), red)

	want := []image.Point{
		{2, 2}, {3, 2},
		{2, 3}, {3, 3},
		{2, 4}, {3, 4},
	}
	testSurfaceEquals(t, s, want, red)
}

func TestBoxFill(t *testing.T) {
	s := pixel.New(testGeometry)
	Box(s, image.Rect(-5, -5, testGeometry.Width+5, testGeometry.Height+5), red)
	for i, v := range s.Pix {
		if v != red {
			t.Fatalf("pixel %d is %#04x, expected %#04x", i, v, red)
		}
	}

	// Other destinations are filled pixel by pixel.
	r := newRecorder(image.Rect(0, 0, 3, 2))
	Box(r, r.Bounds(), red)
	if len(r.points) != 6 {
		t.Errorf("expected 6 pixels, got %d", len(r.points))
	}
}

func TestGrid(t *testing.T) {
	s := pixel.New(testGeometry)
	Grid(s, 10, red)

	for y := 0; y < testGeometry.Height; y++ {
		for x := 0; x < testGeometry.Width; x++ {
			want := pixel.Black
			if x%10 == 0 || y%10 == 0 {
				want = red
			}
			if v := s.ColorAt(x, y); v != want {
				t.Fatalf("pixel (%d,%d) is %#04x, expected %#04x", x, y, v, want)
			}
		}
	}

	s.Clear()
	Grid(s, 0, red)
	testSurfaceEquals(t, s, nil, red)
}

func testSurfaceEquals(t *testing.T, s *pixel.Surface, points []image.Point, c pixel.Color) {
	t.Helper()
	want := make(map[int]bool, len(points))
	for _, p := range points {
		want[s.PixOffset(p.X, p.Y)] = true
	}
	for i, v := range s.Pix {
		switch {
		case want[i] && v != c:
			t.Errorf("pixel (%d,%d) is %#04x, expected %#04x", i%s.Geometry.Width, i/s.Geometry.Width, v, c)
		case !want[i] && v != pixel.Black:
			t.Errorf("pixel (%d,%d) is %#04x, expected black", i%s.Geometry.Width, i/s.Geometry.Width, v)
		}
	}
}
