package topology

import (
	"math"
	"testing"

	"github.com/jkreuzer/roadforge/pkg/errors"
)

const coordEps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < coordEps
}

func TestRadialLayoutPlacement(t *testing.T) {
	pts, err := RadialLayout(4, 100)
	if err != nil {
		t.Fatalf("RadialLayout: %v", err)
	}
	want := []Point{
		{X: 100, Y: 0},
		{X: 0, Y: 100},
		{X: -100, Y: 0},
		{X: 0, Y: -100},
	}
	for i, p := range pts {
		if !almostEqual(p.X, want[i].X) || !almostEqual(p.Y, want[i].Y) {
			t.Errorf("point %d = (%g, %g), want (%g, %g)", i, p.X, p.Y, want[i].X, want[i].Y)
		}
	}
}

func TestRadialLayoutProperties(t *testing.T) {
	for _, n := range []int{2, 3, 5, 7, 12} {
		pts, err := RadialLayout(n, 250)
		if err != nil {
			t.Fatalf("RadialLayout(%d): %v", n, err)
		}
		if len(pts) != n {
			t.Fatalf("got %d points, want %d", len(pts), n)
		}
		seen := map[Point]bool{}
		for i, p := range pts {
			if r := math.Hypot(p.X, p.Y); !almostEqual(r, 250) {
				t.Errorf("n=%d point %d at distance %g, want 250", n, i, r)
			}
			key := Point{X: math.Round(p.X * 1e6), Y: math.Round(p.Y * 1e6)}
			if seen[key] {
				t.Errorf("n=%d point %d duplicates an earlier point", n, i)
			}
			seen[key] = true
		}
	}
}

func TestRadialLayoutDeterministic(t *testing.T) {
	first, err := RadialLayout(5, 100)
	if err != nil {
		t.Fatalf("RadialLayout: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := RadialLayout(5, 100)
		if err != nil {
			t.Fatalf("RadialLayout: %v", err)
		}
		for j := range first {
			if first[j] != again[j] {
				t.Fatalf("run %d point %d = %v, want %v", i, j, again[j], first[j])
			}
		}
	}
}

func TestRadialLayoutErrors(t *testing.T) {
	if _, err := RadialLayout(1, 100); !errors.Is(err, errors.ErrCodeInvalidTopology) {
		t.Errorf("1 arm: code = %q, want INVALID_TOPOLOGY", errors.GetCode(err))
	}
	if _, err := RadialLayout(4, 0); !errors.Is(err, errors.ErrCodeInvalidGeometry) {
		t.Errorf("zero length: code = %q, want INVALID_GEOMETRY", errors.GetCode(err))
	}
	if _, err := RadialLayout(4, -5); !errors.Is(err, errors.ErrCodeInvalidGeometry) {
		t.Errorf("negative length: code = %q, want INVALID_GEOMETRY", errors.GetCode(err))
	}
}

func TestTLayout(t *testing.T) {
	pts, err := TLayout(100)
	if err != nil {
		t.Fatalf("TLayout: %v", err)
	}
	want := []Point{
		{X: 100, Y: 0},
		{X: -100, Y: 0},
		{X: 0, Y: 100},
	}
	for i, p := range pts {
		if p != want[i] {
			t.Errorf("point %d = %v, want %v", i, p, want[i])
		}
	}

	if _, err := TLayout(0); !errors.Is(err, errors.ErrCodeInvalidGeometry) {
		t.Errorf("zero length: code = %q, want INVALID_GEOMETRY", errors.GetCode(err))
	}
}

func TestCrossLayout(t *testing.T) {
	pts, err := CrossLayout(map[string]float64{
		DirWest:  200,
		DirEast:  300,
		DirNorth: 100,
		DirSouth: 100,
	})
	if err != nil {
		t.Fatalf("CrossLayout: %v", err)
	}
	want := map[string]Point{
		DirWest:  {X: -200, Y: 0},
		DirEast:  {X: 300, Y: 0},
		DirNorth: {X: 0, Y: 100},
		DirSouth: {X: 0, Y: -100},
	}
	for dir, p := range want {
		if pts[dir] != p {
			t.Errorf("%s = %v, want %v", dir, pts[dir], p)
		}
	}
}

func TestCrossLayoutRejectsMissingDirection(t *testing.T) {
	_, err := CrossLayout(map[string]float64{DirWest: 100, DirEast: 100, DirNorth: 100})
	if !errors.Is(err, errors.ErrCodeInvalidGeometry) {
		t.Errorf("code = %q, want INVALID_GEOMETRY", errors.GetCode(err))
	}
}
