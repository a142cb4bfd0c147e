package topology

import (
	"math"

	"github.com/jkreuzer/roadforge/pkg/errors"
)

// Point is a 2-D coordinate in meters. The center node is always the origin.
type Point struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// RadialLayout places n peripheral nodes evenly around the origin at the
// given distance. Arm i sits at angle i·(360°/n), measured counter-clockwise
// from the positive X axis. Coordinates are deterministic and pairwise
// distinct for length > 0 and n >= 2.
func RadialLayout(n int, length float64) ([]Point, error) {
	if n < 2 {
		return nil, errors.New(errors.ErrCodeInvalidTopology,
			"a junction needs at least 2 arms, got %d", n)
	}
	if length <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidGeometry,
			"arm length must be > 0, got %g", length)
	}

	step := 2 * math.Pi / float64(n)
	pts := make([]Point, n)
	for i := range pts {
		angle := float64(i) * step
		pts[i] = Point{
			X: length * math.Cos(angle),
			Y: length * math.Sin(angle),
		}
	}
	return pts, nil
}

// TLayout places three peripheral nodes in the fixed T arrangement: two
// colinear arms on the X axis plus one perpendicular arm on the positive
// Y axis. This overrides the 120° trisection RadialLayout would produce and
// is the historical default for every 3-arm junction; use Params.Shape to
// request the symmetric variant instead.
func TLayout(length float64) ([]Point, error) {
	if length <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidGeometry,
			"arm length must be > 0, got %g", length)
	}
	return []Point{
		{X: length, Y: 0},
		{X: -length, Y: 0},
		{X: 0, Y: length},
	}, nil
}

// CrossLayout places the four compass-direction nodes of the cross topology.
// Each direction sits on its axis at that direction's own distance, so the
// four arms may have independent lengths. The returned map is keyed by
// direction name.
func CrossLayout(lengths map[string]float64) (map[string]Point, error) {
	pts := make(map[string]Point, len(Directions))
	for _, dir := range Directions {
		length, ok := lengths[dir]
		if !ok || length <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidGeometry,
				"length for %s must be > 0, got %g", dir, length)
		}
		pts[dir] = Point{
			X: axisX(dir) * length,
			Y: axisY(dir) * length,
		}
	}
	return pts, nil
}

// axisX and axisY give the unit direction of each compass arm.
func axisX(dir string) float64 {
	switch dir {
	case DirEast:
		return 1
	case DirWest:
		return -1
	}
	return 0
}

func axisY(dir string) float64 {
	switch dir {
	case DirNorth:
		return 1
	case DirSouth:
		return -1
	}
	return 0
}
