package topology

import (
	"github.com/jkreuzer/roadforge/pkg/errors"
)

// MatrixArm describes one arm's edge pair for connection matrix generation:
// the inbound edge (arm → center), the outbound edge (center → arm), and the
// arm's lane count.
type MatrixArm struct {
	In    string
	Out   string
	Lanes int
}

// Movements produces the exhaustive lane-level connection matrix for a set
// of arms: one connection for every ordered pair of distinct arms (i, j) and
// every (from-lane, to-lane) pair in the Cartesian product of arm i's and
// arm j's lane ranges. U-turns (i == j) are never emitted, and no capacity
// limiting or deduplication is applied: any lane can reach any lane of any
// other arm.
//
// For n arms with uniform lane count L the result has exactly n·(n−1)·L²
// entries, in (i, j, from-lane, to-lane) loop order.
func Movements(arms []MatrixArm) ([]Connection, error) {
	if len(arms) < 2 {
		return nil, errors.New(errors.ErrCodeInvalidTopology,
			"connection matrix needs at least 2 arms, got %d", len(arms))
	}
	for _, a := range arms {
		if a.Lanes < 1 {
			return nil, errors.New(errors.ErrCodeInvalidGeometry,
				"lane count must be >= 1, got %d for edge %q", a.Lanes, a.In)
		}
	}

	var conns []Connection
	for i, from := range arms {
		for j, to := range arms {
			if i == j {
				continue
			}
			conns = append(conns, laneProduct(from.In, to.Out, from.Lanes, to.Lanes)...)
		}
	}
	return conns, nil
}

// laneProduct emits one connection per (from-lane, to-lane) pair between a
// single inbound/outbound edge pair.
func laneProduct(from, to string, fromLanes, toLanes int) []Connection {
	conns := make([]Connection, 0, fromLanes*toLanes)
	for a := 0; a < fromLanes; a++ {
		for b := 0; b < toLanes; b++ {
			conns = append(conns, Connection{From: from, To: to, FromLane: a, ToLane: b})
		}
	}
	return conns
}
