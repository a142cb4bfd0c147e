package topology

import (
	"fmt"

	"github.com/jkreuzer/roadforge/pkg/errors"
)

// Radial synthesizes the general N-arm junction: a center node, N peripheral
// nodes, 2N directional edges, and the full N-arm connection matrix.
//
// All arms share a single lane count, length, speed, and road type. Unlike
// the cross emitter there is no per-arm override support; the two emitters
// serve different use cases and keep their asymmetry.
//
// Placement: arms are spread evenly around the center, except for exactly
// three arms, which default to the T layout (two colinear arms plus one
// perpendicular). Setting p.Shape to ShapeY restores the even 120° spread.
//
// A parameter set carrying the multi-junction flag without an explicit arm
// count gets DefaultArmCount arms.
func Radial(p Params) (*Plan, error) {
	p = p.WithDefaults()
	if err := p.Validate(); err != nil {
		return nil, err
	}

	n := p.ArmCount
	if n == 0 && p.MultiJunction {
		n = DefaultArmCount
	}
	if n < 2 {
		return nil, errors.New(errors.ErrCodeInvalidTopology,
			"a junction needs at least 2 arms, got %d", n)
	}
	switch p.Shape {
	case "", ShapeT, ShapeY:
	default:
		return nil, errors.New(errors.ErrCodeInvalidParams, "unknown junction shape %q", p.Shape)
	}

	var (
		pts []Point
		err error
	)
	if n == 3 && p.Shape != ShapeY {
		pts, err = TLayout(p.Length)
	} else {
		pts, err = RadialLayout(n, p.Length)
	}
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		Nodes: []Node{{ID: CenterID, X: 0, Y: 0, Type: p.Control}},
	}
	for i, pt := range pts {
		plan.Nodes = append(plan.Nodes, Node{
			ID:   armNodeID(i),
			X:    pt.X,
			Y:    pt.Y,
			Type: ControlPriority,
		})
	}

	arms := make([]MatrixArm, n)
	for i := 0; i < n; i++ {
		node := armNodeID(i)
		out := CenterID + "_" + node
		in := node + "_" + CenterID
		plan.Edges = append(plan.Edges,
			Edge{ID: out, From: CenterID, To: node, Lanes: p.Lanes, Speed: p.Speed, Type: p.RoadType},
			Edge{ID: in, From: node, To: CenterID, Lanes: p.Lanes, Speed: p.Speed, Type: p.RoadType},
		)
		arms[i] = MatrixArm{In: in, Out: out, Lanes: p.Lanes}
	}

	conns, err := Movements(arms)
	if err != nil {
		return nil, err
	}
	plan.Connections = conns

	return plan, nil
}

// armNodeID names the i-th peripheral node of a radial junction.
func armNodeID(i int) string {
	return fmt.Sprintf("N%d", i)
}
