// Package topology synthesizes junction topologies from normalized parameters.
//
// The package implements the three synthesis backends used by roadforge:
//
//   - Cross: the fixed 4-arm (east/west/north/south) intersection with
//     independently configurable lanes and length per direction
//   - Radial: the general N-arm intersection with no ring connectivity,
//     only center-to-arm edges
//   - Passthrough: everything else is delegated to netgenerate's native
//     grid/spider/random generators (see the sumo package)
//
// Both emitters produce a Plan: the in-memory form of the three intermediate
// records (nodes, edges, connections) that netconvert compiles into a network.
// Plans are built fresh per call, are fully deterministic for a given
// parameter set, and share no state between calls.
package topology

import (
	"fmt"
	"sort"

	"github.com/jkreuzer/roadforge/pkg/errors"
)

// Junction control types, matching the node type attribute netconvert accepts.
const (
	ControlTrafficLight    = "traffic_light"
	ControlPriority        = "priority"
	ControlRightBeforeLeft = "right_before_left"
)

// CenterID is the reserved identifier of the central junction node.
// Every synthesized plan contains exactly one node with this id.
const CenterID = "C"

// Node is one junction node placed in the plane. Coordinates are meters.
type Node struct {
	ID   string  `json:"id" bson:"id"`
	X    float64 `json:"x" bson:"x"`
	Y    float64 `json:"y" bson:"y"`
	Type string  `json:"type" bson:"type"`
}

// Edge is one unidirectional road segment between two nodes. Every arm
// contributes exactly two edges, one per direction; there are no
// bidirectional edge records.
type Edge struct {
	ID    string  `json:"id" bson:"id"`
	From  string  `json:"from" bson:"from"`
	To    string  `json:"to" bson:"to"`
	Lanes int     `json:"lanes" bson:"lanes"`
	Speed float64 `json:"speed" bson:"speed"` // m/s
	Type  string  `json:"type" bson:"type"`   // road type tag, e.g. "highway.secondary"
}

// Connection is one legal lane-level movement through the junction,
// from a lane of an inbound edge to a lane of an outbound edge.
type Connection struct {
	From     string `json:"from" bson:"from"`
	To       string `json:"to" bson:"to"`
	FromLane int    `json:"from_lane" bson:"from_lane"`
	ToLane   int    `json:"to_lane" bson:"to_lane"`
}

// Plan is the complete synthesized topology: the in-memory form of the
// three intermediate records handed to netconvert.
type Plan struct {
	Nodes       []Node       `json:"nodes" bson:"nodes"`
	Edges       []Edge       `json:"edges" bson:"edges"`
	Connections []Connection `json:"connections" bson:"connections"`
}

// Center returns the central node of the plan.
// Panics if the plan has no center; synthesized plans always have one.
func (p *Plan) Center() Node {
	for _, n := range p.Nodes {
		if n.ID == CenterID {
			return n
		}
	}
	panic("topology: plan has no center node")
}

// Validate checks referential integrity: every edge references defined
// nodes and every connection references defined edges. Synthesized plans
// always pass; the check exists so callers can assert it before handing
// records to the compiler.
func (p *Plan) Validate() error {
	nodes := make(map[string]bool, len(p.Nodes))
	for _, n := range p.Nodes {
		if nodes[n.ID] {
			return errors.New(errors.ErrCodeInternal, "duplicate node id %q", n.ID)
		}
		nodes[n.ID] = true
	}

	edges := make(map[string]Edge, len(p.Edges))
	for _, e := range p.Edges {
		if _, dup := edges[e.ID]; dup {
			return errors.New(errors.ErrCodeInternal, "duplicate edge id %q", e.ID)
		}
		if !nodes[e.From] {
			return errors.New(errors.ErrCodeInternal, "edge %q references undefined node %q", e.ID, e.From)
		}
		if !nodes[e.To] {
			return errors.New(errors.ErrCodeInternal, "edge %q references undefined node %q", e.ID, e.To)
		}
		edges[e.ID] = e
	}

	for _, c := range p.Connections {
		from, ok := edges[c.From]
		if !ok {
			return errors.New(errors.ErrCodeInternal, "connection references undefined edge %q", c.From)
		}
		to, ok := edges[c.To]
		if !ok {
			return errors.New(errors.ErrCodeInternal, "connection references undefined edge %q", c.To)
		}
		if c.FromLane < 0 || c.FromLane >= from.Lanes {
			return errors.New(errors.ErrCodeInternal, "connection %s→%s uses lane %d of %d-lane edge %q",
				c.From, c.To, c.FromLane, from.Lanes, c.From)
		}
		if c.ToLane < 0 || c.ToLane >= to.Lanes {
			return errors.New(errors.ErrCodeInternal, "connection %s→%s uses lane %d of %d-lane edge %q",
				c.From, c.To, c.ToLane, to.Lanes, c.To)
		}
	}

	return nil
}

// Stats summarizes a plan for logging and CLI output.
func (p *Plan) Stats() string {
	return fmt.Sprintf("%d nodes, %d edges, %d connections",
		len(p.Nodes), len(p.Edges), len(p.Connections))
}

// SortedEdgeIDs returns the edge ids in lexicographic order.
func (p *Plan) SortedEdgeIDs() []string {
	ids := make([]string, len(p.Edges))
	for i, e := range p.Edges {
		ids[i] = e.ID
	}
	sort.Strings(ids)
	return ids
}
