package topology

// crossDirs fixes the node emission order of the cross topology and the
// short node id for each compass direction.
var crossDirs = []struct {
	NodeID string
	Dir    string
}{
	{"E", DirEast},
	{"W", DirWest},
	{"N", DirNorth},
	{"S", DirSouth},
}

// crossEdges fixes the edge emission order: outbound then inbound per
// direction, east/west before north/south. Edge ids concatenate the
// endpoint node ids.
var crossEdges = []struct {
	ID       string
	From, To string
	Dir      string
}{
	{"CE", CenterID, "E", DirEast},
	{"EC", "E", CenterID, DirEast},
	{"CW", CenterID, "W", DirWest},
	{"WC", "W", CenterID, DirWest},
	{"CN", CenterID, "N", DirNorth},
	{"NC", "N", CenterID, DirNorth},
	{"CS", CenterID, "S", DirSouth},
	{"SC", "S", CenterID, DirSouth},
}

// crossMovements fixes the movement emission order between arms. Each entry
// names an inbound edge, an outbound edge, and the directions whose lane
// counts bound the lane product.
var crossMovements = []struct {
	From, To       string
	FromDir, ToDir string
}{
	{"EC", "CN", DirEast, DirNorth},
	{"EC", "CS", DirEast, DirSouth},
	{"EC", "CW", DirEast, DirWest},

	{"WC", "CN", DirWest, DirNorth},
	{"WC", "CS", DirWest, DirSouth},
	{"WC", "CE", DirWest, DirEast},

	{"NC", "CE", DirNorth, DirEast},
	{"NC", "CW", DirNorth, DirWest},
	{"NC", "CS", DirNorth, DirSouth},

	{"SC", "CE", DirSouth, DirEast},
	{"SC", "CW", DirSouth, DirWest},
	{"SC", "CN", DirSouth, DirNorth},
}

// Cross synthesizes the fixed 4-arm intersection: a center node, four
// peripheral nodes on the compass axes, eight directional edges, and the
// full 4-arm connection matrix.
//
// Lane count and length honor the per-direction overrides in p.Overrides;
// speed and road type are shared across all eight edges and cannot be
// overridden per direction. Peripheral nodes are priority-controlled; the
// center uses p.Control.
func Cross(p Params) (*Plan, error) {
	p = p.WithDefaults()
	if err := p.Validate(); err != nil {
		return nil, err
	}

	lengths := make(map[string]float64, len(Directions))
	for _, dir := range Directions {
		lengths[dir] = p.override(dir).Length
	}
	pts, err := CrossLayout(lengths)
	if err != nil {
		return nil, err
	}

	plan := &Plan{
		Nodes: []Node{{ID: CenterID, X: 0, Y: 0, Type: p.Control}},
	}
	for _, d := range crossDirs {
		pt := pts[d.Dir]
		plan.Nodes = append(plan.Nodes, Node{ID: d.NodeID, X: pt.X, Y: pt.Y, Type: ControlPriority})
	}

	for _, e := range crossEdges {
		plan.Edges = append(plan.Edges, Edge{
			ID:    e.ID,
			From:  e.From,
			To:    e.To,
			Lanes: p.override(e.Dir).Lanes,
			Speed: p.Speed,
			Type:  p.RoadType,
		})
	}

	for _, m := range crossMovements {
		plan.Connections = append(plan.Connections,
			laneProduct(m.From, m.To, p.override(m.FromDir).Lanes, p.override(m.ToDir).Lanes)...)
	}

	return plan, nil
}
