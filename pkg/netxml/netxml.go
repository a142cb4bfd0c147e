// Package netxml serializes synthesized plans into the three plain-XML
// intermediate records netconvert consumes: a nodes file, an edges file, and
// a connections file.
//
// The records are the only externally visible output of a synthesis call.
// They are written all-or-nothing into a caller-provided directory: either
// all three files exist and are internally consistent, or none survive.
// Callers running concurrent generations must give each call its own
// directory, since the file names inside it are fixed.
package netxml

import (
	"encoding/xml"
	"os"
	"path/filepath"

	"github.com/jkreuzer/roadforge/pkg/errors"
	"github.com/jkreuzer/roadforge/pkg/topology"
)

// Fixed record file names inside a scratch directory.
const (
	NodesFile       = "nodes.xml"
	EdgesFile       = "edges.xml"
	ConnectionsFile = "connections.xml"
)

// Header is the XML declaration written before each record.
const Header = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// RecordSet references the three written record files by path.
type RecordSet struct {
	Nodes       string `json:"nodes"`
	Edges       string `json:"edges"`
	Connections string `json:"connections"`
}

// nodesDoc is the on-disk shape of the nodes record.
type nodesDoc struct {
	XMLName xml.Name  `xml:"nodes"`
	Nodes   []nodeXML `xml:"node"`
}

type nodeXML struct {
	ID   string  `xml:"id,attr"`
	X    float64 `xml:"x,attr"`
	Y    float64 `xml:"y,attr"`
	Type string  `xml:"type,attr"`
}

// edgesDoc is the on-disk shape of the edges record.
type edgesDoc struct {
	XMLName xml.Name  `xml:"edges"`
	Edges   []edgeXML `xml:"edge"`
}

type edgeXML struct {
	ID       string  `xml:"id,attr"`
	From     string  `xml:"from,attr"`
	To       string  `xml:"to,attr"`
	NumLanes int     `xml:"numLanes,attr"`
	Speed    float64 `xml:"speed,attr"`
	Type     string  `xml:"type,attr"`
}

// connectionsDoc is the on-disk shape of the connections record.
type connectionsDoc struct {
	XMLName     xml.Name        `xml:"connections"`
	Connections []connectionXML `xml:"connection"`
}

type connectionXML struct {
	From     string `xml:"from,attr"`
	To       string `xml:"to,attr"`
	FromLane int    `xml:"fromLane,attr"`
	ToLane   int    `xml:"toLane,attr"`
}

// MarshalNodes renders the nodes record for a plan.
func MarshalNodes(plan *topology.Plan) ([]byte, error) {
	doc := nodesDoc{Nodes: make([]nodeXML, len(plan.Nodes))}
	for i, n := range plan.Nodes {
		doc.Nodes[i] = nodeXML{ID: n.ID, X: n.X, Y: n.Y, Type: n.Type}
	}
	return marshal(doc)
}

// MarshalEdges renders the edges record for a plan.
func MarshalEdges(plan *topology.Plan) ([]byte, error) {
	doc := edgesDoc{Edges: make([]edgeXML, len(plan.Edges))}
	for i, e := range plan.Edges {
		doc.Edges[i] = edgeXML{
			ID:       e.ID,
			From:     e.From,
			To:       e.To,
			NumLanes: e.Lanes,
			Speed:    e.Speed,
			Type:     e.Type,
		}
	}
	return marshal(doc)
}

// MarshalConnections renders the connections record for a plan.
func MarshalConnections(plan *topology.Plan) ([]byte, error) {
	doc := connectionsDoc{Connections: make([]connectionXML, len(plan.Connections))}
	for i, c := range plan.Connections {
		doc.Connections[i] = connectionXML{
			From:     c.From,
			To:       c.To,
			FromLane: c.FromLane,
			ToLane:   c.ToLane,
		}
	}
	return marshal(doc)
}

func marshal(doc any) ([]byte, error) {
	data, err := xml.MarshalIndent(doc, "", "    ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode record")
	}
	return append([]byte(Header), append(data, '\n')...), nil
}

// WriteRecords validates the plan and writes all three records into dir,
// creating it if needed. On any failure the partially written files are
// removed so no half-built record set is ever handed to the compiler.
func WriteRecords(dir string, plan *topology.Plan) (RecordSet, error) {
	if err := plan.Validate(); err != nil {
		return RecordSet{}, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return RecordSet{}, errors.Wrap(errors.ErrCodeInternal, err, "create record dir %s", dir)
	}

	rec := RecordSet{
		Nodes:       filepath.Join(dir, NodesFile),
		Edges:       filepath.Join(dir, EdgesFile),
		Connections: filepath.Join(dir, ConnectionsFile),
	}

	written := make([]string, 0, 3)
	cleanup := func() {
		for _, path := range written {
			_ = os.Remove(path)
		}
	}

	for _, step := range []struct {
		path    string
		marshal func(*topology.Plan) ([]byte, error)
	}{
		{rec.Nodes, MarshalNodes},
		{rec.Edges, MarshalEdges},
		{rec.Connections, MarshalConnections},
	} {
		data, err := step.marshal(plan)
		if err != nil {
			cleanup()
			return RecordSet{}, err
		}
		if err := os.WriteFile(step.path, data, 0644); err != nil {
			cleanup()
			return RecordSet{}, errors.Wrap(errors.ErrCodeInternal, err, "write %s", step.path)
		}
		written = append(written, step.path)
	}

	return rec, nil
}
