// Package render draws compiled networks. It parses the .net.xml the
// compiler produced, emits a position-pinned DOT description, and renders it
// to SVG or PNG with Graphviz. For an interactive view the CLI hands the
// network to sumo-gui instead.
package render

import (
	"encoding/xml"
	"os"
	"strings"

	"github.com/jkreuzer/roadforge/pkg/errors"
)

// Junction is one plain junction from a compiled network.
type Junction struct {
	ID   string
	X    float64
	Y    float64
	Type string
}

// NetEdge is one plain edge from a compiled network.
type NetEdge struct {
	ID    string
	From  string
	To    string
	Lanes int
}

// Network is the drawable subset of a compiled .net.xml file.
type Network struct {
	Junctions []Junction
	Edges     []NetEdge
}

// netFile mirrors the parts of the .net.xml schema we read. Internal
// junctions and edges (":"-prefixed ids, function="internal") belong to the
// compiler's intersection model and are skipped.
type netFile struct {
	XMLName   xml.Name `xml:"net"`
	Junctions []struct {
		ID   string  `xml:"id,attr"`
		X    float64 `xml:"x,attr"`
		Y    float64 `xml:"y,attr"`
		Type string  `xml:"type,attr"`
	} `xml:"junction"`
	Edges []struct {
		ID       string `xml:"id,attr"`
		From     string `xml:"from,attr"`
		To       string `xml:"to,attr"`
		Function string `xml:"function,attr"`
		Lanes    []struct {
			ID string `xml:"id,attr"`
		} `xml:"lane"`
	} `xml:"edge"`
}

// ParseNetwork reads a compiled network file into its drawable form.
func ParseNetwork(path string) (*Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "network file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read network file %s", path)
	}

	var f netFile
	if err := xml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse network file %s", path)
	}

	net := &Network{}
	for _, j := range f.Junctions {
		if strings.HasPrefix(j.ID, ":") || j.Type == "internal" {
			continue
		}
		net.Junctions = append(net.Junctions, Junction{ID: j.ID, X: j.X, Y: j.Y, Type: j.Type})
	}
	for _, e := range f.Edges {
		if e.Function == "internal" || strings.HasPrefix(e.ID, ":") {
			continue
		}
		net.Edges = append(net.Edges, NetEdge{ID: e.ID, From: e.From, To: e.To, Lanes: len(e.Lanes)})
	}

	if len(net.Junctions) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "network file %s contains no junctions", path)
	}
	return net, nil
}
