package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jkreuzer/roadforge/pkg/errors"
)

const sampleNet = `<?xml version="1.0" encoding="UTF-8"?>
<net version="1.16">
    <edge id=":C_0" function="internal">
        <lane id=":C_0_0" index="0" speed="6.5" length="9.0"/>
    </edge>
    <edge id="CE" from="C" to="E" priority="-1">
        <lane id="CE_0" index="0" speed="13.9" length="100.0"/>
        <lane id="CE_1" index="1" speed="13.9" length="100.0"/>
    </edge>
    <edge id="EC" from="E" to="C" priority="-1">
        <lane id="EC_0" index="0" speed="13.9" length="100.0"/>
    </edge>
    <junction id="C" type="traffic_light" x="0.00" y="0.00"/>
    <junction id="E" type="priority" x="100.00" y="0.00"/>
    <junction id=":C_0" type="internal" x="1.00" y="1.00"/>
</net>
`

func writeNet(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.net.xml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write network: %v", err)
	}
	return path
}

func TestParseNetwork(t *testing.T) {
	net, err := ParseNetwork(writeNet(t, sampleNet))
	if err != nil {
		t.Fatalf("ParseNetwork: %v", err)
	}

	if len(net.Junctions) != 2 {
		t.Fatalf("junctions = %d, want 2 (internal skipped)", len(net.Junctions))
	}
	if net.Junctions[0].ID != "C" || net.Junctions[0].Type != "traffic_light" {
		t.Errorf("junction[0] = %+v", net.Junctions[0])
	}
	if net.Junctions[1].X != 100 {
		t.Errorf("junction E x = %g, want 100", net.Junctions[1].X)
	}

	if len(net.Edges) != 2 {
		t.Fatalf("edges = %d, want 2 (internal skipped)", len(net.Edges))
	}
	if net.Edges[0].Lanes != 2 {
		t.Errorf("CE lanes = %d, want 2", net.Edges[0].Lanes)
	}
	if net.Edges[1].From != "E" || net.Edges[1].To != "C" {
		t.Errorf("edge[1] = %+v", net.Edges[1])
	}
}

func TestParseNetworkErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := ParseNetwork(filepath.Join(t.TempDir(), "absent.net.xml"))
		if !errors.Is(err, errors.ErrCodeFileNotFound) {
			t.Errorf("error code = %q, want FILE_NOT_FOUND", errors.GetCode(err))
		}
	})
	t.Run("malformed xml", func(t *testing.T) {
		_, err := ParseNetwork(writeNet(t, "<net><junction"))
		if !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("error code = %q, want INVALID_FORMAT", errors.GetCode(err))
		}
	})
	t.Run("no junctions", func(t *testing.T) {
		_, err := ParseNetwork(writeNet(t, "<net></net>"))
		if !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("error code = %q, want INVALID_FORMAT", errors.GetCode(err))
		}
	})
}

func TestToDOTPinsPositions(t *testing.T) {
	net := &Network{
		Junctions: []Junction{
			{ID: "C", X: 0, Y: 0, Type: "traffic_light"},
			{ID: "E", X: 100, Y: 0, Type: "priority"},
		},
		Edges: []NetEdge{
			{ID: "CE", From: "C", To: "E", Lanes: 2},
			{ID: "EC", From: "E", To: "C", Lanes: 1},
		},
	}
	dot := ToDOT(net, Options{})

	for _, want := range []string{
		"layout=neato",
		`"C" [pos="0.000,0.000!"]`,
		`"E" [pos="2.000,0.000!"]`,
		`"C" -> "E"`,
		`"E" -> "C"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTLabels(t *testing.T) {
	net := &Network{
		Junctions: []Junction{{ID: "C", Type: "traffic_light"}},
		Edges:     []NetEdge{{ID: "CE", From: "C", To: "C", Lanes: 3}},
	}
	dot := ToDOT(net, Options{Labels: true})
	if !strings.Contains(dot, `label="3"`) {
		t.Errorf("DOT missing lane label:\n%s", dot)
	}
	if !strings.Contains(dot, `xlabel="traffic_light"`) {
		t.Errorf("DOT missing junction label:\n%s", dot)
	}
}
