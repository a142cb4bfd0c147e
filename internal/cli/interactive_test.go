package cli

import (
	"reflect"
	"testing"

	"github.com/jkreuzer/roadforge/pkg/extract"
	"github.com/jkreuzer/roadforge/pkg/topology"
)

func TestSetRawValueLiteralDots(t *testing.T) {
	raw := map[string]any{}

	setRawValue(raw, "default.lanenumber", 3.0)
	setRawValue(raw, "grid.x-number", 2.0)

	if raw["default.lanenumber"] != 3.0 {
		t.Errorf("default.lanenumber = %v, want 3", raw["default.lanenumber"])
	}
	if raw["grid.x-number"] != 2.0 {
		t.Errorf("grid.x-number = %v, want 2", raw["grid.x-number"])
	}
}

func TestSetRawValueNested(t *testing.T) {
	raw := map[string]any{}

	setRawValue(raw, "edge_specific.west.lanenumber", 3.0)
	setRawValue(raw, "edge_specific.west.length", 200.0)

	want := map[string]any{
		"edge_specific": map[string]any{
			"west": map[string]any{"lanenumber": 3.0, "length": 200.0},
		},
	}
	if !reflect.DeepEqual(raw, want) {
		t.Errorf("raw = %v, want %v", raw, want)
	}
}

func TestEditedOverridesSurviveNormalization(t *testing.T) {
	raw := map[string]any{"grid.x-number": 1.0, "grid.y-number": 1.0}

	setRawValue(raw, "edge_specific.west.lanenumber", 3.0)
	setRawValue(raw, "edge_specific.east.length", 250.0)

	p, err := extract.Normalize(&extract.Result{Kind: topology.KindGrid, Raw: raw}, topology.Params{})
	if err != nil {
		t.Fatalf("Normalize rejected the edited map: %v", err)
	}
	if p.Overrides["west"].Lanes != 3 {
		t.Errorf("west lanes = %d, want 3", p.Overrides["west"].Lanes)
	}
	if p.Overrides["east"].Length != 250 {
		t.Errorf("east length = %g, want 250", p.Overrides["east"].Length)
	}
}

func TestDeleteRawValue(t *testing.T) {
	raw := map[string]any{
		"default.lanenumber": 2.0,
		"edge_specific": map[string]any{
			"west": map[string]any{"lanenumber": 3.0},
			"east": map[string]any{"lanenumber": 2.0},
		},
	}

	deleteRawValue(raw, "default.lanenumber")
	deleteRawValue(raw, "edge_specific.east")

	if _, ok := raw["default.lanenumber"]; ok {
		t.Error("default.lanenumber not deleted")
	}
	edges := raw["edge_specific"].(map[string]any)
	if _, ok := edges["east"]; ok {
		t.Error("edge_specific.east not deleted")
	}
	if _, ok := edges["west"]; !ok {
		t.Error("edge_specific.west should survive")
	}
}

func TestParseRawValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"3", 3.0},
		{"200.5", 200.5},
		{"true", true},
		{"false", false},
		{"priority", "priority"},
	}

	for _, tt := range tests {
		if got := parseRawValue(tt.in); got != tt.want {
			t.Errorf("parseRawValue(%q) = %v (%T), want %v (%T)", tt.in, got, got, tt.want, tt.want)
		}
	}
}
