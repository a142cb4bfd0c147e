package extract

import (
	"testing"

	"github.com/jkreuzer/roadforge/pkg/errors"
	"github.com/jkreuzer/roadforge/pkg/topology"
)

func TestNormalizeLiftsCommonKeys(t *testing.T) {
	res := &Result{Kind: topology.KindGrid, Raw: map[string]any{
		"default.lanenumber":    2.0,
		"default.street-length": 250.0,
		"default.speed":         27.8,
		"junctions.type":        "priority",
		"grid.x-number":         1.0,
		"grid.y-number":         1.0,
	}}
	p, err := Normalize(res, topology.Params{})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if p.Lanes != 2 {
		t.Errorf("Lanes = %d, want 2", p.Lanes)
	}
	if p.Length != 250 {
		t.Errorf("Length = %g, want 250", p.Length)
	}
	if p.Speed != 27.8 {
		t.Errorf("Speed = %g, want 27.8", p.Speed)
	}
	if p.Control != "priority" {
		t.Errorf("Control = %q, want priority", p.Control)
	}
	if p.GridX != 1 || p.GridY != 1 {
		t.Errorf("GridX/GridY = %d/%d, want 1/1", p.GridX, p.GridY)
	}
}

func TestNormalizeAppliesSeedDefaults(t *testing.T) {
	res := &Result{Kind: topology.KindGrid, Raw: map[string]any{}}
	p, err := Normalize(res, topology.Params{})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if p.Lanes != topology.DefaultLanes {
		t.Errorf("Lanes = %d, want default %d", p.Lanes, topology.DefaultLanes)
	}
	if p.Speed != topology.DefaultSpeed {
		t.Errorf("Speed = %g, want default %g", p.Speed, topology.DefaultSpeed)
	}
	if p.RoadType != topology.DefaultRoadType {
		t.Errorf("RoadType = %q, want default %q", p.RoadType, topology.DefaultRoadType)
	}
}

func TestNormalizeMultiJunction(t *testing.T) {
	res := &Result{Kind: topology.KindGrid, Raw: map[string]any{
		"multi_junction": true,
		"arm_number":     5.0,
		"arm_shape":      "Y",
	}}
	p, err := Normalize(res, topology.Params{})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if !p.MultiJunction {
		t.Error("MultiJunction = false, want true")
	}
	if p.ArmCount != 5 {
		t.Errorf("ArmCount = %d, want 5", p.ArmCount)
	}
	if p.Shape != topology.ShapeY {
		t.Errorf("Shape = %q, want Y", p.Shape)
	}
}

func TestNormalizeOverrides(t *testing.T) {
	res := &Result{Kind: topology.KindGrid, Raw: map[string]any{
		"edge_specific": map[string]any{
			"west": map[string]any{"lanenumber": 3.0, "length": 200.0},
			"east": map[string]any{"lanenumber": 2.0},
		},
	}}
	p, err := Normalize(res, topology.Params{})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	west := p.Overrides["west"]
	if west.Lanes != 3 || west.Length != 200 {
		t.Errorf("west override = %+v, want lanes 3 length 200", west)
	}
	east := p.Overrides["east"]
	if east.Lanes != 2 || east.Length != 0 {
		t.Errorf("east override = %+v, want lanes 2 no length", east)
	}
}

func TestNormalizeCoercesQuotedNumbers(t *testing.T) {
	res := &Result{Kind: topology.KindGrid, Raw: map[string]any{
		"default.lanenumber":    "2",
		"default.street-length": "150.5",
	}}
	p, err := Normalize(res, topology.Params{})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if p.Lanes != 2 {
		t.Errorf("Lanes = %d, want 2", p.Lanes)
	}
	if p.Length != 150.5 {
		t.Errorf("Length = %g, want 150.5", p.Length)
	}
}

func TestNormalizeRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
	}{
		{"non-numeric lanes", map[string]any{"default.lanenumber": "wide"}},
		{"edge_specific not object", map[string]any{"edge_specific": "west"}},
		{"direction not object", map[string]any{"edge_specific": map[string]any{"west": 3.0}}},
		{"unknown direction", map[string]any{"edge_specific": map[string]any{"northwest": map[string]any{"lanenumber": 2.0}}}},
		{"zero lanes", map[string]any{"default.lanenumber": 0.0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := &Result{Kind: topology.KindGrid, Raw: tt.raw}
			if _, err := Normalize(res, topology.Params{}); err == nil {
				t.Error("Normalize succeeded, want error")
			} else if !errors.IsConfig(err) {
				t.Errorf("error code = %q, want a config error", errors.GetCode(err))
			}
		})
	}
}
