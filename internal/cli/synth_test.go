package cli

import (
	"reflect"
	"testing"
)

func TestSynthRawCross(t *testing.T) {
	raw, err := synthRaw(synthOpts{
		kind:      "grid",
		gridX:     1,
		gridY:     1,
		lanes:     2,
		overrides: []string{"west=3:200", "east=2"},
	})
	if err != nil {
		t.Fatalf("synthRaw: %v", err)
	}

	if raw["grid.x-number"] != 1 || raw["grid.y-number"] != 1 {
		t.Errorf("grid dimensions = %v x %v, want 1 x 1", raw["grid.x-number"], raw["grid.y-number"])
	}
	if raw["default.lanenumber"] != 2 {
		t.Errorf("default.lanenumber = %v, want 2", raw["default.lanenumber"])
	}

	edges, ok := raw["edge_specific"].(map[string]any)
	if !ok {
		t.Fatalf("edge_specific = %T, want map", raw["edge_specific"])
	}
	west := map[string]any{"lanenumber": 3, "length": 200.0}
	if !reflect.DeepEqual(edges["west"], west) {
		t.Errorf("west override = %v, want %v", edges["west"], west)
	}
	east := map[string]any{"lanenumber": 2}
	if !reflect.DeepEqual(edges["east"], east) {
		t.Errorf("east override = %v, want %v", edges["east"], east)
	}
}

func TestSynthRawRadial(t *testing.T) {
	raw, err := synthRaw(synthOpts{kind: "grid", gridX: 1, gridY: 1, arms: 5, shape: "y"})
	if err != nil {
		t.Fatalf("synthRaw: %v", err)
	}
	if raw["multi_junction"] != true {
		t.Error("arms flag should set multi_junction")
	}
	if raw["arm_number"] != 5 {
		t.Errorf("arm_number = %v, want 5", raw["arm_number"])
	}
	if raw["arm_shape"] != "Y" {
		t.Errorf("arm_shape = %v, want Y (upper-cased)", raw["arm_shape"])
	}
}

func TestSynthRawOmitsUnsetFlags(t *testing.T) {
	raw, err := synthRaw(synthOpts{kind: "spider", gridX: 1, gridY: 1})
	if err != nil {
		t.Fatalf("synthRaw: %v", err)
	}
	for _, key := range []string{"default.lanenumber", "default.street-length", "default.speed", "junctions.type", "arm_number", "edge_specific"} {
		if _, ok := raw[key]; ok {
			t.Errorf("unset flag produced key %q", key)
		}
	}
}

func TestParseOverrideFlag(t *testing.T) {
	tests := []struct {
		spec    string
		dir     string
		attrs   map[string]any
		wantErr bool
	}{
		{spec: "west=3:200", dir: "west", attrs: map[string]any{"lanenumber": 3, "length": 200.0}},
		{spec: "north=2", dir: "north", attrs: map[string]any{"lanenumber": 2}},
		{spec: "south=:150", dir: "south", attrs: map[string]any{"length": 150.0}},
		{spec: "west", wantErr: true},
		{spec: "west=abc", wantErr: true},
		{spec: "west=3:xyz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			dir, attrs, err := parseOverrideFlag(tt.spec)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseOverrideFlag(%q) succeeded, want error", tt.spec)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseOverrideFlag(%q): %v", tt.spec, err)
			}
			if dir != tt.dir {
				t.Errorf("dir = %q, want %q", dir, tt.dir)
			}
			if !reflect.DeepEqual(attrs, tt.attrs) {
				t.Errorf("attrs = %v, want %v", attrs, tt.attrs)
			}
		})
	}
}
