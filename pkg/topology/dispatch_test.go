package topology

import (
	"testing"

	"github.com/jkreuzer/roadforge/pkg/errors"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		kind string
		p    Params
		want Backend
	}{
		{
			name: "1x1 grid with overrides is cross",
			kind: KindGrid,
			p:    Params{GridX: 1, GridY: 1, Overrides: map[string]Override{DirWest: {Lanes: 3}}},
			want: BackendCross,
		},
		{
			name: "1x1 grid with overrides and explicit 4 arms is cross",
			kind: KindGrid,
			p:    Params{GridX: 1, GridY: 1, ArmCount: 4, Overrides: map[string]Override{DirWest: {Lanes: 3}}},
			want: BackendCross,
		},
		{
			name: "overrides with conflicting arm count is radial",
			kind: KindGrid,
			p:    Params{GridX: 1, GridY: 1, ArmCount: 5, Overrides: map[string]Override{DirWest: {Lanes: 3}}},
			want: BackendRadial,
		},
		{
			name: "explicit arm count is radial",
			kind: KindGrid,
			p:    Params{GridX: 1, GridY: 1, ArmCount: 5},
			want: BackendRadial,
		},
		{
			name: "multi-junction flag is radial",
			kind: KindGrid,
			p:    Params{GridX: 1, GridY: 1, MultiJunction: true},
			want: BackendRadial,
		},
		{
			name: "plain 1x1 grid passes through",
			kind: KindGrid,
			p:    Params{GridX: 1, GridY: 1},
			want: BackendPassthrough,
		},
		{
			name: "larger grid with overrides passes through",
			kind: KindGrid,
			p:    Params{GridX: 3, GridY: 3, Overrides: map[string]Override{DirWest: {Lanes: 3}}},
			want: BackendPassthrough,
		},
		{
			name: "spider passes through",
			kind: KindSpider,
			p:    Params{},
			want: BackendPassthrough,
		},
		{
			name: "random passes through",
			kind: KindRandom,
			p:    Params{},
			want: BackendPassthrough,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify(tt.kind, tt.p)
			if err != nil {
				t.Fatalf("Classify: %v", err)
			}
			if got != tt.want {
				t.Errorf("Classify = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClassifyRejectsUnknownKind(t *testing.T) {
	_, err := Classify("mesh", Params{})
	if !errors.Is(err, errors.ErrCodeInvalidTopology) {
		t.Errorf("code = %q, want INVALID_TOPOLOGY", errors.GetCode(err))
	}
}

func TestSelect(t *testing.T) {
	if Select(BackendCross) == nil {
		t.Error("cross backend has no synthesizer")
	}
	if Select(BackendRadial) == nil {
		t.Error("radial backend has no synthesizer")
	}
	if Select(BackendPassthrough) != nil {
		t.Error("passthrough backend should have no synthesizer")
	}
}

func TestSelectedSynthesizersProducePlans(t *testing.T) {
	plan, err := Select(BackendCross).Synthesize(Params{
		Overrides: map[string]Override{DirWest: {Lanes: 2}},
	})
	if err != nil {
		t.Fatalf("cross synthesize: %v", err)
	}
	if len(plan.Nodes) != 5 {
		t.Errorf("cross nodes = %d, want 5", len(plan.Nodes))
	}

	plan, err = Select(BackendRadial).Synthesize(Params{ArmCount: 6})
	if err != nil {
		t.Fatalf("radial synthesize: %v", err)
	}
	if len(plan.Nodes) != 7 {
		t.Errorf("radial nodes = %d, want 7", len(plan.Nodes))
	}
}

func TestBackendString(t *testing.T) {
	tests := []struct {
		b    Backend
		want string
	}{
		{BackendCross, "cross"},
		{BackendRadial, "radial"},
		{BackendPassthrough, "passthrough"},
		{Backend(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.b.String(); got != tt.want {
			t.Errorf("Backend(%d).String() = %q, want %q", tt.b, got, tt.want)
		}
	}
}
