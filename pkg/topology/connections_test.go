package topology

import (
	"testing"

	"github.com/jkreuzer/roadforge/pkg/errors"
)

func uniformArms(n, lanes int) []MatrixArm {
	arms := make([]MatrixArm, n)
	for i := range arms {
		node := armNodeID(i)
		arms[i] = MatrixArm{In: node + "_C", Out: "C_" + node, Lanes: lanes}
	}
	return arms
}

func TestMovementsCount(t *testing.T) {
	tests := []struct {
		arms  int
		lanes int
		want  int // arms*(arms-1)*lanes^2
	}{
		{2, 1, 2},
		{3, 1, 6},
		{4, 2, 48},
		{5, 2, 80},
		{6, 3, 270},
	}
	for _, tt := range tests {
		conns, err := Movements(uniformArms(tt.arms, tt.lanes))
		if err != nil {
			t.Fatalf("Movements(%d arms, %d lanes): %v", tt.arms, tt.lanes, err)
		}
		if len(conns) != tt.want {
			t.Errorf("%d arms, %d lanes: %d connections, want %d", tt.arms, tt.lanes, len(conns), tt.want)
		}
	}
}

func TestMovementsNoUTurns(t *testing.T) {
	conns, err := Movements(uniformArms(4, 2))
	if err != nil {
		t.Fatalf("Movements: %v", err)
	}
	for _, c := range conns {
		// A U-turn would pair an arm's inbound edge with its own outbound.
		if c.From[:len(c.From)-2] == c.To[2:] {
			t.Errorf("U-turn emitted: %s -> %s", c.From, c.To)
		}
	}
}

func TestMovementsLaneProductOrder(t *testing.T) {
	arms := []MatrixArm{
		{In: "A_C", Out: "C_A", Lanes: 2},
		{In: "B_C", Out: "C_B", Lanes: 1},
	}
	conns, err := Movements(arms)
	if err != nil {
		t.Fatalf("Movements: %v", err)
	}
	want := []Connection{
		{From: "A_C", To: "C_B", FromLane: 0, ToLane: 0},
		{From: "A_C", To: "C_B", FromLane: 1, ToLane: 0},
		{From: "B_C", To: "C_A", FromLane: 0, ToLane: 0},
		{From: "B_C", To: "C_A", FromLane: 0, ToLane: 1},
	}
	if len(conns) != len(want) {
		t.Fatalf("got %d connections, want %d", len(conns), len(want))
	}
	for i, c := range conns {
		if c != want[i] {
			t.Errorf("connection %d = %v, want %v", i, c, want[i])
		}
	}
}

func TestMovementsErrors(t *testing.T) {
	if _, err := Movements(uniformArms(1, 1)); !errors.Is(err, errors.ErrCodeInvalidTopology) {
		t.Errorf("1 arm: code = %q, want INVALID_TOPOLOGY", errors.GetCode(err))
	}
	arms := uniformArms(3, 1)
	arms[1].Lanes = 0
	if _, err := Movements(arms); !errors.Is(err, errors.ErrCodeInvalidGeometry) {
		t.Errorf("zero lanes: code = %q, want INVALID_GEOMETRY", errors.GetCode(err))
	}
}
