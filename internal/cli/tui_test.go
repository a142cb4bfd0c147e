package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestActionListSelection(t *testing.T) {
	var m tea.Model = NewActionListModel()

	m, _ = m.Update(keyMsg("down"))
	m, _ = m.Update(keyMsg("enter"))

	final := m.(ActionListModel)
	if final.Selected == nil {
		t.Fatal("no action selected")
	}
	if *final.Selected != ActionModify {
		t.Errorf("selected = %v, want ActionModify", *final.Selected)
	}
}

func TestActionListEscapeQuits(t *testing.T) {
	var m tea.Model = NewActionListModel()

	m, _ = m.Update(keyMsg("esc"))

	final := m.(ActionListModel)
	if final.Selected == nil || *final.Selected != ActionQuit {
		t.Error("escape should select ActionQuit")
	}
}

func TestActionListCursorBounds(t *testing.T) {
	var m tea.Model = NewActionListModel()

	m, _ = m.Update(keyMsg("up"))
	if m.(ActionListModel).Cursor != 0 {
		t.Error("cursor moved above the first entry")
	}

	for i := 0; i < 10; i++ {
		m, _ = m.Update(keyMsg("down"))
	}
	if got := m.(ActionListModel).Cursor; got != len(actionLabels)-1 {
		t.Errorf("cursor = %d, want %d", got, len(actionLabels)-1)
	}
}

func TestRenderParamsTable(t *testing.T) {
	out := renderParamsTable("grid", map[string]any{
		"default.lanenumber": 2.0,
		"edge_specific": map[string]any{
			"west": map[string]any{"lanenumber": 3.0, "length": 200.0},
		},
	})

	for _, want := range []string{"network_type", "grid", "default.lanenumber", "edge_specific", "west"} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}

func TestFormatParamValue(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{"whole float", 200.0, "200"},
		{"fractional float", 13.9, "13.9"},
		{"bool", true, "true"},
		{"string", "priority", "priority"},
		{"nested map", map[string]any{"lanenumber": 3.0, "length": 200.0}, "{lanenumber=3 length=200}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatParamValue(tt.v); got != tt.want {
				t.Errorf("formatParamValue(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}
