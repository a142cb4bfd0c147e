package cli

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ActionListModel - Interactive action selection
// =============================================================================

// Action is one choice offered after parameter extraction.
type Action int

const (
	// ActionGenerate accepts the parameters and compiles the network.
	ActionGenerate Action = iota
	// ActionModify edits individual parameters before generating.
	ActionModify
	// ActionRetry discards the extraction and asks for a new description.
	ActionRetry
	// ActionQuit leaves the interactive session.
	ActionQuit
)

// actionLabels maps actions to their menu entries, in display order.
var actionLabels = []struct {
	action Action
	label  string
	detail string
}{
	{ActionGenerate, "Generate", "compile the network with these parameters"},
	{ActionModify, "Modify", "edit individual parameters"},
	{ActionRetry, "Re-describe", "start over with a new description"},
	{ActionQuit, "Quit", "leave the session"},
}

// ActionListModel is the bubbletea model for picking the next action.
type ActionListModel struct {
	Cursor   int
	Selected *Action
}

// NewActionListModel creates a new action list model.
func NewActionListModel() ActionListModel {
	return ActionListModel{}
}

func (m ActionListModel) Init() tea.Cmd {
	return nil
}

func (m ActionListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			quit := ActionQuit
			m.Selected = &quit
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(actionLabels)-1 {
				m.Cursor++
			}
		case "enter":
			action := actionLabels[m.Cursor].action
			m.Selected = &action
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ActionListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Next Step"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, entry := range actionLabels {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-12s %s", cursor, entry.label, listDimStyle.Render(entry.detail))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// =============================================================================
// Parameter table
// =============================================================================

// renderParamsTable renders the extracted kind and raw parameters as a table.
func renderParamsTable(kind string, raw map[string]any) string {
	rows := [][]string{{"network_type", kind}}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		rows = append(rows, []string{k, formatParamValue(raw[k])})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Parameter", "Value").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return lipgloss.NewStyle().Foreground(colorGray)
			}
			return StyleValue
		})

	return t.Render()
}

// formatParamValue renders a raw parameter value for display. Nested objects
// (the per-direction overrides) collapse to key=value pairs.
func formatParamValue(v any) string {
	switch t := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = fmt.Sprintf("%s=%s", k, formatParamValue(t[k]))
		}
		return "{" + strings.Join(parts, " ") + "}"
	case float64:
		if t == float64(int64(t)) {
			return fmt.Sprintf("%d", int64(t))
		}
		return fmt.Sprintf("%g", t)
	default:
		return fmt.Sprintf("%v", v)
	}
}
