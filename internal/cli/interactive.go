package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jkreuzer/roadforge/pkg/pipeline"
	"github.com/jkreuzer/roadforge/pkg/topology"
)

// interactiveCommand creates the interactive command: a describe → review →
// generate loop where extracted parameters can be edited before compiling.
func (c *CLI) interactiveCommand() *cobra.Command {
	var noCache bool

	cmd := &cobra.Command{
		Use:   "interactive",
		Short: "Generate networks in a guided describe-review-generate loop",
		Long: `Generate networks in a guided describe-review-generate loop.

Each round extracts parameters from your description, shows them in a table,
and lets you generate, edit individual parameters, or start over.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInteractive(cmd.Context(), noCache)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable extraction caching")

	return cmd
}

// runInteractive drives the session loop until the user quits.
func (c *CLI) runInteractive(ctx context.Context, noCache bool) error {
	cfg, err := c.Config()
	if err != nil {
		return err
	}
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	reader := bufio.NewReader(os.Stdin)

	fmt.Println(StyleTitle.Render("roadforge interactive"))
	printDetail("Describe a road network; an empty line quits.")
	printNewline()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		description, err := promptLine(reader, "Describe the network")
		if err != nil {
			return err
		}
		if description == "" {
			return nil
		}

		spinner := newSpinnerWithContext(ctx, "Extracting parameters...")
		spinner.Start()
		res, hit, err := runner.ExtractWithCacheInfo(ctx, description)
		if err != nil {
			spinner.StopWithError("Extraction failed")
			printDetail("%v", err)
			continue
		}
		spinner.Stop()

		kind, raw := res.Kind, res.Raw
		done, err := c.reviewLoop(ctx, runner, cfg.Params(), kind, raw, hit)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// reviewLoop shows the parameter table and dispatches the chosen action.
// It returns true when the user quit the session.
func (c *CLI) reviewLoop(ctx context.Context, runner *pipeline.Runner, seed topology.Params, kind string, raw map[string]any, cached bool) (bool, error) {
	reader := bufio.NewReader(os.Stdin)

	for {
		printNewline()
		fmt.Println(renderParamsTable(kind, raw))
		if cached {
			printDetail("parameters from cache")
			cached = false
		}
		printNewline()

		action, err := pickAction(ctx)
		if err != nil {
			return false, err
		}

		switch action {
		case ActionGenerate:
			output, err := promptLine(reader, "Output file [network]")
			if err != nil {
				return false, err
			}
			if output == "" {
				output = "network"
			}

			opts := pipeline.Options{
				Kind:   kind,
				Raw:    raw,
				Output: output,
				Seed:   seed,
				Logger: c.Logger,
			}

			spinner := newSpinnerWithContext(ctx, "Synthesizing network...")
			spinner.Start()
			result, err := runner.Execute(ctx, opts)
			if err != nil {
				spinner.StopWithError("Generation failed")
				printDetail("%v", err)
				continue
			}
			spinner.Stop()

			printSuccess("Generated %s network", kind)
			printFile(result.NetworkPath)
			printStats(result.Stats.Nodes, result.Stats.Edges, result.Stats.Connections, false)
			printNewline()
			return false, nil

		case ActionModify:
			if err := editParams(reader, raw); err != nil {
				return false, err
			}

		case ActionRetry:
			return false, nil

		case ActionQuit:
			return true, nil
		}
	}
}

// pickAction runs the bubbletea action picker.
func pickAction(ctx context.Context) (Action, error) {
	p := tea.NewProgram(NewActionListModel(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return ActionQuit, err
	}
	m, ok := final.(ActionListModel)
	if !ok || m.Selected == nil {
		return ActionQuit, nil
	}
	return *m.Selected, nil
}

// editParams runs the key=value edit loop over the raw parameter map.
// An empty line finishes; "-key" deletes a key. Dotted keys descend into
// nested objects, e.g. "edge_specific.west.lanenumber=3".
func editParams(reader *bufio.Reader, raw map[string]any) error {
	printDetail("key=value to set, -key to delete, empty line to finish")
	for {
		line, err := promptLine(reader, "edit")
		if err != nil {
			return err
		}
		if line == "" {
			return nil
		}

		if strings.HasPrefix(line, "-") {
			deleteRawValue(raw, strings.TrimPrefix(line, "-"))
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			printWarning("expected key=value, got %q", line)
			continue
		}
		setRawValue(raw, strings.TrimSpace(key), parseRawValue(strings.TrimSpace(value)))
	}
}

// setRawValue sets a possibly dotted key, creating nested maps as needed.
func setRawValue(raw map[string]any, key string, value any) {
	// Dots inside known parameter names (default.lanenumber, grid.x-number)
	// are literal; only descend when the head is an existing nested object.
	// Below the top level every dot is a path separator, so
	// "edge_specific.west.lanenumber" nests west → lanenumber.
	head, rest, ok := strings.Cut(key, ".")
	if ok {
		if nested, isMap := raw[head].(map[string]any); isMap {
			setNestedValue(nested, rest, value)
			return
		}
		if head == "edge_specific" {
			nested := map[string]any{}
			raw[head] = nested
			setNestedValue(nested, rest, value)
			return
		}
	}
	raw[key] = value
}

// setNestedValue treats every dot as a path separator, creating intermediate
// objects on the way down.
func setNestedValue(m map[string]any, key string, value any) {
	head, rest, ok := strings.Cut(key, ".")
	if !ok {
		m[key] = value
		return
	}
	nested, isMap := m[head].(map[string]any)
	if !isMap {
		nested = map[string]any{}
		m[head] = nested
	}
	setNestedValue(nested, rest, value)
}

// deleteRawValue removes a possibly dotted key.
func deleteRawValue(raw map[string]any, key string) {
	head, rest, ok := strings.Cut(key, ".")
	if ok {
		if nested, isMap := raw[head].(map[string]any); isMap {
			deleteRawValue(nested, rest)
			return
		}
	}
	delete(raw, key)
}

// parseRawValue coerces an edit value the way JSON decoding would:
// numbers become float64, booleans become bool, everything else stays text.
func parseRawValue(s string) any {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}

// promptLine prints a prompt and reads one trimmed line from the reader.
func promptLine(reader *bufio.Reader, prompt string) (string, error) {
	fmt.Print(StyleHighlight.Render(prompt+":") + " ")
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
