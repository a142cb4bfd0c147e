package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jkreuzer/roadforge/pkg/pipeline"
	"github.com/jkreuzer/roadforge/pkg/topology"
)

// synthOpts holds the command-line flags for the synth command.
type synthOpts struct {
	kind      string   // topology kind (grid, spider, random)
	arms      int      // arm count for radial junctions
	lanes     int      // lanes per direction
	length    float64  // arm length, meters
	speed     float64  // speed limit, m/s
	control   string   // junction control type
	shape     string   // 3-arm layout shape (T or Y)
	gridX     int      // grid columns
	gridY     int      // grid rows
	overrides []string // per-direction overrides, dir=lanes[:length]

	output      string
	keepRecords bool
	dryRun      bool
}

// synthCommand creates the synth command: explicit parameters, no model call.
func (c *CLI) synthCommand() *cobra.Command {
	opts := synthOpts{kind: topology.KindGrid, gridX: 1, gridY: 1, output: "network"}

	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Synthesize a network from explicit parameters",
		Long: `Synthesize a network from explicit parameters, skipping extraction.

The synth command drives the same synthesis and compilation pipeline as
generate but takes all topology parameters as flags. No API key is needed.

Examples:
  roadforge synth --override west=3:200 --override east=2:300 -o cross
  roadforge synth --arms 5 --lanes 2 -o star
  roadforge synth --arms 3 --shape Y -o fork
  roadforge synth --kind spider -o web`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSynth(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.kind, "kind", opts.kind, "topology kind: grid, spider, random")
	cmd.Flags().IntVar(&opts.arms, "arms", 0, "arm count for a radial junction")
	cmd.Flags().IntVar(&opts.lanes, "lanes", 0, "lanes per direction")
	cmd.Flags().Float64Var(&opts.length, "length", 0, "arm length in meters")
	cmd.Flags().Float64Var(&opts.speed, "speed", 0, "speed limit in m/s")
	cmd.Flags().StringVar(&opts.control, "control", "", "junction control: traffic_light, priority, right_before_left")
	cmd.Flags().StringVar(&opts.shape, "shape", "", "3-arm layout: T (default) or Y")
	cmd.Flags().IntVar(&opts.gridX, "grid-x", opts.gridX, "grid columns")
	cmd.Flags().IntVar(&opts.gridY, "grid-y", opts.gridY, "grid rows")
	cmd.Flags().StringArrayVar(&opts.overrides, "override", nil, "per-direction override, dir=lanes[:length] (repeatable)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output network file (\".net.xml\" appended if missing)")
	cmd.Flags().BoolVar(&opts.keepRecords, "keep-records", false, "keep intermediate record files after compiling")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "classify and synthesize without invoking SUMO")

	return cmd
}

// runSynth builds a raw parameter map from the flags and runs the pipeline.
// Direct synthesis is fast enough that progress logging replaces the spinner.
func (c *CLI) runSynth(ctx context.Context, opts synthOpts) error {
	logger := loggerFromContext(ctx)
	cfg, err := c.Config()
	if err != nil {
		return err
	}
	raw, err := synthRaw(opts)
	if err != nil {
		return err
	}

	runner, err := c.newLocalRunner(ctx, true)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	pipeOpts := pipeline.Options{
		Kind:        opts.kind,
		Raw:         raw,
		Output:      opts.output,
		KeepRecords: opts.keepRecords,
		Seed:        cfg.Params(),
		Logger:      logger,
	}

	prog := newProgress(logger)
	var result *pipeline.Result
	if opts.dryRun {
		result, err = runner.Plan(ctx, pipeOpts)
	} else {
		result, err = runner.Execute(ctx, pipeOpts)
	}
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("%s topology via the %s backend", result.Kind, result.Backend))

	printResult(result, generateOpts{output: opts.output, dryRun: opts.dryRun})
	return nil
}

// synthRaw converts the flag set into the raw parameter map the normalizer
// consumes, the same shape the extraction service produces.
func synthRaw(opts synthOpts) (map[string]any, error) {
	raw := map[string]any{
		"grid.x-number": opts.gridX,
		"grid.y-number": opts.gridY,
	}
	if opts.lanes > 0 {
		raw["default.lanenumber"] = opts.lanes
	}
	if opts.length > 0 {
		raw["default.street-length"] = opts.length
	}
	if opts.speed > 0 {
		raw["default.speed"] = opts.speed
	}
	if opts.control != "" {
		raw["junctions.type"] = opts.control
	}
	if opts.arms > 0 {
		raw["multi_junction"] = true
		raw["arm_number"] = opts.arms
	}
	if opts.shape != "" {
		raw["arm_shape"] = strings.ToUpper(opts.shape)
	}

	if len(opts.overrides) > 0 {
		edges := make(map[string]any, len(opts.overrides))
		for _, spec := range opts.overrides {
			dir, attrs, err := parseOverrideFlag(spec)
			if err != nil {
				return nil, err
			}
			edges[dir] = attrs
		}
		raw["edge_specific"] = edges
	}
	return raw, nil
}

// parseOverrideFlag parses one --override value of the form dir=lanes[:length].
func parseOverrideFlag(spec string) (string, map[string]any, error) {
	dir, value, ok := strings.Cut(spec, "=")
	if !ok {
		return "", nil, fmt.Errorf("invalid override %q, want dir=lanes[:length]", spec)
	}
	attrs := map[string]any{}

	lanesStr, lengthStr, hasLength := strings.Cut(value, ":")
	if lanesStr != "" {
		lanes, err := strconv.Atoi(lanesStr)
		if err != nil {
			return "", nil, fmt.Errorf("invalid lane count in override %q: %w", spec, err)
		}
		attrs["lanenumber"] = lanes
	}
	if hasLength {
		length, err := strconv.ParseFloat(lengthStr, 64)
		if err != nil {
			return "", nil, fmt.Errorf("invalid length in override %q: %w", spec, err)
		}
		attrs["length"] = length
	}
	return dir, attrs, nil
}
