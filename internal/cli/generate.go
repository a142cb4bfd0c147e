package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jkreuzer/roadforge/pkg/pipeline"
	"github.com/jkreuzer/roadforge/pkg/topology"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	output      string // compiled network path
	recordsDir  string // write record files here instead of compiling
	noCache     bool   // bypass the extraction cache
	keepRecords bool   // keep intermediate record files after compiling
	dryRun      bool   // classify and synthesize without compiling
}

// generateCommand creates the generate command: description in, network out.
func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{output: "network"}

	cmd := &cobra.Command{
		Use:   "generate <description>",
		Short: "Generate a SUMO network from a natural-language description",
		Long: `Generate a SUMO network from a natural-language description.

The description is sent to the configured language model to extract topology
parameters. Simple intersections (a crossroads with per-direction lane
counts, a five-way junction) are synthesized directly and compiled with
netconvert; regular grids, spider webs, and random networks are delegated to
netgenerate.

Examples:
  roadforge generate "a crossroads with 3 lanes from the west" -o cross
  roadforge generate "a five-way intersection" -o star
  roadforge generate "a 4x4 grid with 200m blocks" -o grid --keep-records`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output network file (\".net.xml\" appended if missing)")
	cmd.Flags().StringVar(&opts.recordsDir, "records", "", "write node/edge/connection records to this directory instead of compiling")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable extraction caching")
	cmd.Flags().BoolVar(&opts.keepRecords, "keep-records", false, "keep intermediate record files after compiling")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "classify and synthesize without invoking SUMO")

	return cmd
}

// runGenerate executes the full pipeline for a description.
func (c *CLI) runGenerate(ctx context.Context, description string, opts generateOpts) error {
	logger := loggerFromContext(ctx)
	cfg, err := c.Config()
	if err != nil {
		return err
	}
	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	pipeOpts := pipeline.Options{
		Description: description,
		Output:      opts.output,
		KeepRecords: opts.keepRecords,
		Seed:        cfg.Params(),
		Logger:      logger,
	}

	spinner := newSpinnerWithContext(ctx, "Synthesizing network...")
	spinner.Start()

	var result *pipeline.Result
	switch {
	case opts.dryRun:
		result, err = runner.Plan(ctx, pipeOpts)
	case opts.recordsDir != "":
		result, _, err = runner.WriteRecords(ctx, opts.recordsDir, pipeOpts)
	default:
		result, err = runner.Execute(ctx, pipeOpts)
	}
	if err != nil {
		spinner.StopWithError("Generation failed")
		return err
	}
	spinner.Stop()

	printResult(result, opts)
	return nil
}

// printResult reports a finished run to the terminal.
func printResult(result *pipeline.Result, opts generateOpts) {
	switch {
	case opts.dryRun:
		printSuccess("Planned %s topology (%s backend)", result.Kind, result.Backend)
	case opts.recordsDir != "":
		printSuccess("Wrote %s records", result.Backend)
		printFile(result.RecordsDir)
	default:
		printSuccess("Generated %s network", result.Kind)
		printFile(result.NetworkPath)
	}

	printStats(result.Stats.Nodes, result.Stats.Edges, result.Stats.Connections, result.CacheInfo.ExtractHit)
	if result.Backend != topology.BackendPassthrough && result.Params.ArmCount > 0 {
		printDetail("%d-arm junction, %s control", result.Params.ArmCount, result.Params.Control)
	}
	if result.RecordsDir != "" && opts.recordsDir == "" {
		printDetail("Records: %s", result.RecordsDir)
	}

	if !opts.dryRun && opts.recordsDir == "" {
		printNewline()
		printNextStep("Visualize it", "roadforge visualize "+result.NetworkPath)
	}
}
