package pipeline

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/jkreuzer/roadforge/pkg/cache"
	"github.com/jkreuzer/roadforge/pkg/errors"
	"github.com/jkreuzer/roadforge/pkg/extract"
	"github.com/jkreuzer/roadforge/pkg/netxml"
	"github.com/jkreuzer/roadforge/pkg/observability"
	"github.com/jkreuzer/roadforge/pkg/sumo"
	"github.com/jkreuzer/roadforge/pkg/topology"
)

// Runner executes the pipeline with extraction caching.
//
// The Runner is stateless except for the cache and logger; it stores no run
// results. Multiple goroutines can share one Runner with different options
// since every run writes into its own scratch directory.
type Runner struct {
	Extractor extract.Service
	Cache     cache.Cache
	Keyer     cache.Keyer
	Logger    *log.Logger

	// Provider and Model key the extraction cache.
	Provider string
	Model    string

	// ScratchRoot is where per-run record directories are created.
	// Defaults to <tmp>/roadforge.
	ScratchRoot string
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer uses
// the default scheme, a nil logger discards output.
func NewRunner(svc extract.Service, c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Extractor:   svc,
		Cache:       c,
		Keyer:       keyer,
		Logger:      logger,
		ScratchRoot: filepath.Join(os.TempDir(), "roadforge"),
	}
}

// Execute runs the complete extract → classify → synthesize → compile flow.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{RunID: uuid.NewString()}

	kind, raw := opts.Kind, opts.Raw
	if kind == "" {
		extractStart := time.Now()
		res, hit, err := r.ExtractWithCacheInfo(ctx, opts.Description)
		if err != nil {
			return nil, err
		}
		kind, raw = res.Kind, res.Raw
		result.Stats.ExtractTime = time.Since(extractStart)
		result.CacheInfo.ExtractHit = hit

		opts.Logger.Info("extracted parameters",
			"kind", kind,
			"params", len(raw),
			"cached", hit,
			"duration", result.Stats.ExtractTime)
	}
	result.Kind = kind

	if _, err := r.Synthesize(ctx, kind, raw, opts, result); err != nil {
		return nil, err
	}
	return result, nil
}

// ExtractWithCacheInfo runs parameter extraction with caching and reports
// whether the result came from the cache.
func (r *Runner) ExtractWithCacheInfo(ctx context.Context, description string) (*extract.Result, bool, error) {
	key := r.Keyer.ExtractKey(r.Provider, r.Model, description)

	if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
		var res extract.Result
		if err := json.Unmarshal(data, &res); err == nil {
			observability.Cache().OnCacheHit(ctx, "extract")
			return &res, true, nil
		}
		_ = r.Cache.Delete(ctx, key)
	}
	observability.Cache().OnCacheMiss(ctx, "extract")

	start := time.Now()
	observability.Synthesis().OnExtractStart(ctx, r.Provider, r.Model)
	res, err := r.Extractor.Extract(ctx, description)
	observability.Synthesis().OnExtractComplete(ctx, r.Provider, r.Model, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if data, err := json.Marshal(res); err == nil {
		_ = r.Cache.Set(ctx, key, data, cache.TTLExtract)
		observability.Cache().OnCacheSet(ctx, "extract", len(data))
	}
	return res, false, nil
}

// Extract is a convenience wrapper that discards the cache hit info.
func (r *Runner) Extract(ctx context.Context, description string) (*extract.Result, error) {
	res, _, err := r.ExtractWithCacheInfo(ctx, description)
	return res, err
}

// Synthesize runs the classify → synthesize → compile stages for an already
// extracted (kind, raw) pair, filling result in place. The interactive mode
// re-enters here after the user edited the extracted parameters.
func (r *Runner) Synthesize(ctx context.Context, kind string, raw map[string]any, opts Options, result *Result) (*topology.Plan, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	params, err := extract.Normalize(&extract.Result{Kind: kind, Raw: raw}, opts.Seed)
	if err != nil {
		return nil, err
	}
	backend, err := topology.Classify(kind, params)
	if err != nil {
		return nil, err
	}
	result.Backend = backend
	result.Params = params

	opts.Logger.Info("classified topology", "kind", kind, "backend", backend.String())

	if backend == topology.BackendPassthrough {
		if err := r.compilePassthrough(ctx, kind, raw, &opts, result); err != nil {
			return nil, err
		}
		return nil, nil
	}

	synthStart := time.Now()
	observability.Synthesis().OnSynthesizeStart(ctx, backend.String())
	plan, err := topology.Select(backend).Synthesize(params)
	if err != nil {
		observability.Synthesis().OnSynthesizeComplete(ctx, backend.String(), 0, 0, 0, time.Since(synthStart), err)
		return nil, err
	}
	result.Plan = plan
	result.Stats.SynthTime = time.Since(synthStart)
	result.Stats.Nodes = len(plan.Nodes)
	result.Stats.Edges = len(plan.Edges)
	result.Stats.Connections = len(plan.Connections)
	observability.Synthesis().OnSynthesizeComplete(ctx, backend.String(),
		result.Stats.Nodes, result.Stats.Edges, result.Stats.Connections,
		result.Stats.SynthTime, nil)

	opts.Logger.Info("synthesized plan",
		"backend", backend.String(),
		"plan", plan.Stats(),
		"duration", result.Stats.SynthTime)

	if err := r.compilePlan(ctx, plan, &opts, result); err != nil {
		return nil, err
	}
	return plan, nil
}

// compilePlan writes the plan's records into the run's scratch directory and
// compiles them with netconvert.
func (r *Runner) compilePlan(ctx context.Context, plan *topology.Plan, opts *Options, result *Result) error {
	dir := filepath.Join(r.ScratchRoot, result.RunID)
	rec, err := netxml.WriteRecords(dir, plan)
	if err != nil {
		return err
	}
	if opts.KeepRecords {
		result.RecordsDir = dir
	} else {
		defer os.RemoveAll(dir)
	}

	compileStart := time.Now()
	observability.Synthesis().OnCompileStart(ctx, sumo.NetconvertBin)
	output, err := sumo.Netconvert(ctx, rec, opts.Output)
	observability.Synthesis().OnCompileComplete(ctx, sumo.NetconvertBin, time.Since(compileStart), err)
	if err != nil {
		return err
	}
	result.NetworkPath = output
	result.Stats.CompileTime = time.Since(compileStart)

	opts.Logger.Info("compiled network",
		"tool", sumo.NetconvertBin,
		"output", output,
		"duration", result.Stats.CompileTime)
	return nil
}

// compilePassthrough hands the raw parameters straight to netgenerate.
func (r *Runner) compilePassthrough(ctx context.Context, kind string, raw map[string]any, opts *Options, result *Result) error {
	compileStart := time.Now()
	observability.Synthesis().OnCompileStart(ctx, sumo.NetgenerateBin)
	output, err := sumo.Netgenerate(ctx, kind, raw, opts.Output)
	observability.Synthesis().OnCompileComplete(ctx, sumo.NetgenerateBin, time.Since(compileStart), err)
	if err != nil {
		return err
	}
	result.NetworkPath = output
	result.Stats.CompileTime = time.Since(compileStart)

	opts.Logger.Info("compiled network",
		"tool", sumo.NetgenerateBin,
		"output", output,
		"duration", result.Stats.CompileTime)
	return nil
}

// Plan runs extraction and synthesis without compiling: the records stay
// in memory. Used by the dry-run path and by tests that have no SUMO
// installation.
func (r *Runner) Plan(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{RunID: uuid.NewString()}

	kind, raw := opts.Kind, opts.Raw
	if kind == "" {
		res, hit, err := r.ExtractWithCacheInfo(ctx, opts.Description)
		if err != nil {
			return nil, err
		}
		kind, raw = res.Kind, res.Raw
		result.CacheInfo.ExtractHit = hit
	}
	result.Kind = kind

	params, err := extract.Normalize(&extract.Result{Kind: kind, Raw: raw}, opts.Seed)
	if err != nil {
		return nil, err
	}
	backend, err := topology.Classify(kind, params)
	if err != nil {
		return nil, err
	}
	result.Backend = backend
	result.Params = params

	if backend == topology.BackendPassthrough {
		return result, nil
	}

	plan, err := topology.Select(backend).Synthesize(params)
	if err != nil {
		return nil, err
	}
	result.Plan = plan
	result.Stats.Nodes = len(plan.Nodes)
	result.Stats.Edges = len(plan.Edges)
	result.Stats.Connections = len(plan.Connections)
	return result, nil
}

// WriteRecords synthesizes a plan and writes its record files into dir
// without invoking the compiler. Used by the records-only output mode.
func (r *Runner) WriteRecords(ctx context.Context, dir string, opts Options) (*Result, netxml.RecordSet, error) {
	result, err := r.Plan(ctx, opts)
	if err != nil {
		return nil, netxml.RecordSet{}, err
	}
	if result.Plan == nil {
		return nil, netxml.RecordSet{}, errors.New(errors.ErrCodeUnsupported,
			"kind %q dispatches to netgenerate and produces no record files", result.Kind)
	}
	rec, err := netxml.WriteRecords(dir, result.Plan)
	if err != nil {
		return nil, netxml.RecordSet{}, err
	}
	result.RecordsDir = dir
	return result, rec, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
