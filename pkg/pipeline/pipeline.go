// Package pipeline runs the description-to-network flow end to end.
//
// The stages are:
//
//  1. Extract: turn the natural-language description into a network kind and
//     a raw parameter map (cached, via the extraction service)
//  2. Classify: pick the synthesis backend (cross, radial, or passthrough)
//  3. Synthesize: emit the node/edge/connection records for in-process
//     backends, written into a per-run scratch directory
//  4. Compile: hand the records to netconvert, or the raw parameters to
//     netgenerate on the passthrough path
//
// Each run gets its own scratch directory so concurrent runs never share
// intermediate files. The CLI and the interactive mode both drive the same
// [Runner]; parameters confirmed or edited by the user re-enter at the
// classify stage via [Runner.Synthesize].
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/jkreuzer/roadforge/pkg/errors"
	"github.com/jkreuzer/roadforge/pkg/topology"
)

// Options configures one pipeline run.
// The struct supports JSON serialization so runs can be replayed.
type Options struct {
	// Description is the natural-language network request.
	// Required unless Kind and Raw are supplied directly.
	Description string `json:"description,omitempty"`

	// Kind and Raw skip extraction when set, e.g. after the interactive
	// mode edited the extracted parameters.
	Kind string         `json:"kind,omitempty"`
	Raw  map[string]any `json:"raw,omitempty"`

	// Output is the compiled network path. ".net.xml" is appended when
	// missing.
	Output string `json:"output"`

	// KeepRecords leaves the intermediate record files in place and reports
	// their location instead of cleaning the scratch directory.
	KeepRecords bool `json:"keep_records,omitempty"`

	// Seed provides parameter defaults, typically from the config file.
	Seed topology.Params `json:"seed,omitempty"`

	// Logger receives stage progress. Defaults to a discard logger.
	Logger *log.Logger `json:"-"`

	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// Idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Description == "" && o.Kind == "" {
		return errors.New(errors.ErrCodeInvalidInput, "description or kind is required")
	}
	if o.Description != "" {
		if err := errors.ValidateDescription(o.Description); err != nil {
			return err
		}
	}
	if o.Output == "" {
		return errors.New(errors.ErrCodeInvalidInput, "output path is required")
	}
	if err := errors.ValidateOutputPath(o.Output); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies the run's scratch namespace.
	RunID string

	// Kind is the extracted network kind.
	Kind string

	// Backend is the synthesis backend that produced the network.
	Backend topology.Backend

	// Params is the normalized parameter set (in-process backends only).
	Params topology.Params

	// Plan is the synthesized plan (in-process backends only).
	Plan *topology.Plan

	// NetworkPath is the compiled .net.xml location.
	NetworkPath string

	// RecordsDir holds the intermediate records when KeepRecords was set.
	RecordsDir string

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Nodes       int
	Edges       int
	Connections int
	ExtractTime time.Duration
	SynthTime   time.Duration
	CompileTime time.Duration
}

// CacheInfo tracks cache hits per stage. Only extraction is cached; plans
// are always synthesized fresh.
type CacheInfo struct {
	ExtractHit bool
}
