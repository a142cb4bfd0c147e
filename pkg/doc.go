// Package pkg provides the core libraries for roadforge network synthesis.
//
// # Overview
//
// Roadforge turns natural-language descriptions of intersections and road
// networks into SUMO-compatible topologies. The pkg directory is organized
// into three main areas:
//
//  1. Domain logic (parameter extraction, topology synthesis, record emission)
//  2. Infrastructure (caching, configuration, observability, HTTP retry)
//  3. Orchestration (the pipeline driving extract → classify → synthesize → compile)
//
// # Architecture
//
// The typical data flow through roadforge:
//
//	Natural-language description
//	         ↓
//	    [extract] package (LLM parameter extraction + normalization)
//	         ↓
//	    [topology] package (backend dispatch + plan synthesis)
//	         ↓
//	    [netxml] package (node/edge/connection record files)
//	         ↓
//	    [sumo] package (netconvert / netgenerate compilation)
//	         ↓
//	    .net.xml network, optionally rendered via [render]
//
// # Quick Start
//
// Synthesize a five-way junction without the language model:
//
//	import (
//	    "github.com/jkreuzer/roadforge/pkg/netxml"
//	    "github.com/jkreuzer/roadforge/pkg/topology"
//	)
//
//	plan, _ := topology.Radial(topology.Params{ArmCount: 5, Lanes: 2})
//	rec, _ := netxml.WriteRecords("records", plan)
//
// Run the full pipeline from a description:
//
//	svc, _ := extract.NewClient(extract.Options{APIURL: url, APIKey: key, Model: model})
//	runner := pipeline.NewRunner(svc, cache.NewNullCache(), nil, nil)
//	result, _ := runner.Execute(ctx, pipeline.Options{
//	    Description: "a crossroads with 3 lanes from the west",
//	    Output:      "cross",
//	})
//
// # Main Packages
//
// [extract] - Parameter extraction via an OpenAI-compatible chat completions
// API, with reply parsing, key cleanup, and normalization into typed
// synthesis parameters.
//
// [topology] - The synthesis backends: the fixed 4-arm cross intersection,
// the general N-arm radial junction, and the dispatcher that classifies a
// parameter set into one of them (or into netgenerate passthrough).
//
// [netxml] - Emission of the plain-nodes, plain-edges, and plain-connections
// XML record files netconvert consumes.
//
// [sumo] - Wrappers around the netconvert, netgenerate, and sumo-gui
// binaries.
//
// [render] - Parsing of compiled .net.xml files and Graphviz-based SVG/PNG
// rendering with junctions pinned at their compiled coordinates.
//
// [pipeline] - The orchestrating Runner shared by the CLI commands and the
// interactive mode, including extraction caching and per-run scratch
// directories.
//
// [cache] - File, Redis, and null cache backends for extraction results and
// rendered artifacts.
//
// [config] - TOML configuration with provider, model, topology default, and
// cache backend settings.
//
// [errors] - Coded errors shared across the module, plus input validation.
//
// [observability] - Pluggable hooks for synthesis and cache events.
//
// [extract]: https://pkg.go.dev/github.com/jkreuzer/roadforge/pkg/extract
// [topology]: https://pkg.go.dev/github.com/jkreuzer/roadforge/pkg/topology
// [netxml]: https://pkg.go.dev/github.com/jkreuzer/roadforge/pkg/netxml
// [sumo]: https://pkg.go.dev/github.com/jkreuzer/roadforge/pkg/sumo
// [render]: https://pkg.go.dev/github.com/jkreuzer/roadforge/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/jkreuzer/roadforge/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/jkreuzer/roadforge/pkg/cache
// [config]: https://pkg.go.dev/github.com/jkreuzer/roadforge/pkg/config
// [errors]: https://pkg.go.dev/github.com/jkreuzer/roadforge/pkg/errors
// [observability]: https://pkg.go.dev/github.com/jkreuzer/roadforge/pkg/observability
package pkg
