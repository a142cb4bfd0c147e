package topology

import (
	"github.com/jkreuzer/roadforge/pkg/errors"
)

// Topology kind labels accepted from the parameter extraction service.
// They match netgenerate's native generator names.
const (
	KindGrid   = "grid"
	KindSpider = "spider"
	KindRandom = "random"
)

// Backend identifies the synthesis path a (kind, params) pair dispatches to.
type Backend int

const (
	// BackendCross synthesizes the fixed 4-direction intersection.
	BackendCross Backend = iota
	// BackendRadial synthesizes the general N-arm junction.
	BackendRadial
	// BackendPassthrough hands the kind and raw parameters to netgenerate's
	// native grid/spider/random generators, bypassing synthesis entirely.
	BackendPassthrough
)

// String returns the backend name for logging.
func (b Backend) String() string {
	switch b {
	case BackendCross:
		return "cross"
	case BackendRadial:
		return "radial"
	case BackendPassthrough:
		return "passthrough"
	}
	return "unknown"
}

// Synthesizer is the single capability the dispatcher selects between:
// normalized parameters in, a complete plan out. The passthrough backend has
// no Synthesizer; it produces no plan of its own.
type Synthesizer interface {
	Synthesize(p Params) (*Plan, error)
}

// SynthesizerFunc adapts a plain emitter function to the Synthesizer interface.
type SynthesizerFunc func(p Params) (*Plan, error)

// Synthesize calls fn.
func (fn SynthesizerFunc) Synthesize(p Params) (*Plan, error) { return fn(p) }

// Classify selects exactly one backend for a (kind, params) pair:
//
//   - a 1x1 grid with per-direction overrides (and no conflicting arm
//     count) is the cross intersection
//   - an explicit arm count or the multi-junction flag selects the radial
//     junction
//   - every other grid, and all spider/random kinds, pass through to
//     netgenerate unchanged
//
// An unrecognized kind is a configuration error; nothing is emitted.
func Classify(kind string, p Params) (Backend, error) {
	switch kind {
	case KindGrid:
		single := p.GridX == 1 && p.GridY == 1
		if single && len(p.Overrides) > 0 && (p.ArmCount == 0 || p.ArmCount == 4) {
			return BackendCross, nil
		}
		if p.ArmCount > 0 || p.MultiJunction {
			return BackendRadial, nil
		}
		return BackendPassthrough, nil
	case KindSpider, KindRandom:
		return BackendPassthrough, nil
	default:
		return 0, errors.New(errors.ErrCodeInvalidTopology, "unsupported topology kind %q", kind)
	}
}

// Select resolves a backend to its Synthesizer. Passthrough returns nil;
// the caller invokes the external generator instead.
func Select(b Backend) Synthesizer {
	switch b {
	case BackendCross:
		return SynthesizerFunc(Cross)
	case BackendRadial:
		return SynthesizerFunc(Radial)
	}
	return nil
}
