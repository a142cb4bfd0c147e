package topology

import (
	"github.com/jkreuzer/roadforge/pkg/errors"
)

// Shared defaults applied when the parameter extraction did not produce a
// value. They mirror netgenerate's own defaults so a passthrough run and a
// synthesized run agree on unspecified attributes.
const (
	DefaultLanes    = 1
	DefaultLength   = 100.0 // meters
	DefaultSpeed    = 13.9  // m/s, 50 km/h
	DefaultRoadType = "highway.secondary"

	// DefaultArmCount is used when a description asked for a multi-arm
	// junction without saying how many arms.
	DefaultArmCount = 5
)

// Cross-topology direction names, in the order the per-direction override
// mapping is keyed upstream.
const (
	DirWest  = "west"
	DirEast  = "east"
	DirNorth = "north"
	DirSouth = "south"
)

// Directions lists the four compass directions of the cross topology.
var Directions = []string{DirWest, DirEast, DirNorth, DirSouth}

// Three-arm layout shapes. ShapeT is the historical default: two colinear
// arms plus one perpendicular arm. ShapeY requests the symmetric 120°
// trisection the general radial formula would produce.
const (
	ShapeT = "T"
	ShapeY = "Y"
)

// Override carries per-direction attributes for the cross topology.
// Zero fields fall back to the shared defaults. Only the cross emitter
// honors overrides; the radial emitter deliberately does not.
type Override struct {
	Lanes  int     `json:"lanes,omitempty" bson:"lanes,omitempty"`
	Length float64 `json:"length,omitempty" bson:"length,omitempty"`
}

// Params is the normalized parameter set consumed by the dispatcher and
// emitters. It is produced either by extract.Normalize (from the raw
// key/value mapping the language model returns) or directly from CLI flags.
type Params struct {
	Lanes    int     `json:"lanes" bson:"lanes"`         // lanes per direction
	Length   float64 `json:"length" bson:"length"`       // arm length, meters
	Speed    float64 `json:"speed" bson:"speed"`         // m/s
	RoadType string  `json:"road_type" bson:"road_type"` // edge type tag
	Control  string  `json:"control" bson:"control"`     // center node control type

	// ArmCount requests the radial topology with that many arms when > 0.
	ArmCount int `json:"arm_count,omitempty" bson:"arm_count,omitempty"`

	// MultiJunction marks descriptions that asked for a multi-arm junction
	// without an explicit arm count.
	MultiJunction bool `json:"multi_junction,omitempty" bson:"multi_junction,omitempty"`

	// Shape selects the 3-arm layout. Empty means ShapeT, the historical
	// behavior; ShapeY opts into the symmetric trisection.
	Shape string `json:"shape,omitempty" bson:"shape,omitempty"`

	// Grid dimensions from grid-kind parameter sets. A 1x1 grid with
	// overrides is classified as a cross intersection.
	GridX int `json:"grid_x,omitempty" bson:"grid_x,omitempty"`
	GridY int `json:"grid_y,omitempty" bson:"grid_y,omitempty"`

	// Overrides maps direction name → per-direction attributes.
	// Honored by the cross emitter only.
	Overrides map[string]Override `json:"overrides,omitempty" bson:"overrides,omitempty"`
}

// WithDefaults returns a copy with the shared defaults filled in for any
// unset attribute. Emitters call this first so callers may leave fields zero.
func (p Params) WithDefaults() Params {
	if p.Lanes == 0 {
		p.Lanes = DefaultLanes
	}
	if p.Length == 0 {
		p.Length = DefaultLength
	}
	if p.Speed == 0 {
		p.Speed = DefaultSpeed
	}
	if p.RoadType == "" {
		p.RoadType = DefaultRoadType
	}
	if p.Control == "" {
		p.Control = ControlTrafficLight
	}
	return p
}

// Validate rejects geometry that cannot produce a structurally valid plan.
// It assumes defaults have been applied.
func (p Params) Validate() error {
	if p.Lanes < 1 {
		return errors.New(errors.ErrCodeInvalidGeometry, "lane count must be >= 1, got %d", p.Lanes)
	}
	if p.Length <= 0 {
		return errors.New(errors.ErrCodeInvalidGeometry, "arm length must be > 0, got %g", p.Length)
	}
	if p.Speed <= 0 {
		return errors.New(errors.ErrCodeInvalidGeometry, "speed must be > 0, got %g", p.Speed)
	}
	switch p.Control {
	case ControlTrafficLight, ControlPriority, ControlRightBeforeLeft:
	default:
		return errors.New(errors.ErrCodeInvalidParams, "unknown junction control type %q", p.Control)
	}
	for dir, o := range p.Overrides {
		if !validDirection(dir) {
			return errors.New(errors.ErrCodeInvalidParams, "unknown direction %q in overrides", dir)
		}
		if o.Lanes < 0 {
			return errors.New(errors.ErrCodeInvalidGeometry, "lane count for %s must be >= 1, got %d", dir, o.Lanes)
		}
		if o.Length < 0 {
			return errors.New(errors.ErrCodeInvalidGeometry, "length for %s must be > 0, got %g", dir, o.Length)
		}
	}
	return nil
}

// override resolves the effective per-direction attributes for the cross
// emitter: the direction's override where set, else the shared values.
func (p Params) override(dir string) Override {
	o := p.Overrides[dir]
	if o.Lanes == 0 {
		o.Lanes = p.Lanes
	}
	if o.Length == 0 {
		o.Length = p.Length
	}
	return o
}

func validDirection(dir string) bool {
	for _, d := range Directions {
		if d == dir {
			return true
		}
	}
	return false
}
