package extract

import (
	"strconv"

	"github.com/jkreuzer/roadforge/pkg/errors"
	"github.com/jkreuzer/roadforge/pkg/topology"
)

// Normalize converts a cleaned raw parameter map into typed synthesis
// parameters, seeded from the configured defaults. Raw keys the synthesizers
// don't model (spider.*, rand.*, grid sizes above 1x1) stay in the map for
// the passthrough path; Normalize only lifts the keys the in-process
// generators consume.
func Normalize(res *Result, seed topology.Params) (topology.Params, error) {
	p := seed.WithDefaults()

	if v, ok := res.Raw["default.lanenumber"]; ok {
		n, err := toInt(v)
		if err != nil {
			return p, errors.Wrap(errors.ErrCodeInvalidParams, err, "default.lanenumber")
		}
		p.Lanes = n
	}
	if v, ok := res.Raw["default.street-length"]; ok {
		f, err := toFloat(v)
		if err != nil {
			return p, errors.Wrap(errors.ErrCodeInvalidParams, err, "default.street-length")
		}
		p.Length = f
	}
	if v, ok := res.Raw["default.speed"]; ok {
		f, err := toFloat(v)
		if err != nil {
			return p, errors.Wrap(errors.ErrCodeInvalidParams, err, "default.speed")
		}
		p.Speed = f
	}
	if v, ok := res.Raw["junctions.type"].(string); ok {
		p.Control = v
	}

	p.GridX = intValue(res.Raw, "grid.x-number", 5)
	p.GridY = intValue(res.Raw, "grid.y-number", 5)

	if v, ok := res.Raw["multi_junction"]; ok {
		p.MultiJunction = toBool(v)
	}
	if v, ok := res.Raw["arm_number"]; ok {
		n, err := toInt(v)
		if err != nil {
			return p, errors.Wrap(errors.ErrCodeInvalidParams, err, "arm_number")
		}
		p.ArmCount = n
	}
	if v, ok := res.Raw["arm_shape"].(string); ok {
		p.Shape = v
	}

	if v, ok := res.Raw["edge_specific"]; ok {
		overrides, err := parseOverrides(v)
		if err != nil {
			return p, err
		}
		p.Overrides = overrides
	}

	return p, p.Validate()
}

// parseOverrides converts the edge_specific object into per-direction
// overrides. Unknown directions are rejected rather than silently dropped.
func parseOverrides(v any) (map[string]topology.Override, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidParams, "edge_specific must be an object, got %T", v)
	}

	overrides := make(map[string]topology.Override, len(m))
	for dir, raw := range m {
		attrs, ok := raw.(map[string]any)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidParams, "edge_specific.%s must be an object, got %T", dir, raw)
		}
		var o topology.Override
		if v, ok := attrs["lanenumber"]; ok {
			n, err := toInt(v)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidParams, err, "edge_specific.%s.lanenumber", dir)
			}
			o.Lanes = n
		}
		if v, ok := attrs["length"]; ok {
			f, err := toFloat(v)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidParams, err, "edge_specific.%s.length", dir)
			}
			o.Length = f
		}
		overrides[dir] = o
	}
	return overrides, nil
}

// toInt coerces JSON scalars to int. JSON numbers decode as float64; the
// model occasionally quotes them.
func toInt(v any) (int, error) {
	switch t := v.(type) {
	case int:
		return t, nil
	case float64:
		return int(t), nil
	case string:
		return strconv.Atoi(t)
	default:
		return 0, errors.New(errors.ErrCodeInvalidParams, "expected number, got %T", v)
	}
}

func toFloat(v any) (float64, error) {
	switch t := v.(type) {
	case int:
		return float64(t), nil
	case float64:
		return t, nil
	case string:
		return strconv.ParseFloat(t, 64)
	default:
		return 0, errors.New(errors.ErrCodeInvalidParams, "expected number, got %T", v)
	}
}

func toBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t == "true" || t == "yes"
	default:
		return false
	}
}

// intValue reads an int from the map, falling back on coercion failure.
func intValue(m map[string]any, key string, fallback int) int {
	v, ok := m[key]
	if !ok {
		return fallback
	}
	n, err := toInt(v)
	if err != nil {
		return fallback
	}
	return n
}
