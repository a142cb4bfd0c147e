package extract

import (
	"strings"

	"github.com/jkreuzer/roadforge/pkg/topology"
)

// Clean filters a raw parameter map down to the keys the generators and the
// collaborator actually understand, fixing up common aliases first.
func Clean(kind string, params map[string]any) map[string]any {
	cleaned := make(map[string]any)

	// Alias fixes: the model occasionally invents near-miss names.
	if v, ok := params["default.length"]; ok {
		delete(params, "default.length")
		params["default.street-length"] = v
	}
	if v, ok := params["default.junctions.type"]; ok {
		delete(params, "default.junctions.type")
		params["junctions.type"] = v
	}

	for key, value := range params {
		if strings.HasPrefix(key, "default.") || strings.HasPrefix(key, "default-") {
			cleaned[key] = value
			continue
		}
		switch {
		case kind == topology.KindGrid && strings.HasPrefix(key, "grid."):
			cleaned[key] = value
		case kind == topology.KindSpider && strings.HasPrefix(key, "spider."):
			cleaned[key] = value
		case kind == topology.KindRandom && strings.HasPrefix(key, "rand."):
			cleaned[key] = value
		}
	}

	if v, ok := params["edge_specific"]; ok {
		cleaned["edge_specific"] = v
	}

	if v, ok := params["junctions.type"]; ok {
		cleaned["junctions.type"] = v
	} else if v, ok := params["junction-type"]; ok {
		cleaned["junctions.type"] = v
	}

	if v, ok := params["multi_junction"]; ok {
		cleaned["multi_junction"] = v
	}
	if v, ok := params["arm_number"]; ok {
		cleaned["arm_number"] = v
	}
	if v, ok := params["arm_shape"]; ok {
		cleaned["arm_shape"] = v
	}

	// The prompt asks for junction_type="multi_junction"; fold it into the
	// boolean form the dispatcher reads.
	if jt, ok := params["junction_type"].(string); ok && jt == "multi_junction" {
		if _, has := cleaned["arm_number"]; has {
			cleaned["multi_junction"] = true
		}
	}

	return cleaned
}

// armHint maps a description keyword to an arm count, with an optional shape
// for three-arm layouts.
type armHint struct {
	keyword string
	arms    int
	shape   string
}

// Arm-count keywords come before the single-letter shape keywords so an
// explicit count always wins.
var armHints = []armHint{
	{"three-way", 3, ""},
	{"three way", 3, ""},
	{"3-way", 3, ""},
	{"five-way", 5, ""},
	{"five way", 5, ""},
	{"5-way", 5, ""},
	{"six-way", 6, ""},
	{"six way", 6, ""},
	{"6-way", 6, ""},
	{"t-junction", 3, topology.ShapeT},
	{"t junction", 3, topology.ShapeT},
	{"t-intersection", 3, topology.ShapeT},
	{"t intersection", 3, topology.ShapeT},
	{"y-junction", 3, topology.ShapeY},
	{"y junction", 3, topology.ShapeY},
	{"y-intersection", 3, topology.ShapeY},
	{"y intersection", 3, topology.ShapeY},
}

// applyArmHints scans the description for multi-arm keywords the model is
// known to miss and forces the multi-junction parameters when one matches.
func applyArmHints(description string, res *Result) {
	desc := strings.ToLower(description)
	for _, h := range armHints {
		if !hasKeyword(desc, h.keyword) {
			continue
		}
		res.Kind = topology.KindGrid
		res.Raw["multi_junction"] = true
		res.Raw["arm_number"] = h.arms
		res.Raw["grid.x-number"] = 1
		res.Raw["grid.y-number"] = 1
		if h.shape != "" {
			res.Raw["arm_shape"] = h.shape
		}
		return
	}
}

// hasKeyword reports whether keyword occurs in desc on word boundaries.
// Plain substring search is not enough: "five-way intersection" contains
// "y intersection" and must not read as a Y shape.
func hasKeyword(desc, keyword string) bool {
	for at := 0; ; {
		i := strings.Index(desc[at:], keyword)
		if i < 0 {
			return false
		}
		i += at
		end := i + len(keyword)
		startOK := i == 0 || !isWordByte(desc[i-1])
		endOK := end == len(desc) || !isWordByte(desc[end])
		if startOK && endOK {
			return true
		}
		at = i + 1
	}
}

// isWordByte assumes desc was lowercased first.
func isWordByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}

// fillSingleGridDefaults pins explicit defaults for a 1x1 grid so the
// downstream generators see a fully specified parameter set.
func fillSingleGridDefaults(res *Result) {
	if res.Kind != topology.KindGrid {
		return
	}
	if intValue(res.Raw, "grid.x-number", 5) != 1 || intValue(res.Raw, "grid.y-number", 5) != 1 {
		return
	}
	setDefault(res.Raw, "default.lanenumber", topology.DefaultLanes)
	setDefault(res.Raw, "default.street-length", topology.DefaultLength)
	setDefault(res.Raw, "grid.x-length", topology.DefaultLength)
	setDefault(res.Raw, "grid.y-length", topology.DefaultLength)
}

func setDefault(m map[string]any, key string, value any) {
	if _, ok := m[key]; !ok {
		m[key] = value
	}
}
