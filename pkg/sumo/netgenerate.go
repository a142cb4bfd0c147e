package sumo

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/jkreuzer/roadforge/pkg/errors"
	"github.com/jkreuzer/roadforge/pkg/topology"
)

// Parameters consumed by the in-process synthesizers or handled specially;
// netgenerate does not understand them and must never see them.
var netgenerateSkip = map[string]bool{
	"edge_specific":  true,
	"multi_junction": true,
	"arm_number":     true,
	"arm_shape":      true,
	"junction_type":  true,
	"junctions.type": true,
}

// Netgenerate runs the passthrough path: the raw parameter map is translated
// to netgenerate flags and handed over unchanged. Returns the output path.
func Netgenerate(ctx context.Context, kind string, raw map[string]any, output string) (string, error) {
	output = NormalizeOutput(output)

	args, err := netgenerateArgs(kind, raw, output)
	if err != nil {
		return "", err
	}
	if err := run(ctx, NetgenerateBin, args); err != nil {
		return "", err
	}

	if _, err := os.Stat(output); err != nil {
		return "", errors.Wrap(errors.ErrCodeCompileFailed, err, "%s reported success but %s is missing", NetgenerateBin, output)
	}
	return output, nil
}

// netgenerateArgs builds the flag list. Keys are emitted sorted so the same
// parameter set always produces the same command line.
func netgenerateArgs(kind string, raw map[string]any, output string) ([]string, error) {
	var args []string
	switch kind {
	case topology.KindGrid:
		args = append(args, "--grid")
	case topology.KindSpider:
		args = append(args, "--spider")
	case topology.KindRandom:
		args = append(args, "--rand")
	default:
		return nil, errors.New(errors.ErrCodeInvalidTopology, "unsupported network kind %q", kind)
	}

	keys := make([]string, 0, len(raw))
	for key := range raw {
		if netgenerateSkip[key] {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		flag := key
		// netgenerate's actual flag name differs from the prompt vocabulary.
		if flag == "default.street-length" {
			flag = "default-length"
		}
		args = append(args, fmt.Sprintf("--%s=%v", flag, raw[key]))
	}

	// Junction control is a grid-only flag on netgenerate.
	if kind == topology.KindGrid {
		if jt, ok := raw["junctions.type"].(string); ok && jt != "" {
			args = append(args, "--grid.junction-type="+jt)
		}
	}

	args = append(args, "--output-file="+output)
	return args, nil
}
