package sumo

import (
	"context"
	"os"

	"github.com/jkreuzer/roadforge/pkg/errors"
	"github.com/jkreuzer/roadforge/pkg/netxml"
)

// Netconvert compiles a record set into a routable network file.
// Returns the final output path.
func Netconvert(ctx context.Context, rec netxml.RecordSet, output string) (string, error) {
	output = NormalizeOutput(output)

	args := []string{
		"--node-files=" + rec.Nodes,
		"--edge-files=" + rec.Edges,
		"--connection-files=" + rec.Connections,
		"--output-file=" + output,
	}
	if err := run(ctx, NetconvertBin, args); err != nil {
		return "", err
	}

	if _, err := os.Stat(output); err != nil {
		return "", errors.Wrap(errors.ErrCodeCompileFailed, err, "%s reported success but %s is missing", NetconvertBin, output)
	}
	return output, nil
}
