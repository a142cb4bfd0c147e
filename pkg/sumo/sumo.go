// Package sumo invokes the SUMO network compilers. The engine never writes
// .net.xml itself: synthesized record sets go through netconvert, and
// parameter sets outside the synthesizers' scope go straight to netgenerate.
package sumo

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/jkreuzer/roadforge/pkg/errors"
)

// Compiler binary names resolved from PATH.
const (
	NetconvertBin  = "netconvert"
	NetgenerateBin = "netgenerate"
	GUIBin         = "sumo-gui"
)

// NetworkSuffix is the compiled network file extension.
const NetworkSuffix = ".net.xml"

// NormalizeOutput appends the network suffix when the caller left it off.
func NormalizeOutput(path string) string {
	if strings.HasSuffix(path, NetworkSuffix) {
		return path
	}
	return path + NetworkSuffix
}

// run resolves and executes a compiler binary, capturing its diagnostics.
// A missing binary and a rejected input produce distinct error codes so
// callers can tell "SUMO not installed" from "compiler refused the records".
func run(ctx context.Context, tool string, args []string) error {
	path, err := exec.LookPath(tool)
	if err != nil {
		return errors.Wrap(errors.ErrCodeToolNotFound, err, "%s not found in PATH; install SUMO and ensure its tools are on PATH", tool)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return &errors.CompileError{
			Tool:   tool,
			Output: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}
	return nil
}
