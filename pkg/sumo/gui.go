package sumo

import (
	"os/exec"

	"github.com/jkreuzer/roadforge/pkg/errors"
)

// LaunchGUI opens a compiled network in sumo-gui and returns without waiting
// for the window to close.
func LaunchGUI(network string) error {
	path, err := exec.LookPath(GUIBin)
	if err != nil {
		return errors.Wrap(errors.ErrCodeToolNotFound, err, "%s not found in PATH", GUIBin)
	}
	cmd := exec.Command(path, "-n", network)
	if err := cmd.Start(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "launch %s", GUIBin)
	}
	// Detach: the GUI outlives the CLI process.
	return cmd.Process.Release()
}
