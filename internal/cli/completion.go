package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// completionGenerators maps shell names to their cobra script generators.
var completionGenerators = map[string]func(*cobra.Command, io.Writer) error{
	"bash": func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
	"zsh":  func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
	"fish": func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	"powershell": func(root *cobra.Command, w io.Writer) error {
		return root.GenPowerShellCompletionWithDesc(w)
	},
}

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion <bash|zsh|fish|powershell>",
		Short: "Generate a shell completion script",
		Long: `Generate a shell completion script for roadforge.

The script completes subcommands (generate, synth, interactive, visualize,
cache) and their flags, so "roadforge synth --ar<TAB>" expands to --arms.

Load it in the current shell:

  source <(roadforge completion bash)
  roadforge completion fish | source
  roadforge completion powershell | Out-String | Invoke-Expression

Or install it permanently:

  # bash (Linux)
  roadforge completion bash > /etc/bash_completion.d/roadforge
  # bash (macOS with Homebrew)
  roadforge completion bash > $(brew --prefix)/etc/bash_completion.d/roadforge
  # zsh (run "autoload -U compinit; compinit" once if completion is off)
  roadforge completion zsh > "${fpath[1]}/_roadforge"
  # fish
  roadforge completion fish > ~/.config/fish/completions/roadforge.fish`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, ok := completionGenerators[args[0]]
			if !ok {
				return fmt.Errorf("unsupported shell %q", args[0])
			}
			return gen(cmd.Root(), os.Stdout)
		},
	}
}
