package cmd

import (
	"fmt"
	"strings"

	"github.com/appraise-dev/create-appraise/cli/util"
	"github.com/spf13/cobra"
)

const (
	shellBash = "bash"
	shellZsh  = "zsh"
	shellFish = "fish"
)

var shellSupported = []string{shellBash, shellZsh, shellFish}

func listShells() string {
	return strings.Join(shellSupported, " | ")
}

// NewCompletionCmd creates a new completion command.
func NewCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use: "completion <SHELL_TYPE>",
		Short: "Generate autocomplete for a specified shell. " +
			fmt.Sprintf("Supported shell type: %s", listShells()),
		ValidArgs: shellSupported,
		Run: func(cmd *cobra.Command, args []string) {
			util.HandleCmdErr(cmd, internalCompletionCmd(cmd, args))
		},
		Args: cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Example: `
# Enable auto-completion in current bash shell.

    $ . <(create-appraise completion bash)`,
	}

	return cmd
}

// internalCompletionCmd writes the completion script for the shell in args.
func internalCompletionCmd(cmd *cobra.Command, args []string) error {
	root := cmd.Root()
	out := cmd.OutOrStdout()
	switch shell := args[0]; shell {
	case shellBash:
		return root.GenBashCompletionV2(out, true)
	case shellZsh:
		return root.GenZshCompletion(out)
	case shellFish:
		return root.GenFishCompletion(out, true)
	default:
		return fmt.Errorf("specified shell type is not supported. Available: %s", listShells())
	}
}
