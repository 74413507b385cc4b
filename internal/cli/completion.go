package cli

import (
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/rnaviz/pkg/pipeline"
	"github.com/matzehuels/rnaviz/pkg/theme"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate a shell completion script for rnaviz and write it to stdout.

  $ source <(rnaviz completion bash)
  $ rnaviz completion zsh > "${fpath[1]}/_rnaviz"
  $ rnaviz completion fish > ~/.config/fish/completions/rnaviz.fish
  PS> rnaviz completion powershell | Out-String | Invoke-Expression

Theme and format flags complete to their accepted values.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
}

// registerFlagCompletions completes --theme and --format values on cmd.
func registerFlagCompletions(cmd *cobra.Command) {
	fixed := func(values []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return values, cobra.ShellCompDirectiveNoFileComp
		}
	}
	if cmd.Flags().Lookup("theme") != nil {
		cmd.RegisterFlagCompletionFunc("theme", fixed(theme.Names()))
	}
	if cmd.Flags().Lookup("format") != nil {
		formats := make([]string, 0, len(pipeline.ValidFormats))
		for f := range pipeline.ValidFormats {
			formats = append(formats, f)
		}
		slices.Sort(formats)
		cmd.RegisterFlagCompletionFunc("format", fixed(formats))
	}
}
