package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/arcgrid/pkg/config"
	"github.com/matzehuels/arcgrid/pkg/task"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for arcgrid.

Bash:
  $ source <(arcgrid completion bash)

Zsh:
  $ arcgrid completion zsh > "${fpath[1]}/_arcgrid"

Fish:
  $ arcgrid completion fish | source

PowerShell:
  PS> arcgrid completion powershell | Out-String | Invoke-Expression

Task IDs are completed from the --tasks directory, or tasks_dir from the
config file.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(out)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}

	return cmd
}

// completeTaskIDs completes the single task argument of solve and render.
// Completion runs without the root pre-run hook, so the config is loaded here.
func (c *CLI) completeTaskIDs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	dir, _ := cmd.Flags().GetString("tasks")
	if dir == "" {
		cfg, err := config.Load(c.configPath)
		if err != nil {
			return nil, cobra.ShellCompDirectiveDefault
		}
		dir = cfg.TasksDir
	}
	ids, err := task.List(dir)
	if err != nil {
		// Fall back to file completion for task paths.
		return nil, cobra.ShellCompDirectiveDefault
	}
	var out []string
	for _, id := range ids {
		if strings.HasPrefix(id, toComplete) {
			out = append(out, id)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
