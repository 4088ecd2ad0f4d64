package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/arcgrid/pkg/task"
)

// viewCommand creates the interactive task browser command.
func (c *CLI) viewCommand() *cobra.Command {
	var tasksDir string

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Browse tasks interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runView(cmd.Context(), c.tasksDir(tasksDir))
		},
	}

	cmd.Flags().StringVar(&tasksDir, "tasks", "", "tasks directory (default from config)")

	return cmd
}

func (c *CLI) runView(ctx context.Context, dir string) error {
	ids, err := task.List(dir)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		printInfo("No tasks in %s", dir)
		return nil
	}

	model := NewTaskBrowserModel(ids, func(id string) (*task.Task, error) {
		return task.LoadID(dir, id)
	})
	_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
