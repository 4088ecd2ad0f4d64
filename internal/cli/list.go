package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/arcgrid/pkg/solutions"
	"github.com/matzehuels/arcgrid/pkg/task"
)

// listCommand creates the list command.
func (c *CLI) listCommand() *cobra.Command {
	var (
		tasksDir   string
		solvedOnly bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks and whether a solution exists",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runList(cmd.Context(), c.tasksDir(tasksDir), solvedOnly)
		},
	}

	cmd.Flags().StringVar(&tasksDir, "tasks", "", "tasks directory (default from config)")
	cmd.Flags().BoolVar(&solvedOnly, "solved", false, "only list tasks with a solution")

	return cmd
}

func (c *CLI) runList(ctx context.Context, dir string, solvedOnly bool) error {
	ids, err := task.List(dir)
	if err != nil {
		return err
	}
	loggerFromContext(ctx).Debug("listed tasks", "dir", dir, "count", len(ids))

	var rows [][]string
	solved := 0
	for _, id := range ids {
		s := solutions.Find(id)
		if s == nil {
			if !solvedOnly {
				rows = append(rows, []string{"", id, StyleDim.Render("-")})
			}
			continue
		}
		solved++
		rows = append(rows, []string{styleIconSuccess.Render(iconSuccess), id, s.Description})
	}

	if len(rows) == 0 {
		printInfo("No tasks in %s", dir)
		return nil
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Task", "Solution").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	printBlock(t.Render())

	printNewline()
	printKeyValue("Tasks", fmt.Sprintf("%d", len(ids)))
	printKeyValue("Solved", fmt.Sprintf("%d", solved))
	printNextStep("Run a solution", appName+" solve <id>")
	return nil
}
