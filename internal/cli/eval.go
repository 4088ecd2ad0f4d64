package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/arcgrid/pkg/pipeline"
)

// evalOpts holds the command-line flags for the eval command.
type evalOpts struct {
	tasksDir string
	workers  int
	noCache  bool
	refresh  bool
	jsonOut  bool
}

// evalCommand creates the eval command for batch evaluation.
func (c *CLI) evalCommand() *cobra.Command {
	var opts evalOpts

	cmd := &cobra.Command{
		Use:   "eval [id...]",
		Short: "Evaluate solutions over a tasks directory",
		Long: `Evaluate every task in a directory, or only the given IDs.

Tasks are evaluated in parallel. Tasks without a solution and tasks that
fail to load are listed separately and do not stop the run. Results are
cached per task content and build version.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEval(cmd.Context(), args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.tasksDir, "tasks", "", "tasks directory (default from config)")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "parallel evaluations (default from config)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached results but store fresh ones")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "print the report as JSON")

	return cmd
}

func (c *CLI) runEval(ctx context.Context, ids []string, opts evalOpts) error {
	dir := c.tasksDir(opts.tasksDir)
	workers := opts.workers
	if workers == 0 {
		workers = c.Config.Workers
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	runner.Refresh = opts.refresh

	var spinner *Spinner
	if !opts.jsonOut {
		spinner = newSpinner(ctx, fmt.Sprintf("Evaluating %s", dir))
		runner.Progress = spinner.Update
		spinner.Start()
	}
	report, err := runner.EvaluateAll(ctx, dir, ids, workers)
	if err != nil {
		if spinner != nil {
			spinner.StopWithError("evaluation aborted")
		}
		return err
	}
	if spinner != nil {
		spinner.Stop()
	}

	if opts.jsonOut {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}
	printReport(report)
	return nil
}

// printReport prints a results table followed by a summary.
func printReport(r *pipeline.Report) {
	if len(r.Results) > 0 {
		headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
		rows := make([][]string, len(r.Results))
		for i, res := range r.Results {
			correct, known := res.Counts()
			status := styleIconSuccess.Render(iconSuccess)
			if !res.Correct {
				status = styleIconError.Render(iconError)
			}
			source := styleComputed.Render(iconFresh)
			if res.CacheHit {
				source = styleCached.Render(iconCached)
			}
			rows[i] = []string{status, res.TaskID, fmt.Sprintf("%d/%d", correct, known), source}
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
			Headers("", "Task", "Pairs", "Result").
			Rows(rows...).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == -1 {
					return headerStyle
				}
				return lipgloss.NewStyle().Padding(0, 1)
			})
		printBlock(t.Render())
		printNewline()
	}

	for _, f := range r.Failed {
		printWarning("%s: %s", f.TaskID, f.Err)
	}

	printKeyValue("Run", r.RunID)
	printKeyValue("Solved", fmt.Sprintf("%d/%d", r.Solved(), len(r.Results)))
	if len(r.Missing) > 0 {
		printKeyValue("Unsolved", fmt.Sprintf("%d tasks without a solution", len(r.Missing)))
	}
	if len(r.Failed) > 0 {
		printKeyValue("Failed", fmt.Sprintf("%d", len(r.Failed)))
	}
	printKeyValue("Duration", r.Duration.Round(time.Millisecond).String())
}
