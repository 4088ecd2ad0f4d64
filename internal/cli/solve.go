package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/arcgrid/pkg/pipeline"
	"github.com/matzehuels/arcgrid/pkg/render/term"
	"github.com/matzehuels/arcgrid/pkg/task"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	tasksDir string
	noCache  bool
	digits   bool // print colour digits inside cells
	quiet    bool // summary only, no grids
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve [task.json|id]",
		Short: "Run a task's solution and compare with expected outputs",
		Long: `Run the registered solution on every pair of a task.

Predictions are printed next to their inputs. Cells that differ from the
expected output are marked. The command fails when any pair with a known
output is predicted incorrectly.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeTaskIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.tasksDir, "tasks", "", "tasks directory for ID lookup (default from config)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.digits, "digits", false, "print colour digits inside cells")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "print the summary only")

	return cmd
}

func (c *CLI) runSolve(ctx context.Context, arg string, opts solveOpts) error {
	t, err := loadTask(c.tasksDir(opts.tasksDir), arg)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	res, err := runner.Evaluate(ctx, t)
	if err != nil {
		return err
	}

	if !opts.quiet {
		style := term.Options{Digits: opts.digits}
		printPairs("train", t.Train, res.Train, style)
		printPairs("test", t.Test, res.Test, style)
	}

	correct, known := res.Counts()
	printStats(correct, known, res.CacheHit)
	if !res.Correct {
		printError("%s: %d/%d pairs correct", t.ID, correct, known)
		return fmt.Errorf("%s: %d of %d pairs incorrect", t.ID, known-correct, known)
	}
	printSuccess("%s solved", StyleHighlight.Render(t.ID))
	return nil
}

// printPairs prints each pair under a section heading: a verdict line, the
// input beside the prediction, and for wrong pairs the mismatching cells.
func printPairs(kind string, pairs []task.Pair, results []pipeline.PairResult, style term.Options) {
	if len(results) == 0 {
		return
	}
	printSection(kind)
	for i, pr := range results {
		p := pairs[i]
		label := StyleHighlight.Render(fmt.Sprintf("%s %d", kind, i))
		switch {
		case pr.Err != "":
			fmt.Fprintf(stdout, "%s %s %s\n", verdict(pr), label, StyleWarning.Render(pr.Err))
			printBlock(term.Pair(p.Input, p.Output, style))
		case !pr.Known():
			fmt.Fprintf(stdout, "%s %s %s\n", verdict(pr), label, StyleDim.Render("no expected output"))
			printBlock(term.Pair(p.Input, pr.Predicted, style))
		default:
			fmt.Fprintf(stdout, "%s %s\n", verdict(pr), label)
			printBlock(term.Pair(p.Input, pr.Predicted, style))
			if !pr.Correct {
				printDetail("mismatches against expected output:")
				printBlock(term.Diff(pr.Predicted, pr.Expected, style))
			}
		}
		printNewline()
	}
}
