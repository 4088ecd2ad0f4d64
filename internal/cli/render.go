package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	arcerrors "github.com/matzehuels/arcgrid/pkg/errors"
	"github.com/matzehuels/arcgrid/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	tasksDir  string
	output    string   // output file (single format) or base path (multiple)
	formats   []string // svg, png, tiff, dot, json
	cellSize  int      // raster pixels per cell
	detailed  bool     // dimension captions in diagrams
	noPredict bool     // skip running the solution
	noCache   bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		opts       renderOpts
	)

	cmd := &cobra.Command{
		Use:   "render [task.json|id]",
		Short: "Render a task to SVG, PNG, TIFF, DOT or JSON",
		Long: `Render all pairs of a task. When a solution exists its test predictions
are drawn next to the test pairs.

With a single format, -o names the output file. With several formats, -o is
a base path and each format adds its extension. Without -o, files are named
after the task ID in the current directory.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: c.completeTaskIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			if opts.cellSize == 0 {
				opts.cellSize = c.Config.CellSize
			}
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.tasksDir, "tasks", "", "tasks directory for ID lookup (default from config)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, tiff, dot, json (comma-separated)")
	cmd.Flags().IntVar(&opts.cellSize, "cell", 0, "raster pixels per cell (default from config)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show grid dimensions in diagrams")
	cmd.Flags().BoolVar(&opts.noPredict, "no-predict", false, "do not run the solution")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, arg string, opts renderOpts) error {
	prog := newProgress(loggerFromContext(ctx))

	t, err := loadTask(c.tasksDir(opts.tasksDir), arg)
	if err != nil {
		return err
	}
	logger := taskLogger(ctx, t.ID)

	var res *pipeline.Result
	if !opts.noPredict {
		runner, err := c.newRunner(ctx, opts.noCache)
		if err != nil {
			return fmt.Errorf("initialize runner: %w", err)
		}
		defer runner.Close()

		res, err = runner.Evaluate(ctx, t)
		if arcerrors.Is(err, arcerrors.ErrCodeSolutionMissing) {
			logger.Debug("rendering without predictions")
		} else if err != nil {
			return err
		}
	}

	artifacts, err := pipeline.Render(t, res, pipeline.RenderOptions{
		Formats:  opts.formats,
		CellSize: opts.cellSize,
		Detailed: opts.detailed,
	})
	if err != nil {
		return err
	}

	paths, err := writeArtifacts(artifacts, opts.formats, opts.output, t.ID)
	if err != nil {
		return err
	}
	prog.done("rendered task", "task", t.ID, "artifacts", len(paths))
	for _, p := range paths {
		printFile(p)
	}
	return nil
}

// writeArtifacts writes each format to disk and returns the paths in format
// order. A single format with an explicit output is written to that exact
// path; otherwise files are named base.<format>.
func writeArtifacts(artifacts map[string][]byte, formats []string, output, id string) ([]string, error) {
	if len(formats) == 1 && output != "" {
		if err := writeFile(output, artifacts[formats[0]]); err != nil {
			return nil, err
		}
		return []string{output}, nil
	}

	base := basePath(output, id)
	paths := make([]string, 0, len(formats))
	for _, f := range formats {
		path := base + "." + f
		if err := writeFile(path, artifacts[f]); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// basePath derives the base output path. Without an output the task ID is
// used; a known format extension on output is stripped.
func basePath(output, id string) string {
	if output == "" {
		return id
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
