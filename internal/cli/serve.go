package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/arcgrid/pkg/server"
)

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		tasksDir string
		addr     string
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve tasks and evaluation over HTTP",
		Long: `Serve the tasks directory over HTTP.

Routes:
  GET  /healthz
  GET  /tasks
  GET  /tasks/{id}
  POST /tasks/{id}/solve
  GET  /tasks/{id}/render?format=svg|png|tiff|dot|json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Server.Addr
			}
			return c.runServe(cmd.Context(), c.tasksDir(tasksDir), addr, noCache)
		},
	}

	cmd.Flags().StringVar(&tasksDir, "tasks", "", "tasks directory (default from config)")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, dir, addr string, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	return server.New(dir, runner, loggerFromContext(ctx)).ListenAndServe(ctx, addr)
}
