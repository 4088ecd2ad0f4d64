// Package cli implements the arcgrid command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/arcgrid/pkg/buildinfo"
	"github.com/matzehuels/arcgrid/pkg/cache"
	"github.com/matzehuels/arcgrid/pkg/config"
	"github.com/matzehuels/arcgrid/pkg/pipeline"
	"github.com/matzehuels/arcgrid/pkg/task"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "arcgrid"

	// redisDialAttempts is how often the Redis cache is pinged before giving up.
	redisDialAttempts = 3
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config config.Config

	configPath string
	logFormat  string
	verbose    bool
}

// New creates a new CLI instance with a default logger and built-in config.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Before any subcommand runs, the config file is loaded and the logger is
// attached to the command context.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "arcgrid solves ARC grid puzzles with composable grid primitives",
		Long: `arcgrid evaluates hand-written solutions to ARC tasks. Each solution is
built from a small set of grid primitives: connected components, border
reachability, periodic pattern inference and object replication.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			formatter, err := parseLogFormat(c.logFormat)
			if err != nil {
				return err
			}
			c.Logger.SetFormatter(formatter)
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.Config = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.logFormat, "log-format", "text", "log output format: text, json or logfmt")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/arcgrid/config.toml)")

	// Register all subcommands
	root.AddCommand(c.solveCommand())
	root.AddCommand(c.evalCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.viewCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.versionCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*pipeline.Runner, error) {
	store, keyer, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	r := pipeline.NewRunner(store, keyer, loggerFromContext(ctx))
	r.TTL = c.Config.Cache.TTL.Duration
	return r, nil
}

// newCache picks the backend from config: Redis when a URL is set, the file
// cache otherwise. Redis keys are scoped so a shared instance can hold
// other data.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, cache.Keyer, error) {
	if noCache || !c.Config.Cache.Enabled {
		return cache.NewNullCache(), nil, nil
	}
	if url := c.Config.Cache.RedisURL; url != "" {
		rc, err := cache.DialRedis(ctx, url, redisDialAttempts)
		if err != nil {
			return nil, nil, err
		}
		return rc, cache.NewScopedKeyer(nil, appName+":"), nil
	}
	dir, err := c.Config.CacheDir()
	if err != nil {
		return cache.NewNullCache(), nil, nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, nil, err
	}
	return fc, nil, nil
}

// =============================================================================
// Task Helpers
// =============================================================================

// tasksDir returns the --tasks flag value, or the configured directory.
func (c *CLI) tasksDir(flag string) string {
	if flag != "" {
		return flag
	}
	return c.Config.TasksDir
}

// loadTask accepts either a task file path or a task ID looked up in dir.
func loadTask(dir, arg string) (*task.Task, error) {
	if strings.HasSuffix(arg, ".json") || strings.ContainsRune(arg, filepath.Separator) {
		return task.Load(arg)
	}
	if _, err := os.Stat(arg); err == nil {
		return task.Load(arg)
	}
	return task.LoadID(dir, arg)
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}
