// Package cli implements the arcgrid command-line interface.
//
// This package provides commands for evaluating solutions against ARC task
// files, browsing and rendering tasks, serving them over HTTP, and managing
// the result cache. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - solve: Run one task's solution and show predictions
//   - eval: Evaluate every task in a directory
//   - list, view: Browse tasks in the terminal
//   - render: Write SVG, PNG, TIFF, DOT or JSON renderings of a task
//   - serve: Expose tasks and evaluation over HTTP
//   - cache: Manage the result cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging and
// --log-format to switch from text to JSON or logfmt lines, which suits
// batch evaluations whose logs feed other tools. Loggers are passed through
// context.Context; per-task loggers carry the task ID as a key.
//
// # Example
//
//	import "github.com/matzehuels/arcgrid/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().ExecuteContext(ctx); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	arcerrors "github.com/matzehuels/arcgrid/pkg/errors"
)

// newLogger creates a text logger with timestamps formatted as "HH:MM:SS.ms"
// (e.g., "14:32:01.45"), filtering below level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// parseLogFormat maps a --log-format value to a formatter.
func parseLogFormat(s string) (log.Formatter, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return log.TextFormatter, nil
	case "json":
		return log.JSONFormatter, nil
	case "logfmt":
		return log.LogfmtFormatter, nil
	}
	return 0, arcerrors.New(arcerrors.ErrCodeInvalidInput, "unknown log format %q (want text, json or logfmt)", s)
}

// progress logs completion of an operation with its elapsed time.
// Not safe for concurrent use.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with an "elapsed" key and any extra key/value pairs.
func (p *progress) done(msg string, keyvals ...any) {
	keyvals = append(keyvals, "elapsed", time.Since(p.start).Round(time.Millisecond))
	p.logger.Info(msg, keyvals...)
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() if none
// is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// taskLogger returns the context logger tagged with a task ID.
func taskLogger(ctx context.Context, id string) *log.Logger {
	return loggerFromContext(ctx).With("task", id)
}
