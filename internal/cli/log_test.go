package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	arcerrors "github.com/matzehuels/arcgrid/pkg/errors"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", LogInfo, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", LogInfo, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", LogDebug, func(l *log.Logger) { l.Debug("test") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			if gotLog := buf.Len() > 0; gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestParseLogFormat(t *testing.T) {
	tests := []struct {
		in   string
		want log.Formatter
	}{
		{"", log.TextFormatter},
		{"text", log.TextFormatter},
		{"JSON", log.JSONFormatter},
		{"logfmt", log.LogfmtFormatter},
	}
	for _, tt := range tests {
		got, err := parseLogFormat(tt.in)
		if err != nil {
			t.Errorf("parseLogFormat(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseLogFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := parseLogFormat("xml"); !arcerrors.Is(err, arcerrors.ErrCodeInvalidInput) {
		t.Errorf("parseLogFormat(xml) error = %v, want %s", err, arcerrors.ErrCodeInvalidInput)
	}
}

func TestJSONTaskLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, LogInfo)
	logger.SetFormatter(log.JSONFormatter)

	ctx := withLogger(context.Background(), logger)
	taskLogger(ctx, "00d62c1b").Info("evaluated task", "correct", "2/2")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v\n%s", err, buf.String())
	}
	if entry["task"] != "00d62c1b" || entry["correct"] != "2/2" || entry["msg"] != "evaluated task" {
		t.Errorf("log entry = %v", entry)
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, LogInfo))
	prog.done("rendered task", "artifacts", 2)

	out := buf.String()
	for _, s := range []string{"rendered task", "artifacts=2", "elapsed="} {
		if !strings.Contains(out, s) {
			t.Errorf("progress output %q missing %q", out, s)
		}
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext without a logger should return log.Default()")
	}

	custom := newLogger(&bytes.Buffer{}, LogInfo)
	if loggerFromContext(withLogger(context.Background(), custom)) != custom {
		t.Error("loggerFromContext should return the attached logger")
	}
}

func TestLogFormatFlag(t *testing.T) {
	isolate(t)
	if err := execute(t, "--log-format", "yaml", "version"); !arcerrors.Is(err, arcerrors.ErrCodeInvalidInput) {
		t.Errorf("--log-format yaml error = %v, want %s", err, arcerrors.ErrCodeInvalidInput)
	}
	if err := execute(t, "--log-format", "json", "version"); err != nil {
		t.Errorf("--log-format json: %v", err)
	}
}
