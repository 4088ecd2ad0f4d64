// Package pipeline evaluates solutions against tasks.
//
// This package implements the load → solve → compare flow shared by the CLI
// and the HTTP server. By centralizing it, both entry points cache, log and
// report results the same way.
//
// # Architecture
//
// A [Runner] evaluates one task at a time:
//
//  1. Lookup: find the solver registered for the task ID
//  2. Solve: run it on every demonstration and test input
//  3. Compare: check each prediction against the expected output
//
// [Runner.EvaluateAll] fans evaluation out over a task directory with a
// bounded number of workers and collects a [Report].
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Evaluate(ctx, t)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Correct)
//
// Evaluate a whole directory:
//
//	report, err := runner.EvaluateAll(ctx, "data/training", nil, 8)
//	fmt.Printf("%d/%d solved\n", report.Solved(), len(report.Results))
//
// Render a task and its predictions:
//
//	artifacts, err := pipeline.Render(t, result, pipeline.RenderOptions{Formats: []string{"svg"}})
package pipeline

import (
	"strings"
	"time"

	arcerrors "github.com/matzehuels/arcgrid/pkg/errors"
)

const (
	// DefaultWorkers is the batch concurrency when none is configured.
	DefaultWorkers = 4

	// DefaultTTL is how long cached results stay valid.
	DefaultTTL = 24 * time.Hour

	// DefaultCellSize is the raster cell size in pixels.
	DefaultCellSize = 24
)

// Output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatTIFF = "tiff"
	FormatDOT  = "dot"
	FormatJSON = "json"
)

// Formats lists the supported output formats in display order.
var Formats = []string{FormatSVG, FormatPNG, FormatTIFF, FormatDOT, FormatJSON}

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatTIFF: true,
	FormatDOT:  true,
	FormatJSON: true,
}

var contentTypes = map[string]string{
	FormatSVG:  "image/svg+xml",
	FormatPNG:  "image/png",
	FormatTIFF: "image/tiff",
	FormatDOT:  "text/vnd.graphviz",
	FormatJSON: "application/json",
}

// ContentType returns the MIME type of an artifact format, or
// "application/octet-stream" for unknown formats.
func ContentType(format string) string {
	if ct, ok := contentTypes[format]; ok {
		return ct
	}
	return "application/octet-stream"
}

// ValidateFormat returns an INVALID_INPUT error for unsupported formats.
// Format names are case-sensitive.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return arcerrors.New(arcerrors.ErrCodeInvalidInput, "invalid format %q (must be one of %s)", format, strings.Join(Formats, ", "))
	}
	return nil
}

// ValidateFormats checks every format, failing on the first invalid one.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}
