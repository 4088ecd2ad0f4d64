package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/arcgrid/pkg/pipeline"
)

// stdout receives all human-readable command output. Logs go to stderr.
var stdout io.Writer = os.Stdout

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - titles, task IDs
	colorGreen  = lipgloss.Color("35")  // Green - correct pairs
	colorYellow = lipgloss.Color("220") // Amber - warnings, unknown outputs
	colorRed    = lipgloss.Color("167") // Soft red - wrong pairs, errors
	colorBlue   = lipgloss.Color("75")  // Light blue - suggested commands
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - labels
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for task IDs and pair labels.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)

	styleSection = lipgloss.NewStyle().Bold(true).Foreground(colorGray)
	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconUnknown = "?"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

func printLine(icon string, style lipgloss.Style, format string, args ...any) {
	fmt.Fprintln(stdout, style.Render(icon)+" "+fmt.Sprintf(format, args...))
}

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	printLine(iconSuccess, styleIconSuccess, format, args...)
}

// printError prints an error message.
func printError(format string, args ...any) {
	printLine(iconError, styleIconError, format, args...)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	printLine(iconWarning, styleIconWarning, "%s", StyleWarning.Render(fmt.Sprintf(format, args...)))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	printLine(iconInfo, styleIconInfo, format, args...)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	fmt.Fprintln(stdout, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printBlock prints pre-rendered multi-line output such as grids and tables.
func printBlock(s string) {
	fmt.Fprintln(stdout, strings.TrimRight(s, "\n"))
}

// printSection prints a heading that groups the lines below it.
func printSection(title string) {
	fmt.Fprintln(stdout, styleSection.Render(strings.ToUpper(title)))
}

// =============================================================================
// Pair Verdicts
// =============================================================================

// verdict returns the icon for one evaluated pair: correct, wrong, errored,
// or unknown when the pair has no expected output.
func verdict(pr pipeline.PairResult) string {
	switch {
	case pr.Err != "":
		return styleIconError.Render(iconWarning)
	case !pr.Known():
		return styleIconWarning.Render(iconUnknown)
	case pr.Correct:
		return styleIconSuccess.Render(iconSuccess)
	default:
		return styleIconError.Render(iconError)
	}
}

// printStats prints pair statistics and the result source on a single line.
func printStats(correct, known int, cached bool) {
	source := styleComputed.Render(iconFresh)
	if cached {
		source = styleCached.Render(iconCached)
	}
	sep := StyleDim.Render(" · ")
	fmt.Fprintln(stdout, "  "+StyleDim.Render(fmt.Sprintf("%d/%d pairs correct", correct, known))+sep+source)
}

// =============================================================================
// File and Key-Value Output
// =============================================================================

// printFile prints a file output line.
func printFile(path string) {
	fmt.Fprintln(stdout, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Fprintln(stdout, keyStyle.Render(key)+" "+StyleValue.Render(value))
}

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Fprintln(stdout, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

// printNewline prints an empty line.
func printNewline() {
	fmt.Fprintln(stdout)
}
