package contract

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Completeness label constants.
const (
	FullValue    = "Full"    // Every event has a teammate comparison
	HighValue    = "High"    // Most events compare cleanly
	PartialValue = "Partial" // Noticeable gaps in the season
	SparseValue  = "Sparse"  // Mostly missing comparisons
)

// Color variables for console output.
var (
	FullColor    = color.New(color.FgGreen, color.Bold) // fullColor signals a clean season of data.
	HighColor    = color.New(color.FgCyan)              // highColor signals minor gaps only.
	PartialColor = color.New(color.FgYellow)            // partialColor signals caution when reading averages.
	SparseColor  = color.New(color.FgRed, color.Bold)   // sparseColor signals averages built on little data.
)

// GetPlainLabel returns a plain text label for a data-completeness ratio.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(completeness float64) string {
	switch {
	case completeness >= 0.95:
		return FullValue
	case completeness >= 0.75:
		return HighValue
	case completeness >= 0.40:
		return PartialValue
	default:
		return SparseValue
	}
}

// GetColorLabel returns a colored completeness label for table output.
func GetColorLabel(completeness float64) string {
	text := GetPlainLabel(completeness)

	switch text {
	case FullValue:
		return FullColor.Sprint(text)
	case HighValue:
		return HighColor.Sprint(text)
	case PartialValue:
		return PartialColor.Sprint(text)
	default: // "Sparse"
		return SparseColor.Sprint(text)
	}
}

// SelectOutputFile returns the file handle for console-style output,
// falling back to stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "❌ %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning with an underlying error.
func LogWarn(msg string, err error) {
	fmt.Fprintf(os.Stderr, "⚠️  %s: %v\n", msg, err)
}

// LogWarning logs a plain warning.
func LogWarning(msg string) {
	fmt.Fprintf(os.Stderr, "⚠️  %s\n", msg)
}
