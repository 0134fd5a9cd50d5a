package contract

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/gearpath/schema"
)

// Step label constants.
const (
	LargeValue  = "Large"  // Large value
	WideValue   = "Wide"   // Wide value
	SmoothValue = "Smooth" // Smooth value
	TightValue  = "Tight"  // Tight value
)

// Color variables for console output.
var (
	LargeColor  = color.New(color.FgRed, color.Bold) // LargeColor flags a jump riders feel.
	WideColor   = color.New(color.FgYellow)          // WideColor is standard caution, not bold.
	SmoothColor = color.New(color.FgGreen)           // SmoothColor is the target spacing.
	TightColor  = color.New(color.FgCyan)            // TightColor marks near-duplicate gears.
	PathColor   = color.New(color.FgGreen, color.Bold)
)

// BestPathMarker marks gears of the best path in matrix tables.
const BestPathMarker = "●"

// GetColorStepLabel returns a colored step label for console output (table).
// It uses schema.GetPlainStepLabel to determine the string, and then applies the appropriate color.
func GetColorStepLabel(step float64) string {
	text := schema.GetPlainStepLabel(step)

	switch text {
	case LargeValue:
		return LargeColor.Sprint(text)
	case WideValue:
		return WideColor.Sprint(text)
	case SmoothValue:
		return SmoothColor.Sprint(text)
	default: // "Tight"
		return TightColor.Sprint(text)
	}
}

// GetStepLabel returns the colored or plain step label depending on useColors.
func GetStepLabel(step float64, useColors bool) string {
	if useColors {
		return GetColorStepLabel(step)
	}
	return schema.GetPlainStepLabel(step)
}

// GetPathMarker returns the best path marker, or an empty string for gears outside the path.
func GetPathMarker(inBestPath, useColors bool) string {
	switch {
	case !inBestPath:
		return ""
	case useColors:
		return PathColor.Sprint(BestPathMarker)
	default:
		return BestPathMarker
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. It returns os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// TruncateTitle truncates a drivetrain title to a maximum width with an ellipsis suffix.
// Requires maxWidth > 3 to leave room for the ellipsis and at least one character.
func TruncateTitle(title string, maxWidth int) string {
	runes := []rune(title)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return title
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// splitList splits a list separated by commas, slashes or whitespace.
func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '/' || r == ' ' || r == '\t'
	})
}

// ParseIntList parses a list of teeth counts like "30,46" or "30/46".
func ParseIntList(s string) ([]int, error) {
	parts := splitList(s)
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty list")
	}
	values := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid integer '%s'", p)
		}
		if v <= 0 {
			return nil, fmt.Errorf("teeth count must be positive (received %d)", v)
		}
		values[i] = v
	}
	return values, nil
}

// ParseFloatList parses a list of numbers like "0.5,1" or "85 95".
func ParseFloatList(s string) ([]float64, error) {
	parts := splitList(s)
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty list")
	}
	values := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("invalid number '%s'", p)
		}
		if v <= 0 {
			return nil, fmt.Errorf("value must be positive (received %v)", v)
		}
		values[i] = v
	}
	return values, nil
}

// ParseRange parses a gain ratio window like "1,4" where the low bound is below the high bound.
func ParseRange(s string) (float64, float64, error) {
	values, err := ParseFloatList(s)
	if err != nil {
		return 0, 0, err
	}
	if len(values) != 2 {
		return 0, 0, fmt.Errorf("expected 'low,high' (received %d values)", len(values))
	}
	if values[0] >= values[1] {
		return 0, 0, fmt.Errorf("low bound %v must be below high bound %v", values[0], values[1])
	}
	return values[0], values[1], nil
}
