package outwriter

import (
	"os"

	"github.com/huangsam/gearpath/internal/contract"
	"golang.org/x/term"
)

// GetMaxTableTitleWidth calculates the maximum width for drivetrain titles in table output
// based on terminal width and the fixed columns of the comparison table.
func GetMaxTableTitleWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Easiest + Hardest + Range + Gears + Mean + Max + StdDev with borders/padding
	baseWidth := 70

	// Delta columns
	if len(cfg.Drivetrains) > 1 {
		baseWidth += 24
	}

	// Reserve space for table borders, separators, and padding
	baseWidth += 10

	available := termWidth - baseWidth
	if available < 15 {
		return 15
	}
	if available > 50 {
		return 50
	}
	return available
}
