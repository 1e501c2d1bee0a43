package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░] 45%.
// The bar is colored based on percentage: green >66%, yellow 33-66%, red <33%.
func RenderProgress(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	empty := width - filled

	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, empty)

	var style = StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}

	pctStr := fmt.Sprintf("%3.0f%%", pct*100)
	return fmt.Sprintf("[%s] %s", style.Render(bar), pctStr)
}

// TransferLine renders a one-line download progress report. A negative
// total means the size is unknown and only the byte count is shown.
func TransferLine(written, total int64, width int) string {
	arrow := StyleBlue.Render("↓")
	if total <= 0 {
		return fmt.Sprintf("  %s %s", arrow, FormatBytes(written))
	}
	pct := float64(written) / float64(total)
	return fmt.Sprintf("  %s %s %s / %s", arrow, RenderProgress(pct, width), FormatBytes(written), FormatBytes(total))
}

// ExtractLine renders a one-line extraction progress report counting
// archive entries, e.g. "  [████░░] 2/3 events.h5".
func ExtractLine(done, total int, name string, width int) string {
	var pct float64
	if total > 0 {
		pct = float64(done) / float64(total)
	}
	return fmt.Sprintf("  %s %d/%d %s", RenderProgress(pct, width), done, total, Dim(name))
}
