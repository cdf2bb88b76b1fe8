package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░]  45%.
// The bar is colored by percentage: green >=66, yellow 33-65, red <33.
// With plain set, no styling is applied.
func RenderProgress(pct int, width int, plain bool) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	if width < 2 {
		width = 2
	}

	filled := pct * width / 100
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	if !plain {
		style := StyleGreen
		if pct < 33 {
			style = StyleRed
		} else if pct < 66 {
			style = StyleYellow
		}
		bar = style.Render(bar)
	}

	return fmt.Sprintf("[%s] %3d%%", bar, pct)
}
