package views

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"counterdeck/internal/domain"
)

// CounterRenderer handles rendering of counter rows
type CounterRenderer struct {
	styles      *Styles
	showNumbers bool
}

// NewCounterRenderer creates a new counter renderer
func NewCounterRenderer(styles *Styles, showNumbers bool) *CounterRenderer {
	return &CounterRenderer{
		styles:      styles,
		showNumbers: showNumbers,
	}
}

// RenderCounter renders one counter row: cursor marker, color swatch,
// color name and the current number.
func (r *CounterRenderer) RenderCounter(index int, counter domain.Counter, isCursor bool) string {
	marker := "  "
	if isCursor {
		marker = r.styles.Cursor.Render("> ")
	}

	swatchStyle := lipgloss.NewStyle()
	nameStyle := r.styles.ColorName
	if code := ColorCode(counter.Color); code != "" {
		swatchStyle = swatchStyle.Foreground(lipgloss.Color(code))
		nameStyle = nameStyle.Foreground(lipgloss.Color(code))
	}
	swatch := swatchStyle.Render("●")

	// Pad before styling so ANSI escapes don't skew the width
	name := nameStyle.Render(fmt.Sprintf("%-10s", counter.Color))
	row := fmt.Sprintf("%s%s %s", marker, swatch, name)

	if r.showNumbers {
		numberStyle := r.styles.Number
		if counter.Number < 0 {
			numberStyle = r.styles.NumberNeg
		}
		row += fmt.Sprintf("  %s", numberStyle.Render(fmt.Sprintf("%d", counter.Number)))
	}

	if isCursor {
		return r.styles.CursorBg.Render(row)
	}
	return row
}
