package views

import (
	"fmt"
	"strings"

	"counterdeck/internal/domain"
)

// ViewRenderer composes the main screen from the current state
type ViewRenderer struct {
	styles   *Styles
	counters *CounterRenderer
}

// NewViewRenderer creates a new view renderer
func NewViewRenderer(styles *Styles, counters *CounterRenderer) *ViewRenderer {
	return &ViewRenderer{
		styles:   styles,
		counters: counters,
	}
}

// Render builds the full screen: title, counter list, status bar and the
// short help line supplied by the caller.
func (v *ViewRenderer) Render(state domain.AppState, cursor int, statusMessage, helpView string) string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("counterdeck"))
	b.WriteString("\n")

	if state.Len() == 0 {
		b.WriteString(v.styles.EmptyNotice.Render("no counters (press a to add one)"))
		b.WriteString("\n")
	} else {
		for i, counter := range state.Counters {
			b.WriteString(v.counters.RenderCounter(i, counter, i == cursor))
			b.WriteString("\n")
		}
	}

	status := fmt.Sprintf("%d counter(s)", state.Len())
	if statusMessage != "" {
		status += "  ·  " + statusMessage
	}
	b.WriteString(v.styles.Status.Render(status))
	b.WriteString("\n")

	if helpView != "" {
		b.WriteString(helpView)
	}

	return v.styles.Main.Render(b.String())
}
