package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"counterdeck/internal/domain"
	"counterdeck/internal/store"
)

// showActionLog opens the dispatch history in the ov pager.
func (m *Model) showActionLog() tea.Cmd {
	history := m.store.History()
	return func() tea.Msg {
		return pagerDoneMsg{err: m.runPager(renderHistory(history))}
	}
}

// renderHistory formats the dispatch history for the pager, oldest first.
func renderHistory(entries []store.HistoryEntry) string {
	if len(entries) == 0 {
		return "no actions dispatched yet\n"
	}

	var b strings.Builder
	b.WriteString("counterdeck action log\n\n")
	for _, e := range entries {
		b.WriteString(fmt.Sprintf("%s  %-10s %s\n",
			e.At.Format("15:04:05.000"), e.Action.Type(), describeAction(e.Action)))
	}
	return b.String()
}

// describeAction renders an action's payload for the log.
func describeAction(action domain.Action) string {
	switch a := action.(type) {
	case domain.CreateAction:
		return fmt.Sprintf("color=%s", a.Color)
	case domain.RemoveAction:
		return ""
	case domain.IncrementAction:
		return fmt.Sprintf("index=%d", a.Index)
	case domain.DecrementAction:
		return fmt.Sprintf("index=%d", a.Index)
	case domain.SetColorAction:
		return fmt.Sprintf("index=%d color=%s", a.Index, a.Color)
	default:
		return ""
	}
}

// runPager shows content in ov, handing the terminal over and back.
func (m *Model) runPager(content string) error {
	if m.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := m.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = m.program.RestoreTerminal() // Ignore error as we're in defer context
	}()

	reader := strings.NewReader(content)
	root, err := oviewer.NewRoot(reader)
	if err != nil {
		return err
	}

	// Don't let ov write to the screen on exit
	cfg := oviewer.NewConfig()
	cfg.IsWriteOnExit = false
	cfg.IsWriteOriginal = false
	root.SetConfig(cfg)

	return root.Run()
}
