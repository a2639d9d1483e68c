package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Cursor      lipgloss.Style
	CursorBg    lipgloss.Style
	Number      lipgloss.Style
	NumberNeg   lipgloss.Style
	ColorName   lipgloss.Style
	EmptyNotice lipgloss.Style
	Main        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Cursor:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		CursorBg:    lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Number:      lipgloss.NewStyle().Bold(true),
		NumberNeg:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		ColorName:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		EmptyNotice: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")),
		Main:        lipgloss.NewStyle().Padding(1, 2),
	}
}
