// Package tui implements the interactive catalog browser: a full-screen
// shell over internal/session with incremental title search, fixed-size
// pages, and add/edit/delete forms. Like the command shell, it holds no
// catalog semantics of its own - every mutation goes through the session
// as an action, and every rendering is a computed view.
package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles for the browser. A single muted
// palette; the terminal's own colors do most of the work.
type Styles struct {
	Title    lipgloss.Style
	Selected lipgloss.Style
	Normal   lipgloss.Style
	Dim      lipgloss.Style
	Status   lipgloss.Style
	ErrorMsg lipgloss.Style
	Help     lipgloss.Style
	Prompt   lipgloss.Style
}

// DefaultStyles returns the default browser styles.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("8")),
		Normal:   lipgloss.NewStyle(),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		ErrorMsg: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Prompt:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	}
}
