// Package editmenu provides the per-sound action menu.
package editmenu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kobeSmallman/mobileSoundboard/internal/ui/styles"
)

// Option represents a menu action.
type Option int

const (
	OptionPlay Option = iota
	OptionRename
	OptionDelete
)

// optionLabels maps options to their display labels.
var optionLabels = map[Option]string{
	OptionPlay:   "Play",
	OptionRename: "Rename",
	OptionDelete: "Delete",
}

// SelectMsg is sent when an option is selected.
type SelectMsg struct {
	Option Option
}

// CancelMsg is sent when the menu is cancelled.
type CancelMsg struct{}

// Model holds the menu state.
type Model struct {
	title          string
	options        []Option
	selected       int
	viewportWidth  int
	viewportHeight int
}

// New creates a menu for the sound titled title. Built-in sounds can only be played.
func New(title string, builtIn bool) Model {
	options := []Option{OptionPlay, OptionRename, OptionDelete}
	if builtIn {
		options = options[:1]
	}
	return Model{title: title, options: options}
}

// SetSize sets the viewport dimensions used to center the menu.
func (m Model) SetSize(width, height int) Model {
	m.viewportWidth = width
	m.viewportHeight = height
	return m
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "j", "down", "ctrl+n":
		if m.selected < len(m.options)-1 {
			m.selected++
		}
	case "k", "up", "ctrl+p":
		if m.selected > 0 {
			m.selected--
		}
	case "enter":
		opt := m.options[m.selected]
		return m, func() tea.Msg { return SelectMsg{Option: opt} }
	case "esc", "q":
		return m, func() tea.Msg { return CancelMsg{} }
	}
	return m, nil
}

// View renders the menu box (without positioning).
func (m Model) View() string {
	const width = 28

	var options strings.Builder
	for i, opt := range m.options {
		if i > 0 {
			options.WriteString("\n")
		}
		if i == m.selected {
			options.WriteString(styles.SelectionIndicatorStyle.Render(">") + lipgloss.NewStyle().Bold(true).Render(optionLabels[opt]))
		} else {
			options.WriteString(" " + optionLabels[opt])
		}
	}

	divider := lipgloss.NewStyle().Foreground(styles.BorderDefaultColor).Render(strings.Repeat("─", width))
	title := lipgloss.NewStyle().Bold(true).Foreground(styles.TextPrimaryColor).PaddingLeft(1).
		Render(styles.TruncateString(m.title, width-1))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.BorderFocusColor).
		Width(width).
		Render(title + "\n" + divider + "\n" + options.String())
}

// Overlay renders the menu centered in the viewport.
func (m Model) Overlay() string {
	return lipgloss.Place(m.viewportWidth, m.viewportHeight, lipgloss.Center, lipgloss.Center, m.View())
}

// Selected returns the currently selected option.
func (m Model) Selected() Option {
	return m.options[m.selected]
}
