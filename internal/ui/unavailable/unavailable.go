// Package unavailable provides the view shown when the sound database cannot be opened.
package unavailable

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/kobeSmallman/mobileSoundboard/internal/ui/styles"
)

// Model holds the view state.
type Model struct {
	err    error
	dbPath string
	width  int
	height int
}

// New creates the view for err, raised while opening the database at dbPath.
func New(err error, dbPath string) Model {
	return Model{err: err, dbPath: dbPath}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the message.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	wrap := max(min(m.width-4, 72), 20)
	hintStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor).Italic(true).MarginTop(2)

	var content strings.Builder
	content.WriteString(styles.TitleStyle.Render("The soundboard could not open its sound library."))
	content.WriteString("\n\n")
	if m.err != nil {
		content.WriteString(styles.ErrorStyle.Render(wordwrap.String(m.err.Error(), wrap)))
		content.WriteString("\n\n")
	}
	if m.dbPath != "" {
		content.WriteString(styles.MutedStyle.Render("Database: " + m.dbPath))
		content.WriteString("\n\n")
	}
	content.WriteString(styles.MutedStyle.Render("Try one of these options:"))
	content.WriteString("\n\n")
	content.WriteString(styles.MutedStyle.Render("  1. Close other soundboard windows that may hold the database"))
	content.WriteString("\n")
	content.WriteString(styles.MutedStyle.Render("  2. Point data_dir somewhere writable: soundboard --data-dir /path"))
	content.WriteString("\n")
	content.WriteString(styles.MutedStyle.Render("  3. Restore the .bak copy next to the database file"))
	content.WriteString("\n")
	content.WriteString(hintStyle.Render("Press q to quit"))

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content.String())
}

// SetSize updates the view dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}
