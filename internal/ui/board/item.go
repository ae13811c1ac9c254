package board

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/kobeSmallman/mobileSoundboard/internal/playback"
	"github.com/kobeSmallman/mobileSoundboard/internal/sounds/domain"
	"github.com/kobeSmallman/mobileSoundboard/internal/ui/styles"
)

// SoundItem wraps a catalog entry to implement the bubbles list.Item interface.
type SoundItem struct {
	Entry domain.CatalogEntry
	State playback.State
}

// Title returns the display title for the list item.
func (i SoundItem) Title() string {
	if i.Entry.Label == "" {
		return "(untitled)"
	}
	return i.Entry.Label
}

// Description returns the description for the list item.
func (i SoundItem) Description() string {
	if i.Entry.IsDefault {
		return styles.BadgeDefault
	}
	return i.Entry.URI
}

// FilterValue returns the value used for filtering.
func (i SoundItem) FilterValue() string {
	return i.Entry.Label
}

// itemDelegate renders one sound per line: cursor, label, state badge and a
// default marker for built-ins.
type itemDelegate struct{}

func (itemDelegate) Height() int                         { return 1 }
func (itemDelegate) Spacing() int                        { return 0 }
func (itemDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (itemDelegate) Render(w io.Writer, m list.Model, index int, li list.Item) {
	item, ok := li.(SoundItem)
	if !ok {
		return
	}

	cursor := "  "
	label := item.Title()
	if index == m.Index() {
		cursor = styles.SelectionIndicatorStyle.Render("> ")
	}

	var badge string
	switch item.State {
	case playback.StateLoading:
		badge = styles.MutedStyle.Render("…")
	case playback.StatePlaying:
		badge = styles.FormatPlaybackBadge(true, false)
	case playback.StateLooping:
		badge = styles.FormatPlaybackBadge(true, true)
	}

	suffix := ""
	if item.Entry.IsDefault {
		suffix = styles.MutedStyle.Render(styles.BadgeDefault)
	}

	// cursor(2) + badge column(2) + gap before the suffix
	room := m.Width() - 4 - lipgloss.Width(suffix) - 1
	label = truncate.StringWithTail(label, uint(max(room, 1)), "…")
	if index == m.Index() {
		label = styles.SelectedRowStyle.Render(label)
	}

	if pad := 2 - lipgloss.Width(badge); pad > 0 {
		badge += strings.Repeat(" ", pad)
	}
	line := cursor + badge + label
	if suffix != "" {
		if pad := m.Width() - lipgloss.Width(line) - lipgloss.Width(suffix); pad > 0 {
			line += strings.Repeat(" ", pad)
		} else {
			line += " "
		}
		line += suffix
	}
	_, _ = fmt.Fprint(w, line)
}
