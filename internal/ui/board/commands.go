package board

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kobeSmallman/mobileSoundboard/internal/soundboard"
	"github.com/kobeSmallman/mobileSoundboard/internal/sounds/domain"
)

// Engine calls run as commands so the event loop never blocks on audio,
// storage or a permission prompt.

func (m Model) refreshCmd() tea.Cmd {
	sb, ctx := m.sb, m.ctx
	return func() tea.Msg {
		entries, err := sb.Refresh(ctx)
		return entriesMsg{entries: entries, err: err}
	}
}

func (m Model) watchCmd() tea.Cmd {
	changes := m.sb.Changes()
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return changedMsg{}
	}
}

func (m Model) tick() tea.Cmd {
	if m.pollInterval <= 0 {
		return nil
	}
	return tea.Tick(m.pollInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) playCmd(entry domain.CatalogEntry) tea.Cmd {
	sb, ctx := m.sb, m.ctx
	return func() tea.Msg {
		return resultMsg{err: sb.Play(ctx, entry.ID)}
	}
}

func (m Model) loopCmd() tea.Cmd {
	sb, ctx := m.sb, m.ctx
	return func() tea.Msg {
		on, err := sb.ToggleLoop(ctx)
		note := soundboard.Info("Loop disabled")
		if on {
			note = soundboard.Info("Loop enabled")
		}
		return resultMsg{note: note, err: err}
	}
}

func (m Model) stopAllCmd() tea.Cmd {
	sb, ctx := m.sb, m.ctx
	return func() tea.Msg {
		return resultMsg{note: soundboard.Info("Stopped all sounds"), err: sb.StopAll(ctx)}
	}
}

func (m Model) recordCmd() tea.Cmd {
	sb, ctx := m.sb, m.ctx
	return func() tea.Msg {
		uri, err := sb.ToggleRecording(ctx)
		switch {
		case err != nil:
			return resultMsg{err: err}
		case uri != "":
			return resultMsg{note: soundboard.Info("Recording saved")}
		case sb.Recording():
			return resultMsg{note: soundboard.Info("Recording… press r to stop")}
		default:
			return resultMsg{}
		}
	}
}

func (m Model) importCmd() tea.Cmd {
	sb, ctx := m.sb, m.ctx
	return func() tea.Msg {
		entry, err := sb.Import(ctx)
		if err != nil {
			return resultMsg{err: err}
		}
		return resultMsg{note: soundboard.Info("Added %s", quote(entry.Label))}
	}
}

func (m Model) renameCmd(entry domain.CatalogEntry, label string) tea.Cmd {
	sb, ctx := m.sb, m.ctx
	return func() tea.Msg {
		if err := sb.Rename(ctx, entry.ID, label); err != nil {
			return resultMsg{err: err}
		}
		return resultMsg{note: soundboard.Info("Renamed to %s", quote(label))}
	}
}

func (m Model) removeCmd(entry domain.CatalogEntry) tea.Cmd {
	sb, ctx := m.sb, m.ctx
	return func() tea.Msg {
		if err := sb.Remove(ctx, entry.ID); err != nil {
			return resultMsg{err: err}
		}
		return resultMsg{note: soundboard.Info("Deleted %s", quote(entry.Label))}
	}
}
