// Package board implements the soundboard's main view: the list of sounds
// with playback, loop, recording and library actions.
package board

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kobeSmallman/mobileSoundboard/internal/log"
	"github.com/kobeSmallman/mobileSoundboard/internal/playback"
	"github.com/kobeSmallman/mobileSoundboard/internal/soundboard"
	"github.com/kobeSmallman/mobileSoundboard/internal/sounds/domain"
	"github.com/kobeSmallman/mobileSoundboard/internal/ui/editmenu"
	"github.com/kobeSmallman/mobileSoundboard/internal/ui/styles"
)

// Soundboard is the session surface the board drives.
type Soundboard interface {
	Entries() []domain.CatalogEntry
	Refresh(ctx context.Context) ([]domain.CatalogEntry, error)
	Changes() <-chan struct{}

	Play(ctx context.Context, id domain.SoundID) error
	StopAll(ctx context.Context) error
	ToggleLoop(ctx context.Context) (bool, error)
	Looping() bool
	PlaybackState(id domain.SoundID) playback.State

	ToggleRecording(ctx context.Context) (string, error)
	Recording() bool

	CanImport() bool
	Import(ctx context.Context) (domain.CatalogEntry, error)
	Rename(ctx context.Context, id domain.SoundID, label string) error
	Remove(ctx context.Context, id domain.SoundID) error
}

var _ Soundboard = (*soundboard.Session)(nil)

// DefaultPollInterval is how often playback badges are re-read.
const DefaultPollInterval = 500 * time.Millisecond

type mode int

const (
	modeList mode = iota
	modeMenu
	modeRename
	modeConfirmDelete
	modeHelp
)

// entriesMsg carries a catalog refresh.
type entriesMsg struct {
	entries []domain.CatalogEntry
	err     error
}

// resultMsg reports a finished action.
type resultMsg struct {
	note soundboard.Notification
	err  error
}

// changedMsg is sent when another process wrote the database.
type changedMsg struct{}

type tickMsg time.Time

// Model is the board view.
type Model struct {
	sb   Soundboard
	ctx  context.Context
	keys KeyMap

	list  list.Model
	help  help.Model
	input textinput.Model
	menu  editmenu.Model

	mode   mode
	target domain.CatalogEntry

	status    soundboard.Notification
	hasStatus bool
	helpText  string

	recordPending bool
	pollInterval  time.Duration
	width         int
	height        int
}

// New creates the board for sb. ctx bounds every engine call, including a
// pending microphone permission prompt.
func New(ctx context.Context, sb Soundboard) Model {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	in := textinput.New()
	in.Prompt = "Rename: "
	in.CharLimit = 120

	m := Model{
		sb:           sb,
		ctx:          ctx,
		keys:         DefaultKeyMap(),
		list:         l,
		help:         help.New(),
		input:        in,
		pollInterval: DefaultPollInterval,
	}
	m.setItems(sb.Entries())
	return m
}

// WithPollInterval overrides DefaultPollInterval.
func (m Model) WithPollInterval(d time.Duration) Model {
	m.pollInterval = d
	return m
}

// Init refreshes the catalog and starts the badge poll and database watch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.refreshCmd(), m.watchCmd(), m.tick())
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m = m.SetSize(msg.Width, msg.Height)
		return m, nil

	case entriesMsg:
		if msg.err != nil {
			m.notify(msg.err)
			return m, nil
		}
		m.setItems(msg.entries)
		return m, nil

	case resultMsg:
		m.recordPending = false
		m.setItems(m.sb.Entries())
		if msg.err != nil {
			m.notify(msg.err)
		} else if msg.note.Text != "" {
			m.status, m.hasStatus = msg.note, true
		}
		return m, nil

	case changedMsg:
		return m, tea.Batch(m.refreshCmd(), m.watchCmd())

	case tickMsg:
		m.setItems(m.sb.Entries())
		return m, m.tick()

	case editmenu.SelectMsg:
		m.mode = modeList
		switch msg.Option {
		case editmenu.OptionPlay:
			return m, m.playCmd(m.target)
		case editmenu.OptionRename:
			return m.startRename(m.target)
		case editmenu.OptionDelete:
			return m.startDelete(m.target)
		}
		return m, nil

	case editmenu.CancelMsg:
		m.mode = modeList
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.mode == modeRename {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeMenu:
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd

	case modeRename:
		switch msg.Type {
		case tea.KeyEnter:
			m.mode = modeList
			m.input.Blur()
			return m, m.renameCmd(m.target, m.input.Value())
		case tea.KeyEsc:
			m.mode = modeList
			m.input.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case modeConfirmDelete:
		switch msg.String() {
		case "y", "Y":
			m.mode = modeList
			return m, m.removeCmd(m.target)
		case "n", "N", "esc", "q":
			m.mode = modeList
		}
		return m, nil

	case modeHelp:
		switch msg.String() {
		case "?", "esc", "q":
			m.mode = modeList
		}
		return m, nil
	}

	entry, selected := m.selected()
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.mode = modeHelp
		m.helpText = renderHelp(m.width)
		return m, nil
	case key.Matches(msg, m.keys.Play):
		if !selected {
			return m, nil
		}
		return m, m.playCmd(entry)
	case key.Matches(msg, m.keys.Menu):
		if !selected {
			return m, nil
		}
		m.target = entry
		m.menu = editmenu.New(entry.Label, entry.IsDefault).SetSize(m.width, m.height)
		m.mode = modeMenu
		return m, nil
	case key.Matches(msg, m.keys.Loop):
		return m, m.loopCmd()
	case key.Matches(msg, m.keys.StopAll):
		return m, m.stopAllCmd()
	case key.Matches(msg, m.keys.Record):
		if m.recordPending {
			return m, nil
		}
		m.recordPending = true
		return m, m.recordCmd()
	case key.Matches(msg, m.keys.Import):
		if !m.sb.CanImport() {
			m.status = soundboard.Notification{Level: soundboard.LevelWarn, Text: "File picker disabled; use `soundboard add <file>`."}
			m.hasStatus = true
			return m, nil
		}
		return m, m.importCmd()
	case key.Matches(msg, m.keys.Rename):
		if !selected {
			return m, nil
		}
		return m.startRename(entry)
	case key.Matches(msg, m.keys.Delete):
		if !selected {
			return m, nil
		}
		return m.startDelete(entry)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) startRename(entry domain.CatalogEntry) (tea.Model, tea.Cmd) {
	if entry.IsDefault {
		m.notify(domain.ErrBuiltInImmutable)
		return m, nil
	}
	m.target = entry
	m.mode = modeRename
	m.input.SetValue(entry.Label)
	m.input.CursorEnd()
	return m, m.input.Focus()
}

func (m Model) startDelete(entry domain.CatalogEntry) (tea.Model, tea.Cmd) {
	if entry.IsDefault {
		m.notify(domain.ErrBuiltInImmutable)
		return m, nil
	}
	m.target = entry
	m.mode = modeConfirmDelete
	return m, nil
}

// View renders the board.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	switch m.mode {
	case modeMenu:
		return m.menu.Overlay()
	case modeHelp:
		frame := styles.RenderWithTitleBorder(m.helpText, "Help", "", m.width, m.height-1, true)
		return frame + "\n" + styles.MutedStyle.Render("? or esc to close")
	}

	right := styles.FormatLoopIndicator(m.sb.Looping())
	if rec := styles.FormatRecordingIndicator(m.sb.Recording()); rec != "" {
		right = rec + "  " + right
	}
	body := m.list.View()
	if len(m.list.Items()) == 0 {
		body = styles.MutedStyle.Render("No sounds yet. Press a to add a file or r to record.")
	}
	frame := styles.RenderWithTitleBorder(body, "Soundboard", right, m.width, m.height-2, true)

	return lipgloss.JoinVertical(lipgloss.Left, frame, m.statusLine(), m.help.View(m.keys))
}

func (m Model) statusLine() string {
	switch m.mode {
	case modeRename:
		return m.input.View()
	case modeConfirmDelete:
		return styles.WarnStyle.Render("Delete " + quote(m.target.Label) + "? (y/n)")
	}
	if !m.hasStatus {
		return ""
	}
	text := styles.TruncateString(m.status.Text, max(m.width, 1))
	switch m.status.Level {
	case soundboard.LevelWarn:
		return styles.WarnStyle.Render(text)
	case soundboard.LevelError:
		return styles.ErrorStyle.Render(text)
	default:
		return styles.InfoStyle.Render(text)
	}
}

// SetSize updates the view dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width, m.height = width, height
	m.list.SetSize(max(width-2, 1), max(height-4, 1))
	m.help.Width = width
	m.input.Width = max(width-len(m.input.Prompt)-1, 1)
	m.menu = m.menu.SetSize(width, height)
	return m
}

// Status returns the current notification, if any.
func (m Model) Status() (soundboard.Notification, bool) {
	return m.status, m.hasStatus
}

func (m Model) selected() (domain.CatalogEntry, bool) {
	item, ok := m.list.SelectedItem().(SoundItem)
	if !ok {
		return domain.CatalogEntry{}, false
	}
	return item.Entry, true
}

func (m *Model) setItems(entries []domain.CatalogEntry) {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = SoundItem{Entry: e, State: m.sb.PlaybackState(e.ID)}
	}
	idx := m.list.Index()
	m.list.SetItems(items)
	if n := len(items); n > 0 && idx >= n {
		m.list.Select(n - 1)
	}
}

func (m *Model) notify(err error) {
	n, ok := soundboard.Notify(err)
	if !ok {
		return
	}
	log.Debug(log.CatUI, "Notification", "level", n.Level.String(), "text", n.Text, "error", err)
	m.status, m.hasStatus = n, true
}

func quote(label string) string {
	if label == "" {
		return "this sound"
	}
	return `"` + label + `"`
}
