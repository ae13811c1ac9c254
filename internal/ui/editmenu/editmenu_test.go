package editmenu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNavigation_Clamped(t *testing.T) {
	m := New("Doorbell", false)
	require.Equal(t, OptionPlay, m.Selected())

	m, _ = m.Update(key("k"))
	require.Equal(t, OptionPlay, m.Selected(), "up at the top stays put")

	m, _ = m.Update(key("j"))
	m, _ = m.Update(key("j"))
	m, _ = m.Update(key("j"))
	require.Equal(t, OptionDelete, m.Selected())
}

func TestEnter_SendsSelection(t *testing.T) {
	m := New("Doorbell", false)
	m, _ = m.Update(key("j"))

	_, cmd := m.Update(key("enter"))
	require.NotNil(t, cmd)
	require.Equal(t, SelectMsg{Option: OptionRename}, cmd())
}

func TestEsc_Cancels(t *testing.T) {
	_, cmd := New("Doorbell", false).Update(key("esc"))
	require.NotNil(t, cmd)
	require.Equal(t, CancelMsg{}, cmd())
}

func TestBuiltIn_OnlyPlay(t *testing.T) {
	m := New("Default Sound 1", true)
	m, _ = m.Update(key("j"))
	require.Equal(t, OptionPlay, m.Selected())

	view := m.View()
	require.Contains(t, view, "Play")
	require.NotContains(t, view, "Rename")
	require.NotContains(t, view, "Delete")
}

func TestView_ShowsTitleAndOptions(t *testing.T) {
	view := New("Doorbell", false).View()
	for _, want := range []string{"Doorbell", "Play", "Rename", "Delete"} {
		require.Contains(t, view, want)
	}
}

func TestOverlay_Centers(t *testing.T) {
	m := New("Doorbell", false).SetSize(80, 24)
	require.Contains(t, m.Overlay(), "Doorbell")
}
