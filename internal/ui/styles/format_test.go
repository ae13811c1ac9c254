package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestBadges_ColoredOnTrueColorTerminal(t *testing.T) {
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() { lipgloss.SetColorProfile(termenv.Ascii) })

	for _, tc := range []struct {
		name, got, want string
	}{
		{"playing", FormatPlaybackBadge(true, false), BadgePlaying},
		{"looping", FormatPlaybackBadge(true, true), BadgeLooping},
		{"recording", FormatRecordingIndicator(true), BadgeRecording},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.NotEqual(t, tc.want, tc.got, "expected escape sequences")
			assert.Equal(t, tc.want, ansi.Strip(tc.got))
		})
	}
}
