// Package styles contains Lip Gloss style definitions.
package styles

import (
	"fmt"
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// ColorToken names one themable color.
type ColorToken string

const (
	TokenTextPrimary   ColorToken = "text.primary"
	TokenTextMuted     ColorToken = "text.muted"
	TokenBorderDefault ColorToken = "border.default"
	TokenBorderFocus   ColorToken = "border.focus"
	TokenSelection     ColorToken = "selection"
	TokenPlaying       ColorToken = "state.playing"
	TokenLooping       ColorToken = "state.looping"
	TokenRecording     ColorToken = "state.recording"
	TokenWarn          ColorToken = "status.warn"
	TokenError         ColorToken = "status.error"
)

// Preset is a named set of colors. Light falls back to Colors when a token is missing.
type Preset struct {
	Name        string
	Description string
	Colors      map[ColorToken]string
	Light       map[ColorToken]string
}

// DefaultPreset is used when no theme is configured.
var DefaultPreset = Preset{
	Name:        "default",
	Description: "Soft colors for dark terminals",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "#E5E7EB",
		TokenTextMuted:     "#6B7280",
		TokenBorderDefault: "#4B5563",
		TokenBorderFocus:   "#8B5CF6",
		TokenSelection:     "#C4B5FD",
		TokenPlaying:       "#34D399",
		TokenLooping:       "#60A5FA",
		TokenRecording:     "#F87171",
		TokenWarn:          "#FBBF24",
		TokenError:         "#F87171",
	},
	Light: map[ColorToken]string{
		TokenTextPrimary:   "#111827",
		TokenTextMuted:     "#6B7280",
		TokenBorderDefault: "#9CA3AF",
		TokenBorderFocus:   "#6D28D9",
		TokenSelection:     "#6D28D9",
		TokenPlaying:       "#047857",
		TokenLooping:       "#1D4ED8",
		TokenRecording:     "#B91C1C",
		TokenWarn:          "#B45309",
		TokenError:         "#B91C1C",
	},
}

// HighContrastPreset uses the basic ANSI palette.
var HighContrastPreset = Preset{
	Name:        "high-contrast",
	Description: "ANSI colors only",
	Colors: map[ColorToken]string{
		TokenTextPrimary:   "15",
		TokenTextMuted:     "7",
		TokenBorderDefault: "7",
		TokenBorderFocus:   "11",
		TokenSelection:     "11",
		TokenPlaying:       "10",
		TokenLooping:       "14",
		TokenRecording:     "9",
		TokenWarn:          "11",
		TokenError:         "9",
	},
}

// Presets lists the themes ApplyTheme accepts.
var Presets = map[string]Preset{
	DefaultPreset.Name:      DefaultPreset,
	HighContrastPreset.Name: HighContrastPreset,
}

// Colors, set by ApplyTheme.
var (
	TextPrimaryColor   lipgloss.AdaptiveColor
	TextMutedColor     lipgloss.AdaptiveColor
	BorderDefaultColor lipgloss.AdaptiveColor
	BorderFocusColor   lipgloss.AdaptiveColor
	SelectionColor     lipgloss.AdaptiveColor
	PlayingColor       lipgloss.AdaptiveColor
	LoopingColor       lipgloss.AdaptiveColor
	RecordingColor     lipgloss.AdaptiveColor
	WarnColor          lipgloss.AdaptiveColor
	ErrorColor         lipgloss.AdaptiveColor
)

// Styles derived from the colors.
var (
	TitleStyle              lipgloss.Style
	MutedStyle              lipgloss.Style
	SelectionIndicatorStyle lipgloss.Style
	SelectedRowStyle        lipgloss.Style
	PlayingStyle            lipgloss.Style
	LoopingStyle            lipgloss.Style
	RecordingStyle          lipgloss.Style
	InfoStyle               lipgloss.Style
	WarnStyle               lipgloss.Style
	ErrorStyle              lipgloss.Style
)

func init() {
	_ = ApplyTheme("")
}

// ApplyTheme installs the named preset. An empty name selects DefaultPreset.
func ApplyTheme(name string) error {
	if name == "" {
		name = DefaultPreset.Name
	}
	preset, ok := Presets[name]
	if !ok {
		names := make([]string, 0, len(Presets))
		for n := range Presets {
			names = append(names, n)
		}
		slices.Sort(names)
		return fmt.Errorf("unknown theme %q (available: %v)", name, names)
	}

	TextPrimaryColor = preset.color(TokenTextPrimary)
	TextMutedColor = preset.color(TokenTextMuted)
	BorderDefaultColor = preset.color(TokenBorderDefault)
	BorderFocusColor = preset.color(TokenBorderFocus)
	SelectionColor = preset.color(TokenSelection)
	PlayingColor = preset.color(TokenPlaying)
	LoopingColor = preset.color(TokenLooping)
	RecordingColor = preset.color(TokenRecording)
	WarnColor = preset.color(TokenWarn)
	ErrorColor = preset.color(TokenError)
	rebuildStyles()
	return nil
}

func (p Preset) color(token ColorToken) lipgloss.AdaptiveColor {
	dark := p.Colors[token]
	if dark == "" {
		dark = DefaultPreset.Colors[token]
	}
	light := p.Light[token]
	if light == "" {
		light = dark
	}
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func rebuildStyles() {
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(TextPrimaryColor)
	MutedStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionColor)
	SelectedRowStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionColor)
	PlayingStyle = lipgloss.NewStyle().Foreground(PlayingColor)
	LoopingStyle = lipgloss.NewStyle().Foreground(LoopingColor)
	RecordingStyle = lipgloss.NewStyle().Bold(true).Foreground(RecordingColor)
	InfoStyle = lipgloss.NewStyle().Foreground(TextPrimaryColor)
	WarnStyle = lipgloss.NewStyle().Foreground(WarnColor)
	ErrorStyle = lipgloss.NewStyle().Bold(true).Foreground(ErrorColor)
}
