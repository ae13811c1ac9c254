package styles

// Row badges.
const (
	BadgePlaying   = "▶"
	BadgeLooping   = "↻"
	BadgeRecording = "● REC"
	BadgeDefault   = "default"
)

// FormatPlaybackBadge returns the styled badge for a sound's playback state.
// Returns empty string when the sound is idle.
func FormatPlaybackBadge(playing, looping bool) string {
	switch {
	case playing && looping:
		return LoopingStyle.Render(BadgeLooping)
	case playing:
		return PlayingStyle.Render(BadgePlaying)
	default:
		return ""
	}
}

// FormatRecordingIndicator returns the header indicator while capture is running.
func FormatRecordingIndicator(recording bool) string {
	if !recording {
		return ""
	}
	return RecordingStyle.Render(BadgeRecording)
}

// FormatLoopIndicator renders the global loop flag for the header.
func FormatLoopIndicator(looping bool) string {
	if looping {
		return LoopingStyle.Render("loop on")
	}
	return MutedStyle.Render("loop off")
}
