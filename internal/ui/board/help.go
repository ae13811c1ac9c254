package board

import (
	"github.com/charmbracelet/glamour"

	"github.com/kobeSmallman/mobileSoundboard/internal/log"
)

const helpMarkdown = `# Soundboard

- **Play and loop sounds**: press enter to play the selected sound and l to loop everything that is playing.
- **Record your own sounds**: press r to start recording and r again to save it as a new sound.
- **Customize sound labels**: press e to rename a sound.
- **Manage your sounds**: press a to add a file, d to delete a sound and s to stop every sound at once.

Default sounds are always available and cannot be renamed or deleted.

| Key | Action |
|-----|--------|
| enter | play |
| m | actions for the selected sound |
| l | toggle loop |
| s | stop all |
| r | start or stop recording |
| a | add a file |
| e | rename |
| d | delete |
| q | quit |
`

// renderHelp renders the help page for width columns.
func renderHelp(width int) string {
	wrap := max(width-4, 20)
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(wrap))
	if err != nil {
		log.ErrorErr(log.CatUI, "Help renderer unavailable", err)
		return helpMarkdown
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		log.ErrorErr(log.CatUI, "Rendering help failed", err)
		return helpMarkdown
	}
	return out
}
