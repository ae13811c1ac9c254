package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// Border characters (rounded)
const (
	borderTopLeft     = "╭"
	borderTopRight    = "╮"
	borderBottomLeft  = "╰"
	borderBottomRight = "╯"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// RenderWithTitleBorder frames content in a rounded border with leftTitle and
// rightTitle embedded in the top edge. Pass "" to omit a title. Titles may
// carry their own styling; they are truncated when the frame is too narrow.
func RenderWithTitleBorder(content, leftTitle, rightTitle string, width, height int, focused bool) string {
	var borderColor lipgloss.TerminalColor = BorderDefaultColor
	if focused {
		borderColor = BorderFocusColor
	}
	border := lipgloss.NewStyle().Foreground(borderColor)

	innerWidth := max(width-2, 1)
	innerHeight := max(height-2, 1)

	body := lipgloss.NewStyle().Width(innerWidth).Height(innerHeight).MaxHeight(innerHeight).Render(content)
	lines := strings.Split(body, "\n")

	var b strings.Builder
	b.WriteString(topBorder(leftTitle, rightTitle, innerWidth, border))
	for i := range innerHeight {
		line := ""
		if i < len(lines) {
			line = truncate.String(lines[i], uint(innerWidth))
		}
		if pad := innerWidth - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		b.WriteString("\n")
		b.WriteString(border.Render(borderVertical) + line + border.Render(borderVertical))
	}
	b.WriteString("\n")
	b.WriteString(border.Render(borderBottomLeft + strings.Repeat(borderHorizontal, innerWidth) + borderBottomRight))
	return b.String()
}

// topBorder builds ╭─ Left ───── Right ─╮. The right title is dropped first
// when space runs out, then the left title is shortened.
func topBorder(left, right string, innerWidth int, border lipgloss.Style) string {
	plain := func() string {
		return border.Render(borderTopLeft + strings.Repeat(borderHorizontal, innerWidth) + borderTopRight)
	}

	// "─ " + title + " " on the left, " " + title + " ─" on the right, one dash minimum between.
	const leftChrome, rightChrome = 3, 3
	leftW, rightW := lipgloss.Width(left), lipgloss.Width(right)

	if right != "" && leftChrome+leftW+1+rightChrome+rightW > innerWidth {
		right, rightW = "", 0
	}
	if left != "" {
		avail := innerWidth - leftChrome - 1
		if avail < 1 {
			left, leftW = "", 0
		} else if leftW > avail {
			left = TruncateString(left, avail)
			leftW = lipgloss.Width(left)
		}
	}
	if left == "" && right == "" {
		return plain()
	}

	used := 0
	var b strings.Builder
	b.WriteString(border.Render(borderTopLeft))
	if left != "" {
		b.WriteString(border.Render(borderHorizontal+" ") + left + border.Render(" "))
		used += leftChrome + leftW
	}
	dashes := innerWidth - used
	if right != "" {
		dashes -= rightChrome + rightW
	}
	b.WriteString(border.Render(strings.Repeat(borderHorizontal, max(dashes, 0))))
	if right != "" {
		b.WriteString(border.Render(" ") + right + border.Render(" "+borderHorizontal))
	}
	b.WriteString(border.Render(borderTopRight))
	return b.String()
}

// TruncateString truncates s to maxWidth cells, ending in "..." when cut.
func TruncateString(s string, maxWidth int) string {
	if maxWidth < 1 {
		return ""
	}
	if lipgloss.Width(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return strings.Repeat(".", maxWidth)
	}
	return truncate.StringWithTail(s, uint(maxWidth), "...")
}
