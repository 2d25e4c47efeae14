package review

import (
	"fmt"
	"strings"

	reviewdto "homedash/internal/modules/review/dto"
	"homedash/internal/ui/theme"
)

const maxBar = 24

// Render draws today's count followed by the recorded history, newest first.
func Render(today reviewdto.ReviewOutput, history []reviewdto.DayOutput) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Anki reviews today") + "\n")
	if today.Error {
		sb.WriteString(theme.Bad.Render("0  (AnkiConnect unavailable)"))
		if today.Message != "" {
			sb.WriteString("\n" + theme.Muted.Render(today.Message))
		}
	} else {
		sb.WriteString(theme.Hot.Render(fmt.Sprintf("%d", today.Today)))
	}
	if len(history) == 0 {
		return sb.String()
	}

	peak := 0
	for _, d := range history {
		peak = max(peak, d.Count)
	}
	sb.WriteString("\n\n" + theme.Muted.Render("history") + "\n")
	for _, d := range history {
		width := 0
		if peak > 0 {
			width = d.Count * maxBar / peak
		}
		fmt.Fprintf(&sb, "%s %s %d\n", theme.Muted.Render(d.Date), theme.Good.Render(strings.Repeat("█", width)), d.Count)
	}
	return strings.TrimRight(sb.String(), "\n")
}
