package reading

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"

	readingdto "homedash/internal/modules/reading/dto"
	"homedash/internal/ui/theme"
)

const barWidth = 30

// Render draws the reading widget. It has no state of its own.
func Render(out readingdto.ReadingOutput) string {
	s := theme.Title.Render("Currently reading") + "  " + theme.Muted.Render("["+out.Source+"]") + "\n"
	if out.Book == nil {
		s += theme.Muted.Render("No active book")
	} else {
		bar := progress.New(progress.WithSolidFill(string(theme.Sapphire)), progress.WithWidth(barWidth), progress.WithoutPercentage())
		s += out.Book.Title + "\n"
		s += bar.ViewAs(float64(out.Book.Progress)/100) + " " + fmt.Sprintf("%d%% of %d pages", out.Book.Progress, out.Book.Pages)
	}
	if out.Message != "" {
		s += "\n" + theme.Muted.Render(out.Message)
	}
	return s
}
