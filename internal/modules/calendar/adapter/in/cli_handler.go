package in

import (
	"context"
	"fmt"
	"strings"

	"homedash/internal/modules/calendar/dto"
	calendarin "homedash/internal/modules/calendar/port/in"
)

type CLIHandler struct {
	usecase calendarin.Usecase
}

func NewCLIHandler(usecase calendarin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

// Month renders the grid for a YYYY-MM value; an empty value is the current
// month.
func (h CLIHandler) Month(ctx context.Context, value string) (dto.GridOutput, error) {
	input, err := dto.ParseMonth(value)
	if err != nil {
		return dto.GridOutput{}, err
	}
	return h.usecase.Month(ctx, input)
}

func (h CLIHandler) Ideas(ctx context.Context) ([]dto.IdeaOutput, error) {
	return h.usecase.Ideas(ctx)
}

// RenderText draws the grid as a fixed-width table for terminals.
func RenderText(g dto.GridOutput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", g.Title)
	b.WriteString(" Mo  Tu  We  Th  Fr  Sa  Su\n")
	var listed []dto.CellOutput
	for _, week := range g.Weeks {
		for _, c := range week {
			switch {
			case c.Padding:
				b.WriteString("    ")
			case c.Today:
				fmt.Fprintf(&b, "[%2d]", c.Day)
			case !c.Empty:
				fmt.Fprintf(&b, " %2d*", c.Day)
			default:
				fmt.Fprintf(&b, " %2d ", c.Day)
			}
			if !c.Empty && !c.Padding {
				listed = append(listed, c)
			}
		}
		b.WriteString("\n")
	}
	for _, c := range listed {
		for _, idea := range c.Ideas {
			fmt.Fprintf(&b, "%s  %s", c.Date, idea.Idea)
			if idea.Link != "" {
				fmt.Fprintf(&b, " <%s>", idea.Link)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}
