package calendar

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	calendardto "homedash/internal/modules/calendar/dto"
	"homedash/internal/platform/clock"
	"homedash/internal/ui/theme"
)

// Port is the slice of the calendar use case this view needs.
type Port interface {
	Month(ctx context.Context, input calendardto.MonthInput) (calendardto.GridOutput, error)
}

// LoadedMsg carries a freshly built month grid.
type LoadedMsg struct {
	Grid calendardto.GridOutput
	Err  error
}

type Model struct {
	port  Port
	clock clock.Clock
	grid  calendardto.GridOutput
	month calendardto.MonthInput
	err   error
	width int
}

// New builds the view; clk decides the month a shift starts from before the
// first grid arrives. A nil clk means wall time.
func New(port Port, clk clock.Clock) Model {
	if clk == nil {
		clk = clock.SystemClock{}
	}
	return Model{port: port, clock: clk}
}

func (m Model) Init() tea.Cmd { return m.Load() }

// Load fetches the currently selected month.
func (m Model) Load() tea.Cmd {
	port, month := m.port, m.month
	return func() tea.Msg {
		if port == nil {
			return LoadedMsg{Err: fmt.Errorf("calendar is not configured")}
		}
		grid, err := port.Month(context.Background(), month)
		return LoadedMsg{Grid: grid, Err: err}
	}
}

// Shift moves the selection by delta months and reloads.
func (m *Model) Shift(delta int) tea.Cmd {
	year, month := m.grid.Year, time.Month(m.grid.Month)
	if year == 0 {
		now := m.clock.Now()
		year, month = now.Year(), now.Month()
	}
	t := time.Date(year, month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	m.month = calendardto.MonthInput{Year: t.Year(), Month: int(t.Month())}
	return m.Load()
}

// Jump selects an explicit month; the zero value means the current month.
func (m *Model) Jump(month calendardto.MonthInput) tea.Cmd {
	m.month = month
	return m.Load()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case LoadedMsg:
		m.err = msg.Err
		if msg.Err == nil {
			m.grid = msg.Grid
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.err != nil {
		return theme.Title.Render("Music ideas") + "\n" + theme.Bad.Render(m.err.Error())
	}
	if len(m.grid.Weeks) == 0 {
		return theme.Title.Render("Music ideas") + "\n" + theme.Muted.Render("loading…")
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render(m.grid.Title) + "\n")
	sb.WriteString(theme.Muted.Render(" Mo  Tu  We  Th  Fr  Sa  Su") + "\n")
	var ideas []string
	for _, week := range m.grid.Weeks {
		cells := make([]string, 0, len(week))
		for _, c := range week {
			cells = append(cells, renderCell(c))
			for _, idea := range c.Ideas {
				ideas = append(ideas, fmt.Sprintf("%s  %s", theme.Muted.Render(c.Date), idea.Idea))
			}
		}
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...) + "\n")
	}
	if len(ideas) > 0 {
		sb.WriteString("\n" + strings.Join(ideas, "\n"))
	} else {
		sb.WriteString("\n" + theme.Muted.Render("no ideas this month"))
	}
	return sb.String()
}

func renderCell(c calendardto.CellOutput) string {
	if c.Padding {
		return "    "
	}
	label := fmt.Sprintf("%3d", c.Day)
	switch {
	case c.Today:
		return " " + theme.Today.Render(label)
	case !c.Empty:
		return " " + theme.HasIdea.Render(label)
	default:
		return " " + theme.Empty.Render(label)
	}
}
