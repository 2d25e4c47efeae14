package app

import (
	"context"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	calendardto "homedash/internal/modules/calendar/dto"
	readingdto "homedash/internal/modules/reading/dto"
	reviewdto "homedash/internal/modules/review/dto"
	"homedash/internal/platform/clock"
	"homedash/internal/ui/components"
	"homedash/internal/ui/theme"
	calendarview "homedash/internal/ui/views/calendar"
	readingview "homedash/internal/ui/views/reading"
	reviewview "homedash/internal/ui/views/review"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type readingPort interface {
	Current(ctx context.Context) readingdto.ReadingOutput
}

type reviewPort interface {
	Today(ctx context.Context) reviewdto.ReviewOutput
	History(ctx context.Context, days int) ([]reviewdto.DayOutput, error)
}

type calendarPort interface {
	Month(ctx context.Context, input calendardto.MonthInput) (calendardto.GridOutput, error)
}

const defaultHistoryDays = 7

// ─── async messages ───────────────────────────────────────────────────────────

type readingLoadedMsg struct{ out readingdto.ReadingOutput }

type reviewLoadedMsg struct {
	today   reviewdto.ReviewOutput
	history []reviewdto.DayOutput
	err     error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Refresh key.Binding
	Prev    key.Binding
	Next    key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Prev:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev month")),
		Next:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next month")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Refresh, k.Prev, k.Next, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Refresh, k.Prev, k.Next},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model: a calendar pane on the left, reading
// and review panes stacked on the right.
type Model struct {
	title   string
	reading readingPort
	review  reviewPort

	calView calendarview.Model
	spinner spinner.Model

	readingOut  readingdto.ReadingOutput
	reviewOut   reviewdto.ReviewOutput
	history     []reviewdto.DayOutput
	historyDays int
	pending     int

	keys     keyMap
	help     help.Model
	showHelp bool
	palette  components.Palette
	status   string
	width    int
	height   int
}

func NewModel(title string, reading readingPort, review reviewPort, calendar calendarPort, clk clock.Clock) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		title:       title,
		reading:     reading,
		review:      review,
		calView:     calendarview.New(calendar, clk),
		spinner:     sp,
		historyDays: defaultHistoryDays,
		pending:     2,
		keys:        defaultKeys(),
		help:        help.New(),
		palette:     components.NewPalette(),
		status:      "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.calView.Init(), m.loadReadingCmd(), m.loadReviewCmd(), m.spinner.Tick)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 60))
		m.help.Width = m.width
		m.calView, _ = m.calView.Update(tea.WindowSizeMsg{Width: m.width / 2, Height: m.height - 3})

	case readingLoadedMsg:
		m.readingOut = msg.out
		m.done()

	case reviewLoadedMsg:
		m.reviewOut = msg.today
		m.history = msg.history
		if msg.err != nil {
			m.status = "review history: " + msg.err.Error()
		}
		m.done()

	case calendarview.LoadedMsg:
		if msg.Err != nil {
			m.status = "calendar: " + msg.Err.Error()
		}
		var cmd tea.Cmd
		m.calView, cmd = m.calView.Update(msg)
		return m, cmd

	case spinner.TickMsg:
		if m.pending > 0 {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
		case key.Matches(msg, m.keys.Palette):
			return m, m.palette.Open()
		case key.Matches(msg, m.keys.Refresh):
			return m, m.refresh()
		case key.Matches(msg, m.keys.Prev):
			return m, m.calView.Shift(-1)
		case key.Matches(msg, m.keys.Next):
			return m, m.calView.Shift(1)
		}
	}
	return m, nil
}

func (m *Model) done() {
	if m.pending > 0 {
		m.pending--
	}
	if m.pending == 0 && m.status == "refreshing" {
		m.status = "ready"
	}
}

func (m *Model) refresh() tea.Cmd {
	m.pending = 2
	m.status = "refreshing"
	return tea.Batch(m.calView.Load(), m.loadReadingCmd(), m.loadReviewCmd(), m.spinner.Tick)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	header := m.renderHeader()
	statusBar := m.renderStatusBar()
	contentH := max(m.height-lipgloss.Height(header)-lipgloss.Height(statusBar), 1)

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		half := max(m.width/2-2, 20)
		left := theme.PaneActive.Width(half).Render(m.calView.View())
		right := lipgloss.JoinVertical(lipgloss.Left,
			theme.Pane.Width(half).Render(readingview.Render(m.readingOut)),
			theme.Pane.Width(half).Render(reviewview.Render(m.reviewOut, m.history)),
		)
		content = lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (m Model) renderHeader() string {
	bar := theme.Hot.Render(" " + m.title + " ")
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if m.pending > 0 {
		left = m.spinner.View() + " " + left
	}
	right := theme.Muted.Render("r:refresh  ←/→:month  ?:help  q:quit")
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}
	switch parts[0] {
	case "month":
		if len(parts) < 2 {
			m.status = "usage: month <YYYY-MM>"
			return m, nil
		}
		month, err := calendardto.ParseMonth(parts[1])
		if err != nil {
			m.status = err.Error()
			return m, nil
		}
		return m, m.calView.Jump(month)
	case "today":
		return m, m.calView.Jump(calendardto.MonthInput{})
	case "refresh":
		return m, m.refresh()
	case "history":
		if len(parts) < 2 {
			m.status = "usage: history <days>"
			return m, nil
		}
		days, err := strconv.Atoi(parts[1])
		if err != nil || days < 1 {
			m.status = "invalid days"
			return m, nil
		}
		m.historyDays = days
		m.pending++
		return m, m.loadReviewCmd()
	default:
		m.status = "unknown command: " + parts[0]
	}
	return m, nil
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) loadReadingCmd() tea.Cmd {
	port := m.reading
	return func() tea.Msg {
		if port == nil {
			return readingLoadedMsg{}
		}
		return readingLoadedMsg{out: port.Current(context.Background())}
	}
}

func (m Model) loadReviewCmd() tea.Cmd {
	port, days := m.review, m.historyDays
	return func() tea.Msg {
		if port == nil {
			return reviewLoadedMsg{today: reviewdto.ReviewOutput{Error: true, Message: "review is not configured"}}
		}
		ctx := context.Background()
		today := port.Today(ctx)
		history, err := port.History(ctx, days)
		return reviewLoadedMsg{today: today, history: history, err: err}
	}
}
