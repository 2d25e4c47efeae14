package bootstrap

import (
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	calendarinadapter "homedash/internal/modules/calendar/adapter/in"
	calendaroutadapter "homedash/internal/modules/calendar/adapter/out"
	calendarin "homedash/internal/modules/calendar/port/in"
	calendarservice "homedash/internal/modules/calendar/service"
	calendarusecase "homedash/internal/modules/calendar/usecase"
	readinginadapter "homedash/internal/modules/reading/adapter/in"
	readingoutadapter "homedash/internal/modules/reading/adapter/out"
	readingin "homedash/internal/modules/reading/port/in"
	readingservice "homedash/internal/modules/reading/service"
	readingusecase "homedash/internal/modules/reading/usecase"
	reviewinadapter "homedash/internal/modules/review/adapter/in"
	reviewoutadapter "homedash/internal/modules/review/adapter/out"
	reviewin "homedash/internal/modules/review/port/in"
	reviewout "homedash/internal/modules/review/port/out"
	reviewservice "homedash/internal/modules/review/service"
	reviewusecase "homedash/internal/modules/review/usecase"
	"homedash/internal/platform/clock"
	"homedash/internal/platform/config"
	"homedash/internal/site"
	uiapp "homedash/internal/ui/app"
	"homedash/internal/web"
)

type App struct {
	Config config.Config
	Clock  clock.Clock

	Reading  readingin.Usecase
	Review   reviewin.Usecase
	Calendar calendarin.Usecase

	ReadingCLI  readinginadapter.CLIHandler
	ReviewCLI   reviewinadapter.CLIHandler
	CalendarCLI calendarinadapter.CLIHandler

	closers []func() error
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{Location: cfg.Location()}

	shelf := readingoutadapter.NewGoodreadsShelf(readingoutadapter.GoodreadsOptions{
		BaseURL:     cfg.Goodreads.BaseURL,
		Key:         cfg.Goodreads.Key,
		Secret:      cfg.Goodreads.Secret,
		UserID:      cfg.Goodreads.UserID,
		Token:       cfg.Goodreads.Token,
		TokenSecret: cfg.Goodreads.TokenSecret,
		Shelf:       cfg.Goodreads.Shelf,
	}, nil)
	readingUC := readingusecase.NewInteractor(readingservice.NewReadingService(
		shelf,
		readingoutadapter.NewFileBookStore(cfg.Data.BooksPath),
	))

	app := &App{Config: cfg, Clock: clk}

	// History is optional: without it the counter still answers.
	var history reviewout.HistoryProjector
	projector, err := reviewoutadapter.NewSQLiteHistory(cfg.Data.DBPath)
	if err != nil {
		log.Printf("review history disabled: %v", err)
	} else {
		history = projector
		app.closers = append(app.closers, projector.Close)
	}
	reviewUC := reviewusecase.NewInteractor(reviewservice.NewReviewService(
		clk,
		reviewoutadapter.NewAnkiConnectClient(cfg.Anki.URL, nil),
		history,
	))

	calendarUC := calendarusecase.NewInteractor(calendarservice.NewCalendarService(
		clk,
		calendaroutadapter.NewFileIdeaStore(cfg.Data.IdeasPath),
	))

	app.Reading = readingUC
	app.Review = reviewUC
	app.Calendar = calendarUC
	app.ReadingCLI = readinginadapter.NewCLIHandler(readingUC)
	app.ReviewCLI = reviewinadapter.NewCLIHandler(reviewUC)
	app.CalendarCLI = calendarinadapter.NewCLIHandler(calendarUC)
	return app, nil
}

func (a *App) Server() (*web.Server, error) {
	return web.NewServer(a.Reading, a.Review, a.Calendar, web.Options{
		Title:        a.Config.Site.Title,
		ReadingCache: a.Config.Cache.Reading,
		AnkiCache:    a.Config.Cache.Anki,
	})
}

func (a *App) SiteBuilder() (site.Builder, error) {
	page, err := web.NewPage(a.Reading, a.Review, a.Calendar, a.Config.Site.Title)
	if err != nil {
		return site.Builder{}, fmt.Errorf("new page: %w", err)
	}
	return site.NewBuilder(page), nil
}

func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.Config.Site.Title, app.ReadingCLI, app.ReviewCLI, app.Calendar, app.Clock)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
