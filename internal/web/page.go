package web

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log"

	"golang.org/x/sync/errgroup"

	calendardto "homedash/internal/modules/calendar/dto"
	calendarin "homedash/internal/modules/calendar/port/in"
	readingdto "homedash/internal/modules/reading/dto"
	readingin "homedash/internal/modules/reading/port/in"
	reviewdto "homedash/internal/modules/review/dto"
	reviewin "homedash/internal/modules/review/port/in"
)

// View is everything the index template needs.
type View struct {
	Title         string
	StylesheetURL string
	// Navigable enables the previous/next month links, which need a server.
	Navigable     bool
	Calendar      calendardto.GridOutput
	CalendarError string
	Reading       readingdto.ReadingOutput
	Review        reviewdto.ReviewOutput
}

type Page struct {
	tmpl     *template.Template
	reading  readingin.Usecase
	review   reviewin.Usecase
	calendar calendarin.Usecase
	title    string
}

func NewPage(reading readingin.Usecase, review reviewin.Usecase, calendar calendarin.Usecase, title string) (*Page, error) {
	tmpl, err := template.New("index.html").Funcs(template.FuncMap{
		"weekdays": func() []string { return []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"} },
	}).ParseFS(embedded, "templates/index.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Page{tmpl: tmpl, reading: reading, review: review, calendar: calendar, title: title}, nil
}

// Build gathers the three widgets concurrently. Each widget degrades on its
// own; Build itself only fails when ctx is cancelled.
func (p *Page) Build(ctx context.Context, month calendardto.MonthInput) (View, error) {
	view := View{Title: p.title, StylesheetURL: "static/style.css"}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		view.Reading = p.reading.Resolve(gctx)
		return nil
	})
	g.Go(func() error {
		view.Review = p.review.Today(gctx)
		return nil
	})
	g.Go(func() error {
		grid, err := p.calendar.Month(gctx, month)
		if err != nil {
			log.Printf("calendar widget: %v", err)
			view.CalendarError = err.Error()
			return nil
		}
		view.Calendar = grid
		return nil
	})
	if err := g.Wait(); err != nil {
		return View{}, err
	}
	if err := ctx.Err(); err != nil {
		return View{}, err
	}
	return view, nil
}

// Execute renders into a buffer first; w sees nothing when the template fails.
func (p *Page) Execute(w io.Writer, view View) error {
	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, view); err != nil {
		return fmt.Errorf("execute index template: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// Stylesheet returns the embedded stylesheet.
func Stylesheet() ([]byte, error) {
	return fs.ReadFile(embedded, "static/style.css")
}
