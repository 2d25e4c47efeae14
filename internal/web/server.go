// Package web serves the dashboard page and its JSON endpoints.
package web

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	calendardto "homedash/internal/modules/calendar/dto"
	calendarin "homedash/internal/modules/calendar/port/in"
	readingadapter "homedash/internal/modules/reading/adapter/in"
	readingin "homedash/internal/modules/reading/port/in"
	reviewadapter "homedash/internal/modules/review/adapter/in"
	reviewin "homedash/internal/modules/review/port/in"
	"homedash/internal/platform/httpjson"
	"homedash/internal/platform/id"
	"homedash/internal/platform/tracing"
)

//go:embed templates/*.html static/*
var embedded embed.FS

const RequestIDHeader = "X-Request-ID"

type Options struct {
	Title        string
	ReadingCache string
	AnkiCache    string
}

type Server struct {
	page    *Page
	reading readingin.Usecase
	review  reviewin.Usecase
	opts    Options
}

func NewServer(reading readingin.Usecase, review reviewin.Usecase, calendar calendarin.Usecase, opts Options) (*Server, error) {
	page, err := NewPage(reading, review, calendar, opts.Title)
	if err != nil {
		return nil, err
	}
	return &Server{page: page, reading: reading, review: review, opts: opts}, nil
}

func (s *Server) Routes() http.Handler {
	r := mux.NewRouter()
	r.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)
	r.NotFoundHandler = http.HandlerFunc(notFound)
	r.Use(routeSpanName)

	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet, http.MethodHead)
	r.Handle("/api/reading", readingadapter.NewHTTPHandler(s.reading, s.opts.ReadingCache)).Methods(http.MethodGet, http.MethodHead)
	r.Handle("/api/anki", reviewadapter.NewHTTPHandler(s.review, s.opts.AnkiCache)).Methods(http.MethodGet, http.MethodHead)

	static, _ := fs.Sub(embedded, "static")
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.FS(static)))).Methods(http.MethodGet, http.MethodHead)

	return requestID(id.UUID{})(tracing.Middleware(accessLog(r)))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	month, err := calendardto.ParseMonth(r.URL.Query().Get("month"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	view, err := s.page.Build(r.Context(), month)
	if err != nil {
		log.Printf("build index: %v", err)
		http.Error(w, "request cancelled", http.StatusServiceUnavailable)
		return
	}
	view.Navigable = true
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := s.page.Execute(w, view); err != nil {
		log.Printf("render index: %v", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
	}
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	httpjson.WriteError(w, http.StatusMethodNotAllowed, "method_not_allowed", r.Method+" is not allowed on "+r.URL.Path)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	httpjson.WriteError(w, http.StatusNotFound, "not_found", r.URL.Path+" not found")
}

// routeSpanName names the request span after the matched route template, so
// every static file shares one span name.
func routeSpanName(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if route := mux.CurrentRoute(r); route != nil {
			if tmpl, err := route.GetPathTemplate(); err == nil {
				tracing.NameSpan(r.Context(), r.Method+" "+tmpl)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// requestID keeps an incoming X-Request-ID or mints one with ids.
func requestID(ids id.Generator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rid := r.Header.Get(RequestIDHeader)
			if rid == "" {
				rid = ids.New()
			}
			w.Header().Set(RequestIDHeader, rid)
			next.ServeHTTP(w, r)
		})
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		line := fmt.Sprintf("%s %s %d %s id=%s", r.Method, r.URL.RequestURI(), rec.status, time.Since(start).Round(time.Microsecond), w.Header().Get(RequestIDHeader))
		if id := tracing.TraceID(r.Context()); id != "" {
			line += " trace=" + id
		}
		log.Print(line)
	})
}
