package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sanity-io/litter"
	"github.com/spf13/cobra"

	"homedash/internal/bootstrap"
	calendarinadapter "homedash/internal/modules/calendar/adapter/in"
	calendardto "homedash/internal/modules/calendar/dto"
	"homedash/internal/platform/config"
	"homedash/internal/platform/tracing"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "homedash",
		Short:         "Personal dashboard: music ideas, reading progress, Anki reviews",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "homedash.yaml", "config file (YAML); a missing file means defaults")

	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newBuildCmd(&configPath))
	root.AddCommand(newTUICmd(&configPath))
	root.AddCommand(newReadingCmd(&configPath))
	root.AddCommand(newReviewCmd(&configPath))
	root.AddCommand(newCalendarCmd(&configPath))
	return root
}

func loadApp(configPath string) (*bootstrap.App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func newServeCmd(configPath *string) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard and its JSON endpoints",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer app.Close()
			if addr == "" {
				addr = app.Config.Addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
				shutdown, err := tracing.Init(ctx, "homedash")
				if err != nil {
					return err
				}
				defer func() {
					sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer cancel()
					if err := shutdown(sctx); err != nil {
						log.Printf("tracing shutdown: %v", err)
					}
				}()
			}

			srv, err := app.Server()
			if err != nil {
				return err
			}
			httpServer := &http.Server{
				Addr:              addr,
				Handler:           srv.Routes(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				log.Printf("listening on %s", addr)
				errCh <- httpServer.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
			}
			log.Printf("shutting down")
			sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return httpServer.Shutdown(sctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return cmd
}

func newBuildCmd(configPath *string) *cobra.Command {
	var outDir, month string
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Render the dashboard as static files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			input, err := calendardto.ParseMonth(month)
			if err != nil {
				return err
			}
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer app.Close()
			builder, err := app.SiteBuilder()
			if err != nil {
				return err
			}
			res, err := builder.Build(cmd.Context(), outDir, input)
			if err != nil {
				return err
			}
			for _, f := range res.Files {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", f)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&outDir, "out", "public", "output directory")
	cmd.Flags().StringVar(&month, "month", "", "calendar month YYYY-MM (default current)")
	return cmd
}

func newTUICmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the terminal dashboard",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer app.Close()
			// Log lines would tear the alternate screen.
			log.SetOutput(io.Discard)
			return bootstrap.RunTUI(app)
		},
	}
}

func newReadingCmd(configPath *string) *cobra.Command {
	var dump bool
	cmd := &cobra.Command{
		Use:   "reading",
		Short: "Show the book currently being read",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer app.Close()
			out := app.ReadingCLI.Current(cmd.Context())
			if dump {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), litter.Sdump(out))
				return nil
			}
			w := cmd.OutOrStdout()
			if out.Book == nil {
				_, _ = fmt.Fprintf(w, "no active book (%s)\n", out.Source)
			} else {
				_, _ = fmt.Fprintf(w, "%s\t%d%%\t%d pages\t(%s)\n", out.Book.Title, out.Book.Progress, out.Book.Pages, out.Source)
			}
			if out.Message != "" {
				_, _ = fmt.Fprintf(w, "note: %s\n", out.Message)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dump, "dump", false, "print the raw output structure")
	return cmd
}

func newReviewCmd(configPath *string) *cobra.Command {
	review := &cobra.Command{Use: "review", Short: "Anki review counts"}

	var dump bool
	today := &cobra.Command{
		Use:   "today",
		Short: "Show cards reviewed today",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer app.Close()
			out := app.ReviewCLI.Today(cmd.Context())
			if dump {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), litter.Sdump(out))
				return nil
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	today.Flags().BoolVar(&dump, "dump", false, "print the raw output structure")

	var days int
	history := &cobra.Command{
		Use:   "history",
		Short: "List recorded daily review counts, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer app.Close()
			rows, err := app.ReviewCLI.History(cmd.Context(), days)
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no history")
				return nil
			}
			for _, r := range rows {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", r.Date, r.Count)
			}
			return nil
		},
	}
	history.Flags().IntVar(&days, "days", 14, "number of days to list")

	review.AddCommand(today, history)
	return review
}

func newCalendarCmd(configPath *string) *cobra.Command {
	var month string
	var list, asJSON bool
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Print the music-idea calendar",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*configPath)
			if err != nil {
				return err
			}
			defer app.Close()
			if list {
				ideas, err := app.CalendarCLI.Ideas(cmd.Context())
				if err != nil {
					return err
				}
				for _, idea := range ideas {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", idea.Date, idea.Idea, idea.Link)
				}
				return nil
			}
			grid, err := app.CalendarCLI.Month(cmd.Context(), month)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), grid)
			}
			_, _ = fmt.Fprint(cmd.OutOrStdout(), calendarinadapter.RenderText(grid))
			return nil
		},
	}
	cmd.Flags().StringVar(&month, "month", "", "month YYYY-MM (default current)")
	cmd.Flags().BoolVar(&list, "list", false, "list every idea sorted by date")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the grid as JSON")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
