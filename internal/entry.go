// Package internal provides the application commands: build, list and serve.
package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/starford/projlog/internal/apperr"
	"github.com/starford/projlog/internal/history"
	"github.com/starford/projlog/internal/models"
	"github.com/starford/projlog/internal/pipeline"
	"github.com/starford/projlog/internal/preview"
	"github.com/starford/projlog/internal/render"
	"github.com/starford/projlog/internal/site"
	"github.com/starford/projlog/internal/storage"
)

// BuildResult summarises a build.
type BuildResult struct {
	Projects int
	Path     string
	Changed  bool
}

// Build runs the pipeline and writes the page.
func Build(ctx context.Context, opts ...Option) (*BuildResult, error) {
	app, err := newApplication(opts)
	if err != nil {
		return nil, err
	}
	return app.build(ctx)
}

// List prints the projects in page order without rendering them.
func List(ctx context.Context, opts ...Option) error {
	app, err := newApplication(opts)
	if err != nil {
		return err
	}
	p, err := app.pipeline()
	if err != nil {
		return err
	}
	projects, err := p.Collect(ctx)
	if err != nil {
		return err
	}
	return writeListing(app.stdout, projects, time.Now())
}

// Serve builds the page once and serves it until ctx is cancelled or the
// process receives SIGINT/SIGTERM.
func Serve(ctx context.Context, opts ...Option) error {
	app, err := newApplication(opts)
	if err != nil {
		return err
	}
	cfg := app.config
	logger := app.logger

	if _, err := app.build(ctx); err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              cfg.Preview.Address(),
		Handler:           preview.NewRouter(cfg.Output.Path),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting preview server", slog.String("address", cfg.Preview.Address()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Preview server stopped")
	return nil
}

func newApplication(opts []Option) (*application, error) {
	app := &application{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return nil, apperr.Config(errors.New("config is required"))
	}
	if app.logger == nil {
		app.logger = newLogger(app.config.App, app.stderr)
		slog.SetDefault(app.logger)
	}

	cfg := app.config
	app.logger.Debug("Configuration loaded",
		slog.String("source_root", cfg.Source.Root),
		slog.String("template", cfg.Output.Template),
		slog.String("output", cfg.Output.Path),
		slog.String("timezone", cfg.Render.Timezone),
		slog.Bool("history", cfg.History.Enabled),
		slog.String("log_level", cfg.App.LogLevel.String()))
	return app, nil
}

func newLogger(cfg ApplicationConfig, w io.Writer) *slog.Logger {
	hopts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == LogFormatText {
		return slog.New(slog.NewTextHandler(w, hopts))
	}
	return slog.New(slog.NewJSONHandler(w, hopts))
}

func (a *application) pipeline() (*pipeline.Pipeline, error) {
	cfg := a.config

	store, err := storage.NewFS(cfg.Source.Root)
	if err != nil {
		return nil, apperr.NotFound(err)
	}

	loc, err := cfg.Render.Location()
	if err != nil {
		return nil, apperr.Config(err)
	}

	renderer, err := render.New(render.Options{
		Location:    loc,
		TrustMarkup: cfg.Render.TrustMarkup,
		HistoryURL:  cfg.Render.HistoryURL,
	})
	if err != nil {
		return nil, err
	}

	lookup := a.history
	if lookup == nil {
		lookup = history.Disabled
		if cfg.History.Enabled {
			lookup = history.NewGit(store.Root(), cfg.History.Timeout)
		}
	}

	statuses := make([]models.Status, len(cfg.Source.Statuses))
	copy(statuses, cfg.Source.Statuses)

	return pipeline.New(store, lookup, renderer, pipeline.Options{
		Statuses:  statuses,
		Extension: cfg.Source.Extension,
		Location:  loc,
	}, a.logger), nil
}

func (a *application) build(ctx context.Context) (*BuildResult, error) {
	cfg := a.config
	logger := a.logger
	start := time.Now()

	p, err := a.pipeline()
	if err != nil {
		return nil, err
	}

	projects, err := p.Collect(ctx)
	if err != nil {
		return nil, err
	}
	fragments, err := p.RenderAll(ctx, projects)
	if err != nil {
		return nil, err
	}

	tmpl, err := os.ReadFile(cfg.Output.Template)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, apperr.NotFound(fmt.Errorf("page template: %w", err))
	}
	if err != nil {
		return nil, fmt.Errorf("read page template: %w", err)
	}
	page, err := site.Assemble(tmpl, cfg.Output.Placeholder, fragments)
	if err != nil {
		return nil, apperr.Config(err)
	}

	outDir := filepath.Dir(cfg.Output.Path)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	out, err := storage.NewFS(outDir)
	if err != nil {
		return nil, fmt.Errorf("init output: %w", err)
	}
	changed, err := out.WriteIfChanged(filepath.Base(cfg.Output.Path), page)
	if err != nil {
		return nil, fmt.Errorf("write page: %w", err)
	}

	logger.Info("Build complete",
		slog.Int("projects", len(projects)),
		slog.String("output", cfg.Output.Path),
		slog.Bool("changed", changed),
		slog.Duration("took", time.Since(start)))

	return &BuildResult{Projects: len(projects), Path: cfg.Output.Path, Changed: changed}, nil
}
