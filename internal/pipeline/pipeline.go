// Package pipeline runs the project record pipeline: discovery, loading,
// history enrichment, normalization, ordering and rendering.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/starford/projlog/internal/history"
	"github.com/starford/projlog/internal/loader"
	"github.com/starford/projlog/internal/models"
	"github.com/starford/projlog/internal/normalize"
	"github.com/starford/projlog/internal/ordering"
	"github.com/starford/projlog/internal/render"
	"github.com/starford/projlog/internal/storage"
)

// Options controls discovery and date handling.
type Options struct {
	Statuses  []models.Status
	Extension string
	Location  *time.Location
}

// Pipeline wires the stages together. Each stage runs over the whole batch
// before the next one starts.
type Pipeline struct {
	store    storage.Provider
	history  history.Lookup
	renderer *render.Renderer
	opts     Options
	logger   *slog.Logger
}

// New creates a Pipeline. A nil lookup disables history enrichment.
func New(store storage.Provider, lookup history.Lookup, renderer *render.Renderer, opts Options, logger *slog.Logger) *Pipeline {
	if lookup == nil {
		lookup = history.Disabled
	}
	if len(opts.Statuses) == 0 {
		opts.Statuses = models.DefaultStatuses
	}
	if opts.Extension == "" {
		opts.Extension = ".toml"
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		store:    store,
		history:  lookup,
		renderer: renderer,
		opts:     opts,
		logger:   logger,
	}
}

// Collect discovers, loads and enriches every record concurrently, then
// normalizes and sorts the complete set. Any load failure aborts the run.
func (p *Pipeline) Collect(ctx context.Context) ([]models.Project, error) {
	sources, err := p.store.Discover(p.opts.Statuses, p.opts.Extension)
	if err != nil {
		return nil, fmt.Errorf("pipeline: discover: %w", err)
	}
	p.logger.Debug("pipeline: discovered", slog.Int("count", len(sources)))

	projects := make([]models.Project, len(sources))
	g, gCtx := errgroup.WithContext(ctx)
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			pr, err := p.load(gCtx, src)
			if err != nil {
				return err
			}
			projects[i] = pr
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i := range projects {
		projects[i] = normalize.Project(projects[i], p.opts.Location)
	}
	ordering.Sort(projects)
	return projects, nil
}

// RenderAll renders every project concurrently. Fragments come back in the
// order of projects.
func (p *Pipeline) RenderAll(ctx context.Context, projects []models.Project) ([]string, error) {
	if p.renderer == nil {
		return nil, fmt.Errorf("pipeline: no renderer configured")
	}
	fragments := make([]string, len(projects))
	g, gCtx := errgroup.WithContext(ctx)
	for i, pr := range projects {
		i, pr := i, pr
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			out, err := p.renderer.Render(pr)
			if err != nil {
				return err
			}
			fragments[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return fragments, nil
}

func (p *Pipeline) load(ctx context.Context, src models.Source) (models.Project, error) {
	data, err := p.store.Read(src.Path)
	if err != nil {
		return models.Project{}, fmt.Errorf("pipeline: %w", err)
	}
	loaded, err := loader.Load(src, data)
	if err != nil {
		return models.Project{}, err
	}
	if len(loaded.Unknown) > 0 {
		p.logger.Debug("pipeline: unknown keys ignored",
			slog.String("path", src.Path),
			slog.String("keys", strings.Join(loaded.Unknown, ",")))
	}

	pr := loaded.Project
	p.enrich(ctx, &pr)
	return pr, nil
}

// enrich attaches version-control history. Missing history is a normal state
// and a failed lookup only costs the record its history fields.
func (p *Pipeline) enrich(ctx context.Context, pr *models.Project) {
	res := p.history.Latest(ctx, pr.Path)
	switch res.Outcome {
	case history.Found:
		pr.Commit = res.Commit
		pr.Modified = models.Timestamp{Time: res.Modified}
	case history.NotFound:
		p.logger.Debug("pipeline: no history", slog.String("path", pr.Path))
	case history.Failed:
		attrs := []any{slog.String("path", pr.Path)}
		if res.Err != nil {
			attrs = append(attrs, slog.String("error", res.Err.Error()))
		}
		p.logger.Warn("pipeline: history lookup failed", attrs...)
	}
}
