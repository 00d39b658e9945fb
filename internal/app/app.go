// Package app wires a dataset source, the analytics engine and a renderer
// into one report run.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/reignstats/reignstats/internal/analytics"
	"github.com/reignstats/reignstats/internal/config"
	"github.com/reignstats/reignstats/internal/metrics"
	"github.com/reignstats/reignstats/internal/render"
	"github.com/reignstats/reignstats/internal/source"
)

// Messages printed in place of the report when a run fails.
const (
	msgFetchFailed = "Error fetching data: %v"
	msgEmpty       = "Failed to load monarchs data or dataset is empty."
)

// Runner performs one fetch, analyze and render cycle.
type Runner struct {
	src      source.Source
	engine   *analytics.Engine
	renderer render.Renderer
	out      io.Writer
}

// New builds a Runner from cfg, writing reports to out.
func New(cfg *config.Config, out io.Writer) (*Runner, error) {
	src, err := source.New(cfg.Source)
	if err != nil {
		return nil, err
	}
	r, err := newRenderer(cfg.Output)
	if err != nil {
		return nil, err
	}
	return NewRunner(src, analytics.NewEngine(), r, out), nil
}

// NewRunner assembles a Runner from its parts.
func NewRunner(src source.Source, engine *analytics.Engine, r render.Renderer, out io.Writer) *Runner {
	return &Runner{src: src, engine: engine, renderer: r, out: out}
}

// Run loads the dataset and writes the report. A failed fetch or an empty
// dataset prints an explanatory line instead and returns the error; nothing
// is analyzed in that case.
func (r *Runner) Run(ctx context.Context) error {
	recs, err := r.src.Load(ctx)
	switch {
	case errors.Is(err, source.ErrEmptyDataset), err == nil && len(recs) == 0:
		slog.Error("dataset is empty")
		fmt.Fprintln(r.out, msgEmpty)
		return source.ErrEmptyDataset
	case errors.Is(err, source.ErrDecode):
		slog.Error("dataset could not be decoded", "err", err)
		fmt.Fprintln(r.out, msgEmpty)
		return err
	case err != nil:
		slog.Error("dataset fetch failed", "err", err)
		fmt.Fprintf(r.out, msgFetchFailed+"\n", err)
		return err
	}

	slog.Info("dataset loaded", "records", len(recs))

	rep := r.engine.Analyze(recs)
	if err := r.renderer.Render(r.out, rep); err != nil {
		return fmt.Errorf("app: %w", err)
	}
	return nil
}

func newRenderer(cfg config.OutputConfig) (render.Renderer, error) {
	switch cfg.Format {
	case config.FormatText, "":
		return render.NewText(cfg.Color), nil
	case config.FormatJSON:
		return render.JSON{}, nil
	case config.FormatPrometheus:
		return metrics.NewExporter(), nil
	default:
		return nil, fmt.Errorf("app: unsupported output format %q", cfg.Format)
	}
}
