// Package session runs the load, compare and render steps in order.
package session

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/san-kum/pendplot/internal/compare"
	"github.com/san-kum/pendplot/internal/config"
	"github.com/san-kum/pendplot/internal/figure"
	"github.com/san-kum/pendplot/internal/render"
	"github.com/san-kum/pendplot/internal/trajectory"
)

type Session struct {
	cfg      *config.Config
	renderer render.Renderer
}

func New(cfg *config.Config, r render.Renderer) *Session {
	return &Session{cfg: cfg, renderer: r}
}

// Load reads every configured input. It fails if any input fails.
func (s *Session) Load() ([]*trajectory.Result, error) {
	inputs := s.cfg.InputList()
	zap.L().Debug("loading inputs", zap.Int("count", len(inputs)))
	return trajectory.LoadAll(inputs)
}

// Overview renders the time series and phase portrait of every result.
func (s *Session) Overview(ctx context.Context, results []*trajectory.Result) error {
	for _, res := range results {
		fig := figure.StateOverview(res.Table, res.Method.Describe())
		zap.L().Debug("rendering overview", zap.String("method", res.Method.String()), zap.Int("samples", res.Table.Len()))
		if err := s.renderer.Render(ctx, fig); err != nil {
			return err
		}
	}
	return nil
}

// LocalErrors computes the error of every non-reference result. Grids are
// checked first according to the grid.check setting.
func (s *Session) LocalErrors(results []*trajectory.Result) ([]*compare.Series, error) {
	ref, others, err := compare.Split(results, s.cfg.ReferenceMethod())
	if err != nil {
		return nil, err
	}
	for _, c := range others {
		if err := s.checkGrid(ref, c); err != nil {
			return nil, err
		}
	}
	return compare.LocalErrors(ref, others), nil
}

func (s *Session) checkGrid(ref, cand *trajectory.Result) error {
	if s.cfg.Grid.Check == config.GridOff {
		return nil
	}
	err := compare.CheckGrid(ref, cand, s.cfg.Grid.Tolerance)
	if err == nil {
		return nil
	}
	if s.cfg.Grid.Check == config.GridStrict {
		return fmt.Errorf("%s against %s: %w", cand.Method, ref.Method, err)
	}
	zap.L().Warn("time grids differ, local error is aligned by row",
		zap.String("reference", ref.Method.String()),
		zap.String("candidate", cand.Method.String()),
		zap.Error(err))
	return nil
}

// RenderLocalError draws the shared error figure. Nothing is drawn without
// candidates.
func (s *Session) RenderLocalError(ctx context.Context, series []*compare.Series) error {
	if len(series) == 0 {
		zap.L().Info("no candidates to compare", zap.String("reference", s.cfg.Reference))
		return nil
	}
	return s.renderer.Render(ctx, figure.LocalError(s.cfg.ReferenceMethod(), series))
}

// Run loads and compares everything before the first figure is drawn, then
// renders one overview per input followed by the local error figure.
func (s *Session) Run(ctx context.Context) error {
	results, err := s.Load()
	if err != nil {
		return err
	}

	series, err := s.LocalErrors(results)
	switch {
	case errors.Is(err, compare.ErrNoReference):
		zap.L().Warn("reference not loaded, skipping local error figure", zap.String("reference", s.cfg.Reference))
		series = nil
	case err != nil:
		return err
	}

	if err := s.Overview(ctx, results); err != nil {
		return err
	}
	return s.RenderLocalError(ctx, series)
}
