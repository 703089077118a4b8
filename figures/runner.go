// SPDX-License-Identifier: MIT
// Package: rmmcurve/figures
//
// runner.go — build and save a selection of figures.
//
// Failure policy:
//   • Unknown names are rejected before anything is rendered.
//   • A failing figure is logged and skipped; with Config.FailFast the run
//     stops and returns that figure's error.
//   • Context cancellation is checked between figures.

package figures

import (
	"context"
	"fmt"

	"github.com/sgostarter/i/l"

	"github.com/katalvlaran/rmmcurve/render"
)

// Result lists what a run wrote and which figures failed.
type Result struct {
	Written []string
	Failed  []string
}

// Runner renders figures from one Env.
type Runner struct {
	env    Env
	logger l.Wrapper
}

// NewRunner returns a Runner over env.
func NewRunner(env Env) *Runner {
	logger := env.Logger
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	return &Runner{
		env:    env,
		logger: logger.WithFields(l.StringField(l.ClsKey, "figureRunner")),
	}
}

// Run renders the named figures in order; empty names means the configured
// selection, or the whole catalog when that is empty too.
func (r *Runner) Run(ctx context.Context, names []string) (Result, error) {
	var result Result

	selected, err := r.resolve(names)
	if err != nil {
		return result, err
	}

	display, err := r.env.Config.RenderDisplay()
	if err != nil {
		return result, err
	}

	for _, fig := range selected {
		if err = ctx.Err(); err != nil {
			return result, err
		}

		logger := r.logger.WithFields(l.StringField("figure", fig.Name))

		path, err := r.render(fig, display)
		if err != nil {
			logger.WithFields(l.ErrorField(err)).Error("render figure failed")
			result.Failed = append(result.Failed, fig.Name)

			if r.env.Config.FailFast {
				return result, fmt.Errorf("figure %s: %w", fig.Name, err)
			}

			continue
		}

		logger.WithFields(l.StringField("path", path)).Info("figure written")
		result.Written = append(result.Written, path)
	}

	r.logger.WithFields(l.IntField("written", len(result.Written)), l.IntField("failed", len(result.Failed))).
		Info("run finished")

	return result, nil
}

func (r *Runner) resolve(names []string) ([]Figure, error) {
	if len(names) == 0 {
		names = r.env.Config.Figures
	}
	if len(names) == 0 {
		return Registry(), nil
	}

	selected := make([]Figure, 0, len(names))
	for _, name := range names {
		fig, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		selected = append(selected, fig)
	}

	return selected, nil
}

func (r *Runner) render(fig Figure, display render.Display) (string, error) {
	chart, err := fig.Build(r.env)
	if err != nil {
		return "", err
	}

	p, err := render.Build(chart, display)
	if err != nil {
		return "", err
	}

	return render.Save(p, r.env.Config.OutputDir, fig.Name, r.env.Config.Format)
}
