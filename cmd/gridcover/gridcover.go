package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/go-ricrob/gridcover/internal/config"
	"github.com/go-ricrob/gridcover/internal/report"
	"github.com/go-ricrob/gridcover/internal/solver"
)

// solve prints the grid of cfg followed by the best path, or the no free cells message.
func solve(ctx context.Context, w io.Writer, cfg config.Config, logger *slog.Logger) error {
	g, err := cfg.Grid()
	if err != nil {
		return err
	}
	if err := report.Grid(w, g); err != nil {
		return err
	}

	runner, err := solver.New(g, cfg.Moves,
		solver.WithLogger(logger),
		solver.WithPruning(cfg.Pruning),
		solver.WithProgress(func(done, total int) {
			logger.Debug("start finished", "done", done, "total", total)
		}),
	)
	if err != nil {
		return err
	}

	result, err := runner.Run(ctx)
	if errors.Is(err, solver.ErrNoFreeCells) {
		_, err = fmt.Fprintln(w, report.NoFreeCells)
		return err
	}
	if err != nil {
		return err
	}
	return report.Result(w, result)
}
