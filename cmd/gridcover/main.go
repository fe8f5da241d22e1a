package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-ricrob/gridcover/internal/config"
	"github.com/go-ricrob/gridcover/internal/grid"
	"github.com/go-ricrob/gridcover/internal/logging"
	"github.com/go-ricrob/gridcover/internal/solver"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var (
		configPath string
		rows       int
		cols       int
		moves      int
		blocked    []string
		noPrune    bool
		timeout    time.Duration
		logLevel   string
		logJSON    bool
		metrics    string
	)

	rootCmd := &cobra.Command{
		Use:   "gridcover",
		Short: "Find the path covering the most distinct cells of a grid within a move budget",
		Long: `gridcover searches every free cell of a grid with blocked cells for the path of
at most --moves cells that visits the most distinct cells, preferring shorter paths on ties.
Without flags it solves the built-in 8x8 example.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("rows") {
				cfg.Rows = rows
			}
			if flags.Changed("cols") {
				cfg.Cols = cols
			}
			if flags.Changed("moves") {
				cfg.Moves = moves
			}
			// size flags without a config file describe an open grid
			if configPath == "" && (flags.Changed("rows") || flags.Changed("cols")) {
				cfg.Blocked = nil
			}
			if flags.Changed("block") {
				cfg.Blocked = make([]grid.Coord, 0, len(blocked))
				for _, s := range blocked {
					c, err := grid.ParseCoord(s)
					if err != nil {
						return err
					}
					cfg.Blocked = append(cfg.Blocked, c)
				}
			}
			if noPrune {
				cfg.Pruning = false
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if flags.Changed("log-json") {
				cfg.LogJSON = logJSON
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			lc, err := cfg.Logging()
			if err != nil {
				return err
			}
			lc.Output = cmd.ErrOrStderr()
			logger := logging.New(lc).With("run_id", uuid.NewString())

			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			if err := solve(ctx, cmd.OutOrStdout(), cfg, logger); err != nil {
				return err
			}
			if metrics != "" {
				if err := solver.WriteMetrics(metrics); err != nil {
					return fmt.Errorf("failed to write metrics: %w", err)
				}
				logger.Debug("metrics written", "path", metrics)
			}
			return nil
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "YAML config file")
	flags.IntVar(&rows, "rows", 0, "number of grid rows")
	flags.IntVar(&cols, "cols", 0, "number of grid columns")
	flags.IntVarP(&moves, "moves", "m", 0, "maximum number of cells on a path")
	flags.StringArrayVarP(&blocked, "block", "b", nil, "blocked cell as row,col (repeatable)")
	flags.BoolVar(&noPrune, "no-prune", false, "disable memo pruning and search exhaustively")
	flags.DurationVar(&timeout, "timeout", 0, "abort the search after this duration")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.BoolVar(&logJSON, "log-json", false, "write logs as JSON")
	flags.StringVar(&metrics, "metrics-file", "", "write Prometheus metrics to this file after the run")

	rootCmd.AddCommand(newInitCmd())
	return rootCmd
}

func newInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultPath
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", path)
			}
			if err := config.Write(path, config.Default()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
