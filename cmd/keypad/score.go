package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/maisem/keypad"
	"github.com/maisem/keypad/internal/costdb"
	"github.com/maisem/keypad/internal/metrics"
)

type scoreOpts struct {
	robots   []int
	parallel bool
	cacheDB  string
	metrics  bool
}

func newScoreCmd(a *app) *cobra.Command {
	var opts scoreOpts
	cmd := &cobra.Command{
		Use:   "score [file]",
		Short: "Score door codes read from a file or stdin",
		Long: `Score reads one code per line (digits followed by A) and prints, for each
robot count, the sum over codes of presses times the code's numeric value.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("robots") {
				opts.robots = a.cfg.Robots
			}
			if !cmd.Flags().Changed("parallel") {
				opts.parallel = a.cfg.Parallel
			}
			if !cmd.Flags().Changed("metrics") {
				opts.metrics = a.cfg.Metrics
			}
			opts.cacheDB = keypad.Or(opts.cacheDB, a.cfg.CacheDB)

			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			codes, err := keypad.ReadCodes(in)
			if err != nil {
				return err
			}
			return runScore(cmd.Context(), opts, codes, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().IntSliceVar(&opts.robots, "robots", nil, "robot chain lengths to score (default from config)")
	cmd.Flags().BoolVar(&opts.parallel, "parallel", false, "score codes concurrently")
	cmd.Flags().StringVar(&opts.cacheDB, "cache-db", "", "SQLite file to load and save computed costs")
	cmd.Flags().BoolVar(&opts.metrics, "metrics", false, "print cache metrics to stderr")
	return cmd
}

func runScore(ctx context.Context, opts scoreOpts, codes []string, stdout, stderr io.Writer) error {
	logger := loggerFromContext(ctx)

	for _, r := range opts.robots {
		if r < 0 {
			return fmt.Errorf("negative robot count %d", r)
		}
	}

	var cache keypad.Cache = keypad.NewMapCache()
	if opts.parallel {
		cache = keypad.NewSharedCache()
	}

	var store *costdb.Store
	fp := keypad.Fingerprint()
	if opts.cacheDB != "" {
		var err error
		store, err = costdb.Open(opts.cacheDB)
		if err != nil {
			return err
		}
		defer store.Close()
		n, err := store.Load(ctx, fp, cache)
		if err != nil {
			return err
		}
		logger.Debug("loaded cached costs", "path", opts.cacheDB, "entries", n)
	}

	o := keypad.NewOracle(cache)
	o.Logf = debugLogf(logger)
	var obs *metrics.PrometheusObserver
	if opts.metrics {
		obs = metrics.NewPrometheusObserver()
		o.Observer = obs
	}

	score := o.Score
	if opts.parallel {
		score = o.ScoreParallel
	}
	for _, r := range opts.robots {
		p := newProgress(logger)
		total, err := score(codes, keypad.LevelsForRobots(r))
		if err != nil {
			return err
		}
		p.done("scored", "robots", r, "codes", len(codes), "cache", cache.Len())
		fmt.Fprintf(stdout, "robots=%d: %d\n", r, total)
	}

	if store != nil {
		n, err := store.Save(ctx, fp, cache)
		if err != nil {
			return err
		}
		logger.Debug("saved costs", "path", opts.cacheDB, "entries", n)
	}
	if obs != nil {
		return obs.WriteText(stderr)
	}
	return nil
}
