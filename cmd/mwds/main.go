// Command mwds reads a weighted-graph description and prints an
// approximate minimum-weight dominating set found by the CC2FS local
// search, within a wall-clock deadline.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/mwds/cc2fs"
	"github.com/katalvlaran/mwds/ioshell"
	"github.com/katalvlaran/mwds/metrics"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "mwds",
		Short: "Approximate minimum-weight dominating set via CC2FS local search",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v)
		},
	}

	flags := cmd.Flags()
	flags.StringP("input", "i", "", "path to the graph text file (default: stdin)")
	flags.StringP("output", "o", "", "path to write the result (default: stdout)")
	flags.Duration("time-limit", 0, "override the search time budget T (default: n-based policy, see ioshell.DefaultDeadline)")
	flags.String("metrics-file", "", "write Prometheus textfile-collector metrics to this path")
	flags.Bool("verbose", false, "enable info-level lifecycle logging")
	flags.String("config", "", "optional YAML/TOML config file")

	_ = v.BindPFlags(flags)
	v.SetEnvPrefix("MWDS")
	v.AutomaticEnv()

	return cmd
}

func run(cmd *cobra.Command, v *viper.Viper) error {
	if cfgPath := v.GetString("config"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("mwds: reading config: %w", err)
		}
	}

	logger, err := newLogger(v.GetBool("verbose"))
	if err != nil {
		return fmt.Errorf("mwds: building logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	in := os.Stdin
	if path := v.GetString("input"); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("mwds: opening input: %w", err)
		}
		defer f.Close()
		in = f
	}

	inst, err := ioshell.Parse(in)
	if err != nil {
		return fmt.Errorf("mwds: parsing input: %w", err)
	}
	logger.Infow("graph built", "vertices", inst.Graph.N())

	start := time.Now()
	deadline := ioshell.DefaultDeadline(inst.Graph.N(), start)
	if override := v.GetDuration("time-limit"); override > 0 {
		deadline = start.Add(override - 400*time.Millisecond)
	}
	logger.Infow("deadline computed", "deadline", deadline)

	mrun := metrics.NewRun()

	searchStart := time.Now()
	res, err := cc2fs.Run(inst.Graph, deadline)
	if err != nil {
		return fmt.Errorf("mwds: search: %w", err)
	}
	elapsed := time.Since(searchStart)
	logger.Infow("search complete", "weight", res.Weight, "cover_size", len(res.Cover))

	mrun.SetSearchDuration(elapsed.Seconds())
	mrun.SetBestWeight(res.Weight)
	mrun.AddIterations(res.Iterations)

	if metricsPath := v.GetString("metrics-file"); metricsPath != "" {
		if err := mrun.WriteTextfile(metricsPath); err != nil {
			return fmt.Errorf("mwds: writing metrics: %w", err)
		}
	}

	out := os.Stdout
	if path := v.GetString("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("mwds: opening output: %w", err)
		}
		defer f.Close()
		out = f
	}

	return ioshell.Format(out, inst.Names, res)
}

// newLogger builds a zap.SugaredLogger at WarnLevel by default, or
// InfoLevel when verbose is requested.
func newLogger(verbose bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
