package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/example/go-hakka-tone/internal/bench"
	"github.com/example/go-hakka-tone/internal/rules"
	"github.com/example/go-hakka-tone/internal/server"
	"github.com/spf13/cobra"
)

func newBenchCmd() *cobra.Command {
	var (
		text      string
		dialect   string
		to        string
		runs      int
		format    string
		threshold time.Duration
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark conversion latency and throughput",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			if strings.TrimSpace(text) == "" {
				return fmt.Errorf("--text is required for bench")
			}
			if format != "table" && format != "json" {
				return fmt.Errorf("--format must be 'table' or 'json'")
			}
			d, ok := rules.Resolve(dialect)
			if !ok {
				return fmt.Errorf("unknown dialect %q", dialect)
			}

			set, err := loadRules(cfg)
			if err != nil {
				return err
			}
			tables := set.Tables()

			var convert func() (int, error)
			switch strings.ToLower(to) {
			case server.DirectionNumeric:
				convert = func() (int, error) {
					out, err := tables.ToNumeric(text, d.Code)
					return len(strings.Fields(out)), err
				}
			case server.DirectionDiacritic:
				convert = func() (int, error) {
					return len(strings.Fields(tables.ToDiacritic(text, d.Char))), nil
				}
			default:
				return fmt.Errorf("invalid --to %q (want %s|%s)", to, server.DirectionNumeric, server.DirectionDiacritic)
			}

			results, err := bench.Run(cmd.Context(), runs, convert)
			if err != nil {
				return err
			}
			stats := bench.ComputeStats(bench.Durations(results))

			out := cmd.OutOrStdout()
			if format == "json" {
				if err := bench.FormatJSON(results, stats, out); err != nil {
					return err
				}
			} else {
				bench.FormatTable(results, stats, out)
			}

			return bench.CheckMeanThreshold(stats.Mean, threshold)
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Text to convert on each run (required)")
	cmd.Flags().StringVar(&dialect, "dialect", "si", "Dialect as character, name or code")
	cmd.Flags().StringVar(&to, "to", server.DirectionNumeric, "Target form (numeric|diacritic)")
	cmd.Flags().IntVar(&runs, "runs", 100, "Number of conversion runs")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table|json")
	cmd.Flags().DurationVar(&threshold, "max-mean", 0, "Exit non-zero if the mean run time exceeds this (0 = disabled)")

	return cmd
}
