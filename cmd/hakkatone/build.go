package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/example/go-hakka-tone/internal/batch"
	"github.com/example/go-hakka-tone/internal/config"
	"github.com/example/go-hakka-tone/internal/tone"
	"github.com/spf13/cobra"
)

var errFilesFailed = errors.New("some files failed to convert")

func newRunner(cfg config.Config, tables *tone.Tables) *batch.Runner {
	return &batch.Runner{
		FS:      appFS,
		Tables:  tables,
		Workers: cfg.Batch.Workers,
		Logger:  slog.Default(),
	}
}

func newBuildCmd() *cobra.Command {
	var skipCert, skipGip, skipTone bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Convert cert and gip CSV files into front-end scripts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			set, err := loadRules(cfg)
			if err != nil {
				return err
			}
			r := newRunner(cfg, set.Tables())
			out := cmd.OutOrStdout()

			var total batch.Summary
			if !skipCert {
				sum, err := r.BuildCert(cmd.Context(), cfg.Data.CertDir)
				if err != nil {
					return err
				}
				printSummary(out, "cert", sum)
				total.Merge(sum)
			}
			if !skipGip {
				sum, err := r.BuildGip(cmd.Context(), cfg.Data.GipDir)
				if err != nil {
					return err
				}
				printSummary(out, "gip", sum)
				total.Merge(sum)
			}
			if !skipTone {
				if err := r.WriteToneData(set.ToneSource, cfg.Data.ToneJSOut); err != nil {
					return err
				}
				fmt.Fprintf(out, "tone data: %s\n", cfg.Data.ToneJSOut)
			}

			if len(total.Failed) > 0 {
				return fmt.Errorf("%w: %d", errFilesFailed, len(total.Failed))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipCert, "skip-cert", false, "Do not convert the cert directory")
	cmd.Flags().BoolVar(&skipGip, "skip-gip", false, "Do not convert the gip directory")
	cmd.Flags().BoolVar(&skipTone, "skip-tone-js", false, "Do not write the tone rule script")

	return cmd
}

func newWrapCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "wrap",
		Short: "Wrap raw gip exports (教客典-<date>-<dialect>.csv) into scripts unchanged",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}
			if dir == "" {
				dir = cfg.Data.GipDir
			}

			sum, err := newRunner(cfg, nil).WrapGip(cmd.Context(), dir)
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), "wrap", sum)
			if len(sum.Failed) > 0 {
				return fmt.Errorf("%w: %d", errFilesFailed, len(sum.Failed))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Directory of raw exports (default: data gip dir)")

	return cmd
}

func printSummary(w io.Writer, label string, sum batch.Summary) {
	fmt.Fprintf(w, "%s: %d converted, %d skipped, %d failed\n",
		label, len(sum.Processed), len(sum.Skipped), len(sum.Failed))
	for _, res := range sum.Processed {
		fmt.Fprintf(w, "  ✓ %s -> %s\n", res.Path, res.Output)
	}
	for _, res := range sum.Skipped {
		fmt.Fprintf(w, "  - %s: %v\n", res.Path, res.Err)
	}
	for _, res := range sum.Failed {
		fmt.Fprintf(w, "  ✗ %s: %v\n", res.Path, res.Err)
	}
}
