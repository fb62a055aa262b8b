package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExtractCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Recover the CSV payload of cert scripts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}
			if dir == "" {
				dir = cfg.Data.CertDir
			}

			sum, err := newRunner(cfg, nil).ExtractCert(cmd.Context(), dir)
			if err != nil {
				return err
			}
			printSummary(cmd.OutOrStdout(), "extract", sum)
			if len(sum.Failed) > 0 {
				return fmt.Errorf("%w: %d", errFilesFailed, len(sum.Failed))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Directory of scripts (default: data cert dir)")

	return cmd
}
