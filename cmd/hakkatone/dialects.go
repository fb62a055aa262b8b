package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/example/go-hakka-tone/internal/rules"
	"github.com/spf13/cobra"
)

func newDialectsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List dialects and whether reverse rules are loaded for them",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			set, err := loadRules(cfg)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CHAR\tNAME\tCODE\tNUMERIC\tTONES")
			for _, d := range rules.Dialects() {
				_, numeric := set.Reverse.DialectReverseMap[d.Code]
				_, tones := set.Tone.DialectMaps[d.Char]
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", d.Char, d.Name, d.Code, yesNo(numeric), yesNo(tones))
			}
			return tw.Flush()
		},
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
