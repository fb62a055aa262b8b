package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/example/go-hakka-tone/internal/rules"
	"github.com/example/go-hakka-tone/internal/server"
	"github.com/spf13/cobra"
)

func newConvertCmd() *cobra.Command {
	var to string
	var dialect string

	cmd := &cobra.Command{
		Use:   "convert [text...]",
		Short: "Convert romanized text between diacritic and numeric tones",
		Long: "Convert romanized Hakka between tone-diacritic and tone-number form.\n" +
			"Text comes from the arguments, or from stdin line by line when none are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			d, ok := rules.Resolve(dialect)
			if !ok {
				return fmt.Errorf("unknown dialect %q", dialect)
			}

			direction := strings.ToLower(to)
			if direction != server.DirectionNumeric && direction != server.DirectionDiacritic {
				return fmt.Errorf("invalid --to %q (want %s|%s)", to, server.DirectionNumeric, server.DirectionDiacritic)
			}

			set, err := loadRules(cfg)
			if err != nil {
				return err
			}
			tables := set.Tables()

			convert := func(line string) (string, error) {
				if direction == server.DirectionDiacritic {
					return tables.ToDiacritic(line, d.Char), nil
				}
				return tables.ToNumeric(line, d.Code)
			}

			out := cmd.OutOrStdout()
			if len(args) > 0 {
				return convertLine(out, strings.Join(args, " "), convert)
			}
			return convertLines(cmd.InOrStdin(), out, convert)
		},
	}

	cmd.Flags().StringVar(&to, "to", server.DirectionNumeric, "Target form (numeric|diacritic)")
	cmd.Flags().StringVar(&dialect, "dialect", "si", "Dialect as character, name or code (四, 四縣, si)")

	return cmd
}

func convertLine(w io.Writer, line string, convert func(string) (string, error)) error {
	res, err := convert(line)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, res)
	return err
}

// convertLines converts r line by line so line structure survives.
func convertLines(r io.Reader, w io.Writer, convert func(string) (string, error)) error {
	if r == nil {
		r = os.Stdin
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		if err := convertLine(w, sc.Text(), convert); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	return nil
}
