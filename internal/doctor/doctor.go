// Package doctor provides environment preflight checks for hakkatone.
package doctor

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/example/go-hakka-tone/internal/rules"
	"github.com/spf13/afero"
)

// PassMark and FailMark are the prefix symbols printed for each check result.
const (
	PassMark = "✓"
	FailMark = "✗"
)

// Config holds injectable dependencies for each doctor check.
type Config struct {
	// FS is the file system the checks read from. Nil means the OS.
	FS afero.Fs
	// ReversePath and TonePath locate the rule files.
	ReversePath string
	TonePath    string
	// DataDirs are source directories expected to hold CSV files.
	DataDirs []string
}

// Result collects the outcome of all checks.
type Result struct {
	failures []string
}

// Failed returns true if any check failed.
func (r *Result) Failed() bool { return len(r.failures) > 0 }

// Failures returns the list of failure messages.
func (r *Result) Failures() []string { return append([]string(nil), r.failures...) }

func (r *Result) fail(msg string) { r.failures = append(r.failures, msg) }

// Run executes all configured checks and writes human-readable output to w.
// Each check line is prefixed with PassMark or FailMark.
func Run(cfg Config, w io.Writer) Result {
	var res Result

	fs := cfg.FS
	if fs == nil {
		fs = afero.NewOsFs()
	}

	// ---- rule files -------------------------------------------------------
	set, err := rules.Load(fs, cfg.ReversePath, cfg.TonePath)
	if err != nil {
		res.fail(fmt.Sprintf("rule files: %v", err))
		fmt.Fprintf(w, "%s rule files: %v\n", FailMark, err)
	} else {
		codes := sortedCodes(set.Reverse.DialectReverseMap)
		fmt.Fprintf(w, "%s rule files: %s, %s (%s)\n", PassMark, cfg.ReversePath, cfg.TonePath, strings.Join(codes, ", "))

		for _, code := range codes {
			if _, ok := rules.ByCode(code); !ok {
				res.fail(fmt.Sprintf("reverse rules: unknown dialect code %q", code))
				fmt.Fprintf(w, "%s reverse rules: unknown dialect code %q\n", FailMark, code)
			}
		}
		for char := range set.Tone.DialectMaps {
			if _, ok := rules.ByChar(char); !ok {
				res.fail(fmt.Sprintf("tone rules: unknown dialect %q", char))
				fmt.Fprintf(w, "%s tone rules: unknown dialect %q\n", FailMark, char)
			}
		}
	}

	// ---- data directories -------------------------------------------------
	for _, dir := range cfg.DataDirs {
		n, err := countCSV(fs, dir)
		if err != nil {
			res.fail(fmt.Sprintf("data dir %q: %v", dir, err))
			fmt.Fprintf(w, "%s data dir %s: %v\n", FailMark, dir, err)
			continue
		}
		fmt.Fprintf(w, "%s data dir: %s (%d csv)\n", PassMark, dir, n)
	}

	return res
}

func countCSV(fs afero.Fs, dir string) (int, error) {
	infos, err := afero.ReadDir(fs, dir)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, info := range infos {
		if !info.IsDir() && strings.EqualFold(filepath.Ext(info.Name()), ".csv") {
			n++
		}
	}
	return n, nil
}

func sortedCodes(m map[string]map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
