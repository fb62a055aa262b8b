// Package batch converts whole data directories: source CSV files become
// front-end scripts and scripts can be turned back into CSV.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/example/go-hakka-tone/internal/jsmodule"
	"github.com/example/go-hakka-tone/internal/record"
	"github.com/example/go-hakka-tone/internal/tone"
	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/afero"
)

// ErrBadFilename marks a file whose name does not follow the expected pattern.
var ErrBadFilename = errors.New("unexpected file name")

// ErrNoRecords marks a source file without data rows. Its script, if any,
// is left as it is.
var ErrNoRecords = errors.New("no records")

// Runner converts the files of a directory in parallel. Tables must be set
// for the build operations; FS and Logger default to the OS file system and
// slog.Default.
type Runner struct {
	FS      afero.Fs
	Tables  *tone.Tables
	Workers int
	Logger  *slog.Logger
}

// FileResult is the outcome for one input file.
type FileResult struct {
	Path    string
	Output  string
	Records int
	Err     error
}

// Summary groups the results of one directory run, each sorted by path.
// Skipped files were recognized as not applicable; failed files hit an
// error while converting.
type Summary struct {
	Processed []FileResult
	Skipped   []FileResult
	Failed    []FileResult
}

// Total is the number of files looked at.
func (s Summary) Total() int {
	return len(s.Processed) + len(s.Skipped) + len(s.Failed)
}

// Merge appends the results of another run.
func (s *Summary) Merge(o Summary) {
	s.Processed = append(s.Processed, o.Processed...)
	s.Skipped = append(s.Skipped, o.Skipped...)
	s.Failed = append(s.Failed, o.Failed...)
}

// skippable errors describe input that is not ours to convert.
var skippable = []error{ErrBadFilename, ErrNoRecords, jsmodule.ErrNoContent, record.ErrNoDialect}

func (r *Runner) fs() afero.Fs {
	if r.FS == nil {
		return afero.NewOsFs()
	}
	return r.FS
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.Default()
	}
	return r.Logger
}

func (r *Runner) workers() int {
	if r.Workers < 1 {
		return 1
	}
	return r.Workers
}

func (r *Runner) tables() (*tone.Tables, error) {
	if r.Tables == nil {
		return nil, errors.New("batch: rule tables not loaded")
	}
	return r.Tables, nil
}

// listFiles returns the sorted paths in dir with the given extension. A
// missing directory yields no paths and ok=false.
func (r *Runner) listFiles(dir, ext string) (paths []string, ok bool, err error) {
	exists, err := afero.DirExists(r.fs(), dir)
	if err != nil {
		return nil, false, fmt.Errorf("stat %s: %w", dir, err)
	}
	if !exists {
		return nil, false, nil
	}

	infos, err := afero.ReadDir(r.fs(), dir)
	if err != nil {
		return nil, false, fmt.Errorf("read dir %s: %w", dir, err)
	}
	for _, info := range infos {
		if info.IsDir() || !strings.EqualFold(filepath.Ext(info.Name()), ext) {
			continue
		}
		paths = append(paths, filepath.Join(dir, info.Name()))
	}
	sort.Strings(paths)
	return paths, true, nil
}

// run applies convert to every file of dir with extension ext on a bounded
// pool and sorts the outcomes.
func (r *Runner) run(ctx context.Context, op, dir, ext string, convert func(path string) FileResult) (Summary, error) {
	log := r.logger().With("op", op, "dir", dir)

	paths, ok, err := r.listFiles(dir, ext)
	if err != nil {
		return Summary{}, err
	}
	if !ok {
		log.Warn("directory not found")
		return Summary{}, nil
	}
	if len(paths) == 0 {
		log.Info("no input files", "ext", ext)
		return Summary{}, nil
	}

	log.Info("processing directory", "files", len(paths), "workers", r.workers())

	p := pool.NewWithResults[FileResult]().WithMaxGoroutines(r.workers())
	for _, path := range paths {
		path := path
		p.Go(func() FileResult {
			if err := ctx.Err(); err != nil {
				return FileResult{Path: path, Err: err}
			}
			return convert(path)
		})
	}
	results := p.Wait()
	sort.Slice(results, func(i, j int) bool { return results[i].Path < results[j].Path })

	var sum Summary
	for _, res := range results {
		switch {
		case res.Err == nil:
			log.Info("converted", "file", res.Path, "records", res.Records, "output", res.Output)
			sum.Processed = append(sum.Processed, res)
		case isSkippable(res.Err):
			log.Warn("skipped", "file", res.Path, "error", res.Err)
			sum.Skipped = append(sum.Skipped, res)
		default:
			log.Error("conversion failed", "file", res.Path, "error", res.Err)
			sum.Failed = append(sum.Failed, res)
		}
	}

	log.Info("directory done",
		"processed", len(sum.Processed),
		"skipped", len(sum.Skipped),
		"failed", len(sum.Failed),
	)
	return sum, ctx.Err()
}

func isSkippable(err error) bool {
	for _, target := range skippable {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
