package rules

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync/atomic"

	"github.com/example/go-hakka-tone/internal/tone"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

// Reloader converts with the most recently loaded rule files. A failed
// reload keeps the previous tables in service.
type Reloader struct {
	fs          afero.Fs
	reversePath string
	tonePath    string
	log         *slog.Logger

	cur atomic.Pointer[tone.Tables]
}

// NewReloader loads the rule files once. A nil logger means slog.Default.
func NewReloader(fs afero.Fs, reversePath, tonePath string, log *slog.Logger) (*Reloader, error) {
	if log == nil {
		log = slog.Default()
	}
	r := &Reloader{fs: fs, reversePath: reversePath, tonePath: tonePath, log: log}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload reads both rule files again and swaps the tables in.
func (r *Reloader) Reload() error {
	tables, err := LoadTables(r.fs, r.reversePath, r.tonePath)
	if err != nil {
		return err
	}
	r.cur.Store(tables)
	return nil
}

// Tables returns the tables currently in service.
func (r *Reloader) Tables() *tone.Tables { return r.cur.Load() }

func (r *Reloader) ToNumeric(text, dialectCode string) (string, error) {
	return r.Tables().ToNumeric(text, dialectCode)
}

func (r *Reloader) ToDiacritic(text, dialectChar string) string {
	return r.Tables().ToDiacritic(text, dialectChar)
}

func (r *Reloader) Dialects() []string { return r.Tables().Dialects() }

// Watch reloads whenever either rule file changes on disk, until ctx is
// done. The parent directories are watched so that editors replacing the
// file by rename are noticed.
func (r *Reloader) Watch(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch rules: %w", err)
	}
	defer w.Close()

	targets := make(map[string]bool, 2)
	for _, p := range []string{r.reversePath, r.tonePath} {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("watch rules: %w", err)
		}
		targets[abs] = true
	}
	for abs := range targets {
		if err := w.Add(filepath.Dir(abs)); err != nil {
			return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !r.isTarget(targets, ev) {
				continue
			}
			if err := r.Reload(); err != nil {
				r.log.Warn("rule reload failed, keeping previous rules", "file", ev.Name, "error", err)
				continue
			}
			r.log.Info("rules reloaded", "file", ev.Name, "dialects", len(r.Dialects()))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			r.log.Warn("rule watcher error", "error", err)
		}
	}
}

// isTarget reports whether ev writes or creates one of the watched rule
// files. Events whose path cannot be made absolute are ignored.
func (r *Reloader) isTarget(targets map[string]bool, ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return false
	}
	abs, err := filepath.Abs(ev.Name)
	if err != nil {
		r.log.Debug("ignoring rule watcher event", "file", ev.Name, "error", err)
		return false
	}
	return targets[abs]
}
