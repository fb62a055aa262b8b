package batch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/example/go-hakka-tone/internal/jsmodule"
	"github.com/example/go-hakka-tone/internal/record"
	"github.com/spf13/afero"
)

// BuildCert converts every certification CSV in dir into a script next to it.
func (r *Runner) BuildCert(ctx context.Context, dir string) (Summary, error) {
	tables, err := r.tables()
	if err != nil {
		return Summary{}, err
	}

	return r.run(ctx, "build-cert", dir, ".csv", func(path string) FileResult {
		return r.buildFile(path, record.CertVariableName(path), func(src io.Reader) ([]record.Record, error) {
			return record.ParseCert(src, record.CertSourceName(path), tables)
		})
	})
}

// BuildGip converts every dictionary CSV in dir into a script next to it.
// Files whose name carries no dialect are skipped.
func (r *Runner) BuildGip(ctx context.Context, dir string) (Summary, error) {
	tables, err := r.tables()
	if err != nil {
		return Summary{}, err
	}

	return r.run(ctx, "build-gip", dir, ".csv", func(path string) FileResult {
		dialect, ok := record.GipDialect(path)
		if !ok {
			return FileResult{Path: path, Err: fmt.Errorf("%w: %s", ErrBadFilename, filepath.Base(path))}
		}
		return r.buildFile(path, record.GipVariableName(dialect), func(src io.Reader) ([]record.Record, error) {
			return record.ParseGip(src, dialect, tables)
		})
	})
}

func (r *Runner) buildFile(path, variable string, parse func(io.Reader) ([]record.Record, error)) FileResult {
	res := FileResult{Path: path, Output: replaceExt(path, ".js")}

	f, err := r.fs().Open(path)
	if err != nil {
		res.Err = fmt.Errorf("open: %w", err)
		return res
	}
	records, err := parse(f)
	f.Close()
	if err != nil {
		res.Err = err
		return res
	}
	if len(records) == 0 {
		res.Err = fmt.Errorf("%w: %s", ErrNoRecords, filepath.Base(path))
		return res
	}
	res.Records = len(records)

	var payload bytes.Buffer
	if err := record.WriteCSV(&payload, records); err != nil {
		res.Err = err
		return res
	}

	if err := afero.WriteFile(r.fs(), res.Output, []byte(jsmodule.Wrap(variable, payload.String())), 0o644); err != nil {
		res.Err = fmt.Errorf("write %s: %w", res.Output, err)
	}
	return res
}

// WrapGip wraps raw dictionary exports ("教客典-<date>-<dialect>.csv") into
// "<date>-<dialect>.js" without converting them.
func (r *Runner) WrapGip(ctx context.Context, dir string) (Summary, error) {
	return r.run(ctx, "wrap-gip", dir, ".csv", func(path string) FileResult {
		script, dialect, ok := record.GipExportName(path)
		if !ok {
			return FileResult{Path: path, Err: fmt.Errorf("%w: %s", ErrBadFilename, filepath.Base(path))}
		}
		res := FileResult{Path: path, Output: filepath.Join(filepath.Dir(path), script)}

		raw, err := afero.ReadFile(r.fs(), path)
		if err != nil {
			res.Err = fmt.Errorf("read: %w", err)
			return res
		}
		raw = bytes.TrimPrefix(raw, utf8BOM)

		js := jsmodule.Assign(record.GipVariableName(dialect), string(raw))
		if err := afero.WriteFile(r.fs(), res.Output, []byte(js), 0o644); err != nil {
			res.Err = fmt.Errorf("write %s: %w", res.Output, err)
		}
		return res
	})
}

// WriteToneData emits the front-end tone rule script for the raw tone file.
func (r *Runner) WriteToneData(toneJSON []byte, out string) error {
	if err := afero.WriteFile(r.fs(), out, []byte(jsmodule.ToneData(toneJSON)), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	r.logger().Info("tone data written", "output", out)
	return nil
}
