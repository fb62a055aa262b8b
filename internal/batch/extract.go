package batch

import (
	"context"
	"fmt"

	"github.com/example/go-hakka-tone/internal/jsmodule"
	"github.com/spf13/afero"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ExtractCert recovers the CSV payload of every script in dir into a .csv
// next to it. Output starts with a UTF-8 byte order mark so spreadsheet
// tools detect the encoding.
func (r *Runner) ExtractCert(ctx context.Context, dir string) (Summary, error) {
	return r.run(ctx, "extract-cert", dir, ".js", func(path string) FileResult {
		res := FileResult{Path: path, Output: replaceExt(path, ".csv")}

		raw, err := afero.ReadFile(r.fs(), path)
		if err != nil {
			res.Err = fmt.Errorf("read: %w", err)
			return res
		}
		payload, err := jsmodule.Extract(string(raw))
		if err != nil {
			res.Err = err
			return res
		}

		data := append(append([]byte(nil), utf8BOM...), payload...)
		if err := afero.WriteFile(r.fs(), res.Output, data, 0o644); err != nil {
			res.Err = fmt.Errorf("write %s: %w", res.Output, err)
		}
		return res
	})
}
