package record

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// table is a CSV file read into header-addressed rows.
type table struct {
	header []string
	index  map[string]int
	rows   [][]string
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// readTable reads a whole CSV file, dropping a leading byte order mark.
// Rows may be shorter or longer than the header. An empty input yields a
// nil table.
func readTable(r io.Reader) (*table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	cr := csv.NewReader(bytes.NewReader(data))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	t := &table{header: header, index: make(map[string]int, len(header))}
	for i, h := range header {
		if _, dup := t.index[h]; !dup {
			t.index[h] = i
		}
	}

	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv row %d: %w", len(t.rows)+1, err)
		}
		t.rows = append(t.rows, row)
	}
	return t, nil
}

// lookup returns a row's value for column and whether the column exists.
func (t *table) lookup(row []string, column string) (string, bool) {
	i, ok := t.index[column]
	if !ok {
		return "", false
	}
	if i >= len(row) {
		return "", true
	}
	return row[i], true
}

// get returns a row's value for column, or "" when the column is absent.
func (t *table) get(row []string, column string) string {
	v, _ := t.lookup(row, column)
	return v
}

// getOr returns the value of column, falling back to the value of alt when
// column is not part of the header.
func (t *table) getOr(row []string, column, alt string) string {
	if v, ok := t.lookup(row, column); ok {
		return v
	}
	return t.get(row, alt)
}

// dialectPrefix returns the dialect name a cert header encodes in its
// second column ("四縣客家語" -> "四縣").
func (t *table) dialectPrefix() string {
	if len(t.header) < 2 || !strings.HasSuffix(t.header[1], hakkaColumn) {
		return ""
	}
	return strings.ReplaceAll(t.header[1], hakkaColumn, "")
}
