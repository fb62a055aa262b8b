package testutil

import (
	"encoding/csv"
	"strings"
	"testing"
)

// ParseCSV parses a CSV payload and checks that it has a header row and
// that every row has the header's width. It returns the rows as maps keyed
// by header name.
func ParseCSV(tb testing.TB, payload string) []map[string]string {
	tb.Helper()

	rows, err := csv.NewReader(strings.NewReader(payload)).ReadAll()
	if err != nil {
		tb.Fatalf("CSV: parse: %v", err)
	}
	if len(rows) == 0 {
		tb.Fatal("CSV: missing header row")
	}

	header := rows[0]
	out := make([]map[string]string, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) != len(header) {
			tb.Fatalf("CSV: row %d has %d fields, header has %d", i+1, len(row), len(header))
		}
		m := make(map[string]string, len(header))
		for j, h := range header {
			m[h] = row[j]
		}
		out = append(out, m)
	}
	return out
}
