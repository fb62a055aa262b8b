package record

import (
	"fmt"
	"io"

	"github.com/example/go-hakka-tone/internal/rules"
	"github.com/example/go-hakka-tone/internal/text"
)

const hakkaColumn = "客家語"

// ParseCert reads a certification word list. Its column names are prefixed
// with the dialect name ("四縣客家語", "四縣客語標音", ...); the dialect picks
// the reverse rules used to derive the numeric query form. An empty file
// yields no records.
func ParseCert(r io.Reader, sourceName string, conv NumericConverter) ([]Record, error) {
	t, err := readTable(r)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}

	prefix := t.dialectPrefix()
	if prefix == "" {
		return nil, fmt.Errorf("%w: header has no dialect prefix", ErrNoDialect)
	}
	dialect, ok := rules.ByName(prefix)
	if !ok {
		return nil, fmt.Errorf("%w: unknown dialect %q", ErrNoDialect, prefix)
	}
	if _, err := conv.ToNumeric("", dialect.Code); err != nil {
		return nil, fmt.Errorf("%w: %q (%s): %v", ErrNoDialect, prefix, dialect.Code, err)
	}

	out := make([]Record, 0, len(t.rows))
	for i, row := range t.rows {
		display := t.get(row, prefix+"客語標音")
		numeric, err := conv.ToNumeric(display, dialect.Code)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}

		out = append(out, Record{
			ID:              t.get(row, "編號"),
			Hakka:           t.get(row, prefix+hakkaColumn),
			PhoneticDisplay: display,
			PhoneticQuery:   text.CleanSpacing(numeric),
			Meaning:         t.get(row, prefix+"華語詞義"),
			Example:         t.getOr(row, prefix+"例句", "例句"),
			Translation:     t.getOr(row, prefix+"翻譯", "翻譯"),
			Notes:           t.get(row, "備註"),
			Category:        t.get(row, "分類"),
			POS1:            t.get(row, "詞性1"),
			POS2:            t.get(row, "詞性2"),
			SourceName:      sourceName,
			SourceType:      SourceCert,
		})
	}
	return out, nil
}
