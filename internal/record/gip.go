package record

import (
	"fmt"
	"io"
	"strings"

	"github.com/example/go-hakka-tone/internal/text"
)

// gipCategory is the category given to every dictionary entry.
const gipCategory = "教典"

// ParseGip reads an export of the Ministry of Education Hakka dictionary for
// one dialect. Its 音讀 column is numeric; the display form is derived with
// the dialect's tone map.
func ParseGip(r io.Reader, dialectChar string, conv DiacriticConverter) ([]Record, error) {
	t, err := readTable(r)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}

	source := GipVariableName(dialectChar)
	out := make([]Record, 0, len(t.rows))
	for i, row := range t.rows {
		phonetic := t.get(row, "音讀")
		example, translation := text.ParseExample(t.get(row, "例句"))

		out = append(out, Record{
			ID:              fmt.Sprintf("gip-%d", i+1),
			Hakka:           t.get(row, "詞目"),
			PhoneticDisplay: conv.ToDiacritic(phonetic, dialectChar),
			PhoneticQuery:   text.CleanSpacing(phonetic),
			Meaning:         text.FormatGloss(t.get(row, "釋義")),
			Example:         example,
			Translation:     translation,
			Category:        gipCategory,
			SourceName:      source,
			SourceType:      SourceGip,
			AudioFile:       strings.TrimSpace(t.get(row, "對應音檔名稱")),
		})
	}
	return out, nil
}
