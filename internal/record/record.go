// Package record turns the source dictionaries into rows of one unified
// schema. Cert files carry diacritic spellings and get a numeric query
// form; gip files carry numeric spellings and get a diacritic display form.
package record

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
)

// Source types.
const (
	SourceCert = "cert"
	SourceGip  = "gip"
)

// Headers is the unified schema, in column order.
var Headers = []string{
	"編號", "客家語", "客語標音_顯示", "客語標音_查詢", "華語詞義", "例句", "翻譯",
	"備註", "分類", "詞性1", "詞性2", "sourceName", "sourceType", "詞目音檔名",
}

// ErrNoDialect is returned for a cert file whose header names no dialect
// that has rules.
var ErrNoDialect = errors.New("no dialect rules for file")

// Record is one dictionary entry in the unified schema.
type Record struct {
	ID              string
	Hakka           string
	PhoneticDisplay string
	PhoneticQuery   string
	Meaning         string
	Example         string
	Translation     string
	Notes           string
	Category        string
	POS1            string
	POS2            string
	SourceName      string
	SourceType      string
	AudioFile       string
}

// Row returns the fields in Headers order.
func (r Record) Row() []string {
	return []string{
		r.ID, r.Hakka, r.PhoneticDisplay, r.PhoneticQuery, r.Meaning, r.Example, r.Translation,
		r.Notes, r.Category, r.POS1, r.POS2, r.SourceName, r.SourceType, r.AudioFile,
	}
}

// NumericConverter converts diacritic-form text for a dialect code.
type NumericConverter interface {
	ToNumeric(text, dialect string) (string, error)
}

// DiacriticConverter converts numeric-form text for a dialect character.
type DiacriticConverter interface {
	ToDiacritic(text, dialect string) string
}

// WriteCSV writes the header and one row per record. Lines end in CRLF.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(Headers); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, r := range records {
		if err := cw.Write(r.Row()); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
