package record

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/example/go-hakka-tone/internal/rules"
)

var (
	certSourceRe   = regexp.MustCompile(`^\d*([四海大平安])(.*)`)
	certVariableRe = regexp.MustCompile(`^\d*([四海大平安])(` + strings.Join(rules.LevelTags(), "|") + `)`)
	leadingDigits  = regexp.MustCompile(`^\d*`)
	gipFileRe      = regexp.MustCompile(`(\d+)-(.+)\.csv$`)
	gipExportRe    = regexp.MustCompile(`教客典-(\d+)-(.+)\.csv$`)
)

func baseName(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// CertSourceName derives the display source from a cert file name:
// "113大中高.csv" -> "大埔中高級". Names that do not follow the pattern are
// returned without their extension.
func CertSourceName(filename string) string {
	base := baseName(filename)
	m := certSourceRe.FindStringSubmatch(base)
	if m == nil {
		return base
	}
	var name string
	if d, ok := rules.ByChar(m[1]); ok {
		name = d.Name
	}
	return name + rules.Levels[m[2]]
}

// CertVariableName derives the script variable from a cert file name:
// "113大中高.csv" -> "大中高".
func CertVariableName(filename string) string {
	base := baseName(filename)
	if m := certVariableRe.FindStringSubmatch(base); m != nil {
		return m[1] + m[2]
	}
	return leadingDigits.ReplaceAllString(base, "")
}

// GipDialect extracts the dialect character from a gip file name such as
// "教客典-20250630-四.csv" and reports whether the name matched.
func GipDialect(filename string) (string, bool) {
	m := gipFileRe.FindStringSubmatch(filepath.Base(filename))
	if m == nil {
		return "", false
	}
	return m[2], true
}

// GipVariableName is the script variable and source name of a gip dialect.
func GipVariableName(dialectChar string) string {
	return gipCategory + dialectChar
}

// GipExportName maps a raw dictionary export "教客典-20250630-四.csv" to its
// script file name "20250630-四.js" and dialect character.
func GipExportName(filename string) (script, dialectChar string, ok bool) {
	m := gipExportRe.FindStringSubmatch(filepath.Base(filename))
	if m == nil {
		return "", "", false
	}
	return m[1] + "-" + m[2] + ".js", m[2], true
}
