// Package tone converts Hakka romanization between the diacritic notation
// (tone carried by an accented vowel) and the numeric notation (plain letters
// followed by a tone digit).
//
// All tables are built once from configuration and never mutated, so every
// conversion function is safe for concurrent use.
package tone

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Mark is the combining-mark class shared by a family of marked vowels.
// An acute accent marks the same tone class whether it sits on a, e or ḿ.
type Mark uint8

const (
	MarkNone Mark = iota
	MarkAcute
	MarkGrave
	MarkCircumflex
	MarkCaron
	MarkMacron
	MarkBreve
	MarkTilde
	MarkDiaeresis
	MarkDoubleAcute
	MarkDoubleGrave
	// MarkInvalid is returned for symbols carrying an unknown mark or more
	// than one mark. Such symbols never take part in expansion.
	MarkInvalid
)

var markNames = [...]string{
	MarkNone:        "none",
	MarkAcute:       "acute",
	MarkGrave:       "grave",
	MarkCircumflex:  "circumflex",
	MarkCaron:       "caron",
	MarkMacron:      "macron",
	MarkBreve:       "breve",
	MarkTilde:       "tilde",
	MarkDiaeresis:   "diaeresis",
	MarkDoubleAcute: "double-acute",
	MarkDoubleGrave: "double-grave",
	MarkInvalid:     "invalid",
}

func (m Mark) String() string {
	if int(m) < len(markNames) {
		return markNames[m]
	}
	return "invalid"
}

var combiningMarks = map[rune]Mark{
	'\u0301': MarkAcute,
	'\u0300': MarkGrave,
	'\u0302': MarkCircumflex,
	'\u030C': MarkCaron,
	'\u0304': MarkMacron,
	'\u0306': MarkBreve,
	'\u0303': MarkTilde,
	'\u0308': MarkDiaeresis,
	'\u030B': MarkDoubleAcute,
	'\u030F': MarkDoubleGrave,
}

// Spacing forms of the accents. Seed tables written by hand often key a rule
// by the bare accent ("´") instead of an accented vowel.
var spacingMarks = map[rune]Mark{
	'\u00B4': MarkAcute,
	'\u02CA': MarkAcute,
	'`':      MarkGrave,
	'\u02CB': MarkGrave,
	'^':      MarkCircumflex,
	'\u02C6': MarkCircumflex,
	'\u02C7': MarkCaron,
	'\u00AF': MarkMacron,
	'\u02C9': MarkMacron,
	'\u02D8': MarkBreve,
	'~':      MarkTilde,
	'\u02DC': MarkTilde,
	'\u00A8': MarkDiaeresis,
	'\u02DD': MarkDoubleAcute,
}

// ClassOf returns the combining-mark class of symbol, computed from its
// canonical decomposition. A symbol without any mark, including the empty
// symbol, is MarkNone.
func ClassOf(symbol string) Mark {
	if symbol == "" || symbol == noneKey {
		return MarkNone
	}

	if r, size := utf8.DecodeRuneInString(symbol); size == len(symbol) {
		if m, ok := spacingMarks[r]; ok {
			return m
		}
		if m, ok := combiningMarks[r]; ok {
			return m
		}
	}

	d := norm.NFD.String(symbol)
	_, size := utf8.DecodeRuneInString(d)
	rest := d[size:]
	if rest == "" {
		return MarkNone
	}

	r, n := utf8.DecodeRuneInString(rest)
	if n != len(rest) {
		return MarkInvalid
	}
	if m, ok := combiningMarks[r]; ok {
		return m
	}
	return MarkInvalid
}
