package tone

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind classifies a scanned token.
type Kind uint8

const (
	KindSyllable Kind = iota
	KindPunct
	KindSpace
)

// Token is a maximal run of one Kind.
type Token struct {
	Kind Kind
	Text string
}

// Scan splits text into syllable, punctuation and whitespace runs. A rune
// belongs to a syllable when inSyllable reports true for it.
func Scan(text string, inSyllable func(rune) bool) []Token {
	kindOf := func(r rune) Kind {
		switch {
		case inSyllable(r):
			return KindSyllable
		case unicode.IsSpace(r):
			return KindSpace
		default:
			return KindPunct
		}
	}

	var tokens []Token
	start := 0
	var cur Kind
	for i, r := range text {
		k := kindOf(r)
		if i == 0 {
			cur = k
			continue
		}
		if k != cur {
			tokens = append(tokens, Token{Kind: cur, Text: text[start:i]})
			start, cur = i, k
		}
	}
	if start < len(text) {
		tokens = append(tokens, Token{Kind: cur, Text: text[start:]})
	}
	return tokens
}

// Syllables returns only the syllable runs of text.
func Syllables(text string, inSyllable func(rune) bool) []string {
	var out []string
	for _, tok := range Scan(text, inSyllable) {
		if tok.Kind == KindSyllable {
			out = append(out, tok.Text)
		}
	}
	return out
}

// isolatedPunct is the punctuation split into standalone tokens before
// numeric syllables are parsed.
func isolatedPunct(r rune) bool {
	switch r {
	case '，', '、', '；', '：', '-':
		return true
	}
	return false
}

// Fields normalizes numeric-form text and splits it into syllable tokens.
// The full-width hyphen becomes '-', runs of the isolated punctuation become
// their own fields and whitespace separates fields.
func Fields(text string) []string {
	text = strings.ReplaceAll(text, "－", "-")

	tokens := Scan(text, func(r rune) bool {
		return !isolatedPunct(r) && !unicode.IsSpace(r)
	})

	var out []string
	var field strings.Builder
	flush := func() {
		if field.Len() > 0 {
			out = append(out, field.String())
			field.Reset()
		}
	}
	for _, tok := range tokens {
		switch tok.Kind {
		case KindSyllable:
			field.WriteString(tok.Text)
		case KindPunct:
			flush()
			out = append(out, tok.Text)
		case KindSpace:
			flush()
		}
	}
	flush()
	return out
}

// NumericSyllable is a numeric-form syllable split into its parts.
type NumericSyllable struct {
	Lead    string // non-letter prefix
	Letters string // ASCII letters
	Tone    string // tone digits
	Trail   string // non-letter suffix
}

// ParseNumericSyllable matches s against lead, letters, digits, trail where
// lead and trail hold no ASCII letter, letters is non-empty and at least one
// digit follows it.
func ParseNumericSyllable(s string) (NumericSyllable, bool) {
	i := strings.IndexFunc(s, isASCIILetter)
	if i < 0 {
		return NumericSyllable{}, false
	}
	lead, rest := s[:i], s[i:]

	j := strings.IndexFunc(rest, func(r rune) bool { return !isASCIILetter(r) })
	if j < 0 {
		return NumericSyllable{}, false
	}
	letters, rest := rest[:j], rest[j:]

	k := 0
	for k < len(rest) {
		r, size := utf8.DecodeRuneInString(rest[k:])
		if !unicode.IsDigit(r) {
			break
		}
		k += size
	}
	if k == 0 {
		return NumericSyllable{}, false
	}
	tone, trail := rest[:k], rest[k:]

	if strings.IndexFunc(trail, isASCIILetter) >= 0 {
		return NumericSyllable{}, false
	}

	return NumericSyllable{Lead: lead, Letters: letters, Tone: tone, Trail: trail}, true
}

// String reassembles the syllable verbatim.
func (s NumericSyllable) String() string {
	return s.Lead + s.Letters + s.Tone + s.Trail
}
