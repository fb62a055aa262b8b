package tone

import (
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// VowelMap maps a diacritic vowel (one grapheme, possibly several runes such
// as m followed by U+0304) to its plain base vowel.
type VowelMap map[string]string

// NewVowelMap returns a copy of m with every key and value in NFC form.
func NewVowelMap(m map[string]string) VowelMap {
	out := make(VowelMap, len(m))
	for k, v := range m {
		out[norm.NFC.String(k)] = norm.NFC.String(v)
	}
	return out
}

// Bases returns the distinct base vowels, sorted.
func (m VowelMap) Bases() []string {
	seen := make(map[string]struct{}, len(m))
	for _, base := range m {
		seen[base] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for base := range seen {
		out = append(out, base)
	}
	sort.Strings(out)
	return out
}

// Symbols returns the diacritic symbols ordered longest first, then
// lexically, so that prefix matching prefers a multi-rune symbol over its first rune.
func (m VowelMap) Symbols() []string {
	out := make([]string, 0, len(m))
	for sym := range m {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}

// find locates the earliest diacritic symbol in word. It returns the symbol
// and its byte offset, or "" and -1.
func find(word string, symbols []string) (string, int) {
	for i := 0; i < len(word); {
		rest := word[i:]
		for _, sym := range symbols {
			if strings.HasPrefix(rest, sym) {
				return sym, i
			}
		}
		_, size := utf8.DecodeRuneInString(rest)
		i += size
	}
	return "", -1
}

// Alphabet is the set of runes a diacritic-form syllable may contain.
type Alphabet struct {
	extra map[rune]struct{}
}

// NewAlphabet returns the alphabet made of ASCII letters, the apostrophe and
// every rune occurring in a VowelMap key.
func NewAlphabet(m VowelMap) Alphabet {
	extra := make(map[rune]struct{})
	for sym := range m {
		for _, r := range sym {
			extra[r] = struct{}{}
		}
	}
	return Alphabet{extra: extra}
}

// Contains reports whether r may appear inside a syllable.
func (a Alphabet) Contains(r rune) bool {
	if isASCIILetter(r) || r == '\'' {
		return true
	}
	_, ok := a.extra[r]
	return ok
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
