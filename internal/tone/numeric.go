package tone

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// stopFinals are the stop consonants that close a checked syllable.
const stopFinals = "bdg"

// nasalFinal ends in 'g' but closes an open (unchecked) syllable.
const nasalFinal = "ng"

// IsChecked reports whether a syllable ends in a stop consonant. A final
// "ng" is a nasal and does not count even though it ends in 'g'.
func IsChecked(syllable string) bool {
	if syllable == "" || strings.HasSuffix(syllable, nasalFinal) {
		return false
	}
	return strings.ContainsRune(stopFinals, rune(syllable[len(syllable)-1]))
}

// ToNumeric rewrites diacritic-form text into numeric form. Every syllable
// run is converted on its own and the results are joined with single
// spaces; punctuation, digits and whitespace only separate syllables.
func ToNumeric(text string, rules DialectRules, vowels VowelMap, priority []string) string {
	if text == "" {
		return ""
	}
	return toNumeric(text, rules, vowels, NewAlphabet(vowels), vowels.Symbols(), priority)
}

func toNumeric(text string, rules DialectRules, vowels VowelMap, alpha Alphabet, symbols, priority []string) string {
	text = norm.NFC.String(text)

	words := Syllables(text, alpha.Contains)
	out := make([]string, 0, len(words))
	for _, w := range words {
		out = append(out, syllableToNumeric(w, rules, vowels, symbols, priority))
	}
	return strings.Join(out, " ")
}

func syllableToNumeric(word string, rules DialectRules, vowels VowelMap, symbols, priority []string) string {
	if word == "" || isAllDigits(word) {
		return ""
	}
	checked := IsChecked(word)

	base := word
	var key Key
	if sym, at := find(word, symbols); at >= 0 {
		base = word[:at] + vowels[sym] + word[at+len(sym):]
		key = Key{Symbol: sym, Checked: checked}
	} else if v := mainVowel(base, priority); v != "" {
		key = Key{Symbol: v, Checked: checked}
	} else {
		return base
	}

	if tone, ok := rules.Lookup(key); ok && tone != "" {
		return base + tone
	}
	return base
}

// mainVowel returns the first vowel of priority that occurs in word.
func mainVowel(word string, priority []string) string {
	for _, v := range priority {
		if v != "" && strings.Contains(word, v) {
			return v
		}
	}
	return ""
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return s != ""
}
