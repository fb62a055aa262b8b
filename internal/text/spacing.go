// Package text holds the plain-text filters applied around the tone engine:
// spacing cleanup for query fields, example-sentence splitting and gloss
// formatting.
package text

import (
	"strings"
	"unicode"
)

// hakkaVowels lists every diacritic vowel that counts as a letter when
// spacing is cleaned, including the syllabic m and n forms.
const hakkaVowels = "áàăâāǎéèĕêēěíìĭîīǐóòŏôōǒúùŭûūǔńňǹm\u0304ḿm\u030Cm\u0302m\u0300n\u0304ńňn\u0302ǹ"

var letterLike = func() map[rune]struct{} {
	m := make(map[rune]struct{}, len(hakkaVowels))
	for _, r := range hakkaVowels {
		m[r] = struct{}{}
	}
	return m
}()

func isLetterLike(r rune) bool {
	if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '\'' {
		return true
	}
	_, ok := letterLike[r]
	return ok
}

// CleanSpacing separates romanized syllables from adjacent punctuation with
// a single space, collapses whitespace runs and trims the result.
func CleanSpacing(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s) + 8)

	prev := rune(-1)
	for _, r := range s {
		if prev >= 0 && needsGap(prev, r) {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		prev = r
	}

	return strings.Join(strings.FieldsFunc(b.String(), unicode.IsSpace), " ")
}

// needsGap reports whether a space belongs between a and b: one side is a
// letter-like rune and the other is neither letter-like nor whitespace.
func needsGap(a, b rune) bool {
	if unicode.IsSpace(a) || unicode.IsSpace(b) {
		return false
	}
	return isLetterLike(a) != isLetterLike(b)
}
