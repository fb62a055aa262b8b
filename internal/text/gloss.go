package text

import (
	"strings"
	"unicode"
)

// FormatGloss prepares a dictionary definition for display: ideographic
// spaces become line breaks and every numbered sense marker ("1.", "12.")
// is followed by exactly one space.
func FormatGloss(s string) string {
	s = strings.ReplaceAll(s, "　", LineBreak)

	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(runes); {
		if !unicode.IsDigit(runes[i]) {
			b.WriteRune(runes[i])
			i++
			continue
		}

		j := i
		for j < len(runes) && unicode.IsDigit(runes[j]) {
			j++
		}
		if j == len(runes) || runes[j] != '.' {
			b.WriteString(string(runes[i:j]))
			i = j
			continue
		}

		b.WriteString(string(runes[i : j+1]))
		b.WriteByte(' ')
		i = j + 1
		for i < len(runes) && unicode.IsSpace(runes[i]) {
			i++
		}
	}

	return b.String()
}
