package tone

import "strings"

// ToneMap drives the numeric to diacritic direction for one dialect.
type ToneMap struct {
	Priority []string
	// Tones maps a tone digit to base vowel to diacritic vowel.
	Tones map[string]map[string]string
}

// OverlayTones merges dialect tone rules over the shared defaults. A dialect
// entry replaces the default entry for the same tone digit as a whole. The
// result shares no maps with its inputs.
func OverlayTones(defaults, dialect map[string]map[string]string) map[string]map[string]string {
	out := make(map[string]map[string]string, len(defaults)+len(dialect))
	for digit, vowels := range defaults {
		out[digit] = copyTones(vowels)
	}
	for digit, vowels := range dialect {
		out[digit] = copyTones(vowels)
	}
	return out
}

func copyTones(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// ToDiacritic rewrites numeric-form text into diacritic form.
//
// A syllable whose tone digit has no entry keeps the digit. ToNumeric, on a
// missing rule, emits the plain letters without any digit.
func ToDiacritic(text string, tm ToneMap) string {
	if text == "" {
		return ""
	}
	fields := Fields(text)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		out = append(out, syllableToDiacritic(f, tm))
	}
	return strings.Join(out, " ")
}

func syllableToDiacritic(s string, tm ToneMap) string {
	syl, ok := ParseNumericSyllable(s)
	if !ok {
		return s
	}

	marks := tm.Tones[syl.Tone]
	if len(marks) == 0 {
		return syl.String()
	}

	letters := syl.Letters
	if v := mainVowel(letters, tm.Priority); v != "" {
		if marked, ok := marks[v]; ok && marked != "" {
			letters = strings.Replace(letters, v, marked, 1)
		}
	}
	return syl.Lead + letters + syl.Trail
}
