package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// LineBreak joins multi-part fields for display.
const LineBreak = "<br>"

// ParseExample splits an example field into its sentences and the
// translations given in half-width parentheses. Both results are joined with
// LineBreak.
func ParseExample(field string) (sentences, translation string) {
	if field == "" {
		return "", ""
	}

	var (
		body   strings.Builder
		trans  []string
		cursor int
	)
	for {
		open := strings.IndexByte(field[cursor:], '(')
		if open < 0 {
			break
		}
		open += cursor
		end := strings.IndexByte(field[open+1:], ')')
		if end < 0 {
			break
		}
		end += open + 1

		trans = append(trans, strings.TrimSpace(field[open+1:end]))
		body.WriteString(strings.TrimRightFunc(field[cursor:open], unicode.IsSpace))
		cursor = end + 1
	}
	body.WriteString(field[cursor:])

	cleaned := strings.TrimSpace(body.String())
	return strings.Join(splitSentences(cleaned), LineBreak), strings.Join(trans, LineBreak)
}

// splitSentences splits text after each '。' or '；', keeping the
// terminator attached to its sentence. Empty sentences are dropped along
// with their terminator.
func splitSentences(text string) []string {
	var sentences []string
	start := 0

	for i, r := range text {
		if r != '。' && r != '；' {
			continue
		}
		if s := strings.TrimSpace(text[start:i]); s != "" {
			sentences = append(sentences, s+string(r))
		}
		start = i + utf8.RuneLen(r)
	}

	if start < len(text) {
		if s := strings.TrimSpace(text[start:]); s != "" {
			sentences = append(sentences, s)
		}
	}

	return sentences
}
