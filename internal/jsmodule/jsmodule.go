// Package jsmodule wraps CSV payloads into the script files loaded by the
// search front end, and recovers them again.
package jsmodule

import (
	"errors"
	"regexp"
	"strings"
)

// ErrNoContent is returned when a script holds no content template literal.
var ErrNoContent = errors.New("no content template literal")

// ToneDataVariable is the global the front end reads tone rules from.
const ToneDataVariable = "toneMappingData"

func escape(payload string) string {
	return strings.ReplaceAll(payload, "`", "\\`")
}

func unescape(payload string) string {
	return strings.ReplaceAll(payload, "\\`", "`")
}

// Wrap declares a constant holding payload as a template literal:
//
//	const NAME = {
//	  name: 'NAME',
//	  content: `...`
//	};
func Wrap(name, payload string) string {
	var b strings.Builder
	b.Grow(len(payload) + 2*len(name) + 48)
	b.WriteString("const ")
	b.WriteString(name)
	b.WriteString(" = {\n  name: '")
	b.WriteString(name)
	b.WriteString("',\n  content: `")
	b.WriteString(escape(payload))
	b.WriteString("`\n};\n")
	return b.String()
}

// Assign is Wrap for raw dictionary exports: it assigns a global instead of
// declaring a constant and quotes the keys.
func Assign(name, payload string) string {
	var b strings.Builder
	b.Grow(len(payload) + 2*len(name) + 48)
	b.WriteString(name)
	b.WriteString(" = {\n  \"name\": \"")
	b.WriteString(name)
	b.WriteString("\",\n  \"content\": `")
	b.WriteString(escape(payload))
	b.WriteString("`\n};\n")
	return b.String()
}

var contentRe = regexp.MustCompile("(?:\"content\"|content):\\s*`([\\s\\S]*)`")

// Extract returns the trimmed content literal of a script produced by Wrap
// or Assign. The literal runs to the last backtick in the script.
func Extract(script string) (string, error) {
	m := contentRe.FindStringSubmatch(script)
	if m == nil {
		return "", ErrNoContent
	}
	return strings.TrimSpace(unescape(m[1])), nil
}

// ToneData declares the tone rule JSON as a global constant.
func ToneData(json []byte) string {
	return "const " + ToneDataVariable + " = " + string(json) + ";"
}
