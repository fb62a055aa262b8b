package rules

import (
	"sort"
	"strings"
)

// Dialect is one regional variant. Char is the single-character tag used in
// file names and tone rule files, Code keys the reverse (diacritic) rules.
type Dialect struct {
	Char string `json:"char"`
	Name string `json:"name"`
	Code string `json:"code"`
}

var dialects = []Dialect{
	{Char: "四", Name: "四縣", Code: "si"},
	{Char: "海", Name: "海陸", Code: "ha"},
	{Char: "大", Name: "大埔", Code: "da"},
	{Char: "平", Name: "饒平", Code: "rh"},
	{Char: "安", Name: "詔安", Code: "zh"},
	{Char: "南", Name: "南四縣", Code: "na"},
}

// Levels maps a certification level tag to its full name.
var Levels = map[string]string{
	"基":  "基礎級",
	"初":  "初級",
	"中":  "中級",
	"中高": "中高級",
	"高":  "高級",
}

// Dialects returns the known dialects in catalog order.
func Dialects() []Dialect {
	return append([]Dialect(nil), dialects...)
}

// ByChar looks up a dialect by its character tag.
func ByChar(c string) (Dialect, bool) {
	return lookup(func(d Dialect) bool { return d.Char == c })
}

// ByName looks up a dialect by its full name.
func ByName(name string) (Dialect, bool) {
	return lookup(func(d Dialect) bool { return d.Name == name })
}

// ByCode looks up a dialect by its rule code.
func ByCode(code string) (Dialect, bool) {
	return lookup(func(d Dialect) bool { return d.Code == code })
}

// Resolve accepts a character tag, name or code (case-insensitive).
func Resolve(s string) (Dialect, bool) {
	s = strings.TrimSpace(s)
	if d, ok := ByChar(s); ok {
		return d, true
	}
	if d, ok := ByName(s); ok {
		return d, true
	}
	return ByCode(strings.ToLower(s))
}

// LevelTags returns the level tags, longest first, so that "中高" is tried
// before "中".
func LevelTags() []string {
	out := make([]string, 0, len(Levels))
	for tag := range Levels {
		out = append(out, tag)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}

func lookup(match func(Dialect) bool) (Dialect, bool) {
	for _, d := range dialects {
		if match(d) {
			return d, true
		}
	}
	return Dialect{}, false
}
