package tone

import (
	"sort"
	"strings"
)

// CheckedSuffix marks a rule key as applying to checked syllables.
const CheckedSuffix = "d"

// noneKey is the literal seed key for "bare vowel, no diacritic".
const noneKey = "none"

// Key identifies one expanded rule: a symbol as it appears in input text
// (diacritic vowel or base vowel) and whether the syllable is checked.
type Key struct {
	Symbol  string
	Checked bool
}

func (k Key) String() string {
	if k.Checked {
		return k.Symbol + CheckedSuffix
	}
	return k.Symbol
}

// ParseKey splits a seed rule key into its symbol and checked flag. The bare
// suffix "d" is the checked rule for a vowel without diacritic, just as ""
// is the unchecked one ("none" and "noned" spell the same rules).
func ParseKey(raw string) Key {
	if sym, ok := strings.CutSuffix(raw, CheckedSuffix); ok {
		return Key{Symbol: sym, Checked: true}
	}
	return Key{Symbol: raw}
}

// Seed is the compact, hand-written reverse table: dialect code to raw rule
// key to tone digit. Only one rule per mark shape is needed.
type Seed map[string]map[string]string

// DialectRules is the dense rule set of one dialect.
type DialectRules map[Key]string

// Lookup returns the tone digit for k.
func (r DialectRules) Lookup(k Key) (string, bool) {
	tone, ok := r[k]
	return tone, ok
}

// Expanded maps a dialect code to its dense rules.
type Expanded map[string]DialectRules

// ClassRule is one seed rule after classification.
type ClassRule struct {
	Mark    Mark
	Checked bool
}

// Classify reduces a raw seed key to the class it stands for.
func Classify(raw string) ClassRule {
	k := ParseKey(raw)
	return ClassRule{Mark: ClassOf(k.Symbol), Checked: k.Checked}
}

// Learn builds the class lookup for one dialect's seed rules. Keys of
// MarkInvalid are ignored; when two keys land in the same class the
// lexically first key wins.
func Learn(rules map[string]string) map[ClassRule]string {
	keys := make([]string, 0, len(rules))
	for k := range rules {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	learned := make(map[ClassRule]string, len(keys))
	for _, k := range keys {
		cr := Classify(k)
		if cr.Mark == MarkInvalid {
			continue
		}
		if _, dup := learned[cr]; dup {
			continue
		}
		learned[cr] = rules[k]
	}
	return learned
}

// Expand propagates every seed rule to all diacritic vowels of the same mark
// class, and the bare-vowel rules to every base vowel. Diacritics whose class
// has no seed rule are left out.
func Expand(seed Seed, vowels VowelMap) Expanded {
	bases := vowels.Bases()
	out := make(Expanded, len(seed))

	for dialect, rules := range seed {
		learned := Learn(rules)
		dense := make(DialectRules, 2*(len(vowels)+len(bases)))

		for sym := range vowels {
			assign(dense, learned, sym, ClassOf(sym))
		}
		for _, base := range bases {
			assign(dense, learned, base, MarkNone)
		}
		out[dialect] = dense
	}
	return out
}

func assign(dense DialectRules, learned map[ClassRule]string, sym string, mark Mark) {
	if mark == MarkInvalid {
		return
	}
	for _, checked := range []bool{false, true} {
		if tone, ok := learned[ClassRule{Mark: mark, Checked: checked}]; ok {
			dense[Key{Symbol: sym, Checked: checked}] = tone
		}
	}
}
