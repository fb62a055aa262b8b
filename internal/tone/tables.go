package tone

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownDialect is returned when a dialect has no expanded rules.
var ErrUnknownDialect = errors.New("unknown dialect")

// TablesConfig is the raw material for Tables.
type TablesConfig struct {
	Vowels       map[string]string
	Priority     []string
	Seed         Seed
	ToneDefaults map[string]map[string]string
	ToneDialects map[string]map[string]map[string]string
}

// Tables bundles every table the engine needs. It is immutable once built
// and may be shared by any number of goroutines.
type Tables struct {
	vowels   VowelMap
	priority []string
	expanded Expanded
	alpha    Alphabet
	symbols  []string
	toneMaps map[string]ToneMap
	defaults ToneMap
}

// NewTables expands the seed and precomputes one ToneMap per dialect.
func NewTables(cfg TablesConfig) *Tables {
	vowels := NewVowelMap(cfg.Vowels)
	priority := append([]string(nil), cfg.Priority...)

	t := &Tables{
		vowels:   vowels,
		priority: priority,
		expanded: Expand(cfg.Seed, vowels),
		alpha:    NewAlphabet(vowels),
		symbols:  vowels.Symbols(),
		toneMaps: make(map[string]ToneMap, len(cfg.ToneDialects)),
		defaults: ToneMap{Priority: priority, Tones: OverlayTones(cfg.ToneDefaults, nil)},
	}
	for dialect, tones := range cfg.ToneDialects {
		t.toneMaps[dialect] = ToneMap{Priority: priority, Tones: OverlayTones(cfg.ToneDefaults, tones)}
	}
	return t
}

// Vowels returns a copy of the vowel map.
func (t *Tables) Vowels() VowelMap {
	out := make(VowelMap, len(t.vowels))
	for k, v := range t.vowels {
		out[k] = v
	}
	return out
}

// Priority returns a copy of the vowel priority.
func (t *Tables) Priority() []string { return append([]string(nil), t.priority...) }

// Rules returns a copy of the expanded rules of a dialect code.
func (t *Tables) Rules(dialect string) (DialectRules, bool) {
	r, ok := t.expanded[dialect]
	if !ok {
		return nil, false
	}
	out := make(DialectRules, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out, true
}

// Dialects returns the dialect codes with expanded rules, sorted.
func (t *Tables) Dialects() []string {
	out := make([]string, 0, len(t.expanded))
	for d := range t.expanded {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// ToneMap returns the tone map of a dialect. Dialects without their own
// entries get the defaults.
func (t *Tables) ToneMap(dialect string) ToneMap {
	if tm, ok := t.toneMaps[dialect]; ok {
		return tm
	}
	return t.defaults
}

// ToNumeric converts diacritic-form text using the rules of a dialect code.
func (t *Tables) ToNumeric(text, dialect string) (string, error) {
	rules, ok := t.expanded[dialect]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDialect, dialect)
	}
	if text == "" {
		return "", nil
	}
	return toNumeric(text, rules, t.vowels, t.alpha, t.symbols, t.priority), nil
}

// ToDiacritic converts numeric-form text using the tone map of a dialect.
func (t *Tables) ToDiacritic(text, dialect string) string {
	return ToDiacritic(text, t.ToneMap(dialect))
}
