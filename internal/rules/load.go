// Package rules loads the tone rule files and builds the engine tables.
//
// Two files drive the engine: the reverse file (vowel map plus compact
// per-dialect diacritic rules) and the tone file (vowel priority plus default
// and per-dialect tone marks). Both may be JSON, YAML or TOML.
package rules

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/example/go-hakka-tone/internal/tone"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// ErrConfig reports a missing or malformed rule file. It is fatal for a
// whole conversion run.
var ErrConfig = errors.New("invalid rule configuration")

// ReverseFile is the diacritic to numeric rule file.
type ReverseFile struct {
	VowelMap          map[string]string            `json:"vowel_map" yaml:"vowel_map" toml:"vowel_map"`
	DialectReverseMap map[string]map[string]string `json:"dialect_reverse_map" yaml:"dialect_reverse_map" toml:"dialect_reverse_map"`
}

// ToneFile is the numeric to diacritic rule file.
type ToneFile struct {
	VowelPriority []string                                `json:"vowel_priority" yaml:"vowel_priority" toml:"vowel_priority"`
	DefaultTones  map[string]map[string]string            `json:"default_tones" yaml:"default_tones" toml:"default_tones"`
	DialectMaps   map[string]map[string]map[string]string `json:"dialect_maps" yaml:"dialect_maps" toml:"dialect_maps"`
}

// Set is a loaded, validated pair of rule files.
type Set struct {
	Reverse ReverseFile
	Tone    ToneFile
	// ToneSource is the tone file as JSON, kept for front-end emission.
	// JSON files are kept byte for byte; other formats are re-encoded.
	ToneSource []byte
}

// Tables builds the immutable engine tables.
func (s *Set) Tables() *tone.Tables {
	return tone.NewTables(tone.TablesConfig{
		Vowels:       s.Reverse.VowelMap,
		Priority:     s.Tone.VowelPriority,
		Seed:         tone.Seed(s.Reverse.DialectReverseMap),
		ToneDefaults: s.Tone.DefaultTones,
		ToneDialects: s.Tone.DialectMaps,
	})
}

// Load reads and validates both rule files.
func Load(fs afero.Fs, reversePath, tonePath string) (*Set, error) {
	var set Set

	if _, err := decodeFile(fs, reversePath, &set.Reverse); err != nil {
		return nil, err
	}
	raw, err := decodeFile(fs, tonePath, &set.Tone)
	if err != nil {
		return nil, err
	}
	if !isJSON(tonePath) {
		if raw, err = json.Marshal(set.Tone); err != nil {
			return nil, fmt.Errorf("%w: encode %s: %v", ErrConfig, tonePath, err)
		}
	}
	set.ToneSource = raw

	if err := ValidateReverse(set.Reverse); err != nil {
		return nil, fmt.Errorf("%s: %w", reversePath, err)
	}
	if err := ValidateTone(set.Tone); err != nil {
		return nil, fmt.Errorf("%s: %w", tonePath, err)
	}
	return &set, nil
}

// LoadTables is Load followed by Tables.
func LoadTables(fs afero.Fs, reversePath, tonePath string) (*tone.Tables, error) {
	set, err := Load(fs, reversePath, tonePath)
	if err != nil {
		return nil, err
	}
	return set.Tables(), nil
}

func decodeFile(fs afero.Fs, path string, v any) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: rule file path is empty", ErrConfig)
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrConfig, path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, v)
	case ".toml":
		err = toml.Unmarshal(data, v)
	default:
		err = json.Unmarshal(data, v)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrConfig, path, err)
	}
	return data, nil
}

// ValidateReverse checks that the reverse file is complete enough to expand.
// Rule keys must classify to a known mark, tone values must be digits, and
// two keys of the same class must agree on the tone.
func ValidateReverse(f ReverseFile) error {
	var problems []string

	if len(f.VowelMap) == 0 {
		problems = append(problems, "vowel_map is empty")
	}
	for sym, base := range f.VowelMap {
		if sym == "" || base == "" {
			problems = append(problems, fmt.Sprintf("vowel_map entry %q -> %q is empty", sym, base))
		}
	}

	if len(f.DialectReverseMap) == 0 {
		problems = append(problems, "dialect_reverse_map is empty")
	}
	for _, dialect := range sortedKeys(f.DialectReverseMap) {
		rules := f.DialectReverseMap[dialect]
		if len(rules) == 0 {
			problems = append(problems, fmt.Sprintf("dialect %q has no rules", dialect))
			continue
		}

		seen := make(map[tone.ClassRule]string, len(rules))
		for _, key := range sortedKeys(rules) {
			digit := rules[key]
			if !isDigits(digit) {
				problems = append(problems, fmt.Sprintf("dialect %q key %q: tone %q is not a digit string", dialect, key, digit))
			}
			cr := tone.Classify(key)
			if cr.Mark == tone.MarkInvalid {
				problems = append(problems, fmt.Sprintf("dialect %q key %q: unrecognized diacritic", dialect, key))
				continue
			}
			if prev, ok := seen[cr]; ok && prev != digit {
				problems = append(problems, fmt.Sprintf("dialect %q key %q: %s class already maps to %q", dialect, key, cr.Mark, prev))
				continue
			}
			seen[cr] = digit
		}
	}

	return joinProblems(problems)
}

// ValidateTone checks the tone file.
func ValidateTone(f ToneFile) error {
	var problems []string

	if len(f.VowelPriority) == 0 {
		problems = append(problems, "vowel_priority is empty")
	}
	for i, v := range f.VowelPriority {
		if v == "" {
			problems = append(problems, fmt.Sprintf("vowel_priority[%d] is empty", i))
		}
	}

	if len(f.DefaultTones) == 0 {
		problems = append(problems, "default_tones is empty")
	}
	problems = append(problems, checkTones("default_tones", f.DefaultTones)...)
	for _, dialect := range sortedKeys(f.DialectMaps) {
		problems = append(problems, checkTones("dialect_maps."+dialect, f.DialectMaps[dialect])...)
	}

	return joinProblems(problems)
}

func checkTones(where string, tones map[string]map[string]string) []string {
	var problems []string
	for _, digit := range sortedKeys(tones) {
		if !isDigits(digit) {
			problems = append(problems, fmt.Sprintf("%s: tone %q is not a digit string", where, digit))
		}
		for vowel, marked := range tones[digit] {
			if vowel == "" || marked == "" {
				problems = append(problems, fmt.Sprintf("%s.%s: empty entry %q -> %q", where, digit, vowel, marked))
			}
		}
	}
	return problems
}

// joinProblems combines every problem into one error; each part matches
// ErrConfig.
func joinProblems(problems []string) error {
	var err error
	for _, p := range problems {
		err = multierr.Append(err, fmt.Errorf("%w: %s", ErrConfig, p))
	}
	return err
}

func isJSON(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".toml":
		return false
	}
	return true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
