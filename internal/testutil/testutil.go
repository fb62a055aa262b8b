// Package testutil provides shared fixtures for tests: small but realistic
// rule files, an in-memory file system preloaded with them, and helpers for
// asserting on generated CSV payloads.
//
// Typical usage:
//
//	func TestMyBatch(t *testing.T) {
//	    fs := testutil.RuleFS(t)
//	    testutil.WriteFile(t, fs, "data/cert/113四基.csv", csv)
//	    ...
//	}
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// Paths of the rule files inside the fixture file system.
const (
	ReversePath = "rules/reverse_tone_mapping.json"
	TonePath    = "rules/tone_mapping.json"
)

// ReverseJSON is a reverse rule file covering Sixian (si) and Hailu (ha).
const ReverseJSON = `{
  "vowel_map": {
    "á": "a", "à": "a", "â": "a", "ǎ": "a",
    "é": "e", "è": "e", "ê": "e", "ě": "e",
    "í": "i", "ì": "i", "î": "i", "ǐ": "i",
    "ó": "o", "ò": "o", "ô": "o", "ǒ": "o",
    "ú": "u", "ù": "u", "û": "u", "ǔ": "u",
    "ḿ": "m", "ń": "n", "ǹ": "n"
  },
  "dialect_reverse_map": {
    "si": {"á": "1", "à": "2", "a": "3", "ad": "4", "ǎ": "5", "ád": "8"},
    "ha": {"à": "1", "á": "2", "ǎ": "3", "ad": "5", "ád": "8", "a": "7"}
  }
}`

// ToneJSON is the matching tone rule file.
const ToneJSON = `{
  "vowel_priority": ["a", "o", "e", "u", "i", "n", "m"],
  "default_tones": {
    "1": {"a": "á", "o": "ó", "e": "é", "u": "ú", "i": "í", "n": "ń", "m": "ḿ"},
    "2": {"a": "à", "o": "ò", "e": "è", "u": "ù", "i": "ì", "n": "ǹ"},
    "5": {"a": "ǎ", "o": "ǒ", "e": "ě", "u": "ǔ", "i": "ǐ"}
  },
  "dialect_maps": {
    "四": {"3": {"a": "a", "o": "o", "e": "e", "u": "u", "i": "i"}},
    "海": {
      "1": {"a": "à", "o": "ò", "e": "è", "u": "ù", "i": "ì"},
      "2": {"a": "á", "o": "ó", "e": "é", "u": "ú", "i": "í"},
      "3": {"a": "ǎ", "o": "ǒ", "e": "ě", "u": "ǔ", "i": "ǐ"}
    }
  }
}`

// RuleFS returns an in-memory file system holding ReverseJSON and ToneJSON
// at ReversePath and TonePath.
func RuleFS(tb testing.TB) afero.Fs {
	tb.Helper()

	fs := afero.NewMemMapFs()
	WriteFile(tb, fs, ReversePath, ReverseJSON)
	WriteFile(tb, fs, TonePath, ToneJSON)
	return fs
}

// WriteFile writes content to path on fs, creating parent directories.
func WriteFile(tb testing.TB, fs afero.Fs, path, content string) {
	tb.Helper()

	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		tb.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
		tb.Fatalf("write %s: %v", path, err)
	}
}

// ReadFile returns the content of path on fs or fails the test.
func ReadFile(tb testing.TB, fs afero.Fs, path string) string {
	tb.Helper()

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		tb.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}
