package rules_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/example/go-hakka-tone/internal/rules"
	"github.com/example/go-hakka-tone/internal/testutil"
	"github.com/spf13/afero"
)

func TestLoad_BuildsTables(t *testing.T) {
	fs := testutil.RuleFS(t)

	set, err := rules.Load(fs, testutil.ReversePath, testutil.TonePath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(set.ToneSource) == 0 {
		t.Error("ToneSource is empty")
	}

	tables := set.Tables()
	got, err := tables.ToNumeric("ngài sá hád", "si")
	if err != nil {
		t.Fatalf("ToNumeric: %v", err)
	}
	if want := "ngai2 sa1 had8"; got != want {
		t.Errorf("ToNumeric = %q; want %q", got, want)
	}

	if got := tables.ToDiacritic("ngai2 sa1", "海"); got != "ngái sà" {
		t.Errorf("ToDiacritic = %q; want %q", got, "ngái sà")
	}
}

func TestLoad_YAML(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.WriteFile(t, fs, "r.yaml", `
vowel_map:
  á: a
dialect_reverse_map:
  si:
    á: "1"
`)
	testutil.WriteFile(t, fs, "t.yml", `
vowel_priority: [a]
default_tones:
  "1": {a: á}
`)

	tables, err := rules.LoadTables(fs, "r.yaml", "t.yml")
	if err != nil {
		t.Fatalf("LoadTables: %v", err)
	}
	if got, _ := tables.ToNumeric("vá", "si"); got != "va1" {
		t.Errorf("ToNumeric = %q; want %q", got, "va1")
	}
	if got := tables.ToDiacritic("va1", "四"); got != "vá" {
		t.Errorf("ToDiacritic = %q; want %q", got, "vá")
	}
}

func TestLoad_ConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		reverse string
		tone    string
		want    string
	}{
		{
			name:    "malformed reverse json",
			reverse: `{"vowel_map": `,
			tone:    testutil.ToneJSON,
			want:    "decode",
		},
		{
			name:    "empty vowel map",
			reverse: `{"vowel_map": {}, "dialect_reverse_map": {"si": {"á": "1"}}}`,
			tone:    testutil.ToneJSON,
			want:    "vowel_map is empty",
		},
		{
			name:    "non-digit tone",
			reverse: `{"vowel_map": {"á": "a"}, "dialect_reverse_map": {"si": {"á": "x"}}}`,
			tone:    testutil.ToneJSON,
			want:    "not a digit string",
		},
		{
			name:    "conflicting class",
			reverse: `{"vowel_map": {"á": "a"}, "dialect_reverse_map": {"si": {"á": "1", "é": "2"}}}`,
			tone:    testutil.ToneJSON,
			want:    "already maps to",
		},
		{
			name:    "unrecognized diacritic",
			reverse: `{"vowel_map": {"á": "a"}, "dialect_reverse_map": {"si": {"ǘ": "1"}}}`,
			tone:    testutil.ToneJSON,
			want:    "unrecognized diacritic",
		},
		{
			name:    "empty priority",
			reverse: testutil.ReverseJSON,
			tone:    `{"vowel_priority": [], "default_tones": {"1": {"a": "á"}}}`,
			want:    "vowel_priority is empty",
		},
		{
			name:    "bad tone digit",
			reverse: testutil.ReverseJSON,
			tone:    `{"vowel_priority": ["a"], "default_tones": {"one": {"a": "á"}}}`,
			want:    `tone "one"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			testutil.WriteFile(t, fs, "r.json", tt.reverse)
			testutil.WriteFile(t, fs, "t.json", tt.tone)

			_, err := rules.Load(fs, "r.json", "t.json")
			if !errors.Is(err, rules.ErrConfig) {
				t.Fatalf("err = %v; want ErrConfig", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %q; want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	fs := afero.NewMemMapFs()

	_, err := rules.Load(fs, "nope.json", "nope.json")
	if !errors.Is(err, rules.ErrConfig) {
		t.Fatalf("err = %v; want ErrConfig", err)
	}

	_, err = rules.Load(fs, "", "")
	if !errors.Is(err, rules.ErrConfig) {
		t.Fatalf("empty path err = %v; want ErrConfig", err)
	}
}

func TestLoad_TOML(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.WriteFile(t, fs, "r.toml", `
[vowel_map]
"à" = "a"

[dialect_reverse_map.ha]
"à" = "1"
"ad" = "5"
`)
	testutil.WriteFile(t, fs, "t.toml", `
vowel_priority = ["a"]

[default_tones.1]
a = "à"
`)

	set, err := rules.Load(fs, "r.toml", "t.toml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !json.Valid(set.ToneSource) || !strings.Contains(string(set.ToneSource), `"vowel_priority"`) {
		t.Errorf("ToneSource = %s; want the tone file as JSON", set.ToneSource)
	}

	tables := set.Tables()
	if got, _ := tables.ToNumeric("sà kad", "ha"); got != "sa1 kad5" {
		t.Errorf("ToNumeric = %q; want %q", got, "sa1 kad5")
	}
	if got := tables.ToDiacritic("sa1", "海"); got != "sà" {
		t.Errorf("ToDiacritic = %q; want %q", got, "sà")
	}
}

func TestLoad_ReportsEveryProblem(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.WriteFile(t, fs, "r.json", `{"vowel_map": {}, "dialect_reverse_map": {"si": {"á": "x"}}}`)
	testutil.WriteFile(t, fs, "t.json", testutil.ToneJSON)

	_, err := rules.Load(fs, "r.json", "t.json")
	if !errors.Is(err, rules.ErrConfig) {
		t.Fatalf("err = %v; want ErrConfig", err)
	}
	for _, want := range []string{"vowel_map is empty", "not a digit string"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("err = %q; want it to contain %q", err, want)
		}
	}
}

func TestLoad_BareVowelKeys(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.WriteFile(t, fs, "r.json", `{
  "vowel_map": {"á": "a"},
  "dialect_reverse_map": {"si": {"á": "1", "": "3", "d": "4"}}
}`)
	testutil.WriteFile(t, fs, "t.json", testutil.ToneJSON)

	tables, err := rules.LoadTables(fs, "r.json", "t.json")
	if err != nil {
		t.Fatalf("LoadTables: %v", err)
	}
	got, err := tables.ToNumeric("ká ka kad", "si")
	if err != nil {
		t.Fatalf("ToNumeric: %v", err)
	}
	if want := "ka1 ka3 kad4"; got != want {
		t.Errorf("ToNumeric = %q; want %q", got, want)
	}
}
