package tone

import (
	"reflect"
	"testing"
)

func TestToDiacritic(t *testing.T) {
	tm := newTestTables().ToneMap("四")

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"acute", "sa1", "sá"},
		{"priority picks a over u", "kau2", "kàu"},
		{"dialect tone", "fung3", "fûng"},
		{"caron", "ngai5", "ngǎi"},
		{"syllabic m", "m1", "ḿ"},
		{"unknown tone keeps digit", "hag4", "hag4"},
		{"wrapped in punctuation", "(sa1)", "(sá)"},
		{"full-width comma isolated", "sa1，kau2", "sá ， kàu"},
		{"hyphen run isolated", "sa1--kau2", "sá -- kàu"},
		{"full-width hyphen", "sa1－kau2", "sá - kàu"},
		{"enumeration comma and colon", "sa1、kau2：ngai5", "sá 、 kàu ： ngǎi"},
		{"whitespace collapses", "  sa1   kau2 ", "sá kàu"},
		{"letters after digits", "sa1x", "sa1x"},
		{"no digit", "abc", "abc"},
		{"punctuation only", "，", "，"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToDiacritic(tt.input, tm); got != tt.want {
				t.Errorf("ToDiacritic(%q) = %q; want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestToDiacritic_SpecExamples(t *testing.T) {
	tm := ToneMap{
		Priority: []string{"a"},
		Tones:    map[string]map[string]string{"2": {"a": "á"}},
	}

	if got := ToDiacritic("va2", tm); got != "vá" {
		t.Errorf("ToDiacritic(va2) = %q; want %q", got, "vá")
	}
	if got := ToDiacritic("ba9", tm); got != "ba9" {
		t.Errorf("ToDiacritic(ba9) = %q; want %q", got, "ba9")
	}
}

func TestToDiacritic_FirstPriorityVowelDecides(t *testing.T) {
	tm := ToneMap{
		Priority: []string{"u", "i"},
		Tones:    map[string]map[string]string{"2": {"i": "ì"}},
	}

	// u is present but has no mark for tone 2; i is not tried.
	if got := ToDiacritic("kiu2", tm); got != "kiu" {
		t.Errorf("ToDiacritic(kiu2) = %q; want %q", got, "kiu")
	}
}

func TestToDiacritic_EmptyToneEntryKeepsDigit(t *testing.T) {
	tm := ToneMap{
		Priority: []string{"a"},
		Tones:    map[string]map[string]string{"7": {}},
	}

	if got := ToDiacritic("ka7", tm); got != "ka7" {
		t.Errorf("ToDiacritic(ka7) = %q; want %q", got, "ka7")
	}
}

func TestToDiacritic_DialectOverlay(t *testing.T) {
	tables := newTestTables()

	hailu := tables.ToneMap("海")
	if got := ToDiacritic("sa1 sa2 sa5", hailu); got != "sà sá sǎ" {
		t.Errorf("hailu = %q; want %q", got, "sà sá sǎ")
	}

	defaults := tables.ToneMap("unknown")
	if got := ToDiacritic("sa1 sa3", defaults); got != "sá sa3" {
		t.Errorf("defaults = %q; want %q", got, "sá sa3")
	}
}

func TestOverlayTones(t *testing.T) {
	defaults := map[string]map[string]string{
		"1": {"a": "á", "o": "ó"},
		"2": {"a": "à"},
	}
	dialect := map[string]map[string]string{
		"1": {"a": "ā"},
		"3": {"a": "â"},
	}

	got := OverlayTones(defaults, dialect)
	want := map[string]map[string]string{
		"1": {"a": "ā"},
		"2": {"a": "à"},
		"3": {"a": "â"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("OverlayTones = %v; want %v", got, want)
	}
	if len(defaults["1"]) != 2 {
		t.Error("OverlayTones modified the defaults")
	}
}

func TestRoundTrip_HighestPriorityVowel(t *testing.T) {
	tables := newTestTables()

	for _, s := range []string{"sá", "kàu", "ngǎi", "tó", "ḿ"} {
		numeric, err := tables.ToNumeric(s, "si")
		if err != nil {
			t.Fatalf("ToNumeric(%q): %v", s, err)
		}
		if back := tables.ToDiacritic(numeric, "四"); back != s {
			t.Errorf("round trip %q -> %q -> %q", s, numeric, back)
		}
	}
}

// Only the highest-priority vowel is ever marked, so a mark on another
// vowel does not survive the round trip.
func TestRoundTrip_LowerPriorityVowelIsNotPreserved(t *testing.T) {
	tables := newTestTables()

	numeric, _ := tables.ToNumeric("kaù", "si")
	if numeric != "kau2" {
		t.Fatalf("ToNumeric(kaù) = %q; want %q", numeric, "kau2")
	}
	if back := tables.ToDiacritic(numeric, "四"); back != "kàu" {
		t.Errorf("ToDiacritic(%q) = %q; want %q", numeric, back, "kàu")
	}
}

// Known asymmetry: a missing rule drops the tone in one direction and keeps
// the digit in the other. Kept as is until the data owners decide.
func TestFallbackAsymmetry(t *testing.T) {
	tables := newTestTables()

	numeric, _ := tables.ToNumeric("hâ", "si")
	if numeric != "ha" {
		t.Errorf("ToNumeric(hâ) = %q; want %q (no digit)", numeric, "ha")
	}
	if got := tables.ToDiacritic("ha9", "四"); got != "ha9" {
		t.Errorf("ToDiacritic(ha9) = %q; want %q (digit kept)", got, "ha9")
	}
}
