package tone

import (
	"reflect"
	"testing"
)

func TestScan(t *testing.T) {
	alpha := NewAlphabet(NewVowelMap(testVowels))

	got := Scan("sá, kàu!", alpha.Contains)
	want := []Token{
		{Kind: KindSyllable, Text: "sá"},
		{Kind: KindPunct, Text: ","},
		{Kind: KindSpace, Text: " "},
		{Kind: KindSyllable, Text: "kàu"},
		{Kind: KindPunct, Text: "!"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Scan = %+v; want %+v", got, want)
	}

	if toks := Scan("", alpha.Contains); len(toks) != 0 {
		t.Errorf("Scan(\"\") = %+v; want none", toks)
	}
}

func TestAlphabet_Contains(t *testing.T) {
	alpha := NewAlphabet(NewVowelMap(testVowels))

	for _, r := range []rune{'a', 'Z', '\'', 'á', 'ǹ', '\u0304'} {
		if !alpha.Contains(r) {
			t.Errorf("Contains(%q) = false; want true", r)
		}
	}
	for _, r := range []rune{'1', ' ', ',', '，', 'ü', '-'} {
		if alpha.Contains(r) {
			t.Errorf("Contains(%q) = true; want false", r)
		}
	}
}

func TestFields(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"sa1 kau2", []string{"sa1", "kau2"}},
		{"sa1，kau2", []string{"sa1", "，", "kau2"}},
		{"sa1，、kau2", []string{"sa1", "，、", "kau2"}},
		{"sa1 - kau2", []string{"sa1", "-", "kau2"}},
		{"sa1－－kau2", []string{"sa1", "--", "kau2"}},
		{"(sa1)\tkau2\n", []string{"(sa1)", "kau2"}},
		{"   ", nil},
	}

	for _, tt := range tests {
		if got := Fields(tt.input); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Fields(%q) = %q; want %q", tt.input, got, tt.want)
		}
	}
}

func TestParseNumericSyllable(t *testing.T) {
	tests := []struct {
		input string
		want  NumericSyllable
		ok    bool
	}{
		{"sa1", NumericSyllable{Letters: "sa", Tone: "1"}, true},
		{"(sa1)", NumericSyllable{Lead: "(", Letters: "sa", Tone: "1", Trail: ")"}, true},
		{"「ngai24」", NumericSyllable{Lead: "「", Letters: "ngai", Tone: "24", Trail: "」"}, true},
		{"1sa2", NumericSyllable{Lead: "1", Letters: "sa", Tone: "2"}, true},
		{"sa1.", NumericSyllable{Letters: "sa", Tone: "1", Trail: "."}, true},
		{"sa", NumericSyllable{}, false},
		{"sa1x", NumericSyllable{}, false},
		{"s1a2", NumericSyllable{}, false},
		{"，", NumericSyllable{}, false},
		{"12", NumericSyllable{}, false},
		{"", NumericSyllable{}, false},
	}

	for _, tt := range tests {
		got, ok := ParseNumericSyllable(tt.input)
		if ok != tt.ok {
			t.Errorf("ParseNumericSyllable(%q) ok = %v; want %v", tt.input, ok, tt.ok)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseNumericSyllable(%q) = %+v; want %+v", tt.input, got, tt.want)
		}
		if ok && got.String() != tt.input {
			t.Errorf("String() = %q; want %q", got.String(), tt.input)
		}
	}
}
