package jsmodule

import (
	"errors"
	"testing"
)

func TestWrap(t *testing.T) {
	got := Wrap("四基", "a,b\r\n1,`x`\r\n")
	want := "const 四基 = {\n  name: '四基',\n  content: `a,b\r\n1,\\`x\\`\r\n`\n};\n"
	if got != want {
		t.Errorf("Wrap = %q\nwant %q", got, want)
	}
}

func TestAssign(t *testing.T) {
	got := Assign("教典四", "a,b\n")
	want := "教典四 = {\n  \"name\": \"教典四\",\n  \"content\": `a,b\n`\n};\n"
	if got != want {
		t.Errorf("Assign = %q\nwant %q", got, want)
	}
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{"wrap round trip", Wrap("大中", "a,b\n1,`q`\n"), "a,b\n1,`q`"},
		{"assign round trip", Assign("教典海", "x\ny\n"), "x\ny"},
		{"spaces after colon", "v = {content:    `  p  `}", "p"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.script)
			if err != nil {
				t.Fatalf("Extract: %v", err)
			}
			if got != tt.want {
				t.Errorf("Extract = %q; want %q", got, tt.want)
			}
		})
	}
}

func TestExtract_NoContent(t *testing.T) {
	for _, s := range []string{"", "const x = 1;", "const x = {name: 'x'};", "content: 'quoted'"} {
		if _, err := Extract(s); !errors.Is(err, ErrNoContent) {
			t.Errorf("Extract(%q) err = %v; want ErrNoContent", s, err)
		}
	}
}

func TestToneData(t *testing.T) {
	got := ToneData([]byte(`{"vowel_priority": ["a"]}`))
	if want := `const toneMappingData = {"vowel_priority": ["a"]};`; got != want {
		t.Errorf("ToneData = %q; want %q", got, want)
	}
}
