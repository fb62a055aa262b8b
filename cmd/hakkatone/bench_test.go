package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/example/go-hakka-tone/internal/testutil"
)

func TestBench_JSON(t *testing.T) {
	out, err := run(t, testutil.RuleFS(t), "", "bench", "--text=ngài sá kàu", "--runs=3", "--format=json")
	if err != nil {
		t.Fatalf("bench: %v", err)
	}

	var report struct {
		Runs []struct {
			Syllables int `json:"syllables"`
		} `json:"runs"`
	}
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}

	if len(report.Runs) != 3 || report.Runs[0].Syllables != 3 {
		t.Errorf("runs = %+v", report.Runs)
	}
}

func TestBench_TableDiacritic(t *testing.T) {
	out, err := run(t, testutil.RuleFS(t), "", "bench", "--text=sa1 kau2", "--to=diacritic", "--runs=2")
	if err != nil {
		t.Fatalf("bench: %v", err)
	}

	if !strings.Contains(out, "Syllables/s") {
		t.Errorf("output:\n%s", out)
	}
}

func TestBench_Validation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing text", []string{"bench"}},
		{"bad format", []string{"bench", "--text=sa", "--format=xml"}},
		{"bad direction", []string{"bench", "--text=sa", "--to=both"}},
		{"zero runs", []string{"bench", "--text=sa", "--runs=0"}},
		{"threshold exceeded", []string{"bench", "--text=sá", "--runs=2", "--max-mean=1ns"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := run(t, testutil.RuleFS(t), "", tt.args...); err == nil {
				t.Error("expected error")
			}
		})
	}
}
