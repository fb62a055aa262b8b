package main

import (
	"strings"
	"testing"

	"github.com/example/go-hakka-tone/internal/testutil"
)

func TestDoctor_Passes(t *testing.T) {
	fs := testutil.RuleFS(t)
	testutil.WriteFile(t, fs, "data/cert/113四基.csv", testCert)
	testutil.WriteFile(t, fs, "data/gip/教客典-20250630-四.csv", "詞目,音讀\n")

	out, err := run(t, fs, "", "doctor")
	if err != nil {
		t.Fatalf("doctor: %v\n%s", err, out)
	}

	if !strings.Contains(out, "doctor checks passed") {
		t.Errorf("output:\n%s", out)
	}
}

func TestDoctor_FailsWithoutDataDirs(t *testing.T) {
	out, err := run(t, testutil.RuleFS(t), "", "doctor")
	if err == nil {
		t.Fatalf("doctor passed without data dirs:\n%s", out)
	}

	if !strings.Contains(out, "✗ data dir data/cert") {
		t.Errorf("output:\n%s", out)
	}
}

func TestDialects_ListsCatalog(t *testing.T) {
	out, err := run(t, testutil.RuleFS(t), "", "dialects")
	if err != nil {
		t.Fatalf("dialects: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 7 {
		t.Fatalf("want header + 6 dialects, got %d lines:\n%s", len(lines), out)
	}

	for _, want := range []string{"四縣", "海陸", "南四縣"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	fields := strings.Fields(lines[1])
	if len(fields) != 5 || fields[2] != "si" || fields[3] != "yes" || fields[4] != "yes" {
		t.Errorf("si row = %q", lines[1])
	}
}

func TestHealth_Unreachable(t *testing.T) {
	if _, err := run(t, testutil.RuleFS(t), "", "health", "--addr=127.0.0.1:1"); err == nil {
		t.Error("expected error probing a closed port")
	}
}
