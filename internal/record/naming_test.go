package record

import "testing"

func TestCertSourceName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"113大中高.csv", "大埔中高級"},
		{"data/cert/112四基.csv", "四縣基礎級"},
		{"海初.csv", "海陸初級"},
		{"113安特.csv", "詔安"},
		{"notes.csv", "notes"},
	}
	for _, tt := range tests {
		if got := CertSourceName(tt.in); got != tt.want {
			t.Errorf("CertSourceName(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestCertVariableName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"113大中高.csv", "大中高"},
		{"113大中.csv", "大中"},
		{"112平基.csv", "平基"},
		{"113其他.csv", "其他"},
	}
	for _, tt := range tests {
		if got := CertVariableName(tt.in); got != tt.want {
			t.Errorf("CertVariableName(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestGipDialect(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"教客典-20250630-四.csv", "四", true},
		{"data/gip/20250630-海.csv", "海", true},
		{"教客典.csv", "", false},
		{"20250630-四.js", "", false},
	}
	for _, tt := range tests {
		got, ok := GipDialect(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("GipDialect(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
	if got := GipVariableName("四"); got != "教典四" {
		t.Errorf("GipVariableName = %q", got)
	}
}

func TestGipExportName(t *testing.T) {
	script, dialect, ok := GipExportName("data/gip/教客典-20250630-四.csv")
	if !ok || script != "20250630-四.js" || dialect != "四" {
		t.Errorf("GipExportName = %q, %q, %v", script, dialect, ok)
	}

	if _, _, ok := GipExportName("20250630-四.csv"); ok {
		t.Error("GipExportName accepted a name without the export prefix")
	}
}
