package mapping

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbedded(t *testing.T) {
	table, err := Load("")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(table.Fields) == 0 {
		t.Fatal("Expected embedded table to contain field mappings")
	}

	if got := table.Fields["kredittkort_nominell_rente"]; got != "kredittkort-nominell-rente-3" {
		t.Errorf("Expected 'kredittkort-nominell-rente-3', got: %s", got)
	}
	if got := table.Fields["min_alder"]; got != "aldersgrense-2" {
		t.Errorf("Expected 'aldersgrense-2', got: %s", got)
	}

	if !table.IsSanitized("kredittkort-reiseforsikring-beskrivelse-3") {
		t.Error("Expected travel insurance description to be a sanitized field")
	}
	if !table.IsSanitized("kredittkort-andre-fordeler-beskrivelse-2") {
		t.Error("Expected benefits description to be a sanitized field")
	}
	if table.IsSanitized("leverandor-tekst") {
		t.Error("Expected provider text not to be a sanitized field")
	}

	if !table.IsThousands("kredittkort-maks-ramme-2") {
		t.Error("Expected max credit limit to be a thousands field")
	}
	if table.IsThousands("kredittkort-termingebyr-2") {
		t.Error("Expected installment fee not to be a thousands field")
	}
}

func TestLoadFileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.yml")
	data := []byte("fields:\n  foo: bar\nthousands:\n  - bar\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if table.Fields["foo"] != "bar" {
		t.Errorf("Expected 'bar', got: %s", table.Fields["foo"])
	}
	if !table.IsThousands("bar") {
		t.Error("Expected 'bar' to be a thousands field")
	}
}

func TestLoadRejectsUnmappedClassFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.yml")
	data := []byte("fields:\n  foo: bar\nsanitize:\n  - missing\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Expected error for sanitize field not present in the mapping")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/mapping.yml"); err == nil {
		t.Error("Expected error for missing mapping file")
	}
}
