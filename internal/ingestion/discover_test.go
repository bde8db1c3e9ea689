package ingestion

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func touch(t *testing.T, dir, name string, mod time.Time) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	if err := os.Chtimes(path, mod, mod); err != nil {
		t.Fatalf("chtimes %s: %v", name, err)
	}
	return path
}

func TestFindReportFile_NewestWins(t *testing.T) {
	dir := t.TempDir()
	base := time.Now().Add(-time.Hour)

	touch(t, dir, "2025_9_CustomUnifiedTransaction_acme_DE.csv", base)
	want := touch(t, dir, "2025_9_CustomUnifiedTransaction-v2_acme_DE.csv", base.Add(10*time.Minute))
	// different marketplace must not match
	touch(t, dir, "2025_9_CustomUnifiedTransaction_acme_FR.csv", base.Add(20*time.Minute))
	// different period must not match
	touch(t, dir, "2025_8_CustomUnifiedTransaction_acme_DE.csv", base.Add(30*time.Minute))

	got, err := FindReportFile(dir, 2025, 9, "acme", "DE")
	if err != nil {
		t.Fatalf("FindReportFile: %v", err)
	}
	if got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestFindReportFile_Missing(t *testing.T) {
	dir := t.TempDir()
	_, err := FindReportFile(dir, 2025, 9, "acme", "SE")
	if !errors.Is(err, ErrNoReport) {
		t.Fatalf("expected ErrNoReport, got %v", err)
	}
}
