package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadRoomIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "room_ids.txt")
	content := `# fixture listings
1234567890

  9876543210
# trailing comment
1234567890
553891980070019xxxx
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	ids, err := LoadRoomIDs(path)
	if err != nil {
		t.Fatal(err)
	}

	want := []string{"1234567890", "9876543210", "553891980070019xxxx"}
	if len(ids) != len(want) {
		t.Fatalf("got %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestLoadRoomIDsMissingFile(t *testing.T) {
	if _, err := LoadRoomIDs(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.MaxDays != 30 {
		t.Errorf("MaxDays = %d, want 30", cfg.MaxDays)
	}
	if cfg.Currency != "AED" {
		t.Errorf("Currency = %q, want AED", cfg.Currency)
	}
	if cfg.WindowDays != 365 {
		t.Errorf("WindowDays = %d, want 365", cfg.WindowDays)
	}
	if !cfg.IncludeFailedProbes {
		t.Error("IncludeFailedProbes should default to true")
	}
	if cfg.RunStamp.IsZero() {
		t.Error("RunStamp not set at load time")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("MAX_DAYS", "0")
	t.Setenv("CURRENCY", "EUR")
	t.Setenv("PUBLISH", "true")

	cfg := Load()
	if cfg.MaxDays != 0 {
		t.Errorf("MaxDays = %d, want 0 (unbounded)", cfg.MaxDays)
	}
	if cfg.Currency != "EUR" {
		t.Errorf("Currency = %q, want EUR", cfg.Currency)
	}
	if !cfg.Publish {
		t.Error("Publish not picked up from env")
	}
}
