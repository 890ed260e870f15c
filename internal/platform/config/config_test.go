package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempCSV(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scan.csv")
	if err := os.WriteFile(path, []byte("timestamp,ssid,bssid,channel,rssi\n"), 0o644); err != nil {
		t.Fatalf("write temp csv: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	csvPath := writeTempCSV(t)
	t.Setenv("SCAN_CSV_PATH", csvPath)
	t.Setenv("PORT", "9090")
	t.Setenv("GIN_MODE", "")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:3000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("port = %q, want 9090", cfg.Port)
	}
	if cfg.GinMode != "release" {
		t.Errorf("gin mode = %q, want default release", cfg.GinMode)
	}
	if cfg.ScanCSVPath != csvPath {
		t.Errorf("csv path = %q, want %q", cfg.ScanCSVPath, csvPath)
	}
}

func TestLoadRequiresScanPath(t *testing.T) {
	t.Setenv("SCAN_CSV_PATH", "")
	if _, err := Load(); err == nil {
		t.Fatal("expected error when SCAN_CSV_PATH is unset")
	}
}

func TestLoadRejectsMissingFile(t *testing.T) {
	t.Setenv("SCAN_CSV_PATH", filepath.Join(t.TempDir(), "nope.csv"))
	if _, err := Load(); err == nil {
		t.Fatal("expected error when SCAN_CSV_PATH does not exist")
	}
}

func TestLoadReportDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yml")
	body := "title: Wireless Intelligence Report\nproject: Team 404\napp_version: 1.2.3\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}

	defaults, err := LoadReportDefaults(path)
	if err != nil {
		t.Fatalf("LoadReportDefaults: %v", err)
	}
	if defaults.Title != "Wireless Intelligence Report" || defaults.Project != "Team 404" {
		t.Errorf("defaults = %+v", defaults)
	}
	if defaults.AppVersion != "1.2.3" {
		t.Errorf("app version = %q, want 1.2.3", defaults.AppVersion)
	}
	if defaults.Subtitle != "" {
		t.Errorf("subtitle = %q, want empty", defaults.Subtitle)
	}
}

func TestLoadReportDefaultsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yml")
	if err := os.WriteFile(path, []byte("title: [unclosed\n"), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	if _, err := LoadReportDefaults(path); err == nil {
		t.Fatal("expected decode error")
	}
}
