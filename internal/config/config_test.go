package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Missing(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	if err == nil {
		t.Fatal("expected error for missing config")
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Source = "https://example.test/stores.json"
	cfg.Locale = "zh-Hant-TW"

	if err := SaveConfig(dir, cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("loaded %+v, want %+v", loaded, cfg)
	}
}

func TestLoadConfig_KeepsDefaultsForMissingFields(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".storefinder"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(Path(dir), []byte(`{"source":"stores.json"}`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Source != "stores.json" {
		t.Errorf("expected source stores.json, got %q", cfg.Source)
	}
	if cfg.ListenAddr != DefaultListenAddr {
		t.Errorf("expected default listen addr, got %q", cfg.ListenAddr)
	}
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".storefinder"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(Path(dir), []byte(`{`), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(dir); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvSource: "sqlite:",
		EnvAddr:   ":9090",
		EnvLocale: "",
	}
	lookup := func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}

	cfg := Default()
	cfg.ApplyEnv(lookup)

	if cfg.Source != "sqlite:" {
		t.Errorf("Source = %q, want sqlite:", cfg.Source)
	}
	if cfg.ListenAddr != ":9090" {
		t.Errorf("ListenAddr = %q, want :9090", cfg.ListenAddr)
	}
	if cfg.Locale != "und" {
		t.Errorf("empty env value must not override, got %q", cfg.Locale)
	}
}

func TestLoad_WithoutFileUsesDefaults(t *testing.T) {
	t.Setenv(EnvSource, "")
	t.Setenv(EnvLogLevel, "debug")

	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.Version != CurrentVersion {
		t.Errorf("Version = %q, want %q", cfg.Version, CurrentVersion)
	}
}

func TestParseCityOrder(t *testing.T) {
	order, err := ParseCityOrder([]byte("cities:\n  - Paris\n  - Lyon\n"))
	if err != nil {
		t.Fatalf("ParseCityOrder failed: %v", err)
	}
	if order.Len() != 2 || order.Rank("Lyon") != 1 {
		t.Errorf("unexpected order: %v", order.Names())
	}

	if _, err := ParseCityOrder([]byte("cities: []\n")); err == nil {
		t.Error("expected error for empty table")
	}
	if _, err := ParseCityOrder([]byte("cities: [unterminated\n")); err == nil {
		t.Error("expected error for invalid yaml")
	}
}

func TestLoadCityOrder(t *testing.T) {
	order, err := LoadCityOrder("")
	if err != nil {
		t.Fatalf("LoadCityOrder(\"\") failed: %v", err)
	}
	if order.Rank("台北市") != 1 {
		t.Errorf("expected built-in table, got %v", order.Names())
	}

	path := filepath.Join(t.TempDir(), "cities.yaml")
	if err := os.WriteFile(path, []byte("cities: [高雄市, 台北市]\n"), 0644); err != nil {
		t.Fatal(err)
	}
	order, err = LoadCityOrder(path)
	if err != nil {
		t.Fatalf("LoadCityOrder failed: %v", err)
	}
	if order.Rank("高雄市") != 0 {
		t.Errorf("expected 高雄市 first, got %v", order.Names())
	}

	if _, err := LoadCityOrder(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
