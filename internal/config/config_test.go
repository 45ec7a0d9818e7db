package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultsAreValid(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize defaults: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate defaults: %v", err)
	}
	if cfg.Encoding.Quality != "lossless" {
		t.Errorf("default quality = %q, want lossless", cfg.Encoding.Quality)
	}
	if !cfg.Encoding.HardwareAccel {
		t.Error("hardware acceleration should default on")
	}
	if !cfg.History.Enabled {
		t.Error("history should default on")
	}
	if cfg.Tools.FFmpeg != "ffmpeg" || cfg.Tools.FFprobe != "ffprobe" {
		t.Errorf("default tools = %q/%q", cfg.Tools.FFmpeg, cfg.Tools.FFprobe)
	}
}

func TestLoadExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[encoding]
quality = "High"
output_format = ".MKV"
hardware_accel = false

[logging]
level = "debug"
format = "json"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, found, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !found {
		t.Fatal("Load() did not find the explicit config")
	}
	if resolved != path {
		t.Errorf("resolved path = %q, want %q", resolved, path)
	}
	if cfg.Encoding.Quality != "high" {
		t.Errorf("quality = %q, want high (lowercased)", cfg.Encoding.Quality)
	}
	if cfg.Encoding.OutputFormat != "mkv" {
		t.Errorf("output_format = %q, want mkv (dot stripped, lowercased)", cfg.Encoding.OutputFormat)
	}
	if cfg.Encoding.HardwareAccel {
		t.Error("hardware_accel should be off")
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
}

func TestLoadMissingExplicitPathUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.toml")
	cfg, _, found, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if found {
		t.Fatal("Load() claims to have found a missing file")
	}
	if cfg.Encoding.Quality != "lossless" {
		t.Errorf("quality = %q, want default lossless", cfg.Encoding.Quality)
	}
}

func TestLoadRejectsUnknownQuality(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[encoding]\nquality = \"ultra\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := Load(path); err == nil || !strings.Contains(err.Error(), "encoding.quality") {
		t.Fatalf("Load() error = %v, want unknown preset rejection", err)
	}
}

func TestLoadRejectsUnknownLogLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[logging]\nlevel = \"verbose\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := Load(path); err == nil || !strings.Contains(err.Error(), "logging.level") {
		t.Fatalf("Load() error = %v, want log level rejection", err)
	}
}

func TestExpandPathHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := ExpandPath("~/videos")
	if err != nil {
		t.Fatalf("ExpandPath() error: %v", err)
	}
	if want := filepath.Join(home, "videos"); got != want {
		t.Errorf("ExpandPath(~/videos) = %q, want %q", got, want)
	}
}

func TestCreateSampleParses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample() error: %v", err)
	}
	if _, _, found, err := Load(path); err != nil || !found {
		t.Fatalf("sample config does not load: found=%v err=%v", found, err)
	}
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Paths.LogDir = filepath.Join(dir, "logs")
	cfg.Paths.HistoryDB = filepath.Join(dir, "state", "history.db")
	cfg.Paths.LockFile = filepath.Join(dir, "state", "encode.lock")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories() error: %v", err)
	}
	for _, want := range []string{cfg.Paths.LogDir, filepath.Dir(cfg.Paths.HistoryDB)} {
		if info, err := os.Stat(want); err != nil || !info.IsDir() {
			t.Errorf("directory %q missing", want)
		}
	}
}
