package deps

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestCheckBinariesMissing(t *testing.T) {
	statuses := CheckBinaries([]Requirement{
		{Name: "FFmpeg", Command: "definitely-not-a-real-binary-name"},
	})
	if len(statuses) != 1 {
		t.Fatalf("got %d statuses, want 1", len(statuses))
	}
	if statuses[0].Available {
		t.Error("nonexistent binary reported available")
	}
	missing := Missing(statuses)
	if len(missing) != 1 || missing[0] != "FFmpeg" {
		t.Errorf("Missing() = %v, want [FFmpeg]", missing)
	}
}

func TestCheckBinariesEmptyCommand(t *testing.T) {
	statuses := CheckBinaries([]Requirement{{Name: "FFprobe", Command: "  "}})
	if statuses[0].Available {
		t.Error("empty command reported available")
	}
	if statuses[0].Detail == "" {
		t.Error("empty command should carry a detail message")
	}
}

func TestCheckBinariesExplicitPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("executable bit semantics differ on windows")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "ffmpeg")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}

	statuses := CheckBinaries(Defaults(path, filepath.Join(dir, "ffprobe")))
	if !statuses[0].Available {
		t.Errorf("executable at %s reported unavailable: %s", path, statuses[0].Detail)
	}
	if statuses[1].Available {
		t.Error("missing ffprobe path reported available")
	}
	if missing := Missing(statuses); len(missing) != 1 || missing[0] != "FFprobe" {
		t.Errorf("Missing() = %v, want [FFprobe]", missing)
	}
}
