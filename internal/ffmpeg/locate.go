package ffmpeg

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Locate resolves the path for the named engine binary.
//
// A copy shipped next to the sidesplit executable (or in its bin/
// subdirectory) wins over PATH so bundled distributions keep working
// without environment changes. When no bundled copy exists the bare name
// is returned and PATH resolution happens at spawn time.
func Locate(name string) string {
	if runtime.GOOS == "windows" && !strings.HasSuffix(name, ".exe") {
		name += ".exe"
	}
	exePath, err := os.Executable()
	if err != nil {
		return name
	}
	exeDir := filepath.Dir(exePath)
	for _, candidate := range []string{
		filepath.Join(exeDir, name),
		filepath.Join(exeDir, "bin", name),
	} {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return name
}

// Version reports the first line of the binary's -version output.
func Version(ctx context.Context, exec Executor, binary string) (string, bool) {
	output, err := exec.Output(ctx, binary, []string{"-version"})
	if err != nil {
		return "", false
	}
	line, _, _ := strings.Cut(string(output), "\n")
	line = strings.TrimSpace(line)
	if line == "" {
		return "", false
	}
	return line, true
}
