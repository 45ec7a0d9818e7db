package deps

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// Requirement defines an external dependency sidesplit relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Available   bool
	Detail      string
}

// Defaults returns the requirements for the configured engine binaries.
func Defaults(ffmpegBinary, ffprobeBinary string) []Requirement {
	return []Requirement{
		{Name: "FFmpeg", Command: ffmpegBinary, Description: "Encodes the split halves"},
		{Name: "FFprobe", Command: ffprobeBinary, Description: "Inspects input recordings"},
	}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		// Absolute and relative paths bypass PATH lookup.
		if strings.ContainsRune(cmd, filepath.Separator) {
			if _, err := exec.LookPath(cmd); err != nil {
				status.Detail = fmt.Sprintf("binary %q not executable", cmd)
				results = append(results, status)
				continue
			}
			status.Available = true
			results = append(results, status)
			continue
		}
		if resolved, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
		} else {
			status.Command = resolved
			status.Available = true
		}
		results = append(results, status)
	}
	return results
}

// Missing returns the names of unavailable requirements.
func Missing(statuses []Status) []string {
	var names []string
	for _, status := range statuses {
		if !status.Available {
			names = append(names, status.Name)
		}
	}
	return names
}
