package encoder

import (
	"context"
	"runtime"
	"strings"

	"sidesplit/internal/ffmpeg"
)

// Capability identifies an encoding backend the engine can use.
type Capability int

const (
	// CapabilityVideoToolbox is the macOS platform encoder (Apple Silicon and Intel).
	CapabilityVideoToolbox Capability = iota
	// CapabilityNVENC is the NVIDIA GPU encoder.
	CapabilityNVENC
	// CapabilityQuickSync is the Intel integrated GPU encoder.
	CapabilityQuickSync
	// CapabilityAMF is the AMD GPU encoder.
	CapabilityAMF
	// CapabilitySoftware is the libx264 fallback, always available.
	CapabilitySoftware
)

// Candidates returns every capability in detection preference order.
func Candidates() []Capability {
	return []Capability{
		CapabilityVideoToolbox,
		CapabilityNVENC,
		CapabilityQuickSync,
		CapabilityAMF,
		CapabilitySoftware,
	}
}

// Encoder returns the engine codec identifier for H.264.
func (c Capability) Encoder() string {
	switch c {
	case CapabilityVideoToolbox:
		return "h264_videotoolbox"
	case CapabilityNVENC:
		return "h264_nvenc"
	case CapabilityQuickSync:
		return "h264_qsv"
	case CapabilityAMF:
		return "h264_amf"
	default:
		return "libx264"
	}
}

// Name returns a human-readable backend name.
func (c Capability) Name() string {
	switch c {
	case CapabilityVideoToolbox:
		return "VideoToolbox (Apple)"
	case CapabilityNVENC:
		return "NVENC (NVIDIA)"
	case CapabilityQuickSync:
		return "Quick Sync (Intel)"
	case CapabilityAMF:
		return "AMF (AMD)"
	default:
		return "Software (libx264)"
	}
}

// Hardware reports whether the backend uses a hardware encoder.
func (c Capability) Hardware() bool {
	return c != CapabilitySoftware
}

func (c Capability) String() string {
	return c.Name()
}

// platform returns the GOOS a capability is restricted to, or "" when the
// backend may exist anywhere.
func (c Capability) platform() string {
	if c == CapabilityVideoToolbox {
		return "darwin"
	}
	return ""
}

// Detect probes the engine's encoder listing and returns the best
// available backend. The probe spawns exactly one subprocess; a spawn
// failure or non-zero exit means "no hardware", never an error.
func Detect(ctx context.Context, exec ffmpeg.Executor, binary string) Capability {
	listing, err := exec.Output(ctx, binary, []string{"-hide_banner", "-encoders"})
	if err != nil {
		return CapabilitySoftware
	}
	return pick(runtime.GOOS, string(listing))
}

// Available reports which candidates appear in the engine listing,
// honoring platform restrictions. Used by the encoders command.
func Available(ctx context.Context, exec ffmpeg.Executor, binary string) map[Capability]bool {
	listing, err := exec.Output(ctx, binary, []string{"-hide_banner", "-encoders"})
	availability := make(map[Capability]bool, len(Candidates()))
	for _, candidate := range Candidates() {
		if candidate == CapabilitySoftware {
			availability[candidate] = true
			continue
		}
		if err != nil {
			continue
		}
		if goos := candidate.platform(); goos != "" && goos != runtime.GOOS {
			continue
		}
		availability[candidate] = strings.Contains(string(listing), candidate.Encoder())
	}
	return availability
}

func pick(goos, listing string) Capability {
	for _, candidate := range Candidates() {
		if candidate == CapabilitySoftware {
			break
		}
		if restricted := candidate.platform(); restricted != "" && restricted != goos {
			continue
		}
		if strings.Contains(listing, candidate.Encoder()) {
			return candidate
		}
	}
	return CapabilitySoftware
}
