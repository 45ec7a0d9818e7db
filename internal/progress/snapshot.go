package progress

import (
	"fmt"
	"time"
)

// Snapshot is one structured progress update from the engine.
type Snapshot struct {
	// Seconds is the current position in the source video.
	Seconds float64
	// TotalSeconds is the source duration, 0 when never learned.
	TotalSeconds float64
	// Frame is the current output frame count.
	Frame int64
	// FPS is the instantaneous encoding throughput in frames per second.
	FPS float64
	// Speed is the multiplier relative to real time.
	Speed float64
	// Percent is completion in [0,100], 0 when the total is unknown.
	Percent float64
}

// ETA estimates the remaining wall-clock time. The second return is false
// when no estimate is possible (unknown duration or zero speed).
func (s Snapshot) ETA() (time.Duration, bool) {
	if s.Speed <= 0 || s.TotalSeconds <= 0 {
		return 0, false
	}
	remaining := s.TotalSeconds - s.Seconds
	if remaining <= 0 {
		return 0, true
	}
	return time.Duration(remaining / s.Speed * float64(time.Second)), true
}

// ETAString formats the estimate for display, or "calculating..." when
// no estimate exists yet.
func (s Snapshot) ETAString() string {
	eta, ok := s.ETA()
	if !ok {
		return "calculating..."
	}
	secs := int64(eta.Seconds())
	switch {
	case secs < 60:
		return fmt.Sprintf("~%ds", secs)
	case secs < 3600:
		return fmt.Sprintf("~%d:%02d", secs/60, secs%60)
	default:
		return fmt.Sprintf("~%dh %02dm", secs/3600, (secs%3600)/60)
	}
}
