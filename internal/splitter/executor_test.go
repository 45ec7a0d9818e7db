package splitter

import (
	"context"
	"errors"
	"fmt"
	osexec "os/exec"
	"strings"
	"sync"
	"testing"

	"sidesplit/internal/encoder"
	"sidesplit/internal/progress"
)

// fakeEngine implements ffmpeg.Executor for tests. Output answers probe
// invocations from canned metadata; Stream replays scripted diagnostic
// lines and records every invocation.
type fakeEngine struct {
	mu      sync.Mutex
	streams [][]string

	width  int
	height int

	lines    []string
	failLeft map[string]bool
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		width:  3840,
		height: 1080,
		lines: []string{
			"  Duration: 00:10:00.00, start: 0.000000, bitrate: 52856 kb/s",
			"frame=  100 fps= 50.0 q=28.0 time=00:02:30.00 speed=1.5x",
			"frame=  200 fps= 50.0 q=28.0 time=00:05:00.00 speed=1.5x",
			"frame=  400 fps= 50.0 q=28.0 time=00:10:00.00 speed=1.5x",
		},
		failLeft: make(map[string]bool),
	}
}

func (f *fakeEngine) Output(ctx context.Context, binary string, args []string) ([]byte, error) {
	joined := strings.Join(args, " ")
	if strings.Contains(joined, "format=duration") {
		return []byte("600.000000\n"), nil
	}
	if strings.Contains(joined, "-show_streams") {
		payload := fmt.Sprintf(`{
  "streams": [
    {"index": 0, "codec_name": "h264", "codec_type": "video", "width": %d, "height": %d},
    {"index": 1, "codec_name": "aac", "codec_type": "audio"}
  ],
  "format": {"filename": %q, "duration": "600.000000", "size": "1048576", "format_name": "mov,mp4,m4a,3gp,3g2,mj2"}
}`, f.width, f.height, args[len(args)-1])
		return []byte(payload), nil
	}
	return nil, fmt.Errorf("unexpected probe: %v", args)
}

func (f *fakeEngine) Stream(ctx context.Context, binary string, args []string, onLine func(string)) error {
	f.mu.Lock()
	f.streams = append(f.streams, append([]string(nil), args...))
	f.mu.Unlock()

	input := args[1]
	filter := args[3]
	if f.failLeft[input] && filter == SideLeft.CropFilter() {
		onLine("[libx264 @ 0x0] broken input packet")
		onLine("Conversion failed!")
		return errors.New("exit status 1")
	}
	for _, line := range f.lines {
		onLine(line)
	}
	return nil
}

func (f *fakeEngine) streamCalls() [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]string(nil), f.streams...)
}

func (f *fakeEngine) streamCallsFor(input string) int {
	count := 0
	for _, call := range f.streamCalls() {
		if call[1] == input {
			count++
		}
	}
	return count
}

func TestSplitArgumentShape(t *testing.T) {
	engine := newFakeEngine()
	executor := NewExecutor(engine, "ffmpeg", nil)

	req := SplitRequest{
		Input:      "/videos/session.mp4",
		Output:     "/videos/session-right.mp4",
		Side:       SideRight,
		Quality:    encoder.QualityMedium,
		Capability: encoder.CapabilitySoftware,
	}
	if err := executor.Split(context.Background(), req, nil); err != nil {
		t.Fatalf("Split() error: %v", err)
	}

	calls := engine.streamCalls()
	if len(calls) != 1 {
		t.Fatalf("Stream invoked %d times, want 1", len(calls))
	}
	args := calls[0]

	if args[0] != "-i" || args[1] != req.Input {
		t.Errorf("args start %v, want -i %s", args[:2], req.Input)
	}
	if args[2] != "-vf" || args[3] != "crop=1920:1080:1920:0" {
		t.Errorf("filter args = %v, want -vf crop=1920:1080:1920:0", args[2:4])
	}
	if args[len(args)-2] != "-y" || args[len(args)-1] != req.Output {
		t.Errorf("args end %v, want -y %s", args[len(args)-2:], req.Output)
	}

	joined := strings.Join(args, " ")
	if !strings.Contains(joined, "-c:v libx264 -crf 23 -preset medium") {
		t.Errorf("plan arguments missing from %q", joined)
	}
	if !strings.Contains(joined, "-c:a copy") {
		t.Errorf("audio copy missing from %q", joined)
	}
}

func TestSplitDeliversSnapshotsInOrder(t *testing.T) {
	engine := newFakeEngine()
	executor := NewExecutor(engine, "ffmpeg", nil)

	var seconds []float64
	req := SplitRequest{
		Input:      "/videos/session.mp4",
		Output:     "/videos/session-left.mp4",
		Side:       SideLeft,
		Quality:    encoder.QualityLossless,
		Capability: encoder.CapabilitySoftware,
	}
	err := executor.Split(context.Background(), req, func(snapshot progress.Snapshot) {
		seconds = append(seconds, snapshot.Seconds)
	})
	if err != nil {
		t.Fatalf("Split() error: %v", err)
	}

	want := []float64{150, 300, 600}
	if len(seconds) != len(want) {
		t.Fatalf("got %d snapshots, want %d", len(seconds), len(want))
	}
	for i := range want {
		if seconds[i] != want[i] {
			t.Errorf("snapshot[%d].Seconds = %v, want %v", i, seconds[i], want[i])
		}
	}
}

func TestSplitSeededDurationDrivesPercent(t *testing.T) {
	engine := newFakeEngine()
	engine.lines = []string{"frame= 100 fps=50.0 time=00:02:30.00 speed=1.5x"}
	executor := NewExecutor(engine, "ffmpeg", nil)

	var percents []float64
	req := SplitRequest{
		Input:           "/videos/session.mp4",
		Output:          "/videos/session-left.mp4",
		Side:            SideLeft,
		Quality:         encoder.QualityLossless,
		Capability:      encoder.CapabilitySoftware,
		DurationSeconds: 300,
	}
	err := executor.Split(context.Background(), req, func(snapshot progress.Snapshot) {
		percents = append(percents, snapshot.Percent)
	})
	if err != nil {
		t.Fatalf("Split() error: %v", err)
	}
	if len(percents) != 1 || percents[0] != 50 {
		t.Errorf("percents = %v, want [50]", percents)
	}
}

func TestSplitFailureCarriesDiagnosticTail(t *testing.T) {
	engine := newFakeEngine()
	engine.failLeft["/videos/broken.mp4"] = true
	executor := NewExecutor(engine, "ffmpeg", nil)

	req := SplitRequest{
		Input:      "/videos/broken.mp4",
		Output:     "/videos/broken-left.mp4",
		Side:       SideLeft,
		Quality:    encoder.QualityLossless,
		Capability: encoder.CapabilitySoftware,
	}
	err := executor.Split(context.Background(), req, nil)
	if !errors.Is(err, ErrSplitFailed) {
		t.Fatalf("Split() error = %v, want ErrSplitFailed", err)
	}
	if !strings.Contains(err.Error(), "Conversion failed!") {
		t.Errorf("error %q missing diagnostic tail", err)
	}
	if !strings.Contains(err.Error(), "left side of /videos/broken.mp4") {
		t.Errorf("error %q missing side and input", err)
	}
}

type missingEngine struct{}

func (missingEngine) Output(ctx context.Context, binary string, args []string) ([]byte, error) {
	return nil, &osexec.Error{Name: binary, Err: osexec.ErrNotFound}
}

func (missingEngine) Stream(ctx context.Context, binary string, args []string, onLine func(string)) error {
	return fmt.Errorf("start %s: %w", binary, &osexec.Error{Name: binary, Err: osexec.ErrNotFound})
}

func TestSplitMissingEngine(t *testing.T) {
	executor := NewExecutor(missingEngine{}, "ffmpeg", nil)
	req := SplitRequest{
		Input:      "/videos/session.mp4",
		Output:     "/videos/session-left.mp4",
		Side:       SideLeft,
		Quality:    encoder.QualityLossless,
		Capability: encoder.CapabilitySoftware,
	}
	if err := executor.Split(context.Background(), req, nil); !errors.Is(err, ErrEngineNotFound) {
		t.Fatalf("Split() error = %v, want ErrEngineNotFound", err)
	}
}
