package splitter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	osexec "os/exec"
	"strings"

	"sidesplit/internal/encoder"
	"sidesplit/internal/ffmpeg"
	"sidesplit/internal/logging"
	"sidesplit/internal/progress"
)

// SplitRequest describes one engine invocation for one half of one file.
type SplitRequest struct {
	Input      string
	Output     string
	Side       Side
	Quality    encoder.Quality
	Capability encoder.Capability
	// DurationSeconds seeds the progress parser when the caller already
	// probed the duration; 0 means "learn it from the stream".
	DurationSeconds float64
}

// Executor runs the engine for one side of one input file.
type Executor struct {
	exec   ffmpeg.Executor
	binary string
	logger *slog.Logger
}

// NewExecutor constructs a split executor around the given engine binary.
func NewExecutor(exec ffmpeg.Executor, binary string, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Executor{exec: exec, binary: binary, logger: logger}
}

// tailLines bounds the diagnostic text attached to failure messages.
const tailLines = 30

// Split invokes the engine once, feeding its diagnostic stream through a
// private progress parser. onProgress fires exactly once per parsed
// snapshot, in arrival order. The engine writes the video directly to the
// output path; only diagnostics flow through this process.
//
// The stderr reader runs on its own goroutine so snapshot delivery never
// blocks the engine; snapshots cross to the caller through a FIFO
// channel. All process handles are released before Split returns, on
// every path.
func (e *Executor) Split(ctx context.Context, req SplitRequest, onProgress func(progress.Snapshot)) error {
	args := make([]string, 0, 16)
	args = append(args, "-i", req.Input, "-vf", req.Side.CropFilter())
	args = append(args, encoder.Plan(req.Quality, req.Capability)...)
	args = append(args, "-y", req.Output)

	var parser *progress.Parser
	if req.DurationSeconds > 0 {
		parser = progress.NewParserWithDuration(req.DurationSeconds)
	} else {
		parser = progress.NewParser()
	}

	e.logger.Debug("starting split",
		logging.String(logging.FieldInput, req.Input),
		logging.String(logging.FieldSide, req.Side.String()),
		logging.String(logging.FieldEncoder, req.Capability.Encoder()),
		logging.String("output", req.Output),
	)

	var tail []string
	updates := make(chan progress.Snapshot, 64)
	done := make(chan error, 1)
	go func() {
		defer close(updates)
		done <- e.exec.Stream(ctx, e.binary, args, func(line string) {
			if len(tail) == tailLines {
				tail = tail[1:]
			}
			tail = append(tail, line)
			if snapshot, ok := parser.Parse(line); ok {
				updates <- snapshot
			}
		})
	}()

	for snapshot := range updates {
		if onProgress != nil {
			onProgress(snapshot)
		}
	}

	if err := <-done; err != nil {
		if errors.Is(err, osexec.ErrNotFound) {
			return fmt.Errorf("%w: %v", ErrEngineNotFound, err)
		}
		diagnostic := strings.TrimSpace(strings.Join(tail, "\n"))
		if diagnostic == "" {
			diagnostic = err.Error()
		}
		return fmt.Errorf("%w: %s side of %s: %s", ErrSplitFailed, req.Side, req.Input, diagnostic)
	}
	return nil
}
