package splitter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"sidesplit/internal/encoder"
	"sidesplit/internal/ffmpeg"
	"sidesplit/internal/logging"
	"sidesplit/internal/media/ffprobe"
	"sidesplit/internal/progress"
)

// Options configures a batch run.
type Options struct {
	Exec    ffmpeg.Executor
	FFmpeg  string
	FFprobe string

	// OutputDir receives the split halves; empty means next to the input.
	OutputDir string
	// OutputFormat overrides the output extension; empty keeps the input's.
	OutputFormat string

	Quality    encoder.Quality
	Capability encoder.Capability

	// ContinueOnError keeps processing later files after one fails.
	// Without it the batch stops after recording the first failure.
	ContinueOnError bool

	// LockFile, when set, serializes encoding across sidesplit instances
	// so a hardware encoder is never contended. Empty disables locking.
	LockFile string

	Observer Observer
	Logger   *slog.Logger
}

// Batch sequences analyze, split left, split right, collect across a set
// of inputs. A Batch is driven by a single goroutine; cancellation is
// observed between stages only and never preempts a running engine child.
type Batch struct {
	opts     Options
	executor *Executor
	logger   *slog.Logger
}

// NewBatch constructs a batch orchestrator.
func NewBatch(opts Options) *Batch {
	if opts.Exec == nil {
		opts.Exec = ffmpeg.NewExecutor()
	}
	if opts.FFmpeg == "" {
		opts.FFmpeg = "ffmpeg"
	}
	if opts.FFprobe == "" {
		opts.FFprobe = "ffprobe"
	}
	if opts.Quality == "" {
		opts.Quality = encoder.QualityLossless
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logging.WithComponent(logger, "splitter")
	return &Batch{
		opts:     opts,
		executor: NewExecutor(opts.Exec, opts.FFmpeg, logger),
		logger:   logger,
	}
}

// Run processes the inputs in order and returns the aggregated report.
// The returned error covers batch-level setup failures only (lock,
// output directory); per-file outcomes live in the report.
func (b *Batch) Run(ctx context.Context, inputs []string) (Report, error) {
	report := Report{BatchID: uuid.NewString(), Total: len(inputs)}
	logger := b.logger.With(logging.String(logging.FieldBatchID, report.BatchID))
	if len(inputs) == 0 {
		return report, nil
	}

	if b.opts.LockFile != "" {
		if err := os.MkdirAll(filepath.Dir(b.opts.LockFile), 0o755); err != nil {
			return report, fmt.Errorf("prepare lock directory: %w", err)
		}
		lock := flock.New(b.opts.LockFile)
		held, err := lock.TryLock()
		if err != nil {
			return report, fmt.Errorf("acquire encode lock: %w", err)
		}
		if !held {
			return report, ErrLocked
		}
		defer func() {
			if unlockErr := lock.Unlock(); unlockErr != nil {
				logger.Warn("release encode lock failed", logging.Error(unlockErr))
			}
		}()
	}

	if b.opts.OutputDir != "" {
		if err := os.MkdirAll(b.opts.OutputDir, 0o755); err != nil {
			return report, fmt.Errorf("%w: %v", ErrOutputDir, err)
		}
	}

	logger.Info("batch started",
		logging.Int("inputs", len(inputs)),
		logging.String("quality", b.opts.Quality.String()),
		logging.String(logging.FieldEncoder, b.opts.Capability.Encoder()),
	)

	start := time.Now()
	for index, input := range inputs {
		if ctx.Err() != nil {
			report.Cancelled = true
			break
		}
		stop, cancelled := b.processFile(ctx, &report, index, input, logger)
		if cancelled {
			report.Cancelled = true
			break
		}
		if stop {
			break
		}
	}
	report.Elapsed = time.Since(start)

	logger.Info("batch finished",
		logging.Int("succeeded", len(report.Results)),
		logging.Int("failed", len(report.Failures)),
		logging.Bool("cancelled", report.Cancelled),
		logging.Duration("elapsed", report.Elapsed),
	)
	return report, nil
}

// processFile runs the per-file state sequence. stop asks the batch to
// halt after a failure when ContinueOnError is off; cancelled reports a
// cancellation observed at a stage boundary inside this file.
func (b *Batch) processFile(ctx context.Context, report *Report, index int, input string, logger *slog.Logger) (stop, cancelled bool) {
	total := report.Total
	fileLogger := logger.With(logging.String(logging.FieldInput, input))

	b.emit(Event{Kind: EventAnalyzing, Index: index, Total: total, Path: input})
	video, err := Analyze(ctx, b.opts.Exec, b.opts.FFprobe, input)
	if err != nil {
		return b.fail(report, index, input, err, fileLogger), false
	}
	if !video.ValidDimensions() {
		fileLogger.Warn("unexpected input dimensions",
			logging.Int("width", video.Width),
			logging.Int("height", video.Height),
			logging.String("expected", fmt.Sprintf("%dx%d", ExpectedWidth, ExpectedHeight)),
		)
	}

	// Best-effort: a missing duration only degrades progress reporting.
	duration, err := ffprobe.Duration(ctx, b.opts.Exec, b.opts.FFprobe, input)
	if err != nil {
		fileLogger.Debug("duration probe failed", logging.Error(err))
		duration = 0
	}

	leftOutput, rightOutput := b.outputPaths(input)
	fileStart := time.Now()

	for _, side := range Sides() {
		if ctx.Err() != nil {
			return false, true
		}
		output := leftOutput
		if side == SideRight {
			output = rightOutput
		}
		b.emit(Event{Kind: EventProcessing, Index: index, Total: total, Path: input, Side: side})
		req := SplitRequest{
			Input:           input,
			Output:          output,
			Side:            side,
			Quality:         b.opts.Quality,
			Capability:      b.opts.Capability,
			DurationSeconds: duration,
		}
		// The engine child is never preempted; cancellation waits for
		// the next stage boundary.
		err := b.executor.Split(context.WithoutCancel(ctx), req, func(snapshot progress.Snapshot) {
			b.emit(Event{Kind: EventProcessing, Index: index, Total: total, Path: input, Side: side, Snapshot: &snapshot})
		})
		if err != nil {
			// A failed left side abandons the file; the right side is
			// never attempted.
			return b.fail(report, index, input, err, fileLogger), false
		}
	}

	result := Result{
		Input:       input,
		LeftOutput:  leftOutput,
		RightOutput: rightOutput,
		LeftSize:    statSize(leftOutput),
		RightSize:   statSize(rightOutput),
		Elapsed:     time.Since(fileStart),
		Capability:  b.opts.Capability,
	}
	report.Results = append(report.Results, result)
	b.emit(Event{Kind: EventCompleted, Index: index, Total: total, Path: input, Result: &result})
	fileLogger.Info("split complete",
		logging.Int64("left_bytes", result.LeftSize),
		logging.Int64("right_bytes", result.RightSize),
		logging.Duration("elapsed", result.Elapsed),
	)
	return false, false
}

func (b *Batch) fail(report *Report, index int, input string, err error, logger *slog.Logger) bool {
	message := err.Error()
	report.Failures = append(report.Failures, Failure{Index: index, Path: input, Message: message})
	b.emit(Event{Kind: EventFailed, Index: index, Total: report.Total, Path: input, Message: message})
	logger.Warn("file abandoned", logging.Error(err))
	return !b.opts.ContinueOnError
}

func (b *Batch) emit(event Event) {
	if b.opts.Observer != nil {
		b.opts.Observer(event)
	}
}

// outputPaths derives "<stem>-left.<ext>" and "<stem>-right.<ext>" in the
// configured output directory, defaulting to the input's directory.
func (b *Batch) outputPaths(input string) (string, string) {
	dir := b.opts.OutputDir
	if dir == "" {
		dir = filepath.Dir(input)
	}
	base := filepath.Base(input)
	ext := strings.TrimPrefix(filepath.Ext(base), ".")
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if b.opts.OutputFormat != "" {
		ext = b.opts.OutputFormat
	}
	if ext == "" {
		ext = "mp4"
	}
	left := filepath.Join(dir, fmt.Sprintf("%s-left.%s", stem, ext))
	right := filepath.Join(dir, fmt.Sprintf("%s-right.%s", stem, ext))
	return left, right
}

func statSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}
