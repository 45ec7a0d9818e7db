package splitter

import "errors"

var (
	// ErrEngineNotFound reports a missing FFmpeg binary.
	ErrEngineNotFound = errors.New("ffmpeg not found")
	// ErrProbeFailed reports a failed or unparseable input inspection.
	ErrProbeFailed = errors.New("video analysis failed")
	// ErrNoVideoStream reports an input without a usable video stream.
	ErrNoVideoStream = errors.New("no video stream found")
	// ErrInvalidSide reports an unknown side name.
	ErrInvalidSide = errors.New("invalid side")
	// ErrSplitFailed reports a failed engine invocation.
	ErrSplitFailed = errors.New("split failed")
	// ErrOutputDir reports a failure to create the output directory.
	ErrOutputDir = errors.New("create output directory")
	// ErrLocked reports that another instance holds the encode lock.
	ErrLocked = errors.New("another sidesplit instance is encoding")
	// ErrCancelled reports a batch stopped at a stage boundary before
	// every input finished.
	ErrCancelled = errors.New("batch cancelled")
)
