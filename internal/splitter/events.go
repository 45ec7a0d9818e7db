package splitter

import (
	"time"

	"sidesplit/internal/encoder"
	"sidesplit/internal/progress"
)

// EventKind tags batch observer events.
type EventKind string

const (
	// EventAnalyzing fires when a file's probe begins.
	EventAnalyzing EventKind = "analyzing"
	// EventProcessing fires when a side starts and on every progress
	// snapshot while it runs.
	EventProcessing EventKind = "processing"
	// EventCompleted fires once both sides of a file succeeded.
	EventCompleted EventKind = "completed"
	// EventFailed fires when a file is abandoned.
	EventFailed EventKind = "failed"
)

// Event is one observer notification. Index and Total locate the file in
// the batch; the remaining fields are populated per kind.
type Event struct {
	Kind  EventKind
	Index int
	Total int
	Path  string

	// Side is set for processing events.
	Side Side
	// Snapshot is set for processing events carrying a progress update;
	// it is nil for the stage-start notification.
	Snapshot *progress.Snapshot
	// Result is set for completed events.
	Result *Result
	// Message is set for failed events.
	Message string
}

// Observer receives batch events in guaranteed order: per successful file
// Analyzing, Processing(left) with zero or more snapshots,
// Processing(right) with zero or more snapshots, Completed.
type Observer func(Event)

// Result records one successfully split file.
type Result struct {
	Input       string
	LeftOutput  string
	RightOutput string
	LeftSize    int64
	RightSize   int64
	Elapsed     time.Duration
	Capability  encoder.Capability
}

// Failure records one abandoned file.
type Failure struct {
	Index   int
	Path    string
	Message string
}

// Report aggregates a finished (or cancelled) batch.
type Report struct {
	BatchID   string
	Total     int
	Results   []Result
	Failures  []Failure
	Cancelled bool
	Elapsed   time.Duration
}

// Succeeded reports whether every input in the batch completed.
func (r Report) Succeeded() bool {
	return !r.Cancelled && len(r.Failures) == 0 && len(r.Results) == r.Total
}
