package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/schollz/progressbar/v3"

	"sidesplit/internal/logging"
	"sidesplit/internal/splitter"
)

// splitObserver renders batch events. Interactive runs get a progress bar
// per side; non-interactive runs get structured log lines instead.
type splitObserver struct {
	out         io.Writer
	logger      *slog.Logger
	interactive bool

	bar *progressbar.ProgressBar
}

func newSplitObserver(out io.Writer, logger *slog.Logger, interactive bool) *splitObserver {
	return &splitObserver{
		out:         out,
		logger:      logging.WithComponent(logger, "cli"),
		interactive: interactive,
	}
}

func (o *splitObserver) observe(event splitter.Event) {
	name := filepath.Base(event.Path)
	position := fmt.Sprintf("[%d/%d]", event.Index+1, event.Total)

	switch event.Kind {
	case splitter.EventAnalyzing:
		o.closeBar()
		if o.interactive {
			fmt.Fprintf(o.out, "%s Analyzing %s\n", position, name)
		} else {
			o.logger.Info("analyzing", logging.String(logging.FieldInput, event.Path))
		}
	case splitter.EventProcessing:
		if event.Snapshot == nil {
			o.startSide(position, name, event)
			return
		}
		if o.bar != nil {
			_ = o.bar.Set(int(event.Snapshot.Percent))
			o.bar.Describe(fmt.Sprintf("%s %s %s side (eta %s)", position, name, event.Side, event.Snapshot.ETAString()))
		}
	case splitter.EventCompleted:
		o.closeBar()
		if o.interactive {
			fmt.Fprintf(o.out, "%s Done: %s\n", position, name)
		} else {
			o.logger.Info("completed", logging.String(logging.FieldInput, event.Path))
		}
	case splitter.EventFailed:
		o.closeBar()
		if o.interactive {
			fmt.Fprintf(o.out, "%s Failed: %s: %s\n", position, name, event.Message)
		} else {
			o.logger.Warn("failed",
				logging.String(logging.FieldInput, event.Path),
				logging.String("reason", event.Message),
			)
		}
	}
}

func (o *splitObserver) startSide(position, name string, event splitter.Event) {
	if !o.interactive {
		o.logger.Info("splitting",
			logging.String(logging.FieldInput, event.Path),
			logging.String(logging.FieldSide, string(event.Side)),
		)
		return
	}
	o.closeBar()
	o.bar = progressbar.NewOptions(100,
		progressbar.OptionSetWriter(o.out),
		progressbar.OptionSetDescription(fmt.Sprintf("%s %s %s side", position, name, event.Side)),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionClearOnFinish(),
	)
}

func (o *splitObserver) closeBar() {
	if o.bar == nil {
		return
	}
	_ = o.bar.Finish()
	o.bar = nil
	fmt.Fprintln(o.out)
}

// done releases any live bar once the batch returns.
func (o *splitObserver) done() {
	o.closeBar()
}
