package ffmpeg

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
)

// Executor runs engine binaries. Implementations must forward stderr lines
// in arrival order and must not retain callbacks after returning.
type Executor interface {
	// Output runs the binary to completion and returns combined stdout
	// and stderr.
	Output(ctx context.Context, binary string, args []string) ([]byte, error)

	// Stream runs the binary with stdout discarded, forwarding each
	// non-empty logical stderr line to onLine. It returns once the
	// process has exited and its pipes are drained.
	Stream(ctx context.Context, binary string, args []string, onLine func(string)) error
}

// NewExecutor returns the production Executor backed by os/exec.
func NewExecutor() Executor {
	return commandExecutor{}
}

type commandExecutor struct{}

func (commandExecutor) Output(ctx context.Context, binary string, args []string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, binary, args...)
	return cmd.CombinedOutput()
}

func (commandExecutor) Stream(ctx context.Context, binary string, args []string, onLine func(string)) error {
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Stdout = io.Discard
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("stderr pipe: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", binary, err)
	}

	scanner := bufio.NewScanner(stderr)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(scanStatusLines)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if onLine != nil {
			onLine(line)
		}
	}
	if scanErr := scanner.Err(); scanErr != nil {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
		return fmt.Errorf("scan output: %w", scanErr)
	}

	return cmd.Wait()
}

// scanStatusLines terminates tokens on carriage returns as well as
// newlines so in-place status updates surface as separate lines.
func scanStatusLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
