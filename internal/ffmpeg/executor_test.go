package ffmpeg

import (
	"bufio"
	"strings"
	"testing"
)

func scanAll(t *testing.T, input string) []string {
	t.Helper()
	scanner := bufio.NewScanner(strings.NewReader(input))
	scanner.Split(scanStatusLines)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("scan error: %v", err)
	}
	return lines
}

func TestScanStatusLinesSplitsOnCarriageReturn(t *testing.T) {
	lines := scanAll(t, "frame=1 time=00:00:01.00\rframe=2 time=00:00:02.00\rframe=3 time=00:00:03.00\n")
	want := []string{
		"frame=1 time=00:00:01.00",
		"frame=2 time=00:00:02.00",
		"frame=3 time=00:00:03.00",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines %v, want %d", len(lines), lines, len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestScanStatusLinesMixedTerminators(t *testing.T) {
	lines := scanAll(t, "Duration: 00:10:00.00\nframe=1\rframe=2\r\nframe=3")
	want := []string{"Duration: 00:10:00.00", "frame=1", "frame=2", "", "frame=3"}
	if len(lines) != len(want) {
		t.Fatalf("got %v, want %v", lines, want)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestScanStatusLinesFlushesTrailingData(t *testing.T) {
	lines := scanAll(t, "partial tail without terminator")
	if len(lines) != 1 || lines[0] != "partial tail without terminator" {
		t.Fatalf("got %v, want the unterminated tail", lines)
	}
}
