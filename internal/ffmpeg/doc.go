// Package ffmpeg abstracts the external FFmpeg/FFprobe subprocess boundary.
//
// Two operations cover every interaction with the engine: Output collects
// the full combined output of a short probe invocation, and Stream runs a
// long-lived invocation while forwarding its diagnostic stderr line by
// line. FFmpeg rewrites its status line in place using carriage returns,
// so Stream splits on CR as well as LF to recover logical lines.
//
// The Executor interface exists so higher layers (capability detection,
// probing, splitting) never touch process spawning directly and tests can
// substitute canned output.
package ffmpeg
