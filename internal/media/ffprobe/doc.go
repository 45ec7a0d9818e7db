// Package ffprobe provides a typed wrapper around ffprobe output.
//
// Inspect decodes the JSON "describe streams" mode into Result, Stream,
// and Format values; Duration runs the plain-text duration probe. Both go
// through the injected executor so tests never spawn processes.
package ffprobe
