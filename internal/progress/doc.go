// Package progress parses FFmpeg's diagnostic stderr into structured
// encoding snapshots.
//
// Parser holds the only persistent state: the total source duration,
// latched from the first "Duration:" line (or seeded from an ffprobe
// result) and never overwritten afterward. Each Parser instance belongs
// to exactly one engine invocation so durations cannot cross-contaminate
// between runs.
package progress
