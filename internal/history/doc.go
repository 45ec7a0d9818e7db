// Package history records completed split batches in SQLite.
//
// The store holds finished results only; it is a log for the history
// command, not resumable job state. Recording is best-effort and opt-in.
package history
