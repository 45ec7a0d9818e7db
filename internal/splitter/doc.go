// Package splitter turns one side-by-side recording into two independent
// videos and orchestrates that work across a batch.
//
// Executor runs a single engine invocation per half, streaming diagnostic
// output through a private progress parser. Batch drives the per-file
// sequence analyze, split left, split right, collect, isolating each
// file's failures and honoring cooperative cancellation between stages.
// Exactly one engine child process runs at a time: sides and files are
// strictly sequential so hardware encoders are never contended.
package splitter
