// Package encoder selects the H.264 encoding backend and plans FFmpeg
// invocation arguments.
//
// Detection probes the engine's encoder listing once and picks the first
// available backend from a fixed preference order; any probe failure
// silently falls back to software encoding. Planning is a pure mapping
// from (quality, capability) to arguments: every backend exposes
// different rate-control knobs, so each carries its own quality table.
package encoder
