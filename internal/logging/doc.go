// Package logging constructs the slog loggers used across sidesplit.
//
// Two handler formats are supported: a human-oriented console handler for
// interactive use and slog's JSON handler for machine consumption. Loggers
// are built from configuration via NewFromConfig; tests use NewNop.
package logging
