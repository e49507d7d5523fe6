// Package logging provides structured logging for the bathpack CLI.
//
// It is built on log/slog with two output formats: a TTY-optimized text
// handler with colorized levels (the default), and JSON for log files or
// piping.
//
// Verbosity maps from repeated -v flags via [LevelFromVerbosity]: the
// default level is Warn so a successful run is quiet apart from the
// command's own output, -v raises to Info (one line per packed source),
// -vv to Debug, and -vvv to Trace (one line per copied file).
//
// Loggers flow through command code via context ([NewContext] /
// [FromContext]); tests use [ForTest] so log output lands in t.Log.
package logging
