package logger

import "go.uber.org/zap/zapcore"

// Verbosity level constants for CLI flag counts.
const (
	VerbosityUser  = 0 // No flags: results and errors only
	VerbosityInfo  = 1 // -v: + grid properties, vocabulary stats
	VerbosityDebug = 2 // -vv: + per-call pixel/permuted indices
	VerbosityTrace = 3 // -vvv: + cipher cycle-walk iterations
)

// VerbosityToLevel maps verbosity flags (-v, -vv, etc.) to zap log levels
//
// Mapping:
//
//	0 (none)  -> WarnLevel  (errors and warnings only)
//	1 (-v)    -> InfoLevel  (+ informational messages)
//	2+ (-vv)  -> DebugLevel (+ debug messages)
func VerbosityToLevel(verbosity int) zapcore.Level {
	switch verbosity {
	case VerbosityUser:
		return zapcore.WarnLevel
	case VerbosityInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// LevelName returns a human-readable name for a verbosity count
func LevelName(verbosity int) string {
	switch {
	case verbosity <= VerbosityUser:
		return "user"
	case verbosity == VerbosityInfo:
		return "info"
	case verbosity == VerbosityDebug:
		return "debug"
	default:
		return "trace"
	}
}
