package defs

import "log/slog"

// LogLevel represents different log levels which can be configured.
type LogLevel string

// Supported log levels (based on slog).
const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
	// LogLevelOff disables the library logging.
	LogLevelOff LogLevel = "off"
)

// ParseLogLevelStr parses a string into a LogLevel (case-insensitive).
func ParseLogLevelStr(level string) (LogLevel, error) {
	return parseEnumCaseInsensitive(level, LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError, LogLevelOff)
}

// Decode implements envconfig.Decoder.
func (l *LogLevel) Decode(value string) error {
	parsed, err := ParseLogLevelStr(value)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// SlogLevel converts the LogLevel to slog.Level, LogLevelOff is reported as not enabled.
func (l LogLevel) SlogLevel() (level slog.Level, enabled bool) {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug, true
	case LogLevelInfo:
		return slog.LevelInfo, true
	case LogLevelWarn:
		return slog.LevelWarn, true
	case LogLevelError:
		return slog.LevelError, true
	default:
		return slog.LevelError, false
	}
}

// LogHandler represents different log handler types which can be configured.
type LogHandler string

// Supported handler types (based on slog).
const (
	JSONHandler LogHandler = "json"
	TextHandler LogHandler = "text"
)

// ParseHandlerTypeStr parses a string into a LogHandler (case-insensitive).
func ParseHandlerTypeStr(handlerType string) (LogHandler, error) {
	return parseEnumCaseInsensitive(handlerType, JSONHandler, TextHandler)
}

// Decode implements envconfig.Decoder.
func (h *LogHandler) Decode(value string) error {
	parsed, err := ParseHandlerTypeStr(value)
	if err != nil {
		return err
	}
	*h = parsed
	return nil
}
