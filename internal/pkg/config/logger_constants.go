package config

// Accepted values of logger.log_level
const (
	LogLevelDebug    = "debug"
	LogLevelInfo     = "info"
	LogLevelWarning  = "warning"
	LogLevelError    = "error"
	LogLevelCritical = "critical"
)

// Accepted values of logger.log_type. Console writes text to stdout, json writes
// JSON to stdout for log collectors, file writes JSON to a rotated file.
const (
	LogTypeConsole = "console"
	LogTypeJSON    = "json"
	LogTypeFile    = "file"
)
