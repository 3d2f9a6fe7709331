package config

import (
	"os"
	"strconv"
)

const DefaultDimension = 4

// LogFile returns the path diagnostics are appended to. The TUI owns the
// terminal, so an empty value means logging is discarded entirely.
func LogFile() string {
	return os.Getenv("FIFTEEN_LOG_FILE")
}

// Dimension returns the grid dimension to start with. Values outside the
// playable range fall back to the default.
func Dimension() int {
	v, ok := os.LookupEnv("FIFTEEN_DIMENSION")
	if !ok {
		return DefaultDimension
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 2 || n > 9 {
		return DefaultDimension
	}
	return n
}
