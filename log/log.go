// Package log wraps charmbracelet/log with the process-wide logger used
// by cmd/mjcli and cmd/mjserve. The mahjong engine itself never imports
// this package — it is pure and logs nothing.
package log

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

var logger = log.New(os.Stderr)

// Init configures the shared logger: prefix, timestamped output, and
// level. level accepts the usual charmbracelet/log names ("debug",
// "info", "warn", "error"); unrecognised values fall back to info.
func Init(appName, level string) {
	logger.SetPrefix(appName)
	logger.SetReportTimestamp(true)
	logger.SetTimeFormat(time.DateTime)
	logger.SetLevel(levelFor(level))
}

func levelFor(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func Fatal(format string, args ...any) { logger.Fatalf(format, args...) }
func Error(format string, args ...any) { logger.Errorf(format, args...) }
func Warn(format string, args ...any)  { logger.Warnf(format, args...) }
func Info(format string, args ...any)  { logger.Infof(format, args...) }
func Debug(format string, args ...any) { logger.Debugf(format, args...) }
