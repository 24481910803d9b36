package core

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// LogLevel mirrors the two verbosity levels scripts can ask for.
type LogLevel string

const (
	// Only informational diagnostics are printed.
	InfoLevel LogLevel = "info"
	// Lifecycle traces (construct skipped, destroy, registration) are printed too.
	VerboseLevel LogLevel = "verbose"
)

var once sync.Once

type logger struct {
	*log.Logger
}

var singleton *logger

func getLogger() *logger {
	once.Do(
		func() {
			l := log.NewWithOptions(os.Stderr, log.Options{
				ReportCaller:    true,
				ReportTimestamp: true,
				TimeFormat:      time.RFC3339,
				Prefix:          "Motion 🎬 ",
			})
			l.SetLevel(log.DebugLevel)
			singleton = &logger{l}
		})
	return singleton
}

// SetLogLevel applies the debug switch and verbosity from the configuration.
// With debug disabled only errors are reported.
func SetLogLevel(debug bool, level LogLevel) {
	getLogger().SetLevel(toCharmLevel(debug, level))
}

func toCharmLevel(debug bool, level LogLevel) log.Level {
	if !debug {
		return log.ErrorLevel
	}
	switch LogLevel(strings.ToLower(string(level))) {
	case VerboseLevel:
		return log.DebugLevel
	default:
		return log.InfoLevel
	}
}

func LogDebug(msg string, args ...interface{}) {
	getLogger().Debugf(msg, args...)
}

func LogInfo(msg string, args ...interface{}) {
	getLogger().Infof(msg, args...)
}

func LogWarn(msg string, args ...interface{}) {
	getLogger().Warnf(msg, args...)
}

func LogError(msg string, args ...interface{}) {
	getLogger().Errorf(msg, args...)
}

func LogFatal(msg string, args ...interface{}) {
	getLogger().Fatalf(msg, args...)
}
