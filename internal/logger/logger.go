// Package logger provides leveled console logging for the API process.
package logger

import (
	"os"
	"strings"

	"github.com/op/go-logging"
)

const timeFormat = "2006/01/02 15:04:05"

var log *logging.Logger

func init() {
	// Usable default so packages can log before Init runs (tests, helpers).
	Init("info")
}

// Init configures the console backend at the given level. Unknown levels
// fall back to INFO.
func Init(level string) {
	logLevel, err := logging.LogLevel(strings.ToUpper(strings.TrimSpace(level)))
	if err != nil {
		logLevel = logging.INFO
	}

	newLogger := logging.MustGetLogger("hyratryggt")
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatter := logging.MustStringFormatter(`%{time:` + timeFormat + `} %{level} - %{message}`)
	leveledBackend := logging.AddModuleLevel(logging.NewBackendFormatter(backend, formatter))
	leveledBackend.SetLevel(logLevel, "hyratryggt")
	newLogger.SetBackend(leveledBackend)
	log = newLogger
}

func Debug(args ...any) {
	log.Debug(args...)
}

func Debugf(format string, args ...any) {
	log.Debugf(format, args...)
}

func Info(args ...any) {
	log.Info(args...)
}

func Infof(format string, args ...any) {
	log.Infof(format, args...)
}

func Warning(args ...any) {
	log.Warning(args...)
}

func Warningf(format string, args ...any) {
	log.Warningf(format, args...)
}

func Error(args ...any) {
	log.Error(args...)
}

func Errorf(format string, args ...any) {
	log.Errorf(format, args...)
}
