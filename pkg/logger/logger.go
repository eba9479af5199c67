package logger

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"highlight-vmaf-service/pkg/config"
)

// Logger wraps a logrus instance plus the file handle it may own.
type Logger struct {
	entry *logrus.Logger
	file  *os.File
}

var (
	globalMu     sync.RWMutex
	globalLogger = &Logger{entry: logrus.StandardLogger()}
)

// NewLogger builds a logger from configuration. Unknown levels fall back to
// info; unknown outputs fall back to stdout.
func NewLogger(cfg *config.Config) *Logger {
	l := logrus.New()

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if cfg.Log.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	logger := &Logger{entry: l}

	if cfg.Log.Output == "file" && cfg.Log.Filename != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Log.Filename), 0o755); err == nil {
			if f, err := os.OpenFile(cfg.Log.Filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
				l.SetOutput(io.MultiWriter(os.Stdout, f))
				logger.file = f
			}
		}
	}

	return logger
}

// SetGlobalLogger installs the process-wide logger.
func SetGlobalLogger(l *Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	if l != nil {
		globalLogger = l
	}
}

// Close releases the log file if one was opened.
func (l *Logger) Close() {
	if l.file != nil {
		_ = l.file.Close()
	}
}

func current() *logrus.Logger {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalLogger.entry
}

// Debug logs a message with structured fields at debug level.
func Debug(msg string, fields map[string]interface{}) {
	current().WithFields(fields).Debug(msg)
}

func Debugf(format string, args ...interface{}) {
	current().Debugf(format, args...)
}

func Infof(format string, args ...interface{}) {
	current().Infof(format, args...)
}

func Warnf(format string, args ...interface{}) {
	current().Warnf(format, args...)
}

func Errorf(format string, args ...interface{}) {
	current().Errorf(format, args...)
}

// Fatal logs and exits.
func Fatal(msg string) {
	current().Fatal(msg)
}
