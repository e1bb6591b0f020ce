package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Environment variable to configure log file path.
const envLogPath = "LOOKANDSAY_LOG"

var (
	std     *log.Logger
	logFile *os.File
)

// DefaultPath returns LOOKANDSAY_LOG, or lookandsay.log next to the executable.
func DefaultPath() string {
	if path := os.Getenv(envLogPath); path != "" {
		return path
	}
	// Default to the directory where the executable is located
	if exePath, err := os.Executable(); err == nil {
		return filepath.Join(filepath.Dir(exePath), "lookandsay.log")
	}
	return "./lookandsay.log"
}

// InitFromEnv initializes the logger using LOOKANDSAY_LOG or a default path.
func InitFromEnv() error {
	return Init(DefaultPath())
}

// Init initializes the logger to write to the provided file path.
// It creates parent directories if needed and opens the file in append mode.
// Calling Init again is a no-op until Close.
func Init(path string) error {
	if std != nil {
		return nil
	}
	if err := ensureParentDir(path); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	logFile = f
	std = newLogger(f)
	return nil
}

// InitWriter sends log output to w instead of a file. A log file opened
// by Init is closed first.
func InitWriter(w io.Writer) {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	std = newLogger(w)
}

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           log.InfoLevel,
	})
}

// SetLevel sets the minimum level: debug, info, warn or error.
func SetLevel(level string) error {
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if std != nil {
		std.SetLevel(lvl)
	}
	return nil
}

// Close closes the underlying log file, if open.
func Close() error {
	std = nil
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}

// Debugf logs debugging details.
func Debugf(format string, args ...any) { write(log.DebugLevel, format, args...) }

// Infof logs informational messages.
func Infof(format string, args ...any) { write(log.InfoLevel, format, args...) }

// Warnf logs warnings.
func Warnf(format string, args ...any) { write(log.WarnLevel, format, args...) }

// Errorf logs errors.
func Errorf(format string, args ...any) { write(log.ErrorLevel, format, args...) }

func write(level log.Level, format string, args ...any) {
	if std == nil {
		// Fallback: initialize with default if not already.
		_ = InitFromEnv()
	}
	if std != nil {
		std.Logf(level, format, args...)
	}
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
