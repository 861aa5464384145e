package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/palemoky/landlord-counter/internal/config"
)

const (
	appDir  = ".landlord-counter"
	logName = "debug.log"
)

var (
	debugLog  *os.File
	logPath   string
	sessionID = uuid.NewString()
	std       = log.NewWithOptions(io.Discard, log.Options{})
)

// Init initializes the debug logger
func Init(cfg config.LogConfig) error {
	logDir := cfg.Dir
	if logDir == "" {
		// Create log directory in user's home
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		logDir = filepath.Join(homeDir, appDir)
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	Close()
	logPath = filepath.Join(logDir, logName)
	debugLog, err = openLog(logDir, cfg.MaxSizeBytes())
	if err != nil {
		return err
	}

	l := log.NewWithOptions(debugLog, log.Options{
		ReportTimestamp: true,
		ReportCaller:    true,
		CallerOffset:    1,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	l.SetStyles(levelStyles())
	std = l.With("session", sessionID)

	Info("Logger initialized, log file: %s", logPath)
	return nil
}

// openLog opens debug.log for appending, rotating it first when it exceeds maxSize
func openLog(logDir string, maxSize int64) (*os.File, error) {
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	if info, err := f.Stat(); err == nil && maxSize > 0 && info.Size() > maxSize {
		_ = f.Close()
		backupPath := filepath.Join(logDir, fmt.Sprintf("%s.%d", logName, time.Now().UnixNano()))
		_ = os.Rename(logPath, backupPath)
		f, err = os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to create new log file: %w", err)
		}
	}
	return f, nil
}

func levelStyles() *log.Styles {
	styles := log.DefaultStyles()
	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().SetString("DEBUG")
	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().SetString("INFO")
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().SetString("WARN")
	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().SetString("ERROR").Bold(true)
	return styles
}

// Close closes the debug log file
func Close() {
	if debugLog != nil {
		_ = debugLog.Close()
		debugLog = nil
	}
	std = log.NewWithOptions(io.Discard, log.Options{})
}

// Debug logs a debug message
func Debug(format string, args ...any) {
	std.Debugf(format, args...)
}

// Info logs an info message
func Info(format string, args ...any) {
	std.Infof(format, args...)
}

// Warn logs a warning message
func Warn(format string, args ...any) {
	std.Warnf(format, args...)
}

// Error logs an error message
func Error(format string, args ...any) {
	std.Errorf(format, args...)
}

// Panic logs a recovered panic with stack trace
func Panic(r any) {
	std.Errorf("[PANIC] %v\n%s", r, debug.Stack())
}

// Path returns the current log file path
func Path() string {
	return logPath
}

// SessionID identifies this process in the log
func SessionID() string {
	return sessionID
}
