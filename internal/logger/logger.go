package logger

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// Logger wraps charm/log for structured logging
type Logger struct {
	*log.Logger
}

// New creates a new logger with the given output
func New(w io.Writer) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})
	return &Logger{Logger: l}
}

// NewWithLevel creates a logger with a specific level
func NewWithLevel(w io.Writer, level log.Level) *Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
	})
	return &Logger{Logger: l}
}

// NewFileLogger creates a logger that writes to a file
func NewFileLogger(path string) (*Logger, func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
	})

	cleanup := func() {
		f.Close()
	}

	return &Logger{Logger: l}, cleanup, nil
}

// Discard returns a logger that discards all output
func Discard() *Logger {
	return New(io.Discard)
}

// IssueCreated logs a successful issue creation
func (l *Logger) IssueCreated(key, project, issueType string) {
	l.Info("issue created",
		"key", key,
		"project", project,
		"type", issueType)
}

// DescriptionUpdated logs a description edit
func (l *Logger) DescriptionUpdated(key string, paragraphs int) {
	l.Info("description updated",
		"key", key,
		"paragraphs", paragraphs)
}

// TransitionApplied logs a status move
func (l *Logger) TransitionApplied(key, transition string) {
	l.Info("transition applied",
		"key", key,
		"transition", transition)
}

// WorklogAdded logs a work-log entry
func (l *Logger) WorklogAdded(key string, spent time.Duration) {
	l.Info("worklog added",
		"key", key,
		"spent", spent)
}

// CommentAdded logs a posted comment
func (l *Logger) CommentAdded(key string) {
	l.Info("comment added", "key", key)
}

// RequestFailed logs a failed tracker request
func (l *Logger) RequestFailed(operation string, err error) {
	l.Error("request failed",
		"operation", operation,
		"error", err)
}

// ConfigLoaded logs successful config loading
func (l *Logger) ConfigLoaded(baseURL, project string) {
	l.Debug("config loaded",
		"base_url", baseURL,
		"project", project)
}

// StatsError logs a usage-statistics bookkeeping error
func (l *Logger) StatsError(operation string, err error) {
	l.Error("stats error",
		"operation", operation,
		"error", err)
}
