package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
)

type LogLevel string

const (
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info"
	LevelWarn  LogLevel = "warn"
	LevelError LogLevel = "error"
)

var severity = map[LogLevel]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

var levelColors = map[LogLevel]string{
	LevelDebug: "\033[90m",
	LevelInfo:  "\033[36m",
	LevelWarn:  "\033[33m",
	LevelError: "\033[31m",
}

// ParseLevel maps a LOG_LEVEL value onto a level, defaulting to info.
func ParseLevel(value string) LogLevel {
	level := LogLevel(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := severity[level]; ok {
		return level
	}
	return LevelInfo
}

// LogEntry is one JSON line. Action is a snake_case event name such as
// "invitation_respond_failed"; Details carries the ids involved.
type LogEntry struct {
	Timestamp time.Time              `json:"timestamp"`
	Level     LogLevel               `json:"level"`
	UserID    *uint                  `json:"user_id,omitempty"`
	Action    string                 `json:"action"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Error     string                 `json:"error,omitempty"`
	Caller    string                 `json:"caller,omitempty"`
}

type Logger struct {
	mu       sync.Mutex
	out      io.Writer
	color    bool
	minLevel LogLevel
}

var std *Logger

func New(out io.Writer, minLevel LogLevel) *Logger {
	if out == nil {
		out = os.Stdout
	}
	return &Logger{out: out, color: out == os.Stdout, minLevel: ParseLevel(string(minLevel))}
}

// Init sends the package-level helpers to stdout, dropping anything below level.
func Init(level string) {
	std = New(os.Stdout, LogLevel(level))
}

// SetOutput sends the package-level helpers to w at debug level.
func SetOutput(w io.Writer) {
	std = New(w, LevelDebug)
}

func (l *Logger) Enabled(level LogLevel) bool {
	return severity[level] >= severity[l.minLevel]
}

func (l *Logger) Write(entry LogEntry) {
	if !l.Enabled(entry.Level) {
		return
	}
	data, err := json.Marshal(entry)
	if err != nil {
		data, _ = json.Marshal(LogEntry{Timestamp: entry.Timestamp, Level: entry.Level, Action: entry.Action, Error: "unencodable details: " + err.Error()})
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.color {
		fmt.Fprintf(l.out, "%s%s\033[0m\n", levelColors[entry.Level], data)
		return
	}
	fmt.Fprintf(l.out, "%s\n", data)
}

// emit is the single path from the package helpers into std. The caller is
// recorded two frames up: the exported helper and its caller.
func emit(level LogLevel, userID *uint, action string, err error, details map[string]interface{}) {
	if std == nil || !std.Enabled(level) {
		return
	}
	entry := LogEntry{
		Timestamp: time.Now().UTC(),
		Level:     level,
		UserID:    userID,
		Action:    action,
		Details:   details,
	}
	if err != nil {
		entry.Error = err.Error()
	}
	if _, file, line, ok := runtime.Caller(2); ok {
		entry.Caller = fmt.Sprintf("%s:%d", file, line)
	}
	std.Write(entry)
}

func Debug(action string, details map[string]interface{}) {
	emit(LevelDebug, nil, action, nil, details)
}

func Info(action string, details map[string]interface{}) {
	emit(LevelInfo, nil, action, nil, details)
}

func InfoWithUser(userID uint, action string, details map[string]interface{}) {
	emit(LevelInfo, &userID, action, nil, details)
}

func Warn(action string, details map[string]interface{}) {
	emit(LevelWarn, nil, action, nil, details)
}

func WarnWithUser(userID uint, action string, details map[string]interface{}) {
	emit(LevelWarn, &userID, action, nil, details)
}

func Error(action string, err error, details map[string]interface{}) {
	emit(LevelError, nil, action, err, details)
}

func ErrorWithUser(userID uint, action string, err error, details map[string]interface{}) {
	emit(LevelError, &userID, action, err, details)
}
