package mock

import "cosmossdk.io/log"

var _ log.Logger = (*MockLogger)(nil)

// MockLogger implements the Logger interface
type MockLogger struct {
	DebugLogs  []LogEntry
	InfoLogs   []LogEntry
	WarnLogs   []LogEntry
	ErrorLogs  []LogEntry
	WithRecord []interface{}
}

// LogEntry is a struct that contains the message and params passed to the logger
type LogEntry struct {
	Message string
	Params  []interface{}
}

// NewMockLogger returns a new MockLogger
func NewMockLogger() *MockLogger {
	return &MockLogger{}
}

// Debug records a debug log
func (l *MockLogger) Debug(msg string, params ...interface{}) {
	l.DebugLogs = append(l.DebugLogs, LogEntry{Message: msg, Params: params})
}

// Info records an info log
func (l *MockLogger) Info(msg string, params ...interface{}) {
	l.InfoLogs = append(l.InfoLogs, LogEntry{Message: msg, Params: params})
}

// Warn records a warn log
func (l *MockLogger) Warn(msg string, params ...interface{}) {
	l.WarnLogs = append(l.WarnLogs, LogEntry{Message: msg, Params: params})
}

// Error records an error log
func (l *MockLogger) Error(msg string, params ...interface{}) {
	l.ErrorLogs = append(l.ErrorLogs, LogEntry{Message: msg, Params: params})
}

// With returns the logger with the params
func (l *MockLogger) With(params ...interface{}) log.Logger {
	l.WithRecord = params
	return l
}

// Impl returns the logger itself.
func (l *MockLogger) Impl() interface{} {
	return l
}
