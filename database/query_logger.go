package database

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm/logger"
)

// QueryLog represents a single SQL query log entry
type QueryLog struct {
	ID        int           `json:"id"`
	SQL       string        `json:"sql"`
	Duration  time.Duration `json:"duration"`
	Rows      int64         `json:"rows"`
	Error     string        `json:"error,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// QueryLogger keeps the most recent SQL statements, newest first
type QueryLogger struct {
	mu      sync.RWMutex
	queries []QueryLog
	maxLogs int
	counter int
}

// SQLLogger is fed by CustomGormLogger and read by the debug endpoint
var SQLLogger = NewQueryLogger(100)

// NewQueryLogger creates a new query logger
func NewQueryLogger(maxLogs int) *QueryLogger {
	if maxLogs < 1 {
		maxLogs = 1
	}
	return &QueryLogger{
		queries: make([]QueryLog, 0, maxLogs),
		maxLogs: maxLogs,
	}
}

// LogQuery records a statement, dropping the oldest past maxLogs
func (ql *QueryLogger) LogQuery(sql string, duration time.Duration, rows int64, err error) {
	ql.mu.Lock()
	defer ql.mu.Unlock()

	ql.counter++
	entry := QueryLog{
		ID:        ql.counter,
		SQL:       sql,
		Duration:  duration,
		Rows:      rows,
		Timestamp: time.Now(),
	}
	if err != nil {
		entry.Error = err.Error()
	}

	ql.queries = append([]QueryLog{entry}, ql.queries...)
	if len(ql.queries) > ql.maxLogs {
		ql.queries = ql.queries[:ql.maxLogs]
	}
}

// Total is the number of statements seen since the last Clear
func (ql *QueryLogger) Total() int {
	ql.mu.RLock()
	defer ql.mu.RUnlock()
	return ql.counter
}

// GetQueries returns all retained queries
func (ql *QueryLogger) GetQueries() []QueryLog {
	return ql.GetRecentQueries(-1)
}

// GetRecentQueries returns the most recent n queries; n < 0 means all
func (ql *QueryLogger) GetRecentQueries(n int) []QueryLog {
	ql.mu.RLock()
	defer ql.mu.RUnlock()

	if n < 0 || n > len(ql.queries) {
		n = len(ql.queries)
	}

	result := make([]QueryLog, n)
	copy(result, ql.queries[:n])
	return result
}

// Since returns the retained queries with an ID above the given one
func (ql *QueryLogger) Since(id int) []QueryLog {
	ql.mu.RLock()
	defer ql.mu.RUnlock()

	n := 0
	for n < len(ql.queries) && ql.queries[n].ID > id {
		n++
	}
	result := make([]QueryLog, n)
	copy(result, ql.queries[:n])
	return result
}

// Clear removes all logged queries
func (ql *QueryLogger) Clear() {
	ql.mu.Lock()
	defer ql.mu.Unlock()
	ql.queries = ql.queries[:0]
	ql.counter = 0
}

// CustomGormLogger forwards to the wrapped gorm logger and records every
// statement in SQLLogger
type CustomGormLogger struct {
	logger.Interface
}

// LogMode keeps the wrapper when gorm changes the level of a session
func (l *CustomGormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &CustomGormLogger{Interface: l.Interface.LogMode(level)}
}

// Trace implements the logger.Interface
func (l *CustomGormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.Interface != nil {
		l.Interface.Trace(ctx, begin, fc, err)
	}

	sql, rows := fc()
	SQLLogger.LogQuery(sql, time.Since(begin), rows, err)
}
