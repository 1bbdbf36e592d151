package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestQueryLoggerKeepsNewestFirst(t *testing.T) {
	ql := NewQueryLogger(2)

	ql.LogQuery("SELECT 1", time.Millisecond, 1, nil)
	ql.LogQuery("SELECT 2", time.Millisecond, 1, nil)
	ql.LogQuery("SELECT 3", time.Millisecond, 0, errors.New("boom"))

	queries := ql.GetQueries()
	require.Len(t, queries, 2)
	assert.Equal(t, "SELECT 3", queries[0].SQL)
	assert.Equal(t, "boom", queries[0].Error)
	assert.Equal(t, 3, queries[0].ID)
	assert.Equal(t, "SELECT 2", queries[1].SQL)
	assert.Equal(t, 3, ql.Total())

	recent := ql.GetRecentQueries(1)
	require.Len(t, recent, 1)
	assert.Equal(t, "SELECT 3", recent[0].SQL)
	assert.Len(t, ql.GetRecentQueries(10), 2)
}

func TestQueryLoggerSince(t *testing.T) {
	ql := NewQueryLogger(10)
	ql.LogQuery("SELECT 1", 0, 0, nil)
	mark := ql.Total()
	ql.LogQuery("SELECT 2", 0, 0, nil)
	ql.LogQuery("SELECT 3", 0, 0, nil)

	since := ql.Since(mark)
	require.Len(t, since, 2)
	assert.Equal(t, "SELECT 3", since[0].SQL)
	assert.Equal(t, "SELECT 2", since[1].SQL)
	assert.Empty(t, ql.Since(ql.Total()))
}

func TestQueryLoggerClear(t *testing.T) {
	ql := NewQueryLogger(10)
	ql.LogQuery("SELECT 1", 0, 0, nil)
	ql.Clear()

	assert.Empty(t, ql.GetQueries())
	assert.Equal(t, 0, ql.Total())
}

func TestCustomGormLoggerRecords(t *testing.T) {
	SQLLogger.Clear()
	t.Cleanup(SQLLogger.Clear)

	l := (&CustomGormLogger{Interface: logger.Default}).LogMode(logger.Silent)
	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "SELECT * FROM quotes", 4
	}, nil)

	queries := SQLLogger.GetQueries()
	require.Len(t, queries, 1)
	assert.Equal(t, "SELECT * FROM quotes", queries[0].SQL)
	assert.Equal(t, int64(4), queries[0].Rows)
}
