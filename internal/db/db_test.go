package db

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"wishcart/internal/model"
)

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), Config(slog.New(slog.NewTextHandler(io.Discard, nil))))
	require.NoError(t, err)
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	return gormDB
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open("oracle", "whatever", slog.Default())
	assert.EqualError(t, err, `unsupported database driver "oracle"`)
}

func TestMigrateAndReset(t *testing.T) {
	gormDB := openSQLite(t)

	require.NoError(t, Migrate(gormDB))
	assert.True(t, gormDB.Migrator().HasTable(&model.User{}))
	assert.True(t, gormDB.Migrator().HasTable(&model.WishlistEntry{}))
	assert.True(t, gormDB.Migrator().HasTable(&model.Product{}))

	require.NoError(t, Reset(gormDB))
	assert.False(t, gormDB.Migrator().HasTable(&model.User{}))
	assert.False(t, gormDB.Migrator().HasTable(&model.Product{}))

	// Dropping again is a no-op.
	require.NoError(t, Reset(gormDB))
	require.NoError(t, Close(gormDB))
}

func TestConfig_LogsThroughSlog(t *testing.T) {
	var buf bytes.Buffer
	gormLogger := Config(slog.New(slog.NewJSONHandler(&buf, nil))).Logger
	query := func() (string, int64) {
		return "SELECT * FROM `users` WHERE email = ?", 0
	}

	gormLogger.Trace(context.Background(), time.Now(), query, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String(), "record-not-found misses are not logged")

	gormLogger.Trace(context.Background(), time.Now(), query, errors.New("connection reset"))
	line := strings.TrimSpace(buf.String())
	require.NotEmpty(t, line)

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(line), &record))
	assert.Equal(t, "ERROR", record["level"])
	trace := record["trace"].(map[string]interface{})
	assert.Equal(t, "connection reset", trace["error"])
	assert.Contains(t, trace["sql"], "email = ?")
}

func TestConfig_SlowQueryWarning(t *testing.T) {
	var buf bytes.Buffer
	gormLogger := Config(slog.New(slog.NewJSONHandler(&buf, nil))).Logger

	begin := time.Now().Add(-2 * SlowQueryThreshold)
	gormLogger.Trace(context.Background(), begin, func() (string, int64) {
		return "SELECT 1", 1
	}, nil)

	assert.Contains(t, buf.String(), `"level":"WARN"`)
}

func TestQueriesDoNotLogBoundValues(t *testing.T) {
	var buf bytes.Buffer
	gormDB, err := gorm.Open(sqlite.Open(":memory:"), Config(slog.New(slog.NewJSONHandler(&buf, nil))))
	require.NoError(t, err)
	sqlDB, err := gormDB.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	defer sqlDB.Close()
	require.NoError(t, Migrate(gormDB))

	var user model.User
	err = gormDB.Where("email = ?", "ann@x.com").First(&user).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = gormDB.Exec("SELECT * FROM missing_table WHERE email = ?", "ann@x.com").Error
	require.Error(t, err)

	assert.NotContains(t, buf.String(), "record not found")
	assert.NotContains(t, buf.String(), "ann@x.com")
	assert.Contains(t, buf.String(), "missing_table")
}

func TestCloseWithLog(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	CloseWithLog(openSQLite(t), log)
	assert.Empty(t, buf.String())

	// A handle without a connection pool cannot be closed.
	CloseWithLog(&gorm.DB{Config: &gorm.Config{}}, log)
	assert.Contains(t, buf.String(), "close database")
	assert.Contains(t, buf.String(), gorm.ErrInvalidDB.Error())
}
