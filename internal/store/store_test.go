package store

import (
	"context"
	"net/url"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/DaanHessen/dicetray/internal/equation"
	"github.com/DaanHessen/dicetray/internal/session"
)

func TestNewHistoryRecord(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.FixedZone("x", 3600))
	rec := newHistoryRecord(session.Entry{
		At:       at,
		Mode:     equation.ModeHighest,
		Equation: "2d4 + 2d6",
		Result:   "[4, 2] + [3, 6] -> 4 + 6 = 10",
		Total:    10,
	}, "alpha")

	assert.NotEqual(t, uuid.Nil, rec.ID)
	assert.Equal(t, at.UTC(), rec.CreatedAt)
	assert.Equal(t, "alpha", rec.Seed)
	assert.Equal(t, "highest", rec.Mode)
	assert.Equal(t, "2d4 + 2d6", rec.Equation)
	assert.Equal(t, 10, rec.Total)
	assert.Equal(t, "roll_history", rec.TableName())
}

func TestNewHistoryRecordDefaultsTime(t *testing.T) {
	rec := newHistoryRecord(session.Entry{}, "")
	assert.False(t, rec.CreatedAt.IsZero())
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, defaultListLimit, clampLimit(0))
	assert.Equal(t, defaultListLimit, clampLimit(-4))
	assert.Equal(t, 7, clampLimit(7))
	assert.Equal(t, maxListLimit, clampLimit(10_000))
}

func TestOpenRequiresDSN(t *testing.T) {
	_, err := Open(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingDSN)

	_, err = NewMigrator("", "")
	assert.ErrorIs(t, err, ErrMissingDSN)
}

func TestMigratorSourceURL(t *testing.T) {
	dir := t.TempDir()
	m, err := NewMigrator("postgres://localhost/x", dir)
	require.NoError(t, err)

	src, err := m.sourceURL()
	require.NoError(t, err)
	u, err := url.Parse(src)
	require.NoError(t, err)
	assert.Equal(t, "file", u.Scheme)
	assert.Equal(t, filepath.ToSlash(dir), u.Path)

	m, err = NewMigrator("postgres://localhost/x", "")
	require.NoError(t, err)
	src, err = m.sourceURL()
	require.NoError(t, err)
	assert.Contains(t, src, "db/migrations")
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, wrap(nil, "nothing"))
}

// dryRunDB builds SQL without connecting.
func dryRunDB(t *testing.T) *DB {
	t.Helper()
	gdb, err := gorm.Open(postgres.Open("host=localhost user=dicetray dbname=dicetray sslmode=disable"), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	db := &DB{gorm: gdb}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestHistoryRepoDryRun(t *testing.T) {
	db := dryRunDB(t)
	repo := NewHistoryRepo(db, "alpha")
	ctx := context.Background()

	require.NoError(t, repo.Record(ctx, session.Entry{Equation: "1d6", Result: "[3] -> 3 = 3", Total: 3}))
	_, err := repo.ListRecent(ctx, 0)
	require.NoError(t, err)
	_, err = repo.Purge(ctx)
	require.NoError(t, err)
}

func TestHistoryRepoSQL(t *testing.T) {
	db := dryRunDB(t)

	insert := db.gorm.ToSQL(func(tx *gorm.DB) *gorm.DB {
		rec := newHistoryRecord(session.Entry{Equation: "1d6", Total: 3}, "alpha")
		return tx.Create(&rec)
	})
	assert.Contains(t, insert, `INSERT INTO "roll_history"`)
	assert.Contains(t, insert, "'alpha'")

	recent := db.gorm.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var out []HistoryRecord
		return recentQuery(tx, 10_000).Find(&out)
	})
	assert.Contains(t, recent, `SELECT * FROM "roll_history"`)
	assert.Contains(t, recent, "ORDER BY created_at DESC")
	assert.Contains(t, recent, "LIMIT 500")

	fallback := db.gorm.ToSQL(func(tx *gorm.DB) *gorm.DB {
		var out []HistoryRecord
		return recentQuery(tx, 0).Find(&out)
	})
	assert.Contains(t, fallback, "LIMIT 20")

	purge := db.gorm.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return purgeQuery(tx).Delete(&HistoryRecord{})
	})
	assert.Contains(t, purge, `DELETE FROM "roll_history" WHERE 1 = 1`)
}
