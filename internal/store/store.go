package store

import (
	"context"
	errs "errors"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/DaanHessen/dicetray/internal/session"
)

var (
	ErrNoChange   = errs.New("no change")
	ErrMissingDSN = errs.New("missing DSN")
)

// DB wraps gorm.DB for repositories and exposes Close.
type DB struct {
	gorm *gorm.DB
}

func (d *DB) Close() error {
	sdb, err := d.gorm.DB()
	if err != nil {
		return err
	}
	return sdb.Close()
}


// Open connects to Postgres and pings it.
func Open(ctx context.Context, dsn string) (*DB, error) {
	if dsn == "" {
		return nil, ErrMissingDSN
	}
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, wrap(err, "open postgres")
	}
	sdb, err := gdb.DB()
	if err != nil {
		return nil, wrap(err, "sql handle")
	}
	sdb.SetConnMaxLifetime(30 * time.Minute)
	sdb.SetMaxOpenConns(4)
	sdb.SetMaxIdleConns(2)
	if err := sdb.PingContext(ctx); err != nil {
		_ = sdb.Close()
		return nil, wrap(err, "ping postgres")
	}
	return &DB{gorm: gdb}, nil
}

// HistoryRecord is one row of roll_history.
type HistoryRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
	Seed      string
	Mode      string
	Equation  string
	Result    string
	Total     int
}

func (HistoryRecord) TableName() string { return "roll_history" }

// HistoryRepo stores finished rolls. It satisfies session.Recorder.
type HistoryRepo struct {
	db   *DB
	seed string
}

// NewHistoryRepo tags every record with seed, which may be empty.
func NewHistoryRepo(db *DB, seed string) *HistoryRepo { return &HistoryRepo{db: db, seed: seed} }

// Record inserts e.
func (r *HistoryRepo) Record(ctx context.Context, e session.Entry) error {
	rec := newHistoryRecord(e, r.seed)
	if err := r.db.gorm.WithContext(ctx).Create(&rec).Error; err != nil {
		return wrap(err, "insert roll history")
	}
	return nil
}

// ListRecent returns up to limit records, newest first.
func (r *HistoryRepo) ListRecent(ctx context.Context, limit int) ([]HistoryRecord, error) {
	var out []HistoryRecord
	if err := recentQuery(r.db.gorm.WithContext(ctx), limit).Find(&out).Error; err != nil {
		return nil, wrap(err, "list roll history")
	}
	return out, nil
}

// Purge deletes every record.
func (r *HistoryRepo) Purge(ctx context.Context) (int64, error) {
	res := purgeQuery(r.db.gorm.WithContext(ctx)).Delete(&HistoryRecord{})
	if res.Error != nil {
		return 0, wrap(res.Error, "purge roll history")
	}
	return res.RowsAffected, nil
}

func recentQuery(tx *gorm.DB, limit int) *gorm.DB {
	return tx.Order("created_at DESC").Limit(clampLimit(limit))
}

// gorm refuses a DELETE without conditions.
func purgeQuery(tx *gorm.DB) *gorm.DB {
	return tx.Where("1 = 1")
}

func newHistoryRecord(e session.Entry, seed string) HistoryRecord {
	at := e.At
	if at.IsZero() {
		at = time.Now()
	}
	return HistoryRecord{
		ID:        uuid.New(),
		CreatedAt: at.UTC(),
		Seed:      seed,
		Mode:      e.Mode.String(),
		Equation:  e.Equation,
		Result:    e.Result,
		Total:     e.Total,
	}
}

const (
	defaultListLimit = 20
	maxListLimit     = 500
)

func clampLimit(n int) int {
	switch {
	case n <= 0:
		return defaultListLimit
	case n > maxListLimit:
		return maxListLimit
	default:
		return n
	}
}

// Helper error wrap
func wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, msg)
}
