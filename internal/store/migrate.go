package store

import (
	"context"
	"net/url"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Migrator handles DB schema migrations using golang-migrate.
type Migrator struct {
	dsn string
	dir string
}

// NewMigrator reads migrations from dir, or from ./db/migrations when dir is empty.
func NewMigrator(dsn, dir string) (*Migrator, error) {
	if dsn == "" {
		return nil, ErrMissingDSN
	}
	return &Migrator{dsn: dsn, dir: dir}, nil
}

func (m *Migrator) sourceURL() (string, error) {
	p := m.dir
	if p == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		p = filepath.Join(wd, "db", "migrations")
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String(), nil
}

func (m *Migrator) Up(ctx context.Context) error {
	return m.run(ctx, func(mig *migrate.Migrate) error { return mig.Up() })
}

func (m *Migrator) Down(ctx context.Context) error {
	return m.run(ctx, func(mig *migrate.Migrate) error { return mig.Steps(-1) })
}

func (m *Migrator) run(ctx context.Context, step func(*migrate.Migrate) error) error {
	src, err := m.sourceURL()
	if err != nil {
		return err
	}
	mig, err := migrate.New(src, m.dsn)
	if err != nil {
		return wrap(err, "init migrations")
	}
	defer mig.Close()

	done := make(chan error, 1)
	go func() { done <- step(mig) }()
	select {
	case err = <-done:
	case <-ctx.Done():
		mig.GracefulStop <- true
		err = <-done
	}
	if err == migrate.ErrNoChange {
		return ErrNoChange
	}
	return wrap(err, "apply migrations")
}
