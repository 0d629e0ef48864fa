// store/store.go
package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/thinkful-ei27/peter-noteful-v3/migrations"
)

// ErrNotFound is returned when a lookup by id matches no record.
var ErrNotFound = errors.New("record not found")

// Store owns the connection pool and the per-resource stores. It is
// opened once at startup, passed to whoever needs it, and closed on
// shutdown.
type Store struct {
	pool *pgxpool.Pool

	Folders *FolderStore
	Tags    *TagStore
	Notes   *NoteStore
}

// Open runs pending migrations, connects and pings the database.
func Open(ctx context.Context, databaseURL string) (*Store, error) {
	if err := migrateUp(databaseURL); err != nil {
		return nil, err
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &Store{
		pool:    pool,
		Folders: &FolderStore{pool: pool},
		Tags:    &TagStore{pool: pool},
		Notes:   &NoteStore{pool: pool},
	}, nil
}

func (s *Store) Close() {
	s.pool.Close()
}

// Reset empties every table. Used by the seed tool and the test suite.
func (s *Store) Reset(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, "TRUNCATE folders, tags, notes, note_tags")
	return err
}

func migrateUp(databaseURL string) error {
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	driver, err := migratepgx.WithInstance(db, &migratepgx.Config{})
	if err != nil {
		return err
	}

	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", src, "pgx", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// IsUniqueViolation reports whether err is the database's duplicate-key
// signal, so handlers can answer with the duplicate-name message
// instead of a raw storage error.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
