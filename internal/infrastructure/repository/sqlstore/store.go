package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/matchday/internal/domain/store"
)

// Dialect selects the migration set and placeholder style.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// DialectForDriver maps a database/sql driver name to its dialect.
func DialectForDriver(driverName string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(driverName)) {
	case "postgres", "pgx":
		return DialectPostgres, nil
	case "sqlite":
		return DialectSQLite, nil
	default:
		return "", fmt.Errorf("unsupported sql driver %q", driverName)
	}
}

// Store owns the sqlx handle and hands out repositories bound either to the
// pool or to a transaction.
type Store struct {
	db      *sqlx.DB
	dialect Dialect
}

var _ store.UnitOfWork = (*Store)(nil)

func New(db *sqlx.DB, dialect Dialect) *Store {
	return &Store{db: db, dialect: dialect}
}

func (s *Store) DB() *sqlx.DB {
	return s.db
}

func (s *Store) Dialect() Dialect {
	return s.dialect
}

// Repositories returns repositories running outside of any transaction.
func (s *Store) Repositories() store.Repositories {
	return bind(conn{ext: s.db, dialect: s.dialect})
}

// Do runs fn in a single transaction.
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context, repos store.Repositories) error) (err error) {
	tx, err := s.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(ctx, bind(conn{ext: tx, dialect: s.dialect})); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

func bind(c conn) store.Repositories {
	return store.Repositories{
		Players:      &PlayerRepository{db: c},
		Matches:      &MatchRepository{db: c},
		Formations:   &FormationRepository{db: c},
		Events:       &EventRepository{db: c},
		Attendances:  &AttendanceRepository{db: c},
		Convocations: &ConvocationRepository{db: c},
	}
}

// conn runs builder output against a pool or a transaction. Queries are
// always built with $N placeholders; SQLite receives them as ?N.
type conn struct {
	ext     sqlx.ExtContext
	dialect Dialect
}

func (c conn) rebind(query string) string {
	if c.dialect != DialectSQLite {
		return query
	}
	var b strings.Builder
	b.Grow(len(query))
	for i := 0; i < len(query); i++ {
		if query[i] == '$' && i+1 < len(query) && query[i+1] >= '0' && query[i+1] <= '9' {
			b.WriteByte('?')
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

func (c conn) get(ctx context.Context, dest any, query string, args ...any) error {
	return sqlx.GetContext(ctx, c.ext, dest, c.rebind(query), args...)
}

func (c conn) selectRows(ctx context.Context, dest any, query string, args ...any) error {
	return sqlx.SelectContext(ctx, c.ext, dest, c.rebind(query), args...)
}

func (c conn) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return c.ext.ExecContext(ctx, c.rebind(query), args...)
}
