package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/oksasatya/go-users-tasks-api/internal/domain/apperror"
)

// DB is the subset of *pgxpool.Pool the repositories use.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

const (
	pgUniqueViolation     = "23505"
	pgInvalidTextRepr     = "22P02"
	pgForeignKeyViolation = "23503"
)

// mapError turns driver errors into application errors. Lookups by a
// malformed uuid are reported as not found.
func mapError(err error, notFound string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperror.NotFound(notFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgInvalidTextRepr:
			return apperror.NotFound(notFound)
		case pgUniqueViolation:
			return apperror.Conflict("email already exists")
		case pgForeignKeyViolation:
			return apperror.NotFound(notFound)
		}
	}
	return fmt.Errorf("db error: %w", err)
}

// filter accumulates WHERE clauses with positional args.
type filter struct {
	clauses []string
	args    []any
}

func (f *filter) add(clause string, arg any) {
	f.args = append(f.args, arg)
	f.clauses = append(f.clauses, fmt.Sprintf(clause, len(f.args)))
}

func (f *filter) where() string {
	if len(f.clauses) == 0 {
		return ""
	}
	out := " WHERE " + f.clauses[0]
	for _, c := range f.clauses[1:] {
		out += " AND " + c
	}
	return out
}

func (f *filter) next() int {
	return len(f.args) + 1
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likeEscape quotes the LIKE wildcards in s so user input matches literally.
// Postgres uses backslash as the default LIKE escape character.
func likeEscape(s string) string {
	return likeEscaper.Replace(s)
}
