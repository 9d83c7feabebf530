// Package postgres implements the repository interfaces on PostgreSQL.
// It uses database/sql with parameterized queries and contains no business logic.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"propdesk/internal/repository"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// mapError converts driver constraint errors into repository errors.
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", repository.ErrDuplicate, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", repository.ErrReferenced, pgErr.ConstraintName)
		}
	}
	return err
}

// where accumulates AND-ed predicates with positional arguments.
// Each clause uses "?" for its single argument.
type where struct {
	clauses []string
	args    []any
}

func (w *where) add(clause string, arg any) {
	w.args = append(w.args, arg)
	w.clauses = append(w.clauses, strings.Replace(clause, "?", fmt.Sprintf("$%d", len(w.args)), 1))
}

// addRaw appends a predicate without an argument.
func (w *where) addRaw(clause string) {
	w.clauses = append(w.clauses, clause)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// containsPattern wraps q for a substring ILIKE with its wildcards escaped.
func containsPattern(q string) string {
	return "%" + likeEscaper.Replace(q) + "%"
}

// like appends a case-insensitive substring match over one or more columns.
func (w *where) like(q string, columns ...string) {
	w.args = append(w.args, containsPattern(q))
	ph := fmt.Sprintf("$%d", len(w.args))
	parts := make([]string, 0, len(columns))
	for _, c := range columns {
		parts = append(parts, c+" ILIKE "+ph+` ESCAPE '\'`)
	}
	w.clauses = append(w.clauses, "("+strings.Join(parts, " OR ")+")")
}

func (w *where) String() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

// page appends LIMIT/OFFSET placeholders and returns the clause and full args.
func (w *where) page(pq repository.PageQuery) (string, []any) {
	args := append(append([]any{}, w.args...), pq.Limit, pq.Offset)
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args)), args
}

// placeholders renders "$start, $start+1, ..." for n arguments.
func placeholders(start, n int) string {
	ph := make([]string, n)
	for i := range ph {
		ph[i] = fmt.Sprintf("$%d", start+i)
	}
	return strings.Join(ph, ", ")
}

// execAffected runs a write and returns sql.ErrNoRows when nothing matched.
func execAffected(ctx context.Context, db *sql.DB, q string, args ...any) error {
	res, err := db.ExecContext(ctx, q, args...)
	if err != nil {
		return mapError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// count runs a COUNT(*) query.
func count(ctx context.Context, db *sql.DB, q string, args ...any) (int, error) {
	var total int
	if err := db.QueryRowContext(ctx, q, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

type scanner interface {
	Scan(dest ...any) error
}

// collect scans every row with scan, closing rows.
func collect[T any](rows *sql.Rows, scan func(scanner) (*T, error)) ([]T, error) {
	defer rows.Close()
	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// nullString stores "" as NULL for optional foreign keys.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
