// package repositories provides persistence layer implementations for all model types.
package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/desertthunder/fyyur/internal/shared"
	"github.com/mattn/go-sqlite3"
)

// DBTX is the subset of *sql.DB and *sql.Tx used by repositories.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

var (
	_ DBTX = (*sql.DB)(nil)
	_ DBTX = (*sql.Tx)(nil)
)

// Store bundles every repository over the same [DBTX].
type Store struct {
	Venues     *VenueRepository
	Artists    *ArtistRepository
	Shows      *ShowRepository
	Categories *CategoryRepository
	Questions  *QuestionRepository
}

// NewStore creates a Store whose repositories all run on db.
func NewStore(db DBTX) *Store {
	return &Store{
		Venues:     NewVenueRepository(db),
		Artists:    NewArtistRepository(db),
		Shows:      NewShowRepository(db),
		Categories: NewCategoryRepository(db),
		Questions:  NewQuestionRepository(db),
	}
}

// Transact runs fn against a [Store] bound to a new transaction.
//
// The transaction commits when fn returns nil and rolls back when fn returns an error or panics.
// A panic is re-raised after the rollback. Either way the connection goes back to the pool.
func Transact(ctx context.Context, db *sql.DB, fn func(*Store) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(NewStore(tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, fmt.Errorf("failed to rollback transaction: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

type storeKey struct{}

// WithStore returns a child context carrying st.
func WithStore(ctx context.Context, st *Store) context.Context {
	return context.WithValue(ctx, storeKey{}, st)
}

// StoreFrom returns the [Store] attached by [WithStore], or nil.
func StoreFrom(ctx context.Context) *Store {
	st, _ := ctx.Value(storeKey{}).(*Store)
	return st
}

// translate maps driver errors onto the shared sentinel errors.
func translate(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, args...)

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", msg, shared.ErrNotFound)
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return fmt.Errorf("%s: %w: %s", msg, shared.ErrConstraintViolation, constraintName(sqliteErr))
	}

	return fmt.Errorf("%s: %w", msg, err)
}

func constraintName(err sqlite3.Error) string {
	switch err.ExtendedCode {
	case sqlite3.ErrConstraintForeignKey:
		return "foreign key"
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return "unique"
	case sqlite3.ErrConstraintCheck:
		return "check"
	case sqlite3.ErrConstraintNotNull:
		return "not null"
	default:
		return err.Error()
	}
}

// requireAffected turns a zero-row update or delete into [shared.ErrNotFound].
func requireAffected(result sql.Result, entity string, id int64) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, shared.ErrNotFound)
	}
	return nil
}

// genreSet persists an ordered set of genres in a (owner, position, genre) join table.
type genreSet struct {
	table  string
	column string
}

var (
	venueGenres  = genreSet{table: "venue_genres", column: "venue_id"}
	artistGenres = genreSet{table: "artist_genres", column: "artist_id"}
)

// replace overwrites the owner's genres with genres, in order.
func (g genreSet) replace(ctx context.Context, db DBTX, owner int64, genres []string) error {
	if _, err := db.ExecContext(ctx, fmt.Sprintf("DELETE FROM %s WHERE %s = ?", g.table, g.column), owner); err != nil {
		return translate(err, "failed to clear genres")
	}

	query := fmt.Sprintf("INSERT INTO %s (%s, position, genre) VALUES (?, ?, ?)", g.table, g.column)
	for i, genre := range genres {
		if _, err := db.ExecContext(ctx, query, owner, i, genre); err != nil {
			return translate(err, "failed to insert genre %q", genre)
		}
	}
	return nil
}

// load returns genres keyed by owner for the given owners. Owners without genres get no entry.
func (g genreSet) load(ctx context.Context, db DBTX, owners []int64) (map[int64][]string, error) {
	out := make(map[int64][]string, len(owners))
	if len(owners) == 0 {
		return out, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(owners)), ",")
	query := fmt.Sprintf(
		"SELECT %s, genre FROM %s WHERE %s IN (%s) ORDER BY %s, position",
		g.column, g.table, g.column, placeholders, g.column,
	)

	args := make([]any, len(owners))
	for i, id := range owners {
		args[i] = id
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translate(err, "failed to query genres")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			owner int64
			genre string
		)
		if err := rows.Scan(&owner, &genre); err != nil {
			return nil, fmt.Errorf("failed to scan genre: %w", err)
		}
		out[owner] = append(out[owner], genre)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return out, nil
}

// criteriaString returns a non-empty string criterion.
func criteriaString(criteria map[string]any, key string) (string, bool) {
	v, ok := criteria[key].(string)
	return v, ok && v != ""
}

// criteriaID returns a positive integer criterion, accepting int and int64 values.
func criteriaID(criteria map[string]any, key string) (int64, bool) {
	switch v := criteria[key].(type) {
	case int64:
		return v, v > 0
	case int:
		return int64(v), v > 0
	default:
		return 0, false
	}
}
