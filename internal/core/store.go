// Package core provides the shared persistence base every app module builds
// on: a CRUD store parameterized over a model, a create schema, and an
// update schema. Modules supply the table layout and scan/bind functions;
// the store owns id generation, timestamps, and the SQL shape.
package core

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("not found")

// Store is the generic CRUD base. Columns lists every column in insert
// order, starting with id, created_at, updated_at; InsertArgs must return
// values aligned with that order.
type Store[M, C, U any] struct {
	DB      *sql.DB
	Table   string
	Columns []string

	// ScanRow maps one result row onto the model.
	ScanRow func(scan func(dest ...any) error) (M, error)
	// InsertArgs binds a create schema to the full column list.
	InsertArgs func(id, now string, in C) []any
	// UpdateSet returns the SET columns and values for a partial update.
	UpdateSet func(in U) ([]string, []any)

	// Now and NewID are overridable for tests.
	Now   func() time.Time
	NewID func() string
}

func (s *Store[M, C, U]) now() string {
	fn := s.Now
	if fn == nil {
		fn = time.Now
	}
	return fn().UTC().Format(time.RFC3339)
}

func (s *Store[M, C, U]) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

// Get returns the record with the given id, or ErrNotFound.
func (s *Store[M, C, U]) Get(ctx context.Context, id string) (M, error) {
	q := fmt.Sprintf(`SELECT %s FROM %s WHERE id=?`, strings.Join(s.Columns, ","), s.Table)
	row := s.DB.QueryRowContext(ctx, q, id)
	m, err := s.ScanRow(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return m, ErrNotFound
	}
	return m, err
}

// List returns up to limit records ordered by creation time, skipping offset.
func (s *Store[M, C, U]) List(ctx context.Context, offset, limit int) ([]M, error) {
	if limit <= 0 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	q := fmt.Sprintf(`SELECT %s FROM %s ORDER BY created_at, id LIMIT ? OFFSET ?`, strings.Join(s.Columns, ","), s.Table)
	rows, err := s.DB.QueryContext(ctx, q, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []M
	for rows.Next() {
		m, err := s.ScanRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, m)
	}
	return res, rows.Err()
}

// Create inserts a new record from the create schema and returns it.
func (s *Store[M, C, U]) Create(ctx context.Context, in C) (M, error) {
	id := s.newID()
	now := s.now()
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(s.Columns)), ",")
	q := fmt.Sprintf(`INSERT INTO %s(%s) VALUES (%s)`, s.Table, strings.Join(s.Columns, ","), placeholders)
	if _, err := s.DB.ExecContext(ctx, q, s.InsertArgs(id, now, in)...); err != nil {
		var zero M
		return zero, fmt.Errorf("insert %s: %w", s.Table, err)
	}
	return s.Get(ctx, id)
}

// Update applies the set fields of the update schema and returns the
// refreshed record. An update with no set fields is a read.
func (s *Store[M, C, U]) Update(ctx context.Context, id string, in U) (M, error) {
	cols, args := s.UpdateSet(in)
	if len(cols) == 0 {
		return s.Get(ctx, id)
	}
	cols = append(cols, "updated_at")
	args = append(args, s.now())
	sets := make([]string, len(cols))
	for i, c := range cols {
		sets[i] = c + "=?"
	}
	args = append(args, id)
	q := fmt.Sprintf(`UPDATE %s SET %s WHERE id=?`, s.Table, strings.Join(sets, ","))
	res, err := s.DB.ExecContext(ctx, q, args...)
	if err != nil {
		var zero M
		return zero, fmt.Errorf("update %s: %w", s.Table, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		var zero M
		return zero, ErrNotFound
	}
	return s.Get(ctx, id)
}

// Delete removes the record with the given id, or returns ErrNotFound.
func (s *Store[M, C, U]) Delete(ctx context.Context, id string) error {
	res, err := s.DB.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id=?`, s.Table), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of records.
func (s *Store[M, C, U]) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.DB.QueryRowContext(ctx, fmt.Sprintf(`SELECT COUNT(*) FROM %s`, s.Table)).Scan(&n)
	return n, err
}
