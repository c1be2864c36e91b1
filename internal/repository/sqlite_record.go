package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/linebrief/internal/db"
	"github.com/alexanderramin/linebrief/internal/domain"
)

// RecordRepo reads and writes the module record mirror.
type RecordRepo interface {
	Records(ctx context.Context, key domain.ModuleKey) ([]domain.Record, error)
	Count(ctx context.Context, key domain.ModuleKey) (int, error)
	RegisterModule(ctx context.Context, key domain.ModuleKey, tabOrder int) error
	Insert(ctx context.Context, position int, r domain.Record) error
}

// SQLiteRecordRepo implements RecordRepo on the in-memory SQLite mirror.
type SQLiteRecordRepo struct {
	db db.DBTX
}

// NewSQLiteRecordRepo creates a new SQLiteRecordRepo.
func NewSQLiteRecordRepo(conn db.DBTX) *SQLiteRecordRepo {
	return &SQLiteRecordRepo{db: conn}
}

var _ RecordRepo = (*SQLiteRecordRepo)(nil)

func (r *SQLiteRecordRepo) RegisterModule(ctx context.Context, key domain.ModuleKey, tabOrder int) error {
	if !key.Valid() {
		return fmt.Errorf("registering module %q: %w", key, ErrUnknownModule)
	}
	_, err := r.db.ExecContext(ctx, `INSERT INTO modules (key, tab_order) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET tab_order = excluded.tab_order`, string(key), tabOrder)
	if err != nil {
		return fmt.Errorf("registering module %q: %w", key, err)
	}
	return nil
}

func (r *SQLiteRecordRepo) Insert(ctx context.Context, position int, rec domain.Record) error {
	fields := rec.Fields()
	if len(fields) != domain.RecordFieldCount {
		return fmt.Errorf("inserting %s record: expected %d fields, got %d", rec.Module(), domain.RecordFieldCount, len(fields))
	}
	query := `INSERT INTO module_records (module, position, field_1, field_2, field_3, field_4, badge)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		string(rec.Module()),
		position,
		fields[0],
		fields[1],
		fields[2],
		fields[3],
		string(rec.Severity()),
	)
	if err != nil {
		return fmt.Errorf("inserting %s record %d: %w", rec.Module(), position, err)
	}
	return nil
}

// Records returns the module's records in their fixed order.
func (r *SQLiteRecordRepo) Records(ctx context.Context, key domain.ModuleKey) ([]domain.Record, error) {
	if !key.Valid() {
		return nil, fmt.Errorf("listing records for %q: %w", key, ErrUnknownModule)
	}
	query := `SELECT module, field_1, field_2, field_3, field_4, badge
		FROM module_records WHERE module = ? ORDER BY position`
	rows, err := r.db.QueryContext(ctx, query, string(key))
	if err != nil {
		return nil, fmt.Errorf("listing %s records: %w", key, err)
	}
	defer rows.Close()

	var out []domain.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s records: %w", key, err)
	}
	return out, nil
}

func (r *SQLiteRecordRepo) Count(ctx context.Context, key domain.ModuleKey) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM module_records WHERE module = ?`, string(key)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting %s records: %w", key, err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(s rowScanner) (domain.Record, error) {
	var module, badge string
	fields := make([]string, domain.RecordFieldCount)
	if err := s.Scan(&module, &fields[0], &fields[1], &fields[2], &fields[3], &badge); err != nil {
		return nil, fmt.Errorf("scanning record: %w", err)
	}
	rec, err := domain.NewRecord(domain.ModuleKey(module), fields, domain.BadgeSeverity(badge))
	if err != nil {
		return nil, fmt.Errorf("decoding record: %w", err)
	}
	return rec, nil
}
