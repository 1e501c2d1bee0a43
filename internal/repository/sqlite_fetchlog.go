package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ml4phys/lhcdata/internal/db"
	"github.com/ml4phys/lhcdata/internal/domain"
)

// SQLiteFetchLogRepo implements FetchLogRepo using a SQLite database.
type SQLiteFetchLogRepo struct {
	db db.DBTX
}

// NewSQLiteFetchLogRepo creates a new SQLiteFetchLogRepo.
func NewSQLiteFetchLogRepo(conn db.DBTX) *SQLiteFetchLogRepo {
	return &SQLiteFetchLogRepo{db: conn}
}

const fetchLogColumns = `id, dataset_id, archive, description, dest_dir, archive_bytes, file_count, duration_ms, fetched_at`

func (r *SQLiteFetchLogRepo) Record(ctx context.Context, rec *domain.FetchRecord) error {
	query := `INSERT INTO fetch_log (` + fetchLogColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.DatasetID,
		rec.Archive,
		rec.Description,
		rec.DestDir,
		rec.ArchiveBytes,
		rec.FileCount,
		rec.Duration.Milliseconds(),
		rec.FetchedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting fetch record: %w", err)
	}
	return nil
}

func (r *SQLiteFetchLogRepo) ListRecent(ctx context.Context, limit int) ([]*domain.FetchRecord, error) {
	query := `SELECT ` + fetchLogColumns + `
		FROM fetch_log ORDER BY fetched_at DESC, id LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing fetch records: %w", err)
	}
	defer rows.Close()

	var records []*domain.FetchRecord
	for rows.Next() {
		rec, err := scanFetchRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating fetch records: %w", err)
	}
	return records, nil
}

func (r *SQLiteFetchLogRepo) LastByDataset(ctx context.Context, datasetID int) (*domain.FetchRecord, error) {
	query := `SELECT ` + fetchLogColumns + `
		FROM fetch_log WHERE dataset_id = ? ORDER BY fetched_at DESC, id LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, datasetID)

	rec, err := scanFetchRecord(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("fetch record for dataset %d: %w", datasetID, ErrNotFound)
		}
		return nil, err
	}
	return rec, nil
}

// scanFetchRecord scans one manifest row from a *sql.Row or *sql.Rows.
func scanFetchRecord(s rowScanner) (*domain.FetchRecord, error) {
	var rec domain.FetchRecord
	var durationMs int64
	var fetchedAtStr string

	err := s.Scan(
		&rec.ID, &rec.DatasetID, &rec.Archive, &rec.Description,
		&rec.DestDir, &rec.ArchiveBytes, &rec.FileCount,
		&durationMs, &fetchedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning fetch record: %w", err)
	}

	rec.Duration = msToDuration(durationMs)
	rec.FetchedAt, err = time.Parse(time.RFC3339, fetchedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing fetched_at: %w", err)
	}
	return &rec, nil
}
