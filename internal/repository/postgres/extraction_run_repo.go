package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"vivaran/internal/domain"
	"vivaran/internal/port"
)

type extractionRunRepo struct {
	db *sqlx.DB
}

// NewExtractionRunRepo creates a new PostgreSQL-backed ExtractionRunRepository.
func NewExtractionRunRepo(db *sqlx.DB) port.ExtractionRunRepository {
	return &extractionRunRepo{db: db}
}

func (r *extractionRunRepo) Create(ctx context.Context, run *domain.ExtractionRun) error {
	run.CreatedAt = time.Now().UTC()

	query := `INSERT INTO extraction_runs
		(id, source_file, file_type, status, model_used, total_chunks,
		 failed_chunks, key_errors, merged_data, s3_bucket, s3_key_prefix, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.ExecContext(ctx, query,
		run.ID, run.SourceFile, run.FileType, run.Status, run.ModelUsed,
		run.TotalChunks, run.FailedChunks, run.KeyErrors, run.MergedData,
		run.S3Bucket, run.S3KeyPrefix, run.CreatedAt)
	if err != nil {
		return fmt.Errorf("extractionRunRepo.Create: %w", err)
	}
	return nil
}

func (r *extractionRunRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ExtractionRun, error) {
	var run domain.ExtractionRun
	err := r.db.GetContext(ctx, &run,
		"SELECT * FROM extraction_runs WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("extractionRunRepo.GetByID: %w", err)
	}
	return &run, nil
}

func (r *extractionRunRepo) List(ctx context.Context, offset, limit int) ([]domain.ExtractionRun, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM extraction_runs")
	if err != nil {
		return nil, 0, fmt.Errorf("extractionRunRepo.List count: %w", err)
	}

	var runs []domain.ExtractionRun
	err = r.db.SelectContext(ctx, &runs,
		`SELECT * FROM extraction_runs
		 ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("extractionRunRepo.List: %w", err)
	}
	return runs, total, nil
}
