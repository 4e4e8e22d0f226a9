package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"leadmend/internal/domain"
	"leadmend/internal/port"
)

type jobRepo struct {
	db *sqlx.DB
}

// NewJobRepo creates a new PostgreSQL-backed JobRepository.
func NewJobRepo(db *sqlx.DB) port.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.EnrichmentJob) error {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	job.CreatedAt = time.Now().UTC()

	query := `INSERT INTO enrichment_jobs
		(id, user_id, workflow, original_name, row_count, column_count, status,
		 error_message, s3_bucket, s3_key, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.ExecContext(ctx, query,
		job.ID, job.UserID, job.Workflow, job.OriginalName, job.RowCount,
		job.ColumnCount, job.Status, job.ErrorMessage, job.S3Bucket, job.S3Key,
		job.CreatedAt)
	if err != nil {
		return fmt.Errorf("jobRepo.Create: %w", err)
	}
	return nil
}

func (r *jobRepo) GetByID(ctx context.Context, userID, jobID uuid.UUID) (*domain.EnrichmentJob, error) {
	var job domain.EnrichmentJob
	err := r.db.GetContext(ctx, &job,
		"SELECT * FROM enrichment_jobs WHERE id = $1 AND user_id = $2", jobID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("jobRepo.GetByID: %w", err)
	}
	return &job, nil
}

func (r *jobRepo) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.EnrichmentJob, int, error) {
	var total int
	err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM enrichment_jobs WHERE user_id = $1", userID)
	if err != nil {
		return nil, 0, fmt.Errorf("jobRepo.ListByUser count: %w", err)
	}

	jobs := []domain.EnrichmentJob{}
	err = r.db.SelectContext(ctx, &jobs,
		"SELECT * FROM enrichment_jobs WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3",
		userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("jobRepo.ListByUser: %w", err)
	}
	return jobs, total, nil
}

func (r *jobRepo) Delete(ctx context.Context, userID, jobID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM enrichment_jobs WHERE id = $1 AND user_id = $2", jobID, userID)
	if err != nil {
		return fmt.Errorf("jobRepo.Delete: %w", err)
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
