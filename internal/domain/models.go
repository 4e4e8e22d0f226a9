package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered Lead Mend account.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// EnrichmentJob is the persisted record of one submission, successful or not.
// It backs the recent-activity listing and, when the artifact was archived,
// carries the object key for later retrieval.
type EnrichmentJob struct {
	ID           uuid.UUID `db:"id" json:"id"`
	UserID       uuid.UUID `db:"user_id" json:"user_id"`
	Workflow     string    `db:"workflow" json:"workflow"`
	OriginalName string    `db:"original_name" json:"original_name"`
	RowCount     int       `db:"row_count" json:"row_count"`
	ColumnCount  int       `db:"column_count" json:"column_count"`
	Status       JobStatus `db:"status" json:"status"`
	ErrorMessage string    `db:"error_message" json:"error_message,omitempty"`
	S3Bucket     string    `db:"s3_bucket" json:"-"`
	S3Key        string    `db:"s3_key" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Archived reports whether the enriched artifact was stored in object storage.
func (j *EnrichmentJob) Archived() bool {
	return j.S3Bucket != "" && j.S3Key != ""
}
