package port

import (
	"context"

	"github.com/google/uuid"

	"leadmend/internal/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// JobRepository defines persistence operations for enrichment job history.
type JobRepository interface {
	Create(ctx context.Context, job *domain.EnrichmentJob) error
	GetByID(ctx context.Context, userID, jobID uuid.UUID) (*domain.EnrichmentJob, error)
	ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.EnrichmentJob, int, error)
	Delete(ctx context.Context, userID, jobID uuid.UUID) error
}
