package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"leadmend/internal/config"
	"leadmend/internal/domain"
	"leadmend/internal/port"
)

// JobDetail pairs a job record with a short-lived download link for its
// archived artifact, when one exists.
type JobDetail struct {
	Job         *domain.EnrichmentJob `json:"job"`
	DownloadURL string                `json:"download_url,omitempty"`
}

// JobService exposes the enrichment history for the recent activity view.
type JobService interface {
	List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.EnrichmentJob, int, error)
	Get(ctx context.Context, userID, jobID uuid.UUID) (*JobDetail, error)
	Delete(ctx context.Context, userID, jobID uuid.UUID) error
}

type jobService struct {
	jobRepo port.JobRepository
	storage port.ObjectStorage
	s3cfg   *config.S3Config
}

// NewJobService creates a new JobService implementation. storage may be nil,
// in which case download links are never issued.
func NewJobService(jobRepo port.JobRepository, storage port.ObjectStorage, s3cfg *config.S3Config) JobService {
	return &jobService{jobRepo: jobRepo, storage: storage, s3cfg: s3cfg}
}

func (s *jobService) List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.EnrichmentJob, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.jobRepo.ListByUser(ctx, userID, offset, limit)
}

func (s *jobService) Get(ctx context.Context, userID, jobID uuid.UUID) (*JobDetail, error) {
	job, err := s.jobRepo.GetByID(ctx, userID, jobID)
	if err != nil {
		return nil, err
	}

	detail := &JobDetail{Job: job}
	if job.Archived() && s.storage != nil {
		url, err := s.storage.Presign(ctx, job.S3Bucket, job.S3Key, s.s3cfg.PresignExpiry)
		if err != nil {
			// The record is still useful without the link.
			log.Printf("jobService: presigning artifact for job %s failed: %v", job.ID, err)
		} else {
			detail.DownloadURL = url
		}
	}
	return detail, nil
}

func (s *jobService) Delete(ctx context.Context, userID, jobID uuid.UUID) error {
	job, err := s.jobRepo.GetByID(ctx, userID, jobID)
	if err != nil {
		return err
	}
	if err := s.jobRepo.Delete(ctx, userID, jobID); err != nil {
		return err
	}
	if job.Archived() && s.storage != nil {
		if err := s.storage.Delete(ctx, job.S3Bucket, job.S3Key); err != nil {
			// The row is already gone; an orphaned object is acceptable.
			log.Printf("jobService: deleting artifact for job %s failed: %v", job.ID, err)
		}
	}
	return nil
}
