package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"leadmend/internal/config"
	"leadmend/internal/csvtable"
	"leadmend/internal/domain"
	"leadmend/internal/export"
	"leadmend/internal/port"
	"leadmend/internal/session"
	"leadmend/internal/workflow"
)

// DownloadArtifact is the rendered download payload.
type DownloadArtifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ImportService orchestrates import sessions: session lifecycle, enrichment
// submission with job recording and artifact archival, and downloads.
type ImportService interface {
	CreateSession(userID uuid.UUID, workflowID workflow.ID) (session.State, error)
	GetSession(userID, sessionID uuid.UUID) (session.State, error)
	LoadFile(userID, sessionID uuid.UUID, name string, data []byte) (session.State, error)
	SetOption(userID, sessionID uuid.UUID, name string, enabled bool) (session.State, error)
	SetAnswer(userID, sessionID uuid.UUID, promptID, text string) (session.State, error)
	Submit(ctx context.Context, userID, sessionID uuid.UUID) (session.State, error)
	Download(userID, sessionID uuid.UUID, format domain.DownloadFormat) (*DownloadArtifact, error)
	Reset(userID, sessionID uuid.UUID) (session.State, error)
	Close(userID, sessionID uuid.UUID) error
}

type importService struct {
	store   *session.Store
	client  port.EnrichmentClient
	jobRepo port.JobRepository
	storage port.ObjectStorage
	s3cfg   *config.S3Config
}

// NewImportService creates a new ImportService implementation. storage may be
// nil, in which case artifacts are not archived.
func NewImportService(
	store *session.Store,
	client port.EnrichmentClient,
	jobRepo port.JobRepository,
	storage port.ObjectStorage,
	s3cfg *config.S3Config,
) ImportService {
	return &importService{
		store:   store,
		client:  client,
		jobRepo: jobRepo,
		storage: storage,
		s3cfg:   s3cfg,
	}
}

func (s *importService) CreateSession(userID uuid.UUID, workflowID workflow.ID) (session.State, error) {
	def, err := workflow.Get(workflowID)
	if err != nil {
		return session.State{}, err
	}
	sess := s.store.Create(userID, def)
	log.Printf("importService: session %s opened (workflow=%s, user=%s)", sess.ID, workflowID, userID)
	return sess.Snapshot(), nil
}

func (s *importService) GetSession(userID, sessionID uuid.UUID) (session.State, error) {
	sess, err := s.store.Get(userID, sessionID)
	if err != nil {
		return session.State{}, err
	}
	return sess.Snapshot(), nil
}

func (s *importService) LoadFile(userID, sessionID uuid.UUID, name string, data []byte) (session.State, error) {
	sess, err := s.store.Get(userID, sessionID)
	if err != nil {
		return session.State{}, err
	}
	if err := sess.LoadFile(name, data); err != nil {
		return session.State{}, err
	}
	return sess.Snapshot(), nil
}

func (s *importService) SetOption(userID, sessionID uuid.UUID, name string, enabled bool) (session.State, error) {
	sess, err := s.store.Get(userID, sessionID)
	if err != nil {
		return session.State{}, err
	}
	if err := sess.SetOption(name, enabled); err != nil {
		return session.State{}, err
	}
	return sess.Snapshot(), nil
}

func (s *importService) SetAnswer(userID, sessionID uuid.UUID, promptID, text string) (session.State, error) {
	sess, err := s.store.Get(userID, sessionID)
	if err != nil {
		return session.State{}, err
	}
	if err := sess.SetAnswer(promptID, text); err != nil {
		return session.State{}, err
	}
	return sess.Snapshot(), nil
}

func (s *importService) Submit(ctx context.Context, userID, sessionID uuid.UUID) (session.State, error) {
	sess, err := s.store.Get(userID, sessionID)
	if err != nil {
		return session.State{}, err
	}

	before := sess.Snapshot()
	preview, err := sess.Submit(ctx, s.client)
	if err != nil {
		// Only attempts that reached the backend are recorded; client-side
		// guards (missing selection, submit in flight, reset race) are not
		// history.
		if errors.Is(err, domain.ErrEnrichmentFailed) || errors.Is(err, domain.ErrEmptyResult) {
			s.recordJob(ctx, userID, sess, before, domain.JobStatusFailed, err.Error(), nil)
		}
		return session.State{}, err
	}

	job := s.recordJob(ctx, userID, sess, before, domain.JobStatusCompleted, "", preview)
	if job != nil {
		log.Printf("importService: session %s enriched %d rows (job=%s)", sess.ID, preview.TotalRows, job.ID)
	}

	return sess.Snapshot(), nil
}

// recordJob persists a history row for a submission attempt and, on success,
// archives the artifact. Both are best-effort: the enrichment outcome is
// already decided and must not be failed retroactively.
func (s *importService) recordJob(
	ctx context.Context,
	userID uuid.UUID,
	sess *session.Session,
	before session.State,
	status domain.JobStatus,
	errMsg string,
	enriched *csvtable.Table,
) *domain.EnrichmentJob {
	job := &domain.EnrichmentJob{
		ID:       uuid.New(),
		UserID:   userID,
		Workflow: string(before.Workflow),
		Status:   status,
	}
	if before.File != nil {
		job.OriginalName = before.File.Name
	}
	if enriched != nil {
		job.RowCount = enriched.TotalRows
		job.ColumnCount = enriched.Columns
	} else if before.SourcePreview != nil {
		job.RowCount = before.SourcePreview.TotalRows
		job.ColumnCount = before.SourcePreview.Columns
	}
	if errMsg != "" {
		job.ErrorMessage = errMsg
	}

	if status == domain.JobStatusCompleted && s.storage != nil {
		if bucket, key, err := s.archiveArtifact(ctx, userID, job.ID, sess); err != nil {
			log.Printf("importService: archiving artifact for job %s failed: %v", job.ID, err)
		} else {
			job.S3Bucket = bucket
			job.S3Key = key
		}
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		log.Printf("importService: recording job for session %s failed: %v", sess.ID, err)
		return nil
	}
	return job
}

func (s *importService) archiveArtifact(ctx context.Context, userID, jobID uuid.UUID, sess *session.Session) (bucket, key string, err error) {
	name, raw, err := sess.Download()
	if err != nil {
		return "", "", err
	}

	key = fmt.Sprintf("users/%s/jobs/%s/%s", userID, jobID, name)
	err = s.storage.Put(ctx, port.PutObjectInput{
		Bucket:      s.s3cfg.Bucket,
		Key:         key,
		ContentType: "text/csv",
		Body:        bytes.NewReader(raw),
	})
	if err != nil {
		return "", "", err
	}
	return s.s3cfg.Bucket, key, nil
}

func (s *importService) Download(userID, sessionID uuid.UUID, format domain.DownloadFormat) (*DownloadArtifact, error) {
	sess, err := s.store.Get(userID, sessionID)
	if err != nil {
		return nil, err
	}

	name, raw, err := sess.Download()
	if err != nil {
		return nil, err
	}

	switch format {
	case domain.FormatCSV, "":
		return &DownloadArtifact{
			Filename:    name,
			ContentType: "text/csv",
			Data:        raw,
		}, nil
	case domain.FormatXLSX:
		var buf bytes.Buffer
		if err := export.WriteXLSX(&buf, csvtable.Parse(string(raw))); err != nil {
			return nil, fmt.Errorf("rendering xlsx: %w", err)
		}
		return &DownloadArtifact{
			Filename:    export.XLSXFilename(name),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        buf.Bytes(),
		}, nil
	default:
		return nil, fmt.Errorf("unsupported download format: %s", format)
	}
}

func (s *importService) Reset(userID, sessionID uuid.UUID) (session.State, error) {
	sess, err := s.store.Get(userID, sessionID)
	if err != nil {
		return session.State{}, err
	}
	sess.Reset()
	return sess.Snapshot(), nil
}

func (s *importService) Close(userID, sessionID uuid.UUID) error {
	return s.store.Delete(userID, sessionID)
}
