// Package session implements the import session: the state machine that
// carries one CSV upload from raw file through preview, option selection,
// enrichment submission, and artifact download.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"leadmend/internal/csvtable"
	"leadmend/internal/domain"
	"leadmend/internal/port"
	"leadmend/internal/workflow"
)

// UploadedFile is the raw payload selected by the user.
type UploadedFile struct {
	Name    string
	Size    int64
	Content []byte
}

// Artifact is the result of a successful enrichment call: a bounded preview
// plus the raw response bytes kept verbatim for download.
type Artifact struct {
	Preview *csvtable.Table
	Raw     []byte
}

// Limits bounds what a session accepts.
type Limits struct {
	MaxFileBytes int64
	PreviewRows  int
}

// Session owns the lifecycle of one upload. All state transitions happen
// under the session mutex; the Submitting phase acts as the mutex for the
// network call itself, so at most one submission is in flight at a time.
type Session struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Workflow *workflow.Definition

	mu         sync.Mutex
	phase      domain.Phase
	file       *UploadedFile
	preview    *csvtable.Table
	artifact   *Artifact
	options    map[string]bool
	answers    map[string]string
	limits     Limits
	generation uint64
	touchedAt  time.Time
}

// New creates an empty session for the given workflow.
func New(userID uuid.UUID, def *workflow.Definition, limits Limits) *Session {
	if limits.PreviewRows <= 0 {
		limits.PreviewRows = csvtable.PreviewRowLimit
	}
	return &Session{
		ID:        uuid.New(),
		UserID:    userID,
		Workflow:  def,
		phase:     domain.PhaseEmpty,
		options:   make(map[string]bool),
		answers:   make(map[string]string),
		limits:    limits,
		touchedAt: time.Now(),
	}
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() domain.Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// LastTouched returns the time of the last successful operation, used by the
// store janitor to evict abandoned sessions.
func (s *Session) LastTouched() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touchedAt
}

// LoadFile validates and parses a CSV upload. The name must end in .csv
// (case-insensitive) and the payload must not exceed the size ceiling; the
// boundary itself is accepted. A file that parses to zero records is
// rejected. Every failure leaves the session exactly as it was. Success
// replaces the stored file and source preview, discards any prior enriched
// artifact, and moves the session to Loaded.
func (s *Session) LoadFile(name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == domain.PhaseSubmitting {
		return domain.ErrSubmitInFlight
	}
	if !strings.HasSuffix(strings.ToLower(name), ".csv") {
		return domain.ErrInvalidFileType
	}
	if int64(len(data)) > s.limits.MaxFileBytes {
		return domain.ErrFileTooLarge
	}

	records := csvtable.Parse(string(data))
	if len(records) == 0 {
		return domain.ErrEmptyFile
	}

	s.file = &UploadedFile{Name: name, Size: int64(len(data)), Content: data}
	s.preview = csvtable.New(records, s.limits.PreviewRows)
	s.artifact = nil
	s.phase = domain.PhaseLoaded
	s.touchedAt = time.Now()
	return nil
}

// SetOption toggles a boolean enrichment flag. The name must be declared by
// the active workflow. Mutations are rejected while a submission is in
// flight; the phase never changes.
func (s *Session) SetOption(name string, enabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == domain.PhaseSubmitting {
		return domain.ErrSubmitInFlight
	}
	if !s.Workflow.HasOption(name) {
		return domain.ErrUnknownOption
	}
	s.options[name] = enabled
	s.touchedAt = time.Now()
	return nil
}

// SetAnswer records a questionnaire answer for a prompt declared by the
// active workflow.
func (s *Session) SetAnswer(promptID, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase == domain.PhaseSubmitting {
		return domain.ErrSubmitInFlight
	}
	if !s.Workflow.HasPrompt(promptID) {
		return domain.ErrUnknownPrompt
	}
	s.answers[promptID] = text
	s.touchedAt = time.Now()
	return nil
}

// CanSubmit reports whether a submission would be accepted right now. It is
// derived from current state on every call: a file must be loaded, a
// workflow with an options panel needs at least one toggle enabled, and every
// required prompt needs non-blank trimmed text.
func (s *Session) CanSubmit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canSubmitLocked()
}

func (s *Session) canSubmitLocked() bool {
	if s.file == nil {
		return false
	}
	if s.Workflow.HasOptionsPanel() {
		any := false
		for _, flag := range s.Workflow.OptionFlags {
			if s.options[flag] {
				any = true
				break
			}
		}
		if !any {
			return false
		}
	}
	for _, prompt := range s.Workflow.RequiredPrompts {
		if strings.TrimSpace(s.answers[prompt]) == "" {
			return false
		}
	}
	return true
}

// Submit sends the complete original file to the enrichment backend and, on
// success, stores the enriched artifact and moves the session to Enriched.
// Valid only from Loaded with CanSubmit true. The network call runs outside
// the lock under the caller's context; a concurrent second Submit is rejected
// without issuing a request. Failure returns the session to Loaded so the
// submission can be retried with selections intact. A Reset that lands while
// the call is in flight wins: the late result is discarded.
func (s *Session) Submit(ctx context.Context, client port.EnrichmentClient) (*csvtable.Table, error) {
	s.mu.Lock()
	switch s.phase {
	case domain.PhaseSubmitting:
		s.mu.Unlock()
		return nil, domain.ErrSubmitInFlight
	case domain.PhaseEnriched:
		s.mu.Unlock()
		return nil, domain.ErrAlreadyEnriched
	case domain.PhaseEmpty:
		s.mu.Unlock()
		return nil, domain.ErrNoFileLoaded
	}
	if !s.canSubmitLocked() {
		s.mu.Unlock()
		return nil, domain.ErrMissingSelection
	}

	gen := s.generation
	input := port.EnrichInput{
		Path:      s.Workflow.Path,
		FileName:  s.file.Name,
		FileBytes: s.file.Content,
		Fields:    workflow.BuildFormFields(s.Workflow, s.options, s.answers),
	}
	s.phase = domain.PhaseSubmitting
	s.mu.Unlock()

	raw, err := client.Enrich(ctx, input)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.generation != gen {
		return nil, domain.ErrSessionReset
	}
	if err != nil {
		s.phase = domain.PhaseLoaded
		if !errors.Is(err, domain.ErrEnrichmentFailed) {
			err = errors.Join(domain.ErrEnrichmentFailed, err)
		}
		return nil, err
	}

	records := csvtable.Parse(string(raw))
	if len(records) == 0 {
		s.phase = domain.PhaseLoaded
		return nil, domain.ErrEmptyResult
	}

	s.artifact = &Artifact{
		Preview: csvtable.New(records, s.limits.PreviewRows),
		Raw:     raw,
	}
	s.phase = domain.PhaseEnriched
	s.touchedAt = time.Now()
	return s.artifact.Preview, nil
}

// Download returns the raw artifact bytes and the computed download filename.
// Valid only in Enriched; a pure read with no state transition.
func (s *Session) Download() (string, []byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != domain.PhaseEnriched || s.artifact == nil {
		return "", nil, domain.ErrNoArtifact
	}
	return DownloadFilename(s.file), s.artifact.Raw, nil
}

// Artifact returns the enriched artifact, or nil before enrichment.
func (s *Session) Artifact() *Artifact {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.artifact
}

// File returns the uploaded file, or nil before a load.
func (s *Session) File() *UploadedFile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file
}

// Reset clears the file, previews, artifact, and all selections, returning
// the session to Empty. Valid from every state and idempotent; a reset during
// an in-flight submission causes that submission's result to be discarded.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.generation++
	s.phase = domain.PhaseEmpty
	s.file = nil
	s.preview = nil
	s.artifact = nil
	s.options = make(map[string]bool)
	s.answers = make(map[string]string)
	s.touchedAt = time.Now()
}

// DownloadFilename computes the artifact download name from the original
// upload, falling back to a generic name when none is known.
func DownloadFilename(file *UploadedFile) string {
	if file == nil || file.Name == "" {
		return "enriched_data.csv"
	}
	return "enriched_" + file.Name
}
