package session

import (
	"github.com/google/uuid"

	"leadmend/internal/csvtable"
	"leadmend/internal/domain"
	"leadmend/internal/workflow"
)

// FileInfo describes the uploaded file without exposing its bytes.
type FileInfo struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// State is a point-in-time snapshot of a session, shaped for API responses.
type State struct {
	ID              uuid.UUID         `json:"id"`
	Workflow        workflow.ID       `json:"workflow"`
	Phase           domain.Phase      `json:"phase"`
	CanSubmit       bool              `json:"can_submit"`
	File            *FileInfo         `json:"file,omitempty"`
	SourcePreview   *csvtable.Table   `json:"source_preview,omitempty"`
	EnrichedPreview *csvtable.Table   `json:"enriched_preview,omitempty"`
	Options         map[string]bool   `json:"options,omitempty"`
	Answers         map[string]string `json:"answers,omitempty"`
}

// Snapshot captures the session's current state. Maps and previews are
// copied shallowly; callers must not mutate the returned tables.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := State{
		ID:            s.ID,
		Workflow:      s.Workflow.ID,
		Phase:         s.phase,
		CanSubmit:     s.canSubmitLocked(),
		SourcePreview: s.preview,
	}
	if s.file != nil {
		state.File = &FileInfo{Name: s.file.Name, Size: s.file.Size}
	}
	if s.artifact != nil {
		state.EnrichedPreview = s.artifact.Preview
	}
	if len(s.options) > 0 {
		state.Options = make(map[string]bool, len(s.options))
		for k, v := range s.options {
			state.Options[k] = v
		}
	}
	if len(s.answers) > 0 {
		state.Answers = make(map[string]string, len(s.answers))
		for k, v := range s.answers {
			state.Answers[k] = v
		}
	}
	return state
}
