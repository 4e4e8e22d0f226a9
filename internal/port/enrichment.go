package port

import "context"

// EnrichInput carries one multipart submission to the enrichment backend.
type EnrichInput struct {
	// Path is the workflow-specific endpoint, relative to the backend base URL.
	Path string
	// FileName is the original upload name, forwarded in the file part.
	FileName string
	// FileBytes is the complete original CSV payload, never the preview.
	FileBytes []byte
	// Fields are the string form parts sent alongside the file; boolean
	// toggles arrive pre-serialized as "true"/"false".
	Fields map[string]string
}

// EnrichmentClient abstracts the external enrichment backend. The response is
// an opaque CSV byte stream; a non-2xx status or transport failure must
// surface as an error, never as a partial success.
type EnrichmentClient interface {
	Enrich(ctx context.Context, input EnrichInput) ([]byte, error)
}
