package domain

// Phase represents the lifecycle of an import session.
type Phase string

const (
	PhaseEmpty      Phase = "empty"
	PhaseLoaded     Phase = "loaded"
	PhaseSubmitting Phase = "submitting"
	PhaseEnriched   Phase = "enriched"
)

// JobStatus represents the recorded outcome of an enrichment submission.
type JobStatus string

const (
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

// DownloadFormat selects the artifact download rendering.
type DownloadFormat string

const (
	FormatCSV  DownloadFormat = "csv"
	FormatXLSX DownloadFormat = "xlsx"
)
