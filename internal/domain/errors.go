package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is inactive")
	ErrDuplicateEmail     = errors.New("email already registered")

	ErrInvalidFileType = errors.New("file must have a .csv extension")
	ErrFileTooLarge    = errors.New("file exceeds maximum allowed size")
	ErrEmptyFile       = errors.New("csv file contains no data rows")

	ErrInvalidWorkflow  = errors.New("unknown workflow")
	ErrUnknownOption    = errors.New("option is not defined for this workflow")
	ErrUnknownPrompt    = errors.New("prompt is not defined for this workflow")
	ErrMissingSelection = errors.New("enrichment requires at least one option or a completed questionnaire")
	ErrNoFileLoaded     = errors.New("no csv file has been loaded")
	ErrSubmitInFlight   = errors.New("a submission is already in progress")
	ErrAlreadyEnriched  = errors.New("session already holds an enriched result; reset to submit again")
	ErrSessionReset     = errors.New("session was reset while the submission was in flight")
	ErrEnrichmentFailed = errors.New("failed to enrich data, please try again")
	ErrEmptyResult      = errors.New("enrichment returned an empty result")
	ErrNoArtifact       = errors.New("no enriched artifact available for download")
	ErrSessionNotFound  = errors.New("import session not found")
)
