package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"leadmend/internal/domain"
	"leadmend/internal/middleware"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN", "forbidden"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid credentials"
	case errors.Is(err, domain.ErrUserInactive):
		return http.StatusForbidden, "USER_INACTIVE", "user is inactive"
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict, "DUPLICATE_EMAIL", "an account with that email already exists"
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusNotFound, "SESSION_NOT_FOUND", "import session not found"
	case errors.Is(err, domain.ErrInvalidWorkflow):
		return http.StatusBadRequest, "INVALID_WORKFLOW", "unknown workflow"
	case errors.Is(err, domain.ErrInvalidFileType):
		return http.StatusBadRequest, "INVALID_FILE_TYPE", "please upload a CSV file"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file size must be less than 10MB"
	case errors.Is(err, domain.ErrEmptyFile):
		return http.StatusBadRequest, "EMPTY_FILE", "the file contains no data rows"
	case errors.Is(err, domain.ErrUnknownOption):
		return http.StatusBadRequest, "UNKNOWN_OPTION", "unknown enrichment option for this workflow"
	case errors.Is(err, domain.ErrUnknownPrompt):
		return http.StatusBadRequest, "UNKNOWN_PROMPT", "unknown questionnaire prompt for this workflow"
	case errors.Is(err, domain.ErrNoFileLoaded):
		return http.StatusConflict, "NO_FILE_LOADED", "upload a CSV file before submitting"
	case errors.Is(err, domain.ErrMissingSelection):
		return http.StatusBadRequest, "MISSING_SELECTION", "complete the workflow inputs before submitting"
	case errors.Is(err, domain.ErrSubmitInFlight):
		return http.StatusConflict, "SUBMIT_IN_FLIGHT", "an enrichment is already in progress for this session"
	case errors.Is(err, domain.ErrAlreadyEnriched):
		return http.StatusConflict, "ALREADY_ENRICHED", "session already enriched; reset to start over"
	case errors.Is(err, domain.ErrSessionReset):
		return http.StatusConflict, "SESSION_RESET", "session was reset while the enrichment was running"
	case errors.Is(err, domain.ErrEmptyResult):
		return http.StatusBadGateway, "EMPTY_RESULT", "the enrichment service returned no data"
	case errors.Is(err, domain.ErrEnrichmentFailed):
		return http.StatusBadGateway, "ENRICHMENT_FAILED", enrichmentMessage(err)
	case errors.Is(err, domain.ErrNoArtifact):
		return http.StatusConflict, "NO_ARTIFACT", "no enriched data available for download"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// enrichmentMessage surfaces the backend's failure text carried on the
// error. The sentinel's own wording is the fallback when nothing was
// carried.
func enrichmentMessage(err error) string {
	msg := strings.TrimSpace(err.Error())
	if msg == "" {
		return domain.ErrEnrichmentFailed.Error()
	}
	return strings.ReplaceAll(msg, "\n", "; ")
}

// requireUser extracts the authenticated user ID from the request context.
// Returns false if it is missing (error response already written).
func requireUser(c *gin.Context) (uuid.UUID, bool) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return uuid.Nil, false
	}
	return userID, true
}

// sessionID parses the :id path parameter.
func sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid session id")
		return uuid.Nil, false
	}
	return id, true
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}
