package handler

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"leadmend/internal/domain"
	"leadmend/internal/service"
	"leadmend/internal/workflow"
)

// SessionHandler handles import session endpoints.
type SessionHandler struct {
	importService service.ImportService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(importService service.ImportService) *SessionHandler {
	return &SessionHandler{importService: importService}
}

// Create handles POST /api/v1/sessions
// @Summary Open an import session for a workflow
// @Tags sessions
// @Accept json
// @Produce json
// @Param input body CreateSessionRequest true "Workflow to run"
// @Success 201 {object} Response{data=session.State} "Session created"
// @Failure 400 {object} ErrorResponseBody "Unknown workflow"
// @Security BearerAuth
// @Router /sessions [post]
func (h *SessionHandler) Create(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var input CreateSessionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	state, err := h.importService.CreateSession(userID, workflow.ID(input.Workflow))
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, state)
}

// Get handles GET /api/v1/sessions/:id
// @Summary Fetch the current state of a session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} Response{data=session.State}
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Security BearerAuth
// @Router /sessions/{id} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := sessionID(c)
	if !ok {
		return
	}

	state, err := h.importService.GetSession(userID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, state)
}

// UploadFile handles POST /api/v1/sessions/:id/file
// @Summary Load a CSV file into the session
// @Description Accepts a .csv file up to 10MB and returns the source preview.
// @Tags sessions
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Session ID"
// @Param file formData file true "CSV file"
// @Success 200 {object} Response{data=session.State} "File loaded"
// @Failure 400 {object} ErrorResponseBody "Not a CSV or empty file"
// @Failure 413 {object} ErrorResponseBody "File too large"
// @Security BearerAuth
// @Router /sessions/{id}/file [post]
func (h *SessionHandler) UploadFile(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := sessionID(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "UNREADABLE_FILE", "could not read uploaded file")
		return
	}

	state, err := h.importService.LoadFile(userID, id, header.Filename, data)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, state)
}

// SetOption handles PUT /api/v1/sessions/:id/options
// @Summary Toggle an enrichment option
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param input body SetOptionRequest true "Option toggle"
// @Success 200 {object} Response{data=session.State}
// @Failure 400 {object} ErrorResponseBody "Unknown option for this workflow"
// @Security BearerAuth
// @Router /sessions/{id}/options [put]
func (h *SessionHandler) SetOption(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var input SetOptionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	state, err := h.importService.SetOption(userID, id, input.Name, input.Enabled)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, state)
}

// SetAnswer handles PUT /api/v1/sessions/:id/answers
// @Summary Record a questionnaire answer
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param input body SetAnswerRequest true "Prompt answer"
// @Success 200 {object} Response{data=session.State}
// @Failure 400 {object} ErrorResponseBody "Unknown prompt for this workflow"
// @Security BearerAuth
// @Router /sessions/{id}/answers [put]
func (h *SessionHandler) SetAnswer(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var input SetAnswerRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	state, err := h.importService.SetAnswer(userID, id, input.Prompt, input.Text)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, state)
}

// Submit handles POST /api/v1/sessions/:id/submit
// @Summary Send the loaded file for enrichment
// @Description Blocks until the enrichment service responds, then returns the enriched preview.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} Response{data=session.State} "Enriched"
// @Failure 400 {object} ErrorResponseBody "Workflow inputs incomplete"
// @Failure 409 {object} ErrorResponseBody "No file, submit in flight, or already enriched"
// @Failure 502 {object} ErrorResponseBody "Enrichment service failed"
// @Security BearerAuth
// @Router /sessions/{id}/submit [post]
func (h *SessionHandler) Submit(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := sessionID(c)
	if !ok {
		return
	}

	state, err := h.importService.Submit(c.Request.Context(), userID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, state)
}

// Download handles GET /api/v1/sessions/:id/download?format=csv|xlsx
// @Summary Download the enriched artifact
// @Tags sessions
// @Produce text/csv
// @Param id path string true "Session ID"
// @Param format query string false "csv (default) or xlsx"
// @Success 200 {file} file "Enriched file"
// @Failure 409 {object} ErrorResponseBody "No enriched data available"
// @Security BearerAuth
// @Router /sessions/{id}/download [get]
func (h *SessionHandler) Download(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := sessionID(c)
	if !ok {
		return
	}

	format := domain.DownloadFormat(strings.ToLower(c.DefaultQuery("format", string(domain.FormatCSV))))
	if format != domain.FormatCSV && format != domain.FormatXLSX {
		RespondError(c, http.StatusBadRequest, "INVALID_FORMAT", "format must be csv or xlsx")
		return
	}

	artifact, err := h.importService.Download(userID, id, format)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}

// Reset handles POST /api/v1/sessions/:id/reset
// @Summary Clear the session back to its initial state
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} Response{data=session.State} "Session cleared"
// @Security BearerAuth
// @Router /sessions/{id}/reset [post]
func (h *SessionHandler) Reset(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := sessionID(c)
	if !ok {
		return
	}

	state, err := h.importService.Reset(userID, id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, state)
}

// Delete handles DELETE /api/v1/sessions/:id
// @Summary Close a session and discard its data
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} Response{data=MessageResponse}
// @Failure 404 {object} ErrorResponseBody "Session not found"
// @Security BearerAuth
// @Router /sessions/{id} [delete]
func (h *SessionHandler) Delete(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	id, ok := sessionID(c)
	if !ok {
		return
	}

	if err := h.importService.Close(userID, id); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "session closed"})
}
