package handler

import (
	"time"
)

// Swagger type definitions for API documentation.
// These types are used by swag to generate OpenAPI documentation.

// --- Request Types ---

// RefreshRequest represents the token refresh request body.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// CreateSessionRequest represents the create session request body.
type CreateSessionRequest struct {
	Workflow string `json:"workflow" binding:"required" example:"company_enrichment"`
}

// SetOptionRequest represents an enrichment option toggle.
type SetOptionRequest struct {
	Name    string `json:"name" binding:"required" example:"company_description"`
	Enabled bool   `json:"enabled" example:"true"`
}

// SetAnswerRequest represents a questionnaire answer.
type SetAnswerRequest struct {
	Prompt string `json:"prompt" binding:"required" example:"question1"`
	Text   string `json:"text" example:"We sell developer tooling to mid-market SaaS companies."`
}

// --- Response Types ---

// TokenResponse represents the authentication token response.
type TokenResponse struct {
	AccessToken  string    `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string    `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt    time.Time `json:"expires_at" example:"2026-01-15T10:30:00Z"`
}

// RegisterResponse represents the signup response.
type RegisterResponse struct {
	User   interface{}   `json:"user"`
	Tokens TokenResponse `json:"tokens"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Error  string `json:"error,omitempty" example:"database not reachable"`
}

// MessageResponse represents a simple message response.
type MessageResponse struct {
	Message string `json:"message" example:"session closed"`
}

// --- Generic Response Wrappers ---

// Response wraps a successful response with data.
type Response struct {
	Success bool        `json:"success" example:"true"`
	Data    interface{} `json:"data,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// ErrorResponseBody wraps an error response.
type ErrorResponseBody struct {
	Success bool      `json:"success" example:"false"`
	Error   *APIError `json:"error"`
}
