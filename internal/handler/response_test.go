package handler_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"leadmend/internal/domain"
	"leadmend/internal/handler"
)

func TestMapDomainError_EnrichmentFailedCarriesBackendText(t *testing.T) {
	err := fmt.Errorf("%w (status 429): enrichment quota exceeded", domain.ErrEnrichmentFailed)

	status, code, msg := handler.MapDomainError(err)

	assert.Equal(t, http.StatusBadGateway, status)
	assert.Equal(t, "ENRICHMENT_FAILED", code)
	assert.Contains(t, msg, "enrichment quota exceeded")
	assert.Contains(t, msg, "status 429")
}

func TestMapDomainError_EnrichmentFailedBareSentinel(t *testing.T) {
	status, code, msg := handler.MapDomainError(domain.ErrEnrichmentFailed)

	assert.Equal(t, http.StatusBadGateway, status)
	assert.Equal(t, "ENRICHMENT_FAILED", code)
	assert.Equal(t, "failed to enrich data, please try again", msg)
}

func TestMapDomainError_EnrichmentFailedJoinedFlattensNewlines(t *testing.T) {
	err := errors.Join(domain.ErrEnrichmentFailed, errors.New("connection refused"))

	_, _, msg := handler.MapDomainError(err)

	assert.NotContains(t, msg, "\n")
	assert.Contains(t, msg, "connection refused")
}

func TestMapDomainError_Unknown(t *testing.T) {
	status, code, _ := handler.MapDomainError(assert.AnError)

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL_ERROR", code)
}
