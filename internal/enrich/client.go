// Package enrich implements the HTTP client for the external enrichment
// backend. The backend does all of the actual data work; this client only
// ships the CSV and form fields over and hands the CSV response back.
package enrich

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sort"
	"strings"
	"time"

	"leadmend/internal/config"
	"leadmend/internal/domain"
	"leadmend/internal/port"
)

// Client implements port.EnrichmentClient over multipart/form-data POST.
type Client struct {
	baseURL  string
	apiToken string
	client   *http.Client
}

// NewClient creates an enrichment client from config. A zero timeout falls
// back to 300s; enrichment of large files is slow but must not hang forever.
func NewClient(cfg *config.EnrichConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSecs) * time.Second
	if timeout == 0 {
		timeout = 300 * time.Second
	}
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		apiToken: cfg.APIToken,
		client:   &http.Client{Timeout: timeout},
	}
}

// Enrich POSTs the file and form fields to the workflow endpoint and returns
// the raw CSV response bytes. Any transport failure or non-2xx status is
// returned as domain.ErrEnrichmentFailed carrying the backend's message when
// one is available.
func (c *Client) Enrich(ctx context.Context, input port.EnrichInput) ([]byte, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", input.FileName)
	if err != nil {
		return nil, fmt.Errorf("creating file part: %w", err)
	}
	if _, err := part.Write(input.FileBytes); err != nil {
		return nil, fmt.Errorf("writing file part: %w", err)
	}

	// Stable field order keeps request bodies reproducible across retries.
	names := make([]string, 0, len(input.Fields))
	for name := range input.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := writer.WriteField(name, input.Fields[name]); err != nil {
			return nil, fmt.Errorf("writing field %s: %w", name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("closing multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+input.Path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrEnrichmentFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", domain.ErrEnrichmentFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := strings.TrimSpace(string(respBody))
		if msg == "" {
			return nil, fmt.Errorf("%w (status %d)", domain.ErrEnrichmentFailed, resp.StatusCode)
		}
		return nil, fmt.Errorf("%w (status %d): %s", domain.ErrEnrichmentFailed, resp.StatusCode, truncate(msg, 500))
	}

	return respBody, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
