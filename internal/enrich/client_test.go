package enrich_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"leadmend/internal/config"
	"leadmend/internal/domain"
	"leadmend/internal/enrich"
	"leadmend/internal/port"
)

func testInput() port.EnrichInput {
	return port.EnrichInput{
		Path:      "/enrich-company",
		FileName:  "companies.csv",
		FileBytes: []byte("name\nAcme\n"),
		Fields: map[string]string{
			"company_description":  "true",
			"company_news_summary": "false",
		},
	}
}

func TestEnrich_SendsMultipartFileAndFields(t *testing.T) {
	var gotPath, gotFile string
	var gotFields map[string]string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.NoError(t, r.ParseMultipartForm(1<<20))

		f, hdr, err := r.FormFile("file")
		assert.NoError(t, err)
		defer f.Close()
		body, _ := io.ReadAll(f)
		gotFile = string(body)
		assert.Equal(t, "companies.csv", hdr.Filename)

		gotFields = make(map[string]string)
		for name, vals := range r.MultipartForm.Value {
			gotFields[name] = vals[0]
		}

		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("name,description\nAcme,widgets\n"))
	}))
	defer srv.Close()

	client := enrich.NewClient(&config.EnrichConfig{BaseURL: srv.URL, TimeoutSecs: 5})

	raw, err := client.Enrich(context.Background(), testInput())

	assert.NoError(t, err)
	assert.Equal(t, "name,description\nAcme,widgets\n", string(raw))
	assert.Equal(t, "/enrich-company", gotPath)
	assert.Equal(t, "name\nAcme\n", gotFile)
	assert.Equal(t, map[string]string{
		"company_description":  "true",
		"company_news_summary": "false",
	}, gotFields)
}

func TestEnrich_AttachesBearerTokenWhenConfigured(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte("a\n1\n"))
	}))
	defer srv.Close()

	client := enrich.NewClient(&config.EnrichConfig{BaseURL: srv.URL, APIToken: "secret-token", TimeoutSecs: 5})

	_, err := client.Enrich(context.Background(), testInput())

	assert.NoError(t, err)
	assert.Equal(t, "Bearer secret-token", gotAuth)
}

func TestEnrich_NoAuthHeaderWithoutToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte("a\n1\n"))
	}))
	defer srv.Close()

	client := enrich.NewClient(&config.EnrichConfig{BaseURL: srv.URL, TimeoutSecs: 5})

	_, err := client.Enrich(context.Background(), testInput())

	assert.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestEnrich_Non2xxSurfacesBackendMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "enrichment quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := enrich.NewClient(&config.EnrichConfig{BaseURL: srv.URL, TimeoutSecs: 5})

	raw, err := client.Enrich(context.Background(), testInput())

	assert.Nil(t, raw)
	assert.ErrorIs(t, err, domain.ErrEnrichmentFailed)
	assert.Contains(t, err.Error(), "enrichment quota exceeded")
}

func TestEnrich_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := enrich.NewClient(&config.EnrichConfig{BaseURL: srv.URL, TimeoutSecs: 1})

	_, err := client.Enrich(context.Background(), testInput())

	assert.ErrorIs(t, err, domain.ErrEnrichmentFailed)
}

func TestEnrich_ContextCancellation(t *testing.T) {
	started := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		// Drain the body so the server can detect the client disconnect and
		// cancel the request context; otherwise Done() never fires and Close hangs.
		_, _ = io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer srv.Close()

	client := enrich.NewClient(&config.EnrichConfig{BaseURL: srv.URL, TimeoutSecs: 60})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := client.Enrich(ctx, testInput())
		done <- err
	}()

	<-started
	cancel()

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("enrich call did not honor context cancellation")
	}
}
