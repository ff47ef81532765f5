package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuerySendsQuestionAndResultHint(t *testing.T) {
	var got QueryRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/query", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		score := 0.91
		_ = json.NewEncoder(w).Encode(QueryResponse{
			Answer:          "Carbon pricing assigns a cost to emissions.",
			Sources:         []Source{{Filename: "ipcc_ar6.pdf"}},
			ConfidenceScore: &score,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5, nil)
	resp, err := c.Query(context.Background(), "What is carbon pricing?")
	require.NoError(t, err)

	assert.Equal(t, "What is carbon pricing?", got.Question)
	assert.Equal(t, 5, got.MaxResults)
	assert.Equal(t, "Carbon pricing assigns a cost to emissions.", resp.Answer)
	require.Len(t, resp.Sources, 1)
	require.NotNil(t, resp.ConfidenceScore)
	assert.InDelta(t, 0.91, *resp.ConfidenceScore, 1e-9)
}

func TestQueryNon2xxIsGenericFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail": "Internal server error"}`, http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5, nil)
	_, err := c.Query(context.Background(), "asdf")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequestFailed)
	// Upstream detail stays in the diagnostics log, not in the error.
	assert.NotContains(t, err.Error(), "Internal server error")
}

func TestQueryMalformedBodyIsGenericFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5, nil)
	_, err := c.Query(context.Background(), "asdf")
	assert.ErrorIs(t, err, ErrRequestFailed)
}

func TestQueryNetworkFailureIsGenericFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(srv.URL, 5, nil)
	_, err := c.Query(context.Background(), "asdf")
	assert.ErrorIs(t, err, ErrRequestFailed)
}

func TestQueryIssuesExactlyOneRequest(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5, nil)
	_, err := c.Query(context.Background(), "no retries expected")

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestUploadSendsMultipartFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/upload", r.URL.Path)

		f, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, "report.txt", header.Filename)

		_ = json.NewEncoder(w).Encode(UploadResponse{
			Filename: header.Filename,
			Status:   "success",
			Message:  "Successfully processed 3 chunks",
		})
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "report.txt")
	require.NoError(t, os.WriteFile(path, []byte("emissions data"), 0644))

	c := NewClient(srv.URL, 5, nil)
	resp, err := c.Upload(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "report.txt", resp.Filename)
}

func TestUploadMissingFile(t *testing.T) {
	c := NewClient("http://localhost:0", 5, nil)
	_, err := c.Upload(context.Background(), filepath.Join(t.TempDir(), "missing.pdf"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRequestFailed, "local file errors are not transport failures")
}

func TestStatusAndDocuments(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/status":
			_ = json.NewEncoder(w).Encode(IngestionStatus{
				Status:             "ready",
				Message:            "Vector store is ready for queries",
				DocumentsProcessed: 12,
				TotalChunks:        340,
			})
		case "/documents":
			_ = json.NewEncoder(w).Encode(DocumentList{
				Documents: []DocumentInfo{{Filename: "ipcc_ar6.pdf", Chunks: 120, FileType: ".pdf"}},
				Total:     1,
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5, nil)

	status, err := c.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, status.DocumentsProcessed)
	assert.Equal(t, 340, status.TotalChunks)

	docs, err := c.Documents(context.Background())
	require.NoError(t, err)
	require.Len(t, docs.Documents, 1)
	assert.Equal(t, "ipcc_ar6.pdf", docs.Documents[0].Filename)
}

func TestSourcesStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/sources/status", r.URL.Path)
		_ = json.NewEncoder(w).Encode(SourcesStatus{
			Sources: map[string]SourceStatus{
				"ipcc": {Enabled: true, Priority: 1, BaseURL: "https://www.ipcc.ch"},
			},
			AutoUpdatesEnabled:   true,
			UpdateFrequencyHours: 24,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5, nil)
	resp, err := c.SourcesStatus(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.AutoUpdatesEnabled)
	assert.True(t, resp.Sources["ipcc"].Enabled)
}

func TestFetchSources(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/fetch-sources", r.URL.Path)
		_ = json.NewEncoder(w).Encode(FetchSourcesResponse{
			Status:  "success",
			Message: "Successfully fetched and processed documents from sources",
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5, nil)
	resp, err := c.FetchSources(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "success", resp.Status)
}

func TestBaseURLTrailingSlash(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		_ = json.NewEncoder(w).Encode(Health{Status: "healthy"})
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", 5, nil)
	resp, err := c.HealthCheck(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", resp.Status)
}
