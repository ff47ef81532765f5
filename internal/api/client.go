// This file provides the client that talks to the backend endpoints.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrRequestFailed is returned for every transport-level failure: network
// errors, non-2xx statuses, and undecodable bodies. Upstream detail is
// written to the diagnostics log only, never surfaced to the caller.
var ErrRequestFailed = errors.New("request failed")

// Client communicates with the Climate Policy Intelligence Platform backend.
type Client struct {
	baseURL    string
	maxResults int
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a Client for the backend at baseURL. maxResults is the
// result-count hint sent with every query. The client applies no timeout of
// its own; the platform default transport behaviour is kept.
func NewClient(baseURL string, maxResults int, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		maxResults: maxResults,
		httpClient: &http.Client{},
		logger:     logger,
	}
}

// Query submits one question to POST /query. Exactly one request is issued;
// there is no retry. All failure modes collapse into ErrRequestFailed.
func (c *Client) Query(ctx context.Context, question string) (*QueryResponse, error) {
	reqID := uuid.NewString()
	start := time.Now()

	body := QueryRequest{Question: question, MaxResults: c.maxResults}
	var resp QueryResponse
	if err := c.postJSON(ctx, "/query", body, &resp); err != nil {
		c.logger.Error("query failed",
			zap.String("request_id", reqID),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return nil, fmt.Errorf("api: query: %w", ErrRequestFailed)
	}

	c.logger.Debug("query succeeded",
		zap.String("request_id", reqID),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("sources", len(resp.Sources)))
	return &resp, nil
}

// Upload sends the file at path to POST /upload as a multipart body.
func (c *Client) Upload(ctx context.Context, path string) (*UploadResponse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("api: opening upload file: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("api: building multipart body: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("api: reading upload file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("api: finalizing multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &buf)
	if err != nil {
		return nil, fmt.Errorf("api: building upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var resp UploadResponse
	if err := c.do(req, &resp); err != nil {
		c.logger.Error("upload failed", zap.String("file", filepath.Base(path)), zap.Error(err))
		return nil, fmt.Errorf("api: upload: %w", ErrRequestFailed)
	}
	return &resp, nil
}

// FetchSources triggers a bulk fetch from the configured data sources
// via POST /fetch-sources.
func (c *Client) FetchSources(ctx context.Context) (*FetchSourcesResponse, error) {
	var resp FetchSourcesResponse
	if err := c.postJSON(ctx, "/fetch-sources", nil, &resp); err != nil {
		c.logger.Error("fetch-sources failed", zap.Error(err))
		return nil, fmt.Errorf("api: fetch-sources: %w", ErrRequestFailed)
	}
	return &resp, nil
}

// Status returns the backend's ingestion status from GET /status.
func (c *Client) Status(ctx context.Context) (*IngestionStatus, error) {
	var resp IngestionStatus
	if err := c.getJSON(ctx, "/status", &resp); err != nil {
		c.logger.Error("status failed", zap.Error(err))
		return nil, fmt.Errorf("api: status: %w", ErrRequestFailed)
	}
	return &resp, nil
}

// Documents lists the processed documents from GET /documents.
func (c *Client) Documents(ctx context.Context) (*DocumentList, error) {
	var resp DocumentList
	if err := c.getJSON(ctx, "/documents", &resp); err != nil {
		c.logger.Error("documents failed", zap.Error(err))
		return nil, fmt.Errorf("api: documents: %w", ErrRequestFailed)
	}
	return &resp, nil
}

// SourcesStatus returns the configured data sources from GET /sources/status.
func (c *Client) SourcesStatus(ctx context.Context) (*SourcesStatus, error) {
	var resp SourcesStatus
	if err := c.getJSON(ctx, "/sources/status", &resp); err != nil {
		c.logger.Error("sources-status failed", zap.Error(err))
		return nil, fmt.Errorf("api: sources-status: %w", ErrRequestFailed)
	}
	return &resp, nil
}

// HealthCheck returns the backend health report from GET /health.
func (c *Client) HealthCheck(ctx context.Context) (*Health, error) {
	var resp Health
	if err := c.getJSON(ctx, "/health", &resp); err != nil {
		c.logger.Error("health failed", zap.Error(err))
		return nil, fmt.Errorf("api: health: %w", ErrRequestFailed)
	}
	return &resp, nil
}

func (c *Client) postJSON(ctx context.Context, path string, body, result any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshalling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.do(req, result)
}

func (c *Client) getJSON(ctx context.Context, path string, result any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	return c.do(req, result)
}

// do executes the request and decodes a 2xx JSON body into result.
func (c *Client) do(req *http.Request, result any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Read a bounded slice of the body for the diagnostics log.
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}
