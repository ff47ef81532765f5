// Package api provides the HTTP client for the Climate Policy Intelligence
// Platform backend. This file defines the wire types for its endpoints.
package api

// QueryRequest is the body of POST /query.
type QueryRequest struct {
	Question   string `json:"question"`
	MaxResults int    `json:"max_results"`
}

// Source is a raw source record attached to an answer. Upstream payloads are
// permissive about field names (filename vs title, relevance_score vs score),
// so every variant is modelled explicitly; the session layer normalizes them.
type Source struct {
	Filename       string   `json:"filename"`
	Title          string   `json:"title"`
	PageNumber     *int     `json:"page_number"`
	PageNumberAlt  *int     `json:"pageNumber"`
	RelevanceScore *float64 `json:"relevance_score"`
	Score          *float64 `json:"score"`
}

// QueryResponse is the body of a successful POST /query.
type QueryResponse struct {
	Answer          string   `json:"answer"`
	Sources         []Source `json:"sources"`
	ConfidenceScore *float64 `json:"confidence_score"`
}

// UploadResponse is the body of POST /upload. The backend reports extraction
// failures with a 200 and Status "error".
type UploadResponse struct {
	Filename string `json:"filename"`
	Status   string `json:"status"`
	Message  string `json:"message"`
}

// FetchSourcesResponse is the body of POST /fetch-sources.
type FetchSourcesResponse struct {
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Stats   map[string]any `json:"stats"`
}

// IngestionStatus is the body of GET /status.
type IngestionStatus struct {
	Status             string `json:"status"`
	Message            string `json:"message"`
	DocumentsProcessed int    `json:"documents_processed"`
	TotalChunks        int    `json:"total_chunks"`
}

// DocumentInfo describes one processed document in GET /documents.
type DocumentInfo struct {
	Filename string `json:"filename"`
	Chunks   int    `json:"chunks"`
	FileType string `json:"file_type"`
}

// DocumentList is the body of GET /documents.
type DocumentList struct {
	Documents []DocumentInfo `json:"documents"`
	Total     int            `json:"total"`
}

// SourceStatus describes one configured data source in GET /sources/status.
type SourceStatus struct {
	Enabled     bool   `json:"enabled"`
	Priority    int    `json:"priority"`
	BaseURL     string `json:"base_url"`
	LastUpdated string `json:"last_updated"`
}

// SourcesStatus is the body of GET /sources/status.
type SourcesStatus struct {
	Sources              map[string]SourceStatus `json:"sources"`
	AutoUpdatesEnabled   bool                    `json:"auto_updates_enabled"`
	UpdateFrequencyHours int                     `json:"update_frequency_hours"`
}

// Health is the body of GET /health.
type Health struct {
	Status           string         `json:"status"`
	VectorStoreStats map[string]any `json:"vector_store_stats"`
}
