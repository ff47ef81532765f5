package tui

import (
	"policychat/internal/api"
	"policychat/internal/session"
)

// ============================================================================
// Query Messages
// ============================================================================

// QueryResultMsg carries the transport outcome for one submission back to
// the session state machine.
type QueryResultMsg struct {
	Submission session.Submission
	Response   *api.QueryResponse
	Err        error
}

// ============================================================================
// Status Data Messages
// ============================================================================

// StatusLoadedMsg carries the ingestion status reload result.
type StatusLoadedMsg struct {
	Status *api.IngestionStatus
	Err    error
}

// DocumentsLoadedMsg carries the document list reload result.
type DocumentsLoadedMsg struct {
	Documents *api.DocumentList
	Err       error
}

// SourcesLoadedMsg carries the data-source status reload result.
type SourcesLoadedMsg struct {
	Sources *api.SourcesStatus
	Err     error
}

// ============================================================================
// Collaborator Messages
// ============================================================================

// UploadDoneMsg signals that a document upload finished.
type UploadDoneMsg struct {
	Response *api.UploadResponse
	Err      error
}

// FetchDoneMsg signals that a bulk source fetch finished.
type FetchDoneMsg struct {
	Response *api.FetchSourcesResponse
	Err      error
}
