// Package commands provides Bubble Tea commands for backend operations.
// Each command runs one client call off the Update goroutine and delivers
// the outcome as a typed message.
package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"policychat/internal/api"
	"policychat/internal/session"
	"policychat/internal/tui"
)

// Query runs the single network call for a submission. The resulting message
// must be fed to Session.Resolve, which guards against responses that arrive
// after the conversation was cleared.
func Query(client *api.Client, sub session.Submission) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.Query(context.Background(), sub.Question)
		return tui.QueryResultMsg{Submission: sub, Response: resp, Err: err}
	}
}

// LoadStatus reloads the ingestion status.
func LoadStatus(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		status, err := client.Status(context.Background())
		return tui.StatusLoadedMsg{Status: status, Err: err}
	}
}

// LoadDocuments reloads the processed document list.
func LoadDocuments(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		docs, err := client.Documents(context.Background())
		return tui.DocumentsLoadedMsg{Documents: docs, Err: err}
	}
}

// LoadSources reloads the configured data-source statuses.
func LoadSources(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		sources, err := client.SourcesStatus(context.Background())
		return tui.SourcesLoadedMsg{Sources: sources, Err: err}
	}
}

// Upload sends one file to the backend.
func Upload(client *api.Client, path string) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.Upload(context.Background(), path)
		return tui.UploadDoneMsg{Response: resp, Err: err}
	}
}

// FetchSources triggers a bulk fetch from the configured data sources.
func FetchSources(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		resp, err := client.FetchSources(context.Background())
		return tui.FetchDoneMsg{Response: resp, Err: err}
	}
}
