// This file implements the documents tab: ingestion status, the processed
// document list, and the upload input.
package views

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"policychat/internal/api"
	"policychat/internal/tui"
	"policychat/internal/tui/commands"
)

// allowedUploadExtensions mirrors the backend's allowlist so obviously
// unsupported files are rejected before any bytes leave the machine.
var allowedUploadExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
}

// DocumentsModel is the view model for the documents tab.
type DocumentsModel struct {
	client *api.Client

	status    *api.IngestionStatus
	documents *api.DocumentList
	pathInput textinput.Model
	uploading bool
	notice    string
	errNotice string

	width  int
	height int
}

// NewDocumentsModel creates the documents view.
func NewDocumentsModel(client *api.Client, width, height int) DocumentsModel {
	ti := textinput.New()
	ti.Placeholder = "Path to a .pdf, .docx or .txt file to upload"
	ti.CharLimit = 512
	ti.Width = chatInnerWidth(width)

	return DocumentsModel{
		client:    client,
		pathInput: ti,
		width:     width,
		height:    height,
	}
}

// Update handles messages for the documents view.
func (m DocumentsModel) Update(msg tea.Msg) (DocumentsModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == tui.KeyEnter && !m.uploading {
			path := strings.TrimSpace(m.pathInput.Value())
			if path == "" {
				return m, nil
			}
			ext := strings.ToLower(filepath.Ext(path))
			if !allowedUploadExtensions[ext] {
				m.errNotice = fmt.Sprintf("Unsupported file type %q. Allowed: .pdf, .docx, .txt", ext)
				return m, nil
			}
			m.uploading = true
			m.notice = ""
			m.errNotice = ""
			return m, commands.Upload(m.client, path)
		}

	case tui.StatusLoadedMsg:
		if msg.Err == nil {
			m.status = msg.Status
		}
		return m, nil

	case tui.DocumentsLoadedMsg:
		if msg.Err == nil {
			m.documents = msg.Documents
		}
		return m, nil

	case tui.UploadDoneMsg:
		m.uploading = false
		switch {
		case msg.Err != nil:
			m.errNotice = "Upload failed. Please try again."
		case msg.Response.Status != "success":
			// The backend reports extraction failures with a 200.
			m.errNotice = msg.Response.Message
		default:
			m.notice = fmt.Sprintf("Uploaded %s: %s", msg.Response.Filename, msg.Response.Message)
			m.pathInput.Reset()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.pathInput.Width = chatInnerWidth(msg.Width)
		return m, nil
	}

	m.pathInput, cmd = m.pathInput.Update(msg)
	return m, cmd
}

// Focus gives keyboard focus to the upload input.
func (m *DocumentsModel) Focus() tea.Cmd {
	return m.pathInput.Focus()
}

// Blur removes keyboard focus from the upload input.
func (m *DocumentsModel) Blur() {
	m.pathInput.Blur()
}

// View renders the documents view.
func (m DocumentsModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("Knowledge Base"))
	b.WriteString("\n\n")

	if m.status != nil {
		b.WriteString(fmt.Sprintf("Status: %s · %d documents · %d chunks\n",
			m.status.Status, m.status.DocumentsProcessed, m.status.TotalChunks))
		b.WriteString(tui.DimStyle.Render(m.status.Message))
		b.WriteString("\n\n")
	} else {
		b.WriteString(tui.DimStyle.Render("Loading status..."))
		b.WriteString("\n\n")
	}

	if m.documents != nil {
		if len(m.documents.Documents) == 0 {
			b.WriteString(tui.DimStyle.Render("No documents processed yet."))
			b.WriteString("\n")
		}
		for _, doc := range m.documents.Documents {
			b.WriteString(fmt.Sprintf("  %s %s\n",
				tui.SuccessStyle.Render("•"),
				fmt.Sprintf("%s (%d chunks, %s)", doc.Filename, doc.Chunks, doc.FileType)))
		}
		b.WriteString("\n")
	}

	if m.uploading {
		b.WriteString(tui.WarningStyle.Render("Uploading..."))
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString(tui.SuccessStyle.Render(m.notice))
		b.WriteString("\n")
	}
	if m.errNotice != "" {
		b.WriteString(tui.ErrorStyle.Render(m.errNotice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.pathInput.View())
	b.WriteString("\n\n")
	b.WriteString(tui.DimStyle.Render("Enter: Upload · Tab: Switch view"))

	return b.String()
}
