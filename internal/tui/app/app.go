// Package app provides the main TUI application that wires all views together.
package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"policychat/internal/api"
	"policychat/internal/config"
	"policychat/internal/session"
	"policychat/internal/tui"
	"policychat/internal/tui/commands"
	"policychat/internal/tui/views"
)

// Tab identifies the active tab.
type Tab int

const (
	TabChat Tab = iota
	TabDocuments
	TabSources
)

var tabLabels = []string{"Chat", "Documents", "Sources"}

// reloads tracks which status reloads the refresh hub has requested since
// the last Update pass.
type reloads struct {
	status    bool
	documents bool
	sources   bool
}

// App is the main TUI application.
type App struct {
	client *api.Client
	sess   *session.Session
	hub    *session.RefreshHub

	pending *reloads

	activeTab Tab
	chat      views.ChatModel
	documents views.DocumentsModel
	sources   views.SourcesModel

	width  int
	height int
}

// New creates the App: one session, one refresh hub, and the three views.
func New(cfg *config.Config, client *api.Client, logger *zap.Logger) *App {
	sess := session.New(session.Options{
		Greeting:    cfg.Chat.Greeting,
		HistorySize: cfg.Chat.HistorySize,
		Logger:      logger,
	})

	pending := &reloads{}
	hub := session.NewRefreshHub()
	hub.OnRefresh(func() { pending.status = true })
	hub.OnRefresh(func() { pending.documents = true })
	hub.OnRefresh(func() { pending.sources = true })

	const defaultWidth, defaultHeight = 80, 24
	return &App{
		client:    client,
		sess:      sess,
		hub:       hub,
		pending:   pending,
		chat:      views.NewChatModel(sess, client, defaultWidth, defaultHeight),
		documents: views.NewDocumentsModel(client, defaultWidth, defaultHeight),
		sources:   views.NewSourcesModel(client, defaultWidth, defaultHeight),
		width:     defaultWidth,
		height:    defaultHeight,
	}
}

// Init loads the auxiliary status data and starts the chat view.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.chat.Init(),
		commands.LoadStatus(a.client),
		commands.LoadDocuments(a.client),
		commands.LoadSources(a.client),
	)
}

// Update handles messages and routes them to the owning view.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.chat, _ = a.chat.Update(msg)
		a.documents, _ = a.documents.Update(msg)
		a.sources, _ = a.sources.Update(msg)
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case tui.KeyCtrlC:
			return a, tea.Quit
		case tui.KeyTab:
			cmds = append(cmds, a.switchTab())
			return a, tea.Batch(cmds...)
		}
		// Other keys go to the active view only.
		switch a.activeTab {
		case TabChat:
			a.chat, cmd = a.chat.Update(msg)
		case TabDocuments:
			a.documents, cmd = a.documents.Update(msg)
		case TabSources:
			a.sources, cmd = a.sources.Update(msg)
		}
		return a, cmd

	case tui.QueryResultMsg, spinner.TickMsg:
		// Always delivered to the chat view, whichever tab is active.
		a.chat, cmd = a.chat.Update(msg)
		return a, cmd

	case tui.StatusLoadedMsg, tui.DocumentsLoadedMsg:
		a.documents, cmd = a.documents.Update(msg)
		return a, cmd

	case tui.SourcesLoadedMsg:
		a.sources, cmd = a.sources.Update(msg)
		return a, cmd

	case tui.UploadDoneMsg:
		a.documents, cmd = a.documents.Update(msg)
		cmds = append(cmds, cmd)
		if msg.Err == nil && msg.Response.Status == "success" {
			a.hub.NotifyExternalUpdate()
			cmds = append(cmds, a.drainReloads()...)
		}
		return a, tea.Batch(cmds...)

	case tui.FetchDoneMsg:
		a.sources, cmd = a.sources.Update(msg)
		cmds = append(cmds, cmd)
		if msg.Err == nil {
			a.hub.NotifyExternalUpdate()
			cmds = append(cmds, a.drainReloads()...)
		}
		return a, tea.Batch(cmds...)
	}

	// Everything else (spinner ticks, blinks) goes to the active view.
	switch a.activeTab {
	case TabChat:
		a.chat, cmd = a.chat.Update(msg)
	case TabDocuments:
		a.documents, cmd = a.documents.Update(msg)
	case TabSources:
		a.sources, cmd = a.sources.Update(msg)
	}
	return a, cmd
}

// View renders the tab bar and the active view.
func (a *App) View() string {
	var b strings.Builder

	var tabs []string
	for i, label := range tabLabels {
		if Tab(i) == a.activeTab {
			tabs = append(tabs, tui.ActiveTabStyle.Render(label))
		} else {
			tabs = append(tabs, tui.InactiveTabStyle.Render(label))
		}
	}
	b.WriteString(strings.Join(tabs, " "))
	b.WriteString("\n")

	var content string
	switch a.activeTab {
	case TabChat:
		content = a.chat.View()
	case TabDocuments:
		content = a.documents.View()
	case TabSources:
		content = a.sources.View()
	}

	b.WriteString(tui.BoxStyle.Width(a.width - 4).Render(content))
	return b.String()
}

// switchTab advances to the next tab and moves keyboard focus with it.
func (a *App) switchTab() tea.Cmd {
	a.activeTab = (a.activeTab + 1) % Tab(len(tabLabels))

	a.chat.Blur()
	a.documents.Blur()

	switch a.activeTab {
	case TabChat:
		return a.chat.Focus()
	case TabDocuments:
		return a.documents.Focus()
	}
	return nil
}

// drainReloads turns hub-requested reloads into commands.
func (a *App) drainReloads() []tea.Cmd {
	var cmds []tea.Cmd
	if a.pending.status {
		a.pending.status = false
		cmds = append(cmds, commands.LoadStatus(a.client))
	}
	if a.pending.documents {
		a.pending.documents = false
		cmds = append(cmds, commands.LoadDocuments(a.client))
	}
	if a.pending.sources {
		a.pending.sources = false
		cmds = append(cmds, commands.LoadSources(a.client))
	}
	return cmds
}
