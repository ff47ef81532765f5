// Package views provides TUI view components for the policychat application.
package views

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"policychat/internal/api"
	"policychat/internal/session"
	"policychat/internal/tui"
	"policychat/internal/tui/commands"
)

// ChatModel is the view model for the conversation screen. It owns the
// presentation of the session state machine; all session mutation happens
// here, on the Update goroutine.
type ChatModel struct {
	sess   *session.Session
	client *api.Client

	textarea  textarea.Model
	viewport  viewport.Model
	spinner   spinner.Model
	histIndex int // -1 when not cycling through recent questions

	width  int
	height int
}

// NewChatModel creates the chat view bound to the given session and client.
func NewChatModel(sess *session.Session, client *api.Client, width, height int) ChatModel {
	ta := textarea.New()
	ta.Placeholder = "Ask about climate policy... (Enter to send)"
	ta.CharLimit = 2000
	ta.SetWidth(chatInnerWidth(width))
	ta.SetHeight(3)
	ta.ShowLineNumbers = false
	ta.Focus()

	// Shift+Enter inserts a newline so Enter can submit.
	keyMap := ta.KeyMap
	keyMap.InsertNewline = key.NewBinding(
		key.WithKeys("shift+enter", "ctrl+j"),
		key.WithHelp("shift+enter", "new line"),
	)
	ta.KeyMap = keyMap

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#059669"))

	vp := viewport.New(chatInnerWidth(width), chatViewportHeight(height))
	vp.SetContent(renderConversation(sess.Messages()))

	return ChatModel{
		sess:      sess,
		client:    client,
		textarea:  ta,
		viewport:  vp,
		spinner:   sp,
		histIndex: -1,
		width:     width,
		height:    height,
	}
}

// Init returns the initial command for the chat view.
func (m ChatModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages for the chat view.
func (m ChatModel) Update(msg tea.Msg) (ChatModel, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case tui.KeyEnter:
			sub, err := m.sess.Submit(m.textarea.Value())
			switch {
			case err == nil:
				m.textarea.Reset()
				m.histIndex = -1
				m.refreshConversation()
				return m, tea.Batch(commands.Query(m.client, sub), m.spinner.Tick)
			case errors.Is(err, session.ErrEmptyQuestion), errors.Is(err, session.ErrBusy):
				// Rejected submissions change nothing.
				return m, nil
			}
			return m, nil

		case tui.KeyCtrlL:
			m.sess.Clear()
			m.refreshConversation()
			return m, nil

		case tui.KeyCtrlP:
			// Cycle through the recent-question list into the input.
			history := m.sess.History()
			if len(history) == 0 {
				return m, nil
			}
			m.histIndex = (m.histIndex + 1) % len(history)
			m.textarea.SetValue(history[m.histIndex])
			m.textarea.CursorEnd()
			return m, nil
		}

	case tui.QueryResultMsg:
		m.sess.Resolve(msg.Submission, msg.Response, msg.Err)
		m.refreshConversation()
		return m, nil

	case spinner.TickMsg:
		if m.sess.Busy() {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = chatInnerWidth(msg.Width)
		m.viewport.Height = chatViewportHeight(msg.Height)
		m.textarea.SetWidth(chatInnerWidth(msg.Width))
		m.viewport.SetContent(renderConversation(m.sess.Messages()))
		return m, nil
	}

	// The input stays read-only while a question is in flight.
	if !m.sess.Busy() {
		m.textarea, cmd = m.textarea.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// View renders the chat view.
func (m ChatModel) View() string {
	var b strings.Builder

	b.WriteString(m.viewport.View())
	b.WriteString("\n\n")

	if banner := m.sess.LastError(); banner != "" {
		b.WriteString(tui.ErrorStyle.Render(banner))
		b.WriteString("\n\n")
	}

	if m.sess.Busy() {
		b.WriteString(fmt.Sprintf("%s Searching the knowledge base...", m.spinner.View()))
		b.WriteString("\n\n")
		b.WriteString(tui.DimStyle.Render(m.textarea.View()))
	} else {
		b.WriteString(m.textarea.View())
	}

	b.WriteString("\n\n")

	footer := "Enter: Ask · Ctrl+P: Recent questions · Ctrl+L: Clear · Tab: Switch view"
	b.WriteString(tui.DimStyle.Render(footer))

	return b.String()
}

// Focus gives keyboard focus to the question input.
func (m *ChatModel) Focus() tea.Cmd {
	return m.textarea.Focus()
}

// Blur removes keyboard focus from the question input.
func (m *ChatModel) Blur() {
	m.textarea.Blur()
}

// refreshConversation reloads the viewport content and scrolls to the
// latest message. Scrolling lives here, in the presentation layer; the
// session core knows nothing about it.
func (m *ChatModel) refreshConversation() {
	m.viewport.SetContent(renderConversation(m.sess.Messages()))
	m.viewport.GotoBottom()
}

// renderConversation formats the conversation log for the viewport.
func renderConversation(messages []session.Message) string {
	if len(messages) == 0 {
		return tui.DimStyle.Render("No messages yet. Ask your first question!")
	}

	var b strings.Builder

	for i, msg := range messages {
		switch msg.Role {
		case session.RoleUser:
			b.WriteString(tui.UserStyle.Render("You: "))
		case session.RoleAssistant:
			b.WriteString(tui.AssistantStyle.Render("Assistant: "))
		}
		b.WriteString(msg.Content)

		for _, cit := range msg.Sources {
			b.WriteString("\n")
			b.WriteString(tui.CitationStyle.Render("  source: " + formatCitation(cit)))
		}
		if msg.ConfidenceScore != nil {
			b.WriteString("\n")
			b.WriteString(tui.DimStyle.Render(
				fmt.Sprintf("  confidence: %s", session.FormatRelevance(*msg.ConfidenceScore))))
		}

		if i < len(messages)-1 {
			b.WriteString("\n\n")
		}
	}

	return b.String()
}

// formatCitation renders one citation line, e.g.
// "ipcc_ar6.pdf (p. 42, relevance 87.0%)".
func formatCitation(c session.Citation) string {
	var details []string
	if c.PageNumber != nil {
		details = append(details, fmt.Sprintf("p. %d", *c.PageNumber))
	}
	if c.RelevanceScore != nil {
		details = append(details, "relevance "+session.FormatRelevance(*c.RelevanceScore))
	}
	if len(details) == 0 {
		return c.Filename
	}
	return fmt.Sprintf("%s (%s)", c.Filename, strings.Join(details, ", "))
}

func chatInnerWidth(width int) int {
	w := width - 8
	if w < 20 {
		w = 20
	}
	return w
}

func chatViewportHeight(height int) int {
	h := height - 14
	if h < 5 {
		h = 5
	}
	return h
}
