// This file implements the data-sources tab: configured source status and
// the manual fetch trigger.
package views

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"policychat/internal/api"
	"policychat/internal/tui"
	"policychat/internal/tui/commands"
)

// SourcesModel is the view model for the data-sources tab.
type SourcesModel struct {
	client *api.Client

	sources   *api.SourcesStatus
	fetching  bool
	notice    string
	errNotice string

	width  int
	height int
}

// NewSourcesModel creates the sources view.
func NewSourcesModel(client *api.Client, width, height int) SourcesModel {
	return SourcesModel{client: client, width: width, height: height}
}

// Update handles messages for the sources view.
func (m SourcesModel) Update(msg tea.Msg) (SourcesModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "f" && !m.fetching {
			m.fetching = true
			m.notice = ""
			m.errNotice = ""
			return m, commands.FetchSources(m.client)
		}

	case tui.SourcesLoadedMsg:
		if msg.Err == nil {
			m.sources = msg.Sources
		}
		return m, nil

	case tui.FetchDoneMsg:
		m.fetching = false
		if msg.Err != nil {
			m.errNotice = "Fetch failed. Please try again."
		} else {
			m.notice = msg.Response.Message
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// View renders the sources view.
func (m SourcesModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("Data Sources"))
	b.WriteString("\n\n")

	if m.sources == nil {
		b.WriteString(tui.DimStyle.Render("Loading sources..."))
		b.WriteString("\n")
	} else {
		names := make([]string, 0, len(m.sources.Sources))
		for name := range m.sources.Sources {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			src := m.sources.Sources[name]
			state := tui.ErrorStyle.Render("disabled")
			if src.Enabled {
				state = tui.SuccessStyle.Render("enabled")
			}
			b.WriteString(fmt.Sprintf("  %s — %s (priority %d)\n", name, state, src.Priority))
			if src.BaseURL != "" {
				b.WriteString(tui.DimStyle.Render("    " + src.BaseURL))
				b.WriteString("\n")
			}
		}

		b.WriteString("\n")
		auto := "off"
		if m.sources.AutoUpdatesEnabled {
			auto = fmt.Sprintf("every %dh", m.sources.UpdateFrequencyHours)
		}
		b.WriteString(tui.DimStyle.Render("Automatic updates: " + auto))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.fetching {
		b.WriteString(tui.WarningStyle.Render("Fetching from sources..."))
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
	b.WriteString(tui.DimStyle.Render("f: Fetch now · Tab: Switch view"))

	return b.String()
}
