package views

import (
	"strings"
	"testing"

	"policychat/internal/session"
)

func TestFormatCitationFullRecord(t *testing.T) {
	page := 42
	score := 0.87
	c := session.Citation{Filename: "ipcc_ar6.pdf", PageNumber: &page, RelevanceScore: &score}

	got := formatCitation(c)
	want := "ipcc_ar6.pdf (p. 42, relevance 87.0%)"
	if got != want {
		t.Errorf("formatCitation: got %q, want %q", got, want)
	}
}

func TestFormatCitationBareFilename(t *testing.T) {
	c := session.Citation{Filename: "Document"}
	if got := formatCitation(c); got != "Document" {
		t.Errorf("formatCitation: got %q, want %q", got, "Document")
	}
}

func TestFormatCitationPageOnly(t *testing.T) {
	page := 7
	c := session.Citation{Filename: "unfccc.pdf", PageNumber: &page}
	if got := formatCitation(c); got != "unfccc.pdf (p. 7)" {
		t.Errorf("formatCitation: got %q", got)
	}
}

func TestRenderConversationEmptyLog(t *testing.T) {
	out := renderConversation(nil)
	if !strings.Contains(out, "No messages yet") {
		t.Errorf("empty log placeholder missing, got %q", out)
	}
}

func TestRenderConversationIncludesRolesAndCitations(t *testing.T) {
	score := 0.91
	msgs := []session.Message{
		{Role: session.RoleUser, Content: "What is carbon pricing?"},
		{
			Role:            session.RoleAssistant,
			Content:         "Carbon pricing assigns a cost to emissions.",
			Sources:         []session.Citation{{Filename: "ipcc_ar6.pdf"}},
			ConfidenceScore: &score,
		},
	}

	out := renderConversation(msgs)

	for _, want := range []string{
		"What is carbon pricing?",
		"Carbon pricing assigns a cost to emissions.",
		"ipcc_ar6.pdf",
		"confidence: 91.0%",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered conversation missing %q", want)
		}
	}
}
