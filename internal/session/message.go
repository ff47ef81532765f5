// Package session implements the conversational query session: the message
// log, the submit/resolve lifecycle, citation normalization, and the
// recent-question history. It knows nothing about rendering.
package session

import "time"

// Role identifies the author of a message.
type Role string

// The two message roles. There is no third variant.
const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry in the conversation log. The log is append-only;
// messages are never mutated after they are added.
type Message struct {
	Role            Role
	Content         string
	Sources         []Citation // only meaningful for assistant messages
	ConfidenceScore *float64   // only set on successful assistant messages
	CreatedAt       time.Time
}

// Citation is a normalized reference to a source document backing an
// answer. It is a pure value record: it owns nothing and is safe to copy.
type Citation struct {
	Filename       string
	PageNumber     *int     // positive when present
	RelevanceScore *float64 // in [0,1] when present
}
