package ports

import (
	"context"
	"time"
)

// Pinned is the remote agent's reported current position inside an article's
// flow during a live session. It is rendered read-only by the client and is
// independent of any locally authored graph; the two may diverge when
// content changes mid-session, which is accepted, not resolved.
type Pinned struct {
	ArticleID   string `json:"active_article_id" mapstructure:"active_article_id"`
	NodeID      string `json:"active_node_id" mapstructure:"active_node_id"`
	NodeText    string `json:"active_node_text" mapstructure:"active_node_text"`
	TreePresent bool   `json:"active_tree_present" mapstructure:"active_tree_present"`
}

// Message is one entry of a conversation's history.
type Message struct {
	ID     string    `json:"id"`
	Role   string    `json:"role"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sent_at"`
}

// SessionFeed is the remote session collaborator mirrored by polling: the
// agent's pinned flow position and the conversation's message history.
type SessionFeed interface {
	// Position reports the agent's current pinned position for a session.
	Position(ctx context.Context, sessionID string) (Pinned, error)

	// Messages returns the session's message history, oldest first.
	Messages(ctx context.Context, sessionID string) ([]Message, error)
}
