package memory

import (
	"context"
	"sync"

	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/ports"
)

// Feed is a scriptable ports.SessionFeed for tests and local development.
// Tests push positions and messages; the watcher under test polls them.
type Feed struct {
	mu        sync.RWMutex
	positions map[string]ports.Pinned
	messages  map[string][]ports.Message
}

// NewFeed creates an empty feed.
func NewFeed() *Feed {
	return &Feed{
		positions: make(map[string]ports.Pinned),
		messages:  make(map[string][]ports.Message),
	}
}

// SetPosition scripts the pinned position reported for a session.
func (f *Feed) SetPosition(sessionID string, p ports.Pinned) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.positions[sessionID] = p
}

// Append adds a message to a session's history.
func (f *Feed) Append(sessionID string, m ports.Message) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages[sessionID] = append(f.messages[sessionID], m)
}

// Position implements ports.SessionFeed.
func (f *Feed) Position(ctx context.Context, sessionID string) (ports.Pinned, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.positions[sessionID], nil
}

// Messages implements ports.SessionFeed.
func (f *Feed) Messages(ctx context.Context, sessionID string) ([]ports.Message, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	history := f.messages[sessionID]
	out := make([]ports.Message, len(history))
	copy(out, history)
	return out, nil
}
