package session

import (
	"context"

	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/ports"
)

// WatchPinned builds a watcher over the agent's pinned flow position for one
// session. The position is rendered, never mutated locally.
func WatchPinned(feed ports.SessionFeed, sessionID string, apply ApplyFunc[ports.Pinned], opts ...WatcherOption[ports.Pinned]) *Watcher[ports.Pinned] {
	fetch := func(ctx context.Context) (ports.Pinned, Signature, error) {
		p, err := feed.Position(ctx, sessionID)
		if err != nil {
			return ports.Pinned{}, Signature{}, err
		}
		return p, PinnedSignature(p), nil
	}
	return NewWatcher("pinned", fetch, apply, opts...)
}

// WatchMessages builds a watcher over one session's message history.
func WatchMessages(feed ports.SessionFeed, sessionID string, apply ApplyFunc[[]ports.Message], opts ...WatcherOption[[]ports.Message]) *Watcher[[]ports.Message] {
	fetch := func(ctx context.Context) ([]ports.Message, Signature, error) {
		msgs, err := feed.Messages(ctx, sessionID)
		if err != nil {
			return nil, Signature{}, err
		}
		return msgs, MessagesSignature(msgs), nil
	}
	return NewWatcher("messages", fetch, apply, opts...)
}
