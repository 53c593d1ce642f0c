// Package draft keeps the authoring draft and the operator's admin
// credential durable. Keystroke-frequency updates are debounced so the
// underlying store sees one write per quiet period, with an explicit Flush
// for the moments that must not be lost (screen close, app background).
package draft

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/BristonLowell/vinnies-brain-app-sub000/internal/logging"
	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/ports"
)

// Keys used in the draft store.
const (
	KeyDraft    = "authoring-draft"
	KeyAdminKey = "admin-key"
)

// DefaultDebounce is the quiet period before a pending draft is written.
const DefaultDebounce = 750 * time.Millisecond

// Autosaver debounces writes of one key to a DraftStore. Safe for use from
// one authoring goroutine plus the internal timer.
type Autosaver struct {
	store    ports.DraftStore
	key      string
	debounce time.Duration
	logger   *slog.Logger

	mu      sync.Mutex
	pending []byte
	timer   *time.Timer
	closed  bool
}

// Option configures the Autosaver.
type Option func(*Autosaver)

// WithDebounce overrides the quiet period.
func WithDebounce(d time.Duration) Option {
	return func(a *Autosaver) { a.debounce = d }
}

// WithLogger attaches a logger for deferred write failures.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Autosaver) { a.logger = logger }
}

// NewAutosaver creates an autosaver for one key.
func NewAutosaver(store ports.DraftStore, key string, opts ...Option) *Autosaver {
	a := &Autosaver{
		store:    store,
		key:      key,
		debounce: DefaultDebounce,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Save records the latest value and (re)arms the debounce timer. Only the
// most recent value per quiet period reaches the store.
func (a *Autosaver) Save(value []byte) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}

	a.pending = make([]byte, len(value))
	copy(a.pending, value)

	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.debounce, a.fire)
}

func (a *Autosaver) fire() {
	if err := a.Flush(context.Background()); err != nil {
		a.logger.Warn("debounced draft write failed, draft kept in memory",
			"key", a.key, "err", err)
	}
}

// Flush writes any pending value immediately. On failure the value stays
// pending so a later Flush can retry.
func (a *Autosaver) Flush(ctx context.Context) error {
	a.mu.Lock()
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	pending := a.pending
	a.mu.Unlock()

	if pending == nil {
		return nil
	}
	if err := a.store.Set(ctx, a.key, pending); err != nil {
		return err
	}

	a.mu.Lock()
	// A Save that raced the write wins; only clear what we wrote.
	if string(a.pending) == string(pending) {
		a.pending = nil
	}
	a.mu.Unlock()
	return nil
}

// Close flushes and stops the timer. Further Saves are ignored.
func (a *Autosaver) Close(ctx context.Context) error {
	err := a.Flush(ctx)
	a.mu.Lock()
	a.closed = true
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.mu.Unlock()
	return err
}

// Load reads the current durable value for a key, bypassing any debounce.
func Load(ctx context.Context, store ports.DraftStore, key string) ([]byte, error) {
	return store.Get(ctx, key)
}

// Clear removes a key immediately.
func Clear(ctx context.Context, store ports.DraftStore, key string) error {
	return store.Delete(ctx, key)
}
