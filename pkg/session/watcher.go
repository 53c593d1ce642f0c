// Package session mirrors remote conversation state into local view state on
// a fixed polling interval, with signature-based dedup so unchanged data is
// never re-applied. Each screen owns one Watcher, its interval timer, and its
// last applied signature; nothing is shared or locked across screens.
package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/BristonLowell/vinnies-brain-app-sub000/internal/logging"
	"github.com/BristonLowell/vinnies-brain-app-sub000/pkg/observability"
)

// DefaultInterval is the refresh cadence screens poll at.
const DefaultInterval = 3 * time.Second

// FetchFunc retrieves the current remote state and its signature.
type FetchFunc[T any] func(ctx context.Context) (T, Signature, error)

// ApplyFunc pushes fetched state into view state. It runs only when the
// signature changed, under the watcher's internal lock, and never after Stop
// returns. It must not call back into the watcher.
type ApplyFunc[T any] func(T)

// Watcher polls one remote feed. Fetches run sequentially on one goroutine,
// so convergence is eventual, last fetch wins; there is no cross-request
// sequencing. Stop clears the timer; an in-flight fetch is not aborted, its
// result is simply dropped on arrival.
type Watcher[T any] struct {
	name     string
	fetch    FetchFunc[T]
	apply    ApplyFunc[T]
	interval time.Duration
	logger   *slog.Logger
	metrics  *observability.PollMetrics

	mu      sync.Mutex
	last    Signature
	applied bool
	stopped bool

	cancel context.CancelFunc
	done   chan struct{}
}

// WatcherOption configures a Watcher.
type WatcherOption[T any] func(*Watcher[T])

// WithInterval overrides the polling cadence.
func WithInterval[T any](d time.Duration) WatcherOption[T] {
	return func(w *Watcher[T]) { w.interval = d }
}

// WithLogger attaches a logger for fetch failures.
func WithLogger[T any](logger *slog.Logger) WatcherOption[T] {
	return func(w *Watcher[T]) { w.logger = logger }
}

// WithMetrics attaches poll counters.
func WithMetrics[T any](m *observability.PollMetrics) WatcherOption[T] {
	return func(w *Watcher[T]) { w.metrics = m }
}

// NewWatcher creates a watcher for one feed. name labels log lines and
// metrics ("messages", "pinned", ...).
func NewWatcher[T any](name string, fetch FetchFunc[T], apply ApplyFunc[T], opts ...WatcherOption[T]) *Watcher[T] {
	w := &Watcher[T]{
		name:     name,
		fetch:    fetch,
		apply:    apply,
		interval: DefaultInterval,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Start begins polling: one refresh immediately, then on every interval tick
// until Stop is called or ctx is canceled.
func (w *Watcher[T]) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	w.mu.Lock()
	w.stopped = false
	w.cancel = cancel
	w.done = make(chan struct{})
	done := w.done
	w.mu.Unlock()

	go func() {
		defer close(done)
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.Refresh(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				w.Refresh(ctx)
			}
		}
	}()
}

// Stop clears the polling timer and waits for the loop to exit. Any fetch
// still in flight resolves into a stopped watcher and is ignored.
func (w *Watcher[T]) Stop() {
	w.mu.Lock()
	w.stopped = true
	cancel, done := w.cancel, w.done
	w.cancel, w.done = nil, nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if done != nil {
		<-done
	}
}

// Refresh performs one fetch-compare-apply cycle. Exposed so screens can
// force an immediate refresh (e.g. after the user sends a message).
func (w *Watcher[T]) Refresh(ctx context.Context) {
	state, sig, err := w.fetch(ctx)
	if err != nil {
		if ctx.Err() == nil {
			w.logger.Warn("poll fetch failed", "feed", w.name, "err", err)
			w.count(func(m *observability.PollMetrics) { m.Failures.WithLabelValues(w.name).Inc() })
		}
		return
	}

	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	if w.applied && sig == w.last {
		w.mu.Unlock()
		w.count(func(m *observability.PollMetrics) { m.Skipped.WithLabelValues(w.name).Inc() })
		return
	}
	w.last = sig
	w.applied = true
	// apply runs under the lock: Stop takes it too, so a Refresh racing Stop
	// either applies before Stop returns or sees stopped and drops out.
	w.apply(state)
	w.mu.Unlock()

	w.count(func(m *observability.PollMetrics) { m.Applied.WithLabelValues(w.name).Inc() })
}

func (w *Watcher[T]) count(fn func(*observability.PollMetrics)) {
	if w.metrics != nil {
		fn(w.metrics)
	}
}
