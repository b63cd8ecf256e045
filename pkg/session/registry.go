// Package session owns the single browser automation session. The Registry
// is the only authority over whether a session exists; command handlers go
// through Require before touching the engine so that precondition failures
// never leave partial side effects.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/odvcencio/browserd/pkg/engine"
	"github.com/odvcencio/browserd/pkg/logging"
)

// Registry holds at most one active session. It is passed by reference
// into the RPC service; keying it by session id is the intended extension
// path for a future multi-session mode.
type Registry struct {
	engine engine.Engine
	logger *logging.Logger

	mu      sync.Mutex
	current *Session
}

// NewRegistry creates a registry backed by the given engine.
func NewRegistry(eng engine.Engine, logger *logging.Logger) *Registry {
	return &Registry{engine: eng, logger: logger}
}

// Open launches a browser of the requested kind and builds the
// browser -> context -> page chain. When url is non-empty the new page
// navigates there as part of the same logical operation; a navigation
// failure still leaves the session open and is returned to the caller.
//
// Opening while a session is already open closes the previous session
// first. The returned replaced flag reports that case.
func (r *Registry) Open(ctx context.Context, kind engine.Kind, url string) (sess *Session, replaced bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current != nil {
		prev := r.current
		r.current = nil
		replaced = true
		if closeErr := prev.Close(); closeErr != nil {
			r.logger.Warn(logging.CategorySession, "session_replace_close_failed",
				fmt.Sprintf("closing replaced session: %v", closeErr),
				map[string]any{"session_id": prev.ID()})
		}
		metricSessionsClosed.Inc()
		metricSessionsActive.Dec()
	}

	browser, err := r.engine.Launch(ctx, kind)
	if err != nil {
		return nil, replaced, err
	}
	browserCtx, err := browser.NewContext(ctx)
	if err != nil {
		_ = browser.Close()
		return nil, replaced, err
	}
	page, err := browserCtx.NewPage(ctx)
	if err != nil {
		_ = browserCtx.Close()
		_ = browser.Close()
		return nil, replaced, err
	}

	sess = newSession(kind, browser, browserCtx, page)
	r.current = sess
	metricSessionsOpened.Inc()
	metricSessionsActive.Inc()
	r.logger.Info(logging.CategorySession, "session_opened", "opened browser session",
		map[string]any{"session_id": sess.ID(), "kind": string(kind)})

	if url != "" {
		if err := page.Goto(ctx, url); err != nil {
			return sess, replaced, err
		}
	}
	return sess, replaced, nil
}

// Close tears down the active session. The slot is cleared regardless of
// the release outcome so a wedged engine cannot pin the registry.
func (r *Registry) Close(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == nil {
		return &NoSessionError{Op: "close browser"}
	}
	sess := r.current
	r.current = nil
	metricSessionsClosed.Inc()
	metricSessionsActive.Dec()

	err := sess.Close()
	r.logger.Info(logging.CategorySession, "session_closed", "closed browser session",
		map[string]any{"session_id": sess.ID()})
	return err
}

// Current returns the active session, nil when none is open.
func (r *Registry) Current() *Session {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Require returns the active session or an operation-specific
// precondition failure. It must run before any engine call.
func (r *Registry) Require(op string) (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current == nil {
		return nil, &NoSessionError{Op: op}
	}
	return r.current, nil
}

// CloseAll releases the active session if any. Used on shutdown where a
// missing session is not an error.
func (r *Registry) CloseAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current == nil {
		return nil
	}
	sess := r.current
	r.current = nil
	metricSessionsClosed.Inc()
	metricSessionsActive.Dec()
	return sess.Close()
}
