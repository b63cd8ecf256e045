package session

import (
	"github.com/google/uuid"

	"github.com/odvcencio/browserd/pkg/engine"
)

// Session owns one browser, one context and one page. The intermediate
// handles never leave this package; callers interact through Page only.
type Session struct {
	id      string
	kind    engine.Kind
	browser engine.Browser
	context engine.BrowserContext
	page    engine.Page
}

func newSession(kind engine.Kind, b engine.Browser, c engine.BrowserContext, p engine.Page) *Session {
	return &Session{
		id:      uuid.NewString(),
		kind:    kind,
		browser: b,
		context: c,
		page:    p,
	}
}

// ID returns the session correlation id used in logs.
func (s *Session) ID() string {
	return s.id
}

// Kind returns the browser kind the session was opened with.
func (s *Session) Kind() engine.Kind {
	return s.kind
}

// Page returns the session's active tab.
func (s *Session) Page() engine.Page {
	return s.page
}

// Close releases the handle chain in reverse order. Every layer is
// attempted even when an earlier one fails; the last error wins.
func (s *Session) Close() error {
	var lastErr error
	if s.page != nil {
		if err := s.page.Close(); err != nil {
			lastErr = err
		}
	}
	if s.context != nil {
		if err := s.context.Close(); err != nil {
			lastErr = err
		}
	}
	if s.browser != nil {
		if err := s.browser.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}
