package engine

import "context"

// Engine launches browser processes. It is the entry point of the
// browser -> context -> page handle chain.
type Engine interface {
	Launch(ctx context.Context, kind Kind) (Browser, error)
	Close() error
}

// Browser is a running browser process or connection.
type Browser interface {
	NewContext(ctx context.Context) (BrowserContext, error)
	Close() error
}

// BrowserContext is an isolated browsing context owned by a Browser.
type BrowserContext interface {
	NewPage(ctx context.Context) (Page, error)
	Close() error
}

// Page is the port implemented by browser engine adapters for a single tab.
type Page interface {
	Goto(ctx context.Context, url string) error
	Title(ctx context.Context) (string, error)
	URL(ctx context.Context) (string, error)

	// TextContent returns the text content of the first element matching
	// selector, or an empty string when nothing matches.
	TextContent(ctx context.Context, selector string) (string, error)

	// Property reads a named DOM property from the first element matching
	// selector. Returns ErrElementNotFound when nothing matches.
	Property(ctx context.Context, selector string, name string) (any, error)

	// SelectContent enumerates the option children of the matched select
	// element in source order.
	SelectContent(ctx context.Context, selector string) ([]SelectEntry, error)

	Fill(ctx context.Context, selector string, text string) error
	Click(ctx context.Context, selector string) error
	SetChecked(ctx context.Context, selector string, checked bool) error

	// SelectOptions selects the options matching the given values and
	// returns the values actually selected. An empty result is not an
	// error at this layer.
	SelectOptions(ctx context.Context, selector string, values []string) ([]string, error)

	Screenshot(ctx context.Context, path string) error
	Close() error
}

// SelectEntry describes one option element of a select control.
type SelectEntry struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	Selected bool   `json:"selected"`
}
