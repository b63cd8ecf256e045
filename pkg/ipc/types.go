package ipc

import "github.com/odvcencio/browserd/pkg/engine"

// OpenBrowserRequest selects the browser kind and optionally an initial URL.
type OpenBrowserRequest struct {
	Browser string `json:"browser"`
	URL     string `json:"url,omitempty"`
}

// URLRequest carries a navigation target.
type URLRequest struct {
	URL string `json:"url"`
}

// SelectorRequest identifies elements within the current page.
type SelectorRequest struct {
	Selector string `json:"selector"`
}

// PropertyRequest names a DOM property of a matched element.
type PropertyRequest struct {
	Selector string `json:"selector"`
	Property string `json:"property"`
}

// InputTextRequest carries text for a form fill.
type InputTextRequest struct {
	Selector string `json:"selector"`
	Text     string `json:"text"`
}

// SelectOptionRequest lists the option values to select.
type SelectOptionRequest struct {
	Selector string   `json:"selector"`
	Matchers []string `json:"matchers"`
}

// ScreenshotRequest names the output path; the handler appends the image
// extension.
type ScreenshotRequest struct {
	Path string `json:"path"`
}

// Ack marks success and carries a free-text log line for diagnostics.
type Ack struct {
	Log string `json:"log"`
}

// StringResponse returns a string payload.
type StringResponse struct {
	Body string `json:"body"`
}

// BoolResponse returns a boolean payload.
type BoolResponse struct {
	Body bool `json:"body"`
}

// SelectContentResponse returns the option entries of a select element in
// source order.
type SelectContentResponse struct {
	Entries []engine.SelectEntry `json:"entries"`
}
