package ipc

import (
	"context"
	"fmt"

	"github.com/odvcencio/browserd/pkg/engine"
)

// fakeEngine is a scripted engine used by the service tests. Its page keeps
// just enough DOM state (text, properties, checkboxes, selects) to exercise
// every handler without a real browser.
type fakeEngine struct {
	launches []engine.Kind
	page     *fakePage
}

func (e *fakeEngine) Launch(_ context.Context, kind engine.Kind) (engine.Browser, error) {
	e.launches = append(e.launches, kind)
	return &fakeBrowser{eng: e}, nil
}

func (e *fakeEngine) Close() error { return nil }

func (e *fakeEngine) calls() int {
	total := len(e.launches)
	if e.page != nil {
		total += e.page.calls
	}
	return total
}

type fakeBrowser struct {
	eng *fakeEngine
}

func (b *fakeBrowser) NewContext(context.Context) (engine.BrowserContext, error) {
	return &fakeContext{eng: b.eng}, nil
}

func (b *fakeBrowser) Close() error { return nil }

type fakeContext struct {
	eng *fakeEngine
}

func (c *fakeContext) NewPage(context.Context) (engine.Page, error) {
	c.eng.page = newFakePage()
	return c.eng.page, nil
}

func (c *fakeContext) Close() error { return nil }

type fakePage struct {
	calls int

	url     string
	title   string
	gotoErr error

	texts       map[string]string
	props       map[string]map[string]any
	checkboxes  map[string]bool
	selects     map[string][]engine.SelectEntry
	filled      map[string]string
	clicked     []string
	screenshots []string
}

func newFakePage() *fakePage {
	return &fakePage{
		url:        "about:blank",
		texts:      map[string]string{},
		props:      map[string]map[string]any{},
		checkboxes: map[string]bool{},
		selects:    map[string][]engine.SelectEntry{},
		filled:     map[string]string{},
	}
}

func (p *fakePage) Goto(_ context.Context, url string) error {
	p.calls++
	if p.gotoErr != nil {
		return p.gotoErr
	}
	p.url = url
	return nil
}

func (p *fakePage) Title(context.Context) (string, error) {
	p.calls++
	return p.title, nil
}

func (p *fakePage) URL(context.Context) (string, error) {
	p.calls++
	return p.url, nil
}

func (p *fakePage) TextContent(_ context.Context, selector string) (string, error) {
	p.calls++
	return p.texts[selector], nil
}

func (p *fakePage) Property(_ context.Context, selector string, name string) (any, error) {
	p.calls++
	if checked, ok := p.checkboxes[selector]; ok && name == "checked" {
		return checked, nil
	}
	props, ok := p.props[selector]
	if !ok {
		return nil, fmt.Errorf("%w: %s", engine.ErrElementNotFound, selector)
	}
	return props[name], nil
}

func (p *fakePage) SelectContent(_ context.Context, selector string) ([]engine.SelectEntry, error) {
	p.calls++
	return p.selects[selector], nil
}

func (p *fakePage) Fill(_ context.Context, selector string, text string) error {
	p.calls++
	p.filled[selector] = text
	return nil
}

func (p *fakePage) Click(_ context.Context, selector string) error {
	p.calls++
	p.clicked = append(p.clicked, selector)
	return nil
}

func (p *fakePage) SetChecked(_ context.Context, selector string, checked bool) error {
	p.calls++
	p.checkboxes[selector] = checked
	return nil
}

func (p *fakePage) SelectOptions(_ context.Context, selector string, values []string) ([]string, error) {
	p.calls++
	wanted := make(map[string]bool, len(values))
	for _, v := range values {
		wanted[v] = true
	}
	entries := p.selects[selector]
	var selected []string
	for i := range entries {
		entries[i].Selected = wanted[entries[i].Value]
		if entries[i].Selected {
			selected = append(selected, entries[i].Value)
		}
	}
	return selected, nil
}

func (p *fakePage) Screenshot(_ context.Context, path string) error {
	p.calls++
	p.screenshots = append(p.screenshots, path)
	return nil
}

func (p *fakePage) Close() error { return nil }
