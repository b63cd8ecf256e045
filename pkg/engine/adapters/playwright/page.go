package playwright

import (
	"context"
	"fmt"

	pw "github.com/playwright-community/playwright-go"

	"github.com/odvcencio/browserd/pkg/engine"
)

type page struct {
	page pw.Page
}

func (p *page) Goto(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := p.page.Goto(url); err != nil {
		return fmt.Errorf("goto %s: %w", url, err)
	}
	return nil
}

func (p *page) Title(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return p.page.Title()
}

func (p *page) URL(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return p.page.URL(), nil
}

func (p *page) TextContent(ctx context.Context, selector string) (string, error) {
	handle, err := p.query(ctx, selector)
	if err != nil {
		return "", err
	}
	if handle == nil {
		return "", nil
	}
	return handle.TextContent()
}

func (p *page) Property(ctx context.Context, selector string, name string) (any, error) {
	handle, err := p.query(ctx, selector)
	if err != nil {
		return nil, err
	}
	if handle == nil {
		return nil, fmt.Errorf("%w: %s", engine.ErrElementNotFound, selector)
	}
	prop, err := handle.GetProperty(name)
	if err != nil {
		return nil, fmt.Errorf("get property %s of %s: %w", name, selector, err)
	}
	return prop.JSONValue()
}

func (p *page) SelectContent(ctx context.Context, selector string) ([]engine.SelectEntry, error) {
	handle, err := p.query(ctx, selector)
	if err != nil {
		return nil, err
	}
	if handle == nil {
		return nil, nil
	}
	options, err := handle.QuerySelectorAll("option")
	if err != nil {
		return nil, fmt.Errorf("enumerate options of %s: %w", selector, err)
	}
	entries := make([]engine.SelectEntry, 0, len(options))
	for _, opt := range options {
		entry := engine.SelectEntry{}
		if v, err := opt.GetProperty("label"); err == nil {
			entry.Label = jsonString(v)
		}
		if v, err := opt.GetProperty("value"); err == nil {
			entry.Value = jsonString(v)
		}
		if v, err := opt.GetProperty("selected"); err == nil {
			entry.Selected = jsonBool(v)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (p *page) Fill(ctx context.Context, selector string, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return p.page.Fill(selector, text)
}

func (p *page) Click(ctx context.Context, selector string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return p.page.Click(selector)
}

func (p *page) SetChecked(ctx context.Context, selector string, checked bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if checked {
		return p.page.Check(selector)
	}
	return p.page.Uncheck(selector)
}

func (p *page) SelectOptions(ctx context.Context, selector string, values []string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return p.page.SelectOption(selector, pw.SelectOptionValues{Values: &values})
}

func (p *page) Screenshot(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := p.page.Screenshot(pw.PageScreenshotOptions{Path: pw.String(path)}); err != nil {
		return fmt.Errorf("capture screenshot to %s: %w", path, err)
	}
	return nil
}

func (p *page) Close() error {
	return p.page.Close()
}

// query resolves a selector to its first match, nil when nothing matches.
func (p *page) query(ctx context.Context, selector string) (pw.ElementHandle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	handle, err := p.page.QuerySelector(selector)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", selector, err)
	}
	return handle, nil
}

func jsonString(h pw.JSHandle) string {
	v, err := h.JSONValue()
	if err != nil || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

func jsonBool(h pw.JSHandle) bool {
	v, err := h.JSONValue()
	if err != nil {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}
