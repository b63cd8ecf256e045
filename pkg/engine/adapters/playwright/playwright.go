// Package playwright adapts the engine port onto the Playwright driver.
// Playwright operations rely on implicit driver timeouts and do not take a
// context, so adapter methods check the Go context before dispatching.
package playwright

import (
	"context"
	"fmt"
	"sync"

	pw "github.com/playwright-community/playwright-go"

	"github.com/odvcencio/browserd/pkg/engine"
)

// Config tunes the Playwright engine.
type Config struct {
	Headless          bool
	IgnoreHTTPSErrors bool

	// TimeoutMillis is the default timeout applied to page operations.
	// Zero keeps the driver default.
	TimeoutMillis float64
}

func (c Config) withDefaults() Config {
	if c.TimeoutMillis < 0 {
		c.TimeoutMillis = 0
	}
	return c
}

// Engine is a Playwright-backed engine implementation.
type Engine struct {
	cfg Config

	mu     sync.Mutex
	pw     *pw.Playwright
	closed bool
}

// NewEngine starts the Playwright driver.
func NewEngine(cfg Config) (*Engine, error) {
	runner, err := pw.Run()
	if err != nil {
		return nil, fmt.Errorf("start playwright driver: %w", err)
	}
	return &Engine{cfg: cfg.withDefaults(), pw: runner}, nil
}

func (e *Engine) browserType(kind engine.Kind) (pw.BrowserType, error) {
	switch kind {
	case engine.KindChrome:
		return e.pw.Chromium, nil
	case engine.KindFirefox:
		return e.pw.Firefox, nil
	case engine.KindWebkit:
		return e.pw.WebKit, nil
	default:
		return nil, fmt.Errorf("%w: %q", engine.ErrUnsupportedKind, kind)
	}
}

// Launch starts a browser of the requested kind.
func (e *Engine) Launch(ctx context.Context, kind engine.Kind) (engine.Browser, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil, engine.ErrEngineClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	bt, err := e.browserType(kind)
	if err != nil {
		return nil, err
	}
	b, err := bt.Launch(pw.BrowserTypeLaunchOptions{
		Headless: pw.Bool(e.cfg.Headless),
	})
	if err != nil {
		return nil, fmt.Errorf("launch %s: %w", kind, err)
	}
	return &browser{cfg: e.cfg, browser: b}, nil
}

// Close stops the Playwright driver.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return nil
	}
	e.closed = true
	return e.pw.Stop()
}

type browser struct {
	cfg     Config
	browser pw.Browser
}

func (b *browser) NewContext(ctx context.Context) (engine.BrowserContext, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	bc, err := b.browser.NewContext(pw.BrowserNewContextOptions{
		IgnoreHttpsErrors: pw.Bool(b.cfg.IgnoreHTTPSErrors),
	})
	if err != nil {
		return nil, fmt.Errorf("new browser context: %w", err)
	}
	if b.cfg.TimeoutMillis > 0 {
		bc.SetDefaultTimeout(b.cfg.TimeoutMillis)
		bc.SetDefaultNavigationTimeout(b.cfg.TimeoutMillis)
	}
	return &browserContext{context: bc}, nil
}

func (b *browser) Close() error {
	return b.browser.Close()
}

type browserContext struct {
	context pw.BrowserContext
}

func (c *browserContext) NewPage(ctx context.Context) (engine.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, err := c.context.NewPage()
	if err != nil {
		return nil, fmt.Errorf("new page: %w", err)
	}
	return &page{page: p}, nil
}

func (c *browserContext) Close() error {
	return c.context.Close()
}
