// Package fetch - browser.go renders script-driven application pages in a
// headless browser. Requires Chrome/Chromium on the system.
package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// WithBrowser renders the page in a headless browser and returns the
// rendered HTML. It waits for the platform's application-form element so the
// form controls exist in the snapshot.
func WithBrowser(ctx context.Context, url string, timeout time.Duration, log *zap.Logger) (string, error) {
	if log == nil {
		log = zap.NewNop()
	}
	log.Debug("starting headless browser", zap.String("url", url))

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	formSelector := PlatformFormSelector(DetectPlatform(url))

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		// Give client-side routing a moment before looking for the form.
		chromedp.Sleep(2*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			// Best effort: the form may never appear on a pure posting page.
			waitCtx, cancelWait := context.WithTimeout(ctx, 5*time.Second)
			defer cancelWait()
			_ = chromedp.WaitVisible(formSelector, chromedp.ByQuery).Do(waitCtx)
			return nil
		}),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	log.Debug("rendered page", zap.String("url", url), zap.Int("bytes", len(html)))
	return html, nil
}

// BrowserSimple renders with the default timeout.
func BrowserSimple(ctx context.Context, url string, log *zap.Logger) (string, error) {
	return WithBrowser(ctx, url, DefaultTimeout, log)
}

// Page fetches the URL over HTTP and falls back to browser rendering when
// the response carries no fillable form controls.
func Page(ctx context.Context, url string, opts *Options, allowBrowser bool, log *zap.Logger) (*Result, error) {
	result, err := URL(ctx, url, opts)
	if err != nil {
		return nil, err
	}

	if allowBrowser && ShouldUseBrowser(result.HTML) {
		timeout := DefaultTimeout
		if opts != nil && opts.Timeout > 0 {
			timeout = opts.Timeout
		}
		html, err := WithBrowser(ctx, url, timeout, log)
		if err != nil {
			return nil, fmt.Errorf("page has no form controls and rendering failed: %w", err)
		}
		result.HTML = html
		result.Rendered = true
	}

	return result, nil
}
