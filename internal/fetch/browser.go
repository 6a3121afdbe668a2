// Package fetch - browser.go renders script-heavy platform pages in a
// headless browser when the plain HTTP response is an empty shell.
package fetch

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// Pages whose extracted text falls below this length are treated as
// client-side rendered.
const minRenderedTextLen = 500

// DefaultRenderTimeout bounds a single headless render.
const DefaultRenderTimeout = 30 * time.Second

// needsBrowserRender reports whether the extracted text is too short to
// be a real server-rendered page.
func needsBrowserRender(extractedText string) bool {
	return len(strings.TrimSpace(extractedText)) < minRenderedTextLen
}

func headlessOpts() []chromedp.ExecAllocatorOption {
	return append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
}

// dismissBanners clicks through the consent buttons that platform search
// pages put in front of their results. Missing buttons are not an error.
func dismissBanners() chromedp.ActionFunc {
	return func(ctx context.Context) error {
		sel := `button[id*="accept"], button[class*="accept"], button:contains("OK"), button:contains("Accept")`
		_ = chromedp.Click(sel, chromedp.NodeVisible).Do(ctx)
		return nil
	}
}

// RenderPage loads a URL in headless Chrome, waits for client-side
// rendering to settle and returns the resulting HTML. Chrome or Chromium
// must be installed on the host.
func RenderPage(ctx context.Context, url string, timeout time.Duration, verbose bool) (string, error) {
	if verbose {
		log.Printf("[browser] rendering %s", url)
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, headlessOpts()...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, timeout)
	defer cancelTimeout()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.Sleep(3*time.Second), // let result cards render
		dismissBanners(),
		chromedp.Sleep(1*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	if verbose {
		log.Printf("[browser] rendered %d bytes", len(html))
	}
	return html, nil
}
