package fetch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// minRenderedLength is the minimum extracted text length for a plain
// HTTP fetch to count as successful. Shorter results usually mean the
// page is a JavaScript-rendered SPA.
const minRenderedLength = 500

// shouldUseBrowser reports whether extracted text is too short to be a
// real job description, indicating client-side rendering.
func shouldUseBrowser(extractedText string) bool {
	return len(strings.TrimSpace(extractedText)) < minRenderedLength
}

// renderWithBrowser loads a page in a headless browser and returns the
// rendered HTML. Requires Chrome or Chromium on the host.
func renderWithBrowser(ctx context.Context, urlStr string, timeout time.Duration) (string, error) {
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

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(urlStr),
		chromedp.WaitReady("body"),
		// Give client-side rendering a moment to fill the page.
		chromedp.Sleep(3*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}
	return html, nil
}
