// Package fetch retrieves job postings from URLs and reduces their HTML to
// the plain description text the tailoring engine consumes.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; JobFitBot/1.0)"

// minDescriptionLength guards against pages whose description text did not
// actually render, such as script-driven job boards.
const minDescriptionLength = 50

// Error represents a failure while fetching a job posting.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Client fetches job posting pages over HTTP.
type Client struct {
	http            *resty.Client
	timeout         time.Duration
	browserFallback bool
}

// NewClient builds a Client with the given timeout. A zero timeout uses
// DefaultTimeout.
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", DefaultUserAgent).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(5))
	return &Client{http: client, timeout: timeout}
}

// WithBrowserFallback enables headless browser rendering for pages whose
// plain HTTP response carries too little text. Requires Chrome on the host.
func (c *Client) WithBrowserFallback() *Client {
	c.browserFallback = true
	return c
}

// JobDescription fetches the page at urlStr and returns the job description
// text extracted from its HTML.
func (c *Client) JobDescription(ctx context.Context, urlStr string) (string, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", &Error{URL: urlStr, Message: "invalid URL", Cause: err}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", &Error{URL: urlStr, Message: fmt.Sprintf("unsupported scheme %q", parsed.Scheme)}
	}

	resp, err := c.http.R().SetContext(ctx).Get(urlStr)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	if resp.StatusCode() != http.StatusOK {
		return "", &Error{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode())}
	}

	platform := DetectPlatform(urlStr)
	text, err := extractJobText(resp.String(), platform)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to parse HTML", Cause: err}
	}

	if c.browserFallback && shouldUseBrowser(text) {
		if rendered, renderErr := renderWithBrowser(ctx, urlStr, c.timeout); renderErr == nil {
			if renderedText, extractErr := extractJobText(rendered, platform); extractErr == nil && len(renderedText) > len(text) {
				text = renderedText
			}
		}
	}

	if len(text) < minDescriptionLength {
		return "", &Error{URL: urlStr, Message: "page contained no usable job description"}
	}
	return text, nil
}

// jobContentSelectors are tried in order; the first match wins.
var jobContentSelectors = []string{
	".job-description",
	".job-content",
	"#job-description",
	"#job-content",
	".posting-content",
	".job-details",
	"[data-testid='job-description']",
	"main",
	"article",
	".content",
	"#content",
}

// ExtractJobText parses job posting HTML and returns its description text.
// Navigation, scripts and other page chrome are stripped before extraction;
// when no job-specific container matches, the whole body is used.
func ExtractJobText(html string) (string, error) {
	return extractJobText(html, PlatformUnknown)
}

func extractJobText(html string, platform Platform) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .ads, .sidebar, .cookie-banner, .popup").Remove()
	doc.Find(strings.Join(platformNoiseSelectors(platform), ", ")).Remove()

	selectors := append(platformContentSelectors(platform), jobContentSelectors...)
	var content *goquery.Selection
	for _, selector := range selectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			content = selection.First()
			break
		}
	}
	if content == nil {
		content = doc.Find("body")
	}

	return cleanWhitespace(content.Text()), nil
}

// cleanWhitespace drops blank lines and trims the rest.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
