// Package fetch retrieves job postings from the web: paced HTTP fetching,
// HTML-to-text extraction tuned for job boards, platform detection for the
// common applicant-tracking systems, and a headless-browser fallback for
// postings that only render client side.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"
)

// DefaultTimeout bounds a single posting fetch.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent identifies the service to job boards.
const DefaultUserAgent = "Mozilla/5.0 (compatible; ResumeMatcher/1.0)"

// All outbound posting fetches share one pacer.
const (
	DefaultRequestInterval = time.Second
	DefaultRequestBurst    = 2
)

var limiter = rate.NewLimiter(rate.Every(DefaultRequestInterval), DefaultRequestBurst)

// SetRequestRate replaces the shared request pacing; call it during startup,
// before fetching begins. A zero or negative interval removes the limit.
func SetRequestRate(interval time.Duration, burst int) {
	if interval <= 0 {
		limiter = rate.NewLimiter(rate.Inf, 1)
		return
	}
	if burst < 1 {
		burst = 1
	}
	limiter = rate.NewLimiter(rate.Every(interval), burst)
}

// Result holds the raw and processed content of a posting fetch.
type Result struct {
	URL         string
	HTML        string
	Text        string
	Platform    Platform
	ContentType string
	StatusCode  int
	Rendered    bool
}

// Error reports a failed posting fetch.
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

// Options configures fetch behavior.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string

	// NoBrowser skips the headless fallback even for thin pages.
	NoBrowser bool
}

// DefaultOptions returns sensible defaults for posting fetches.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// URL retrieves the raw HTML of a posting URL, paced by the shared limiter.
func URL(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, &Error{
			URL:     urlStr,
			Message: "invalid URL",
			Cause:   err,
		}
	}

	if err := limiter.Wait(ctx); err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "request pacing interrupted",
			Cause:   err,
		}
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	client := &http.Client{
		Timeout: timeout,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "failed to create request",
			Cause:   err,
		}
	}

	req.Header.Set("User-Agent", opts.UserAgent)
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "HTTP request failed",
			Cause:   err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "failed to read response body",
			Cause:   err,
		}
	}

	result := &Result{
		URL:         urlStr,
		HTML:        string(bodyBytes),
		Platform:    DetectPlatform(urlStr),
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
	}

	if resp.StatusCode != http.StatusOK {
		return result, &Error{
			URL:     urlStr,
			Message: fmt.Sprintf("HTTP status %d", resp.StatusCode),
		}
	}

	return result, nil
}

// Posting fetches a URL and extracts the posting text with the selectors of
// its hosting platform. When the static HTML carries too little content the
// page is re-rendered in a headless browser, keeping whichever extraction
// produced more text.
func Posting(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	result, err := URL(ctx, urlStr, opts)
	if err != nil {
		return result, err
	}

	text, err := ExtractMainText(result.HTML,
		PlatformContentSelectors(result.Platform),
		PlatformNoiseSelectors(result.Platform)...)
	if err != nil {
		return result, &Error{
			URL:     urlStr,
			Message: "failed to extract posting text",
			Cause:   err,
		}
	}
	result.Text = text

	if opts.NoBrowser || !ShouldUseBrowser(text) {
		return result, nil
	}

	html, err := WithBrowser(ctx, urlStr, opts.Timeout)
	if err != nil {
		// No browser available or rendering failed; the thin static text
		// is still returned.
		return result, nil
	}

	rendered, err := ExtractMainText(html,
		PlatformContentSelectors(result.Platform),
		PlatformNoiseSelectors(result.Platform)...)
	if err == nil && len(rendered) > len(result.Text) {
		result.HTML = html
		result.Text = rendered
		result.Rendered = true
	}

	return result, nil
}

// ExtractMainText parses HTML and returns the main body text. Noise
// elements are removed first, then the first matching content selector
// wins; with no match the body element is used.
func ExtractMainText(html string, contentSelectors []string, noiseSelectors ...string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .advertisement, .ads, .sidebar, .cookie-banner, .popup").Remove()

	if len(noiseSelectors) > 0 {
		doc.Find(strings.Join(noiseSelectors, ", ")).Remove()
	}

	var mainContent *goquery.Selection
	for _, selector := range contentSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			mainContent = selection.First()
			break
		}
	}
	if mainContent == nil {
		mainContent = doc.Find("body")
	}

	return cleanWhitespace(mainContent.Text()), nil
}

// DefaultTextSelectors returns standard selectors for general web content.
func DefaultTextSelectors() []string {
	return []string{
		"main",
		"article",
		".content",
		"#content",
		".main-content",
		"#main-content",
	}
}

// JobPostingSelectors returns selectors that work across most job boards.
func JobPostingSelectors() []string {
	return []string{
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
}

// cleanWhitespace trims each line and drops the empty ones.
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
