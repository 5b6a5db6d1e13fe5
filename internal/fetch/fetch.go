// Package fetch retrieves remote media server-side, working around the
// cross-origin restrictions a browser client would hit. It validates the
// returned content type against the target media slot before handing the
// bytes back: image slots accept either canonical raster format, video
// slots require an exact match.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// maxBodySize caps a fetched file at 256 MiB.
const maxBodySize = 256 << 20

// defaultUserAgent mimics a browser; some art hosts reject generic Go
// clients.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Result is a successfully fetched media file.
type Result struct {
	Data        []byte
	ContentType string
}

// Client fetches remote media.
type Client struct {
	http      *http.Client
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// NewClient creates a fetch client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		http:      &http.Client{Timeout: 30 * time.Second},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch retrieves rawURL and validates the response content type against
// nominalType, the MIME type of the media slot the file is destined for.
//
// The relaxed image rule: when nominalType is image/*, both image/jpeg
// and image/png are accepted regardless of which was nominally expected.
// When nominalType is video/*, the actual type must match exactly. Any
// other nominal type is rejected outright.
func (c *Client) Fetch(ctx context.Context, rawURL, nominalType string) (*Result, error) {
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	contentType := normalizeType(resp.Header.Get("Content-Type"))
	if err := ValidateType(nominalType, contentType); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(data) > maxBodySize {
		return nil, fmt.Errorf("fetch %s: response exceeds %d bytes", rawURL, maxBodySize)
	}

	return &Result{Data: data, ContentType: contentType}, nil
}

// ValidateType applies the relaxed matching rule between the slot's
// nominal content type and the type actually returned.
func ValidateType(nominalType, actualType string) error {
	nominal := normalizeType(nominalType)
	actual := normalizeType(actualType)

	switch {
	case strings.HasPrefix(nominal, "image/"):
		if actual == "image/jpeg" || actual == "image/png" {
			return nil
		}
		return &TypeMismatchError{Nominal: nominal, Actual: actual}
	case strings.HasPrefix(nominal, "video/"):
		if actual == nominal {
			return nil
		}
		return &TypeMismatchError{Nominal: nominal, Actual: actual}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedType, nominal)
	}
}

func normalizeType(t string) string {
	if i := strings.IndexByte(t, ';'); i >= 0 {
		t = t[:i]
	}
	return strings.ToLower(strings.TrimSpace(t))
}
