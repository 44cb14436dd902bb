// Package backend talks to the content backend's versioned JSON API and
// decodes its payloads into the content entity model.
package backend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	instrumentationName = "github.com/alarkhabil/frontend/backend"

	defaultTimeout = 30 * time.Second
	maxBodySize    = 32 << 20
)

var (
	// ErrFetch is returned for any transport failure or non-2xx response.
	// It does not tell a missing entity apart from an unavailable backend.
	ErrFetch = errors.New("backend: fetch failed")

	// ErrRequest is returned when no request could be built: a malformed
	// base URL, an unusable path or an unsupported API version.
	ErrRequest = errors.New("backend: invalid request")

	// ErrUnsupportedVersion is wrapped by ErrRequest when the client is
	// configured for an API version other than V1.
	ErrUnsupportedVersion = errors.New("backend: unsupported api version")
)

// Version selects the backend API generation.
type Version int

// V1 is the only version the backend serves.
const V1 Version = 1

func (v Version) prefix() (string, error) {
	if v != V1 {
		return "", fmt.Errorf("%w: %w: %d", ErrRequest, ErrUnsupportedVersion, int(v))
	}
	return "/api/v1/", nil
}

// Fetcher issues GET requests against the backend API.
type Fetcher interface {
	Fetch(ctx context.Context, path string, query map[string]string) ([]byte, error)
}

var _ Fetcher = (*Client)(nil)

// Client builds URLs against a backend base URL and fetches raw response
// bodies. A Client is safe for concurrent use.
type Client struct {
	baseURL    string
	version    Version
	httpClient *http.Client
	tracer     trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client, whose timeout is 30s.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithVersion selects the API version. Anything but V1 makes every call fail.
func WithVersion(v Version) Option {
	return func(c *Client) {
		c.version = v
	}
}

// WithTracerProvider sets where fetch spans are reported. The global
// provider is used otherwise.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Client) {
		c.tracer = tp.Tracer(instrumentationName)
	}
}

// NewClient creates a Client for the backend at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		version: V1,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		tracer: otel.Tracer(instrumentationName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the absolute endpoint URL for path (relative to the version
// prefix) with query encoded in key order.
func (c *Client) URL(path string, query map[string]string) (string, error) {
	prefix, err := c.version.prefix()
	if err != nil {
		return "", err
	}
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("%w: parse base url %q: %w", ErrRequest, c.baseURL, err)
	}
	if !base.IsAbs() || base.Host == "" {
		return "", fmt.Errorf("%w: base url %q is not absolute", ErrRequest, c.baseURL)
	}
	ref, err := url.Parse(path)
	if err != nil {
		return "", fmt.Errorf("%w: parse path %q: %w", ErrRequest, path, err)
	}
	if ref.IsAbs() || ref.Host != "" || strings.HasPrefix(ref.Path, "/") {
		return "", fmt.Errorf("%w: path %q must be relative", ErrRequest, path)
	}

	target := base.ResolveReference(&url.URL{Path: prefix}).ResolveReference(ref)
	q := target.Query()
	for k, v := range query {
		q.Set(k, v)
	}
	target.RawQuery = q.Encode()
	target.Fragment = ""
	return target.String(), nil
}

// Fetch GETs path with query and returns the response body.
func (c *Client) Fetch(ctx context.Context, path string, query map[string]string) ([]byte, error) {
	target, err := c.URL(path, query)
	if err != nil {
		return nil, err
	}

	ctx, span := c.tracer.Start(ctx, "backend.fetch",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", http.MethodGet),
			attribute.String("url.full", target),
		),
	)
	defer span.End()

	body, status, err := c.get(ctx, target)
	if status != 0 {
		span.SetAttributes(attribute.Int("http.response.status_code", status))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, target string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: create request: %w", ErrRequest, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: GET %s: %w", ErrFetch, target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, fmt.Errorf("%w: GET %s: unexpected status %d", ErrFetch, target, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("%w: GET %s: read body: %w", ErrFetch, target, err)
	}
	return body, resp.StatusCode, nil
}
