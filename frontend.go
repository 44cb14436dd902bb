// Package frontend serves the public HTML pages of an alarkhabil site and
// the small JSON API its client-side scripts use.
//
// Every page request reads the site config, fetches content from the
// backend API named there, maps entities into view fragments and wraps the
// result in the base page. Nothing is cached between requests except the
// compiled-in default config and the fragment skeletons.
package frontend

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/alarkhabil/frontend/backend"
	"github.com/alarkhabil/frontend/views"
)

const (
	DefaultConfigFile = "config.json"
	DefaultAssetsDir  = "assets"

	backendTimeout = 30 * time.Second
)

// App wires the echo server, middleware and handlers together.
type App struct {
	Echo *echo.Echo

	configFile     string
	assetsDir      string
	brandingDir    string
	httpClient     *http.Client
	tracerProvider trace.TracerProvider

	markdownLimiter *rateLimiter
}

// Option configures an App.
type Option func(*App)

// WithConfigFile sets the site config file read on every request
// (default "config.json").
func WithConfigFile(path string) Option {
	return func(a *App) {
		a.configFile = path
	}
}

// WithAssetsDir sets the directory served under /assets (default "assets").
func WithAssetsDir(dir string) Option {
	return func(a *App) {
		a.assetsDir = dir
	}
}

// WithBrandingDir sets the directory served under /branding. By default
// "branding" is used when it exists, "branding-default" otherwise.
func WithBrandingDir(dir string) Option {
	return func(a *App) {
		a.brandingDir = dir
	}
}

// WithHTTPClient sets the client used for backend requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(a *App) {
		a.httpClient = hc
	}
}

// WithTracerProvider sets where backend fetch spans are reported.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(a *App) {
		a.tracerProvider = tp
	}
}

// WithMarkdownRateLimit allows each client IP max markdown conversions per
// window (default 60 per minute).
func WithMarkdownRateLimit(max int, window time.Duration) Option {
	return func(a *App) {
		a.markdownLimiter = newRateLimiter(max, window)
	}
}

// WithDebug enables echo debug mode and debug logging.
func WithDebug(debug bool) Option {
	return func(a *App) {
		a.Echo.Debug = debug
		if debug {
			a.Echo.Logger.SetLevel(log.DEBUG)
		}
	}
}

// New creates an App with middleware and routes registered.
func New(opts ...Option) *App {
	e := echo.New()
	e.Logger.SetLevel(log.INFO)

	a := &App{
		Echo:           e,
		configFile:     DefaultConfigFile,
		assetsDir:      DefaultAssetsDir,
		httpClient:     &http.Client{Timeout: backendTimeout},
		tracerProvider: otel.GetTracerProvider(),

		markdownLimiter: newRateLimiter(defaultMarkdownRateLimit, defaultMarkdownRateWindow),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.brandingDir == "" {
		a.brandingDir = defaultBrandingDir()
	}

	a.setupMiddleware()
	a.setupRoutes()
	return a
}

// Start listens on addr until the server is shut down.
func (a *App) Start(addr string) error {
	if err := a.Echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/assets", a.assetsDir)
	e.Static("/branding", a.brandingDir)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)

	e.GET("/", a.handleTop)

	e.GET("/meta/", a.handleMetaList)
	e.GET("/meta/:page_name/", a.handleMetaPage)

	e.GET("/c/", a.handleChannelList)
	e.GET("/c/:channel_handle/", a.handleChannel)
	e.GET("/c/:channel_handle/:post_uuid/", a.handlePost)

	e.GET("/author/", a.handleAuthorList)
	e.GET("/author/:author_uuid/", a.handleAuthor)

	e.GET("/tag/", a.handleTagList)
	e.GET("/tag/:tag_name/", a.handleTag)

	for _, path := range []string{"/invites/", "/signup/", "/signin/", "/account/"} {
		e.GET(path, a.handleJavaScriptRequired)
	}

	api := e.Group(apiPrefix + "v1")
	api.POST("/markdown/parse", a.handleMarkdownParse, a.markdownLimiter.middleware)
	api.GET("/config/get", a.handleConfigGet)
	api.GET("/timestamp/format", a.handleTimestampFormat)
	api.GET("/templates/get", a.handleTemplatesGet)
}

// api returns the backend API named by cfg.
func (a *App) api(cfg views.SiteConfig) *backend.API {
	return backend.NewAPI(backend.NewClient(cfg.APIURL,
		backend.WithHTTPClient(a.httpClient),
		backend.WithTracerProvider(a.tracerProvider),
	))
}

func defaultBrandingDir() string {
	if fi, err := os.Stat("branding"); err == nil && fi.IsDir() {
		return "branding"
	}
	return "branding-default"
}
