package frontend

import (
	"bytes"
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/alarkhabil/frontend/views"
)

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
// The component is rendered in full before anything is written, so a
// failing render still reaches the error handler with nothing committed.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	var buf bytes.Buffer
	if err := cmp.Render(c.Request().Context(), &buf); err != nil {
		return err
	}
	return c.HTMLBlob(code, buf.Bytes())
}

// renderPage wraps content in the base page for the request path.
func (a *App) renderPage(c echo.Context, code int, title string, content templ.Component, opts ...pageOption) error {
	body, err := views.HTML(c.Request().Context(), content)
	if err != nil {
		return err
	}
	p := views.Page{
		Path:    c.Request().URL.Path,
		Title:   title,
		Content: body,
		Config:  a.siteConfig(c),
	}
	for _, opt := range opts {
		opt(&p)
	}
	return RenderStatus(c, code, p)
}

type pageOption func(*views.Page)

func noIndex(p *views.Page) {
	p.NoIndex = true
}

func article(jsonLD string) pageOption {
	return func(p *views.Page) {
		p.OGType = "article"
		p.JSONLD = jsonLD
	}
}

// listing renders a titled list of items, or the empty message when there
// are none.
func listing[F views.Fragment](ctx context.Context, title, empty string, items []F) (templ.Component, error) {
	var inner templ.Component = views.Message{Text: empty}
	if len(items) > 0 {
		inner = views.Join(items)
	}
	body, err := views.HTML(ctx, inner)
	if err != nil {
		return nil, err
	}
	return views.List{Title: title, Items: body}, nil
}

// concat renders components in order, e.g. an entity header and its list.
func concat(cs ...templ.Component) templ.Component {
	return templ.Join(cs...)
}
