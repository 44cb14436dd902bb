package frontend

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/alarkhabil/frontend/markdown"
	"github.com/alarkhabil/frontend/unixtime"
	"github.com/alarkhabil/frontend/views"
)

// apiPrefix is where the JSON API for client-side scripts lives. Errors
// under it are reported as JSON, not as HTML pages.
const apiPrefix = "/frontend/api/"

type markdownParseRequest struct {
	MarkdownText string `json:"markdown_text"`
}

type markdownParseResponse struct {
	HTML string `json:"html"`
}

type templatesResponse struct {
	Templates []views.Skeleton `json:"templates"`
}

// writeJSON is c.JSON without HTML escaping, so markup in values reaches
// clients byte for byte.
func writeJSON(c echo.Context, code int, v any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return c.JSONBlob(code, buf.Bytes())
}

func (a *App) handleMarkdownParse(c echo.Context) error {
	var req markdownParseRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	return writeJSON(c, http.StatusOK, markdownParseResponse{HTML: markdown.ToHTML(req.MarkdownText)})
}

func (a *App) handleConfigGet(c echo.Context) error {
	return writeJSON(c, http.StatusOK, a.siteConfig(c))
}

// handleTimestampFormat formats ?timestamp= (epoch seconds) in the server
// timezone. A missing or unparseable value is formatted as 0, a value past
// year 9999 as its last second.
func (a *App) handleTimestampFormat(c echo.Context) error {
	secs := unixtime.ParseSeconds(c.QueryParam("timestamp"))
	return writeJSON(c, http.StatusOK, a.formatter(c).Format(secs))
}

func (a *App) handleTemplatesGet(c echo.Context) error {
	skels, err := views.Skeletons()
	if err != nil {
		return err
	}
	return writeJSON(c, http.StatusOK, templatesResponse{Templates: skels})
}
