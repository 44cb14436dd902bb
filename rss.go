package frontend

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/alarkhabil/frontend/backend"
	"github.com/alarkhabil/frontend/unixtime"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Copyright   string    `xml:"copyright,omitempty"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string  `xml:"title"`
	Link        string  `xml:"link"`
	Description string  `xml:"description"`
	Category    string  `xml:"category,omitempty"`
	PubDate     string  `xml:"pubDate"`
	GUID        rssGUID `xml:"guid"`
}

type rssGUID struct {
	IsPermaLink string `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.api(a.siteConfig(c)).ListPosts(c.Request().Context())
	if err != nil {
		return err
	}
	return a.renderRSS(c, posts)
}

func (a *App) renderRSS(c echo.Context, posts []backend.PostSummary) error {
	cfg := a.siteConfig(c)
	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		// ListPosts guarantees both summaries.
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        BuildURL(cfg, postPath(p.Channel.Handle, p.PostUUID)),
			Description: p.Title + " by " + p.Author.Name + " in " + p.Channel.Name,
			Category:    p.Channel.Name,
			PubDate:     unixtime.Time(p.RevisionDate).Format(time.RFC1123Z),
			GUID:        rssGUID{IsPermaLink: "false", Value: "urn:uuid:" + p.PostUUID.String()},
		})
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       cfg.SiteName,
			Link:        BuildURL(cfg, "/"),
			Description: cfg.SiteDescription,
			Copyright:   cfg.SiteCopyright,
			Items:       items,
		},
	}
	return writeXML(c, "application/rss+xml; charset=utf-8", feed)
}

func writeXML(c echo.Context, contentType string, v any) error {
	out, err := xml.Marshal(v)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, contentType, append([]byte(xml.Header), out...))
}
