package frontend

import (
	"encoding/xml"

	"github.com/labstack/echo/v4"

	"github.com/alarkhabil/frontend/backend"
	"github.com/alarkhabil/frontend/unixtime"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

func (a *App) handleSitemap(c echo.Context) error {
	ctx := c.Request().Context()
	api := a.api(a.siteConfig(c))
	channels, err := api.ListChannels(ctx)
	if err != nil {
		return err
	}
	posts, err := api.ListPosts(ctx)
	if err != nil {
		return err
	}
	return a.renderSitemap(c, channels, posts)
}

func (a *App) renderSitemap(c echo.Context, channels []backend.ChannelSummary, posts []backend.PostSummary) error {
	cfg := a.siteConfig(c)
	urls := []sitemapURL{
		{Loc: BuildURL(cfg, "/")},
		{Loc: BuildURL(cfg, "/c/")},
		{Loc: BuildURL(cfg, "/author/")},
		{Loc: BuildURL(cfg, "/tag/")},
		{Loc: BuildURL(cfg, "/meta/")},
	}
	for _, ch := range channels {
		urls = append(urls, sitemapURL{Loc: BuildURL(cfg, channelPath(ch.Handle))})
	}
	for _, p := range posts {
		urls = append(urls, sitemapURL{
			Loc:     BuildURL(cfg, postPath(p.Channel.Handle, p.PostUUID)),
			LastMod: unixtime.Time(p.RevisionDate).Format("2006-01-02"),
		})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	return writeXML(c, "application/xml; charset=utf-8", sitemap)
}
