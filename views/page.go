package views

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
)

const (
	RobotsAllow = "index,follow,notranslate"
	RobotsDeny  = "noindex,nofollow"
)

// Page is the base template around a content fragment. It is the only
// place site branding and navigation are rendered.
type Page struct {
	// Path is the request path, resolved against the site's top URL.
	Path string
	// Title is the heading title; empty means the site name alone.
	Title string
	// Content is the pre-rendered content fragment.
	Content template.HTML
	Config  SiteConfig
	// NoIndex asks robots to skip the page, as on error pages.
	NoIndex bool
	// OGType defaults to "website".
	OGType string
	// JSONLD replaces the default WebSite structured data when set.
	JSONLD string
}

type pageView struct {
	PageTitle        string
	DisplayedTitle   string
	URL              string
	OGImage          string
	OGType           string
	Robots           string
	SiteName         string
	SiteDescription  string
	SiteCopyright    string
	HeaderNavigation []NavigationItem
	FooterNavigation []NavigationItem
	SiteConfigJSON   string
	JSONLD           template.JS
	Content          template.HTML
	Skeletons        []Skeleton
}

func (p Page) view() (pageView, error) {
	cfg := p.Config
	cfgJSON, err := json.Marshal(cfg)
	if err != nil {
		return pageView{}, fmt.Errorf("encode site config: %w", err)
	}
	skels, err := Skeletons()
	if err != nil {
		return pageView{}, err
	}

	v := pageView{
		PageTitle:        PageTitle(p.Title, cfg.SiteName),
		DisplayedTitle:   DisplayedTitle(p.Title, cfg.SiteName),
		URL:              ResolvePath(cfg.TopURL, p.Path),
		OGImage:          ResolveURL(cfg.TopURL, cfg.OGImage),
		OGType:           p.OGType,
		Robots:           RobotsAllow,
		SiteName:         cfg.SiteName,
		SiteDescription:  cfg.SiteDescription,
		SiteCopyright:    cfg.SiteCopyright,
		HeaderNavigation: cfg.HeaderNavigation,
		FooterNavigation: cfg.FooterNavigation,
		SiteConfigJSON:   string(cfgJSON),
		JSONLD:           template.JS(p.JSONLD),
		Content:          p.Content,
		Skeletons:        skels,
	}
	if v.OGType == "" {
		v.OGType = "website"
	}
	if p.NoIndex {
		v.Robots = RobotsDeny
	}
	if p.JSONLD == "" {
		v.JSONLD = template.JS(WebsiteJSONLD(cfg))
	}
	return v, nil
}

// Render writes the complete HTML document.
func (p Page) Render(_ context.Context, w io.Writer) error {
	v, err := p.view()
	if err != nil {
		return err
	}
	return execute(w, "base", v)
}
