package views

import (
	"encoding/json"
	"net/url"

	"github.com/dustin/go-humanize"
	"github.com/dustin/go-humanize/english"
	"golang.org/x/text/language"
)

// ResolveURL resolves ref against base with URL reference semantics:
// a relative ref is joined onto base, an absolute ref (with any query or
// fragment) is returned unchanged. Unparseable input yields ref as is.
func ResolveURL(base, ref string) string {
	r, err := url.Parse(ref)
	if err != nil {
		return ref
	}
	if r.IsAbs() {
		return ref
	}
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	return b.ResolveReference(r).String()
}

// ResolvePath joins a site path onto base. Unlike ResolveURL, a path
// starting with "//" stays on base's host.
func ResolvePath(base, path string) string {
	b, err := url.Parse(base)
	if err != nil {
		return path
	}
	return b.ResolveReference(&url.URL{Path: path}).String()
}

// PageTitle is the document title: "title - site" or the site name alone.
func PageTitle(title, siteName string) string {
	if title == "" {
		return siteName
	}
	return title + " - " + siteName
}

// DisplayedTitle is the title shown to sharing previews.
func DisplayedTitle(title, siteName string) string {
	if title == "" {
		return siteName
	}
	return title
}

// LangTag canonicalizes a BCP 47 language tag for a lang attribute.
// Unknown or malformed tags become "und".
func LangTag(s string) string {
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und.String()
	}
	return tag.String()
}

// PostCount formats a tag's post count, e.g. "1 post" or "1,204 posts".
func PostCount(n uint64) string {
	return humanize.Comma(int64(n)) + " " + english.PluralWord(int(n), "post", "")
}

// WebsiteJSONLD produces a Schema.org WebSite JSON-LD block for cfg.
func WebsiteJSONLD(cfg SiteConfig) string {
	data := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     cfg.SiteName,
		"url":      ResolveURL(cfg.TopURL, "/"),
	}
	if cfg.SiteDescription != "" {
		data["description"] = cfg.SiteDescription
	}
	return marshalJSONLD(data)
}

// Article describes a post for ArticleJSONLD.
type Article struct {
	Path       string // page path, resolved against the site's top URL
	Headline   string
	AuthorName string
	AuthorPath string
	Published  string // ISO 8601
	Keywords   []string
	Lang       string
}

// ArticleJSONLD produces a Schema.org Article JSON-LD block for a post.
func ArticleJSONLD(cfg SiteConfig, a Article) string {
	pageURL := ResolveURL(cfg.TopURL, a.Path)
	data := map[string]any{
		"@context":      "https://schema.org",
		"@type":         "Article",
		"headline":      a.Headline,
		"datePublished": a.Published,
		"url":           pageURL,
		"inLanguage":    a.Lang,
		"author": map[string]string{
			"@type": "Person",
			"name":  a.AuthorName,
			"url":   ResolveURL(cfg.TopURL, a.AuthorPath),
		},
		"publisher": map[string]string{
			"@type": "Organization",
			"name":  cfg.SiteName,
		},
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   pageURL,
		},
	}
	if len(a.Keywords) > 0 {
		data["keywords"] = a.Keywords
	}
	return marshalJSONLD(data)
}

func marshalJSONLD(data map[string]any) string {
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
