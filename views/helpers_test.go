package views

import (
	"encoding/json"
	"testing"
)

func TestResolveURL(t *testing.T) {
	tests := []struct {
		base string
		ref  string
		want string
	}{
		{"https://example.com/", "foo", "https://example.com/foo"},
		{"https://example.com/", "/c/news/", "https://example.com/c/news/"},
		{"https://example.com", "foo", "https://example.com/foo"},
		{"https://example.com/blog/", "foo", "https://example.com/blog/foo"},
		{"https://example.com/blog/", "/foo", "https://example.com/foo"},
		{"https://example.com/", "https://cdn.example.com/x.png", "https://cdn.example.com/x.png"},
		{"https://example.com/", "https://cdn.example.com/x.png?v=2#top", "https://cdn.example.com/x.png?v=2#top"},
		{"https://example.com/", "/feed.xml?x=1", "https://example.com/feed.xml?x=1"},
	}
	for _, tt := range tests {
		if got := ResolveURL(tt.base, tt.ref); got != tt.want {
			t.Errorf("ResolveURL(%q, %q) = %q, want %q", tt.base, tt.ref, got, tt.want)
		}
	}
}

func TestResolvePath(t *testing.T) {
	tests := []struct {
		base string
		path string
		want string
	}{
		{"https://example.com/", "/c/news/", "https://example.com/c/news/"},
		{"https://example.com/blog/", "/c/", "https://example.com/c/"},
		{"https://example.com/", "//evil.example/", "https://example.com//evil.example/"},
		{"https://example.com/", "/https://evil.example/", "https://example.com/https://evil.example/"},
	}
	for _, tt := range tests {
		if got := ResolvePath(tt.base, tt.path); got != tt.want {
			t.Errorf("ResolvePath(%q, %q) = %q, want %q", tt.base, tt.path, got, tt.want)
		}
	}
}

func TestPageTitle(t *testing.T) {
	tests := []struct {
		title     string
		page      string
		displayed string
	}{
		{"", "Site", "Site"},
		{"Channels", "Channels - Site", "Channels"},
	}
	for _, tt := range tests {
		if got := PageTitle(tt.title, "Site"); got != tt.page {
			t.Errorf("PageTitle(%q) = %q, want %q", tt.title, got, tt.page)
		}
		if got := DisplayedTitle(tt.title, "Site"); got != tt.displayed {
			t.Errorf("DisplayedTitle(%q) = %q, want %q", tt.title, got, tt.displayed)
		}
	}
}

func TestLangTag(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"en", "en"},
		{"EN-us", "en-US"},
		{"ar", "ar"},
		{"", "und"},
		{"not a tag", "und"},
	}
	for _, tt := range tests {
		if got := LangTag(tt.in); got != tt.want {
			t.Errorf("LangTag(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPostCount(t *testing.T) {
	tests := []struct {
		n    uint64
		want string
	}{
		{0, "0 posts"},
		{1, "1 post"},
		{2, "2 posts"},
		{1204, "1,204 posts"},
	}
	for _, tt := range tests {
		if got := PostCount(tt.n); got != tt.want {
			t.Errorf("PostCount(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestArticleJSONLD(t *testing.T) {
	cfg := SiteConfig{SiteName: "Site", TopURL: "https://example.com/"}
	out := ArticleJSONLD(cfg, Article{
		Path:       "/c/news/p/",
		Headline:   "Hello </script>",
		AuthorName: "Ann",
		AuthorPath: "/author/a/",
		Keywords:   []string{"go"},
	})
	var data map[string]any
	if err := json.Unmarshal([]byte(out), &data); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if data["url"] != "https://example.com/c/news/p/" {
		t.Errorf("url = %v", data["url"])
	}
	if data["headline"] != "Hello </script>" {
		t.Errorf("headline = %v", data["headline"])
	}
	author, _ := data["author"].(map[string]any)
	if author["url"] != "https://example.com/author/a/" {
		t.Errorf("author url = %v", author["url"])
	}
}
