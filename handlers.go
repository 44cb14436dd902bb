package frontend

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/alarkhabil/frontend/backend"
	"github.com/alarkhabil/frontend/unixtime"
	"github.com/alarkhabil/frontend/views"
)

// Fetch failures are classified by endpoint shape. A lookup is keyed by an
// identifier taken from the URL, so a failure usually means a stale or
// mistyped link and becomes a 404. A listing failure is an upstream
// problem and propagates as a 500. Decode errors are always 500.
//
//	route                           lookup        listing
//	/                                             post/list
//	/meta/                                        meta/list
//	/meta/:page_name/               meta/info
//	/c/                                           channel/list
//	/c/:channel_handle/             channel/info  channel/posts
//	/c/:channel_handle/:post_uuid/  post/info
//	/author/                                      author/list
//	/author/:author_uuid/           author/info   author/posts
//	/tag/                                         tag/list
//	/tag/:tag_name/                               tag/posts

// lookupErr maps a failed lookup fetch to a 404.
func lookupErr(err error) error {
	if errors.Is(err, backend.ErrFetch) {
		return echo.ErrNotFound.WithInternal(err)
	}
	return err
}

// pathParam returns a decoded path parameter. echo routes on the escaped
// path whenever it differs from the decoded one (as for %2F), and its
// params are then still escaped.
func pathParam(c echo.Context, name string) (string, bool) {
	v := c.Param(name)
	if c.Request().URL.RawPath == "" {
		return v, true
	}
	u, err := url.PathUnescape(v)
	if err != nil {
		return "", false
	}
	return u, true
}

func (a *App) formatter(c echo.Context) unixtime.Formatter {
	return unixtime.NewFormatter(a.siteConfig(c).ServerTimezone)
}

func (a *App) handleTop(c echo.Context) error {
	ctx := c.Request().Context()
	posts, err := a.api(a.siteConfig(c)).ListPosts(ctx)
	if err != nil {
		return err
	}
	list, err := listing(ctx, "Latest Posts", "There is no post in this list.", postListItems(posts, a.formatter(c)))
	if err != nil {
		return err
	}
	return a.renderPage(c, http.StatusOK, "", list)
}

func (a *App) handleMetaList(c echo.Context) error {
	ctx := c.Request().Context()
	pages, err := a.api(a.siteConfig(c)).ListMetaPages(ctx)
	if err != nil {
		return err
	}
	list, err := listing(ctx, "Pages", "There is no page in this list.", metaListItems(pages, a.formatter(c)))
	if err != nil {
		return err
	}
	return a.renderPage(c, http.StatusOK, "Pages", list)
}

func (a *App) handleMetaPage(c echo.Context) error {
	name := c.Param("page_name")
	if !backend.ValidPageName(name) {
		return echo.ErrNotFound
	}
	page, err := a.api(a.siteConfig(c)).MetaPage(c.Request().Context(), name)
	if err != nil {
		return lookupErr(err)
	}
	return a.renderPage(c, http.StatusOK, page.Title, metaPageFragment(page, a.formatter(c)))
}

func (a *App) handleChannelList(c echo.Context) error {
	ctx := c.Request().Context()
	channels, err := a.api(a.siteConfig(c)).ListChannels(ctx)
	if err != nil {
		return err
	}
	list, err := listing(ctx, "Channels", "There is no channel in this list.", channelListItems(channels))
	if err != nil {
		return err
	}
	return a.renderPage(c, http.StatusOK, "Channels", list)
}

func (a *App) handleChannel(c echo.Context) error {
	handle := c.Param("channel_handle")
	if !backend.ValidHandle(handle) {
		return echo.ErrNotFound
	}
	ctx := c.Request().Context()
	api := a.api(a.siteConfig(c))

	channel, err := api.ChannelInfo(ctx, handle)
	if err != nil {
		return lookupErr(err)
	}
	posts, err := api.ChannelPosts(ctx, channel.UUID)
	if err != nil {
		return err
	}

	tf := a.formatter(c)
	list, err := listing(ctx, "Posts", "There is no post in this list.",
		postListItems(withChannel(posts, channel.Summary()), tf))
	if err != nil {
		return err
	}
	return a.renderPage(c, http.StatusOK, channel.Name, concat(channelFragment(channel, tf), list))
}

func (a *App) handlePost(c echo.Context) error {
	handle := c.Param("channel_handle")
	id, ok := backend.ParseUUID(c.Param("post_uuid"))
	if !ok || !backend.ValidHandle(handle) {
		return echo.ErrNotFound
	}
	ctx := c.Request().Context()
	cfg := a.siteConfig(c)

	post, err := a.api(cfg).PostInfo(ctx, id)
	if err != nil {
		return lookupErr(err)
	}
	if post.Channel.Handle != handle {
		return echo.ErrNotFound
	}

	frag := postFragment(post, a.formatter(c))
	if frag.Tags, err = views.HTML(ctx, views.Join(postTags(post))); err != nil {
		return err
	}
	ld := views.ArticleJSONLD(cfg, views.Article{
		Path:       postPath(post.Channel.Handle, post.PostUUID),
		Headline:   post.Title,
		AuthorName: post.Author.Name,
		AuthorPath: authorPath(post.Author.UUID),
		Published:  frag.DateTime,
		Keywords:   post.Tags,
		Lang:       frag.Lang,
	})
	return a.renderPage(c, http.StatusOK, post.Title, frag, article(ld))
}

func (a *App) handleAuthorList(c echo.Context) error {
	ctx := c.Request().Context()
	authors, err := a.api(a.siteConfig(c)).ListAuthors(ctx)
	if err != nil {
		return err
	}
	list, err := listing(ctx, "Authors", "There is no author in this list.", authorListItems(authors))
	if err != nil {
		return err
	}
	return a.renderPage(c, http.StatusOK, "Authors", list)
}

func (a *App) handleAuthor(c echo.Context) error {
	id, ok := backend.ParseUUID(c.Param("author_uuid"))
	if !ok {
		return echo.ErrNotFound
	}
	ctx := c.Request().Context()
	api := a.api(a.siteConfig(c))

	author, err := api.AuthorInfo(ctx, id)
	if err != nil {
		return lookupErr(err)
	}
	posts, err := api.AuthorPosts(ctx, author.UUID)
	if err != nil {
		return err
	}

	tf := a.formatter(c)
	list, err := listing(ctx, "Posts", "There is no post in this list.",
		postListItems(withAuthor(posts, author.Summary()), tf))
	if err != nil {
		return err
	}
	return a.renderPage(c, http.StatusOK, author.Name, concat(authorFragment(author, tf), list))
}

func (a *App) handleTagList(c echo.Context) error {
	ctx := c.Request().Context()
	tags, err := a.api(a.siteConfig(c)).ListTags(ctx)
	if err != nil {
		return err
	}
	list, err := listing(ctx, "Tags", "There is no tag in this list.", tagListItems(tags))
	if err != nil {
		return err
	}
	return a.renderPage(c, http.StatusOK, "Tags", list)
}

// handleTag treats tag/posts as a listing: an unknown tag is an empty list
// on the backend, so a failure is never a user's bad link.
func (a *App) handleTag(c echo.Context) error {
	name, ok := pathParam(c, "tag_name")
	if !ok || strings.TrimSpace(name) == "" {
		return echo.ErrNotFound
	}
	ctx := c.Request().Context()
	posts, err := a.api(a.siteConfig(c)).TagPosts(ctx, name)
	if err != nil {
		return err
	}
	list, err := listing(ctx, "Posts", "There is no post in this list.", postListItems(posts, a.formatter(c)))
	if err != nil {
		return err
	}
	return a.renderPage(c, http.StatusOK, "#"+name, concat(views.Tag{TagName: name}, list))
}

func (a *App) handleJavaScriptRequired(c echo.Context) error {
	return a.renderPage(c, http.StatusOK, "JavaScript required",
		views.Message{Text: "This page requires JavaScript to be enabled."})
}

func (a *App) handleRobots(c echo.Context) error {
	cfg := a.siteConfig(c)
	body := "User-agent: *\nAllow: /\nSitemap: " + BuildURL(cfg, "/sitemap.xml") + "\n"
	return c.String(http.StatusOK, body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	c.Response().Header().Set("Cache-Control", "no-store")
	if strings.HasPrefix(c.Request().URL.Path, apiPrefix) {
		a.Echo.DefaultHTTPErrorHandler(err, c)
		return
	}

	code := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
	}

	title := http.StatusText(code)
	msg := views.ErrorMessage{
		Title:  fmt.Sprintf("%d: %s", code, title),
		Detail: "The request could not be handled.",
	}
	switch {
	case code == http.StatusNotFound:
		msg.Detail = "The page you requested does not exist."
	case code >= 500:
		c.Logger().Errorf("server error: %v", err)
		title = "Error"
		msg = views.ErrorMessage{Title: "Error", Detail: "Something went wrong while loading this page."}
	}
	a.renderError(c, code, title, msg)
}

// renderError writes a styled error page, or the bare status text when the
// page itself fails to render.
func (a *App) renderError(c echo.Context, code int, title string, content templ.Component) {
	if err := a.renderPage(c, code, title, content, noIndex); err != nil {
		c.Logger().Errorf("render error page: %v", err)
		_ = c.String(code, http.StatusText(code))
	}
}
