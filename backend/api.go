package backend

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// API is the typed surface of the backend's v1 endpoints.
//
// Listing methods that embed authors or channels check that the endpoint
// actually returned them, so callers can dereference PostSummary.Author and
// PostSummary.Channel where the method documents their presence.
type API struct {
	f Fetcher
}

// NewAPI wraps a Fetcher, usually a *Client.
func NewAPI(f Fetcher) *API {
	return &API{f: f}
}

// ListPosts returns the latest posts with author and channel set.
func (a *API) ListPosts(ctx context.Context) ([]PostSummary, error) {
	posts, err := get[[]PostSummary](ctx, a.f, "post/list", nil)
	if err != nil {
		return nil, err
	}
	return posts, requireSummaries(posts, true, true)
}

// PostInfo returns a single post.
func (a *API) PostInfo(ctx context.Context, id uuid.UUID) (PostInfo, error) {
	return get[PostInfo](ctx, a.f, "post/info", map[string]string{"uuid": id.String()})
}

// ListMetaPages returns every meta page without bodies.
func (a *API) ListMetaPages(ctx context.Context) ([]MetaPageListItem, error) {
	return get[[]MetaPageListItem](ctx, a.f, "meta/list", nil)
}

// MetaPage returns the meta page named pageName.
func (a *API) MetaPage(ctx context.Context, pageName string) (MetaPage, error) {
	return get[MetaPage](ctx, a.f, "meta/info", map[string]string{"page_name": pageName})
}

// ListChannels returns every channel.
func (a *API) ListChannels(ctx context.Context) ([]ChannelSummary, error) {
	return get[[]ChannelSummary](ctx, a.f, "channel/list", nil)
}

// ChannelInfo returns the channel with the given handle.
func (a *API) ChannelInfo(ctx context.Context, handle string) (ChannelInfo, error) {
	return get[ChannelInfo](ctx, a.f, "channel/info", map[string]string{"handle": handle})
}

// ChannelPosts returns the posts of a channel with author set. Channel is
// left nil; the caller already knows it.
func (a *API) ChannelPosts(ctx context.Context, channel uuid.UUID) ([]PostSummary, error) {
	posts, err := get[[]PostSummary](ctx, a.f, "channel/posts", map[string]string{"uuid": channel.String()})
	if err != nil {
		return nil, err
	}
	return posts, requireSummaries(posts, true, false)
}

// ListAuthors returns every author.
func (a *API) ListAuthors(ctx context.Context) ([]AuthorSummary, error) {
	return get[[]AuthorSummary](ctx, a.f, "author/list", nil)
}

// AuthorInfo returns a single author.
func (a *API) AuthorInfo(ctx context.Context, id uuid.UUID) (AuthorInfo, error) {
	return get[AuthorInfo](ctx, a.f, "author/info", map[string]string{"uuid": id.String()})
}

// AuthorPosts returns the posts of an author with channel set. Author is
// left nil; the caller already knows it.
func (a *API) AuthorPosts(ctx context.Context, author uuid.UUID) ([]PostSummary, error) {
	posts, err := get[[]PostSummary](ctx, a.f, "author/posts", map[string]string{"uuid": author.String()})
	if err != nil {
		return nil, err
	}
	return posts, requireSummaries(posts, false, true)
}

// ListTags returns every tag with its post count.
func (a *API) ListTags(ctx context.Context) ([]TagSummary, error) {
	return get[[]TagSummary](ctx, a.f, "tag/list", nil)
}

// TagPosts returns the posts carrying tagName with author and channel set.
func (a *API) TagPosts(ctx context.Context, tagName string) ([]PostSummary, error) {
	posts, err := get[[]PostSummary](ctx, a.f, "tag/posts", map[string]string{"tag_name": tagName})
	if err != nil {
		return nil, err
	}
	return posts, requireSummaries(posts, true, true)
}

func get[T any](ctx context.Context, f Fetcher, path string, query map[string]string) (T, error) {
	body, err := f.Fetch(ctx, path, query)
	if err != nil {
		var zero T
		return zero, err
	}
	return Decode[T](body)
}

func requireSummaries(posts []PostSummary, author, channel bool) error {
	for i, p := range posts {
		if author && p.Author == nil {
			return fmt.Errorf("%w: post %d (%s): missing author", ErrDecode, i, p.PostUUID)
		}
		if channel && p.Channel == nil {
			return fmt.Errorf("%w: post %d (%s): missing channel", ErrDecode, i, p.PostUUID)
		}
	}
	return nil
}
