package backend

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
)

type call struct {
	path  string
	query map[string]string
}

type fakeFetcher struct {
	bodies map[string]string
	calls  []call
}

func (f *fakeFetcher) Fetch(_ context.Context, path string, query map[string]string) ([]byte, error) {
	f.calls = append(f.calls, call{path, query})
	body, ok := f.bodies[path]
	if !ok {
		return nil, fmt.Errorf("%w: GET %s: unexpected status 404", ErrFetch, path)
	}
	return []byte(body), nil
}

const (
	testAuthorJSON  = `{"uuid":"` + testAuthorUUID + `","name":"Ann"}`
	testChannelJSON = `{"uuid":"` + testChannelUUID + `","handle":"news","name":"News","lang":"en"}`
)

func summaryJSON(author, channel bool) string {
	s := `{"post_uuid":"` + testPostUUID + `","revision_uuid":"r1","revision_date":10,"title":"T"`
	if author {
		s += `,"author":` + testAuthorJSON
	}
	if channel {
		s += `,"channel":` + testChannelJSON
	}
	return "[" + s + "}]"
}

func TestAPIEndpoints(t *testing.T) {
	id := uuid.MustParse(testPostUUID)
	tests := []struct {
		name  string
		call  func(a *API) error
		path  string
		query map[string]string
		body  string
	}{
		{"ListPosts", func(a *API) error { _, err := a.ListPosts(context.Background()); return err },
			"post/list", nil, summaryJSON(true, true)},
		{"PostInfo", func(a *API) error { _, err := a.PostInfo(context.Background(), id); return err },
			"post/info", map[string]string{"uuid": testPostUUID},
			`{"post_uuid":"` + testPostUUID + `","channel":` + testChannelJSON + `,"tags":[],"revision_uuid":"r","revision_date":1,"title":"t","revision_text":"x","author":` + testAuthorJSON + `}`},
		{"ListMetaPages", func(a *API) error { _, err := a.ListMetaPages(context.Background()); return err },
			"meta/list", nil, `[{"page_name":"about","updated_date":1,"title":"About"}]`},
		{"MetaPage", func(a *API) error { _, err := a.MetaPage(context.Background(), "about"); return err },
			"meta/info", map[string]string{"page_name": "about"}, `{"page_name":"about","updated_date":1,"title":"About","text":"hi"}`},
		{"ListChannels", func(a *API) error { _, err := a.ListChannels(context.Background()); return err },
			"channel/list", nil, "[" + testChannelJSON + "]"},
		{"ChannelInfo", func(a *API) error { _, err := a.ChannelInfo(context.Background(), "news"); return err },
			"channel/info", map[string]string{"handle": "news"},
			`{"uuid":"` + testChannelUUID + `","handle":"news","name":"News","created_date":1,"lang":"en","description_text":""}`},
		{"ChannelPosts", func(a *API) error { _, err := a.ChannelPosts(context.Background(), id); return err },
			"channel/posts", map[string]string{"uuid": testPostUUID}, summaryJSON(true, false)},
		{"ListAuthors", func(a *API) error { _, err := a.ListAuthors(context.Background()); return err },
			"author/list", nil, "[" + testAuthorJSON + "]"},
		{"AuthorInfo", func(a *API) error { _, err := a.AuthorInfo(context.Background(), id); return err },
			"author/info", map[string]string{"uuid": testPostUUID},
			`{"uuid":"` + testAuthorUUID + `","name":"Ann","created_date":1,"description_text":""}`},
		{"AuthorPosts", func(a *API) error { _, err := a.AuthorPosts(context.Background(), id); return err },
			"author/posts", map[string]string{"uuid": testPostUUID}, summaryJSON(false, true)},
		{"ListTags", func(a *API) error { _, err := a.ListTags(context.Background()); return err },
			"tag/list", nil, `[{"tag_name":"go","page_count":3}]`},
		{"TagPosts", func(a *API) error { _, err := a.TagPosts(context.Background(), "go"); return err },
			"tag/posts", map[string]string{"tag_name": "go"}, summaryJSON(true, true)},
	}
	for _, tt := range tests {
		f := &fakeFetcher{bodies: map[string]string{tt.path: tt.body}}
		if err := tt.call(NewAPI(f)); err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		if len(f.calls) != 1 {
			t.Errorf("%s: %d fetches, want 1", tt.name, len(f.calls))
			continue
		}
		got := f.calls[0]
		if got.path != tt.path {
			t.Errorf("%s: path = %q, want %q", tt.name, got.path, tt.path)
		}
		if len(got.query) != len(tt.query) {
			t.Errorf("%s: query = %v, want %v", tt.name, got.query, tt.query)
		}
		for k, v := range tt.query {
			if got.query[k] != v {
				t.Errorf("%s: query[%q] = %q, want %q", tt.name, k, got.query[k], v)
			}
		}
	}
}

func TestAPIRequiresEmbeddedSummaries(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
		call func(a *API) error
	}{
		{"ListPosts without channel", "post/list", summaryJSON(true, false),
			func(a *API) error { _, err := a.ListPosts(context.Background()); return err }},
		{"TagPosts without author", "tag/posts", summaryJSON(false, true),
			func(a *API) error { _, err := a.TagPosts(context.Background(), "go"); return err }},
		{"ChannelPosts without author", "channel/posts", summaryJSON(false, true),
			func(a *API) error { _, err := a.ChannelPosts(context.Background(), uuid.Nil); return err }},
		{"AuthorPosts without channel", "author/posts", summaryJSON(true, false),
			func(a *API) error { _, err := a.AuthorPosts(context.Background(), uuid.Nil); return err }},
	}
	for _, tt := range tests {
		f := &fakeFetcher{bodies: map[string]string{tt.path: tt.body}}
		if err := tt.call(NewAPI(f)); !errors.Is(err, ErrDecode) {
			t.Errorf("%s: error = %v, want ErrDecode", tt.name, err)
		}
	}
}

func TestAPIFetchError(t *testing.T) {
	a := NewAPI(&fakeFetcher{})
	if _, err := a.MetaPage(context.Background(), "missing"); !errors.Is(err, ErrFetch) {
		t.Errorf("MetaPage error = %v, want ErrFetch", err)
	}
	if _, err := a.ListPosts(context.Background()); !errors.Is(err, ErrFetch) {
		t.Errorf("ListPosts error = %v, want ErrFetch", err)
	}
}

func TestAPIEmptyList(t *testing.T) {
	f := &fakeFetcher{bodies: map[string]string{"channel/list": "[]"}}
	channels, err := NewAPI(f).ListChannels(context.Background())
	if err != nil {
		t.Fatalf("ListChannels: %v", err)
	}
	if len(channels) != 0 {
		t.Errorf("len = %d, want 0", len(channels))
	}
}
