package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestURL(t *testing.T) {
	tests := []struct {
		base  string
		path  string
		query map[string]string
		want  string
	}{
		{"http://localhost:3000", "post/list", nil, "http://localhost:3000/api/v1/post/list"},
		{"http://localhost:3000/", "post/list", nil, "http://localhost:3000/api/v1/post/list"},
		{"https://api.example.com/", "post/info", map[string]string{"uuid": "abc"}, "https://api.example.com/api/v1/post/info?uuid=abc"},
		{"https://api.example.com", "tag/posts", map[string]string{"tag_name": "a b&c"}, "https://api.example.com/api/v1/tag/posts?tag_name=a+b%26c"},
		{"https://api.example.com", "x", map[string]string{"b": "2", "a": "1"}, "https://api.example.com/api/v1/x?a=1&b=2"},
	}
	for _, tt := range tests {
		got, err := NewClient(tt.base).URL(tt.path, tt.query)
		if err != nil {
			t.Errorf("URL(%q, %q) error: %v", tt.base, tt.path, err)
			continue
		}
		if got != tt.want {
			t.Errorf("URL(%q, %q) = %q, want %q", tt.base, tt.path, got, tt.want)
		}
	}
}

func TestURLRejects(t *testing.T) {
	tests := []struct {
		base string
		path string
	}{
		{"", "post/list"},
		{"localhost:3000", "post/list"},
		{"/relative", "post/list"},
		{"http://localhost:3000", "/post/list"},
		{"http://localhost:3000", "https://evil.example.com/x"},
		{"http://localhost:3000", "//evil.example.com/x"},
		{"http://[::1", "post/list"},
	}
	for _, tt := range tests {
		_, err := NewClient(tt.base).URL(tt.path, nil)
		if !errors.Is(err, ErrRequest) {
			t.Errorf("URL(%q, %q) error = %v, want ErrRequest", tt.base, tt.path, err)
		}
	}
}

func TestUnsupportedVersion(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	c := NewClient(srv.URL, WithVersion(Version(2)))
	_, err := c.Fetch(context.Background(), "post/list", nil)
	if !errors.Is(err, ErrUnsupportedVersion) || !errors.Is(err, ErrRequest) {
		t.Fatalf("Fetch error = %v, want ErrRequest wrapping ErrUnsupportedVersion", err)
	}
	if hits != 0 {
		t.Errorf("backend hit %d times, want 0", hits)
	}
}

func TestFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.Path != "/api/v1/channel/info" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("handle"); got != "news" {
			t.Errorf("handle = %q, want news", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	body, err := NewClient(srv.URL, WithHTTPClient(srv.Client())).
		Fetch(context.Background(), "channel/info", map[string]string{"handle": "news"})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if string(body) != `{"ok":true}` {
		t.Errorf("body = %q", body)
	}
}

func TestFetchStatus(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusBadRequest, http.StatusInternalServerError, http.StatusMovedPermanently} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if status == http.StatusMovedPermanently {
				// Location-less redirect is returned to the caller as is.
				w.WriteHeader(status)
				return
			}
			http.Error(w, "nope", status)
		}))
		_, err := NewClient(srv.URL).Fetch(context.Background(), "post/list", nil)
		srv.Close()
		if !errors.Is(err, ErrFetch) {
			t.Errorf("status %d: error = %v, want ErrFetch", status, err)
		}
	}
}

func TestFetchTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	_, err := NewClient(addr).Fetch(context.Background(), "post/list", nil)
	if !errors.Is(err, ErrFetch) {
		t.Errorf("error = %v, want ErrFetch", err)
	}
}

func TestFetchCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewClient(srv.URL).Fetch(ctx, "post/list", nil)
	if !errors.Is(err, ErrFetch) || !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want ErrFetch wrapping context.Canceled", err)
	}
}
