package views

import (
	"context"
	"embed"
	"html/template"
	"io"
	"net/url"

	"github.com/a-h/templ"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.New("views").Funcs(template.FuncMap{
	"pathEscape": url.PathEscape,
}).ParseFS(templatesFS, "templates/*.html"))

// Fragment is a content-specific piece of markup. Fragments carry only
// the strings they display; dates arrive formatted and bodies arrive as
// converted HTML. Every fragment renders the same element structure
// whatever its field values, which is what makes skeletons possible.
type Fragment interface {
	templ.Component
	// Kind identifies the fragment. The skeleton's template element id is
	// "template-content-" + Kind().
	Kind() string
}

func execute(w io.Writer, name string, data any) error {
	return templates.ExecuteTemplate(w, name, data)
}

// MetaPage is a full meta page.
type MetaPage struct {
	PageName         string
	Title            string
	UpdatedDateTime  string
	UpdatedFormatted string
	Content          template.HTML
}

func (MetaPage) Kind() string { return "meta-page" }

func (f MetaPage) Render(_ context.Context, w io.Writer) error { return execute(w, f.Kind(), f) }

// MetaListItem is a meta page entry in the meta page index.
type MetaListItem struct {
	PageName         string
	Title            string
	UpdatedDateTime  string
	UpdatedFormatted string
}

func (MetaListItem) Kind() string { return "meta-list-item" }

func (f MetaListItem) Render(_ context.Context, w io.Writer) error { return execute(w, f.Kind(), f) }

// Post is a single post page body. Tags holds rendered PostTag fragments.
type Post struct {
	PostUUID      string
	Title         string
	Lang          string
	ChannelHandle string
	ChannelName   string
	AuthorUUID    string
	AuthorName    string
	DateTime      string
	Formatted     string
	Tags          template.HTML
	Content       template.HTML
}

func (Post) Kind() string { return "post" }

func (f Post) Render(_ context.Context, w io.Writer) error { return execute(w, f.Kind(), f) }

// PostTag is one tag link below a post.
type PostTag struct {
	TagName string
}

func (PostTag) Kind() string { return "post-tag" }

func (f PostTag) Render(_ context.Context, w io.Writer) error { return execute(w, f.Kind(), f) }

// PostListItem is a post entry in any post listing.
type PostListItem struct {
	PostUUID      string
	Title         string
	Lang          string
	ChannelHandle string
	ChannelName   string
	AuthorUUID    string
	AuthorName    string
	DateTime      string
	Formatted     string
}

func (PostListItem) Kind() string { return "post-list-item" }

func (f PostListItem) Render(_ context.Context, w io.Writer) error { return execute(w, f.Kind(), f) }

// Channel is the header of a channel page.
type Channel struct {
	Handle           string
	Name             string
	Lang             string
	CreatedDateTime  string
	CreatedFormatted string
	Description      template.HTML
}

func (Channel) Kind() string { return "channel" }

func (f Channel) Render(_ context.Context, w io.Writer) error { return execute(w, f.Kind(), f) }

type ChannelListItem struct {
	Handle string
	Name   string
	Lang   string
}

func (ChannelListItem) Kind() string { return "channel-list-item" }

func (f ChannelListItem) Render(_ context.Context, w io.Writer) error { return execute(w, f.Kind(), f) }

// Author is the header of an author page.
type Author struct {
	UUID             string
	Name             string
	CreatedDateTime  string
	CreatedFormatted string
	Description      template.HTML
}

func (Author) Kind() string { return "author" }

func (f Author) Render(_ context.Context, w io.Writer) error { return execute(w, f.Kind(), f) }

type AuthorListItem struct {
	UUID string
	Name string
}

func (AuthorListItem) Kind() string { return "author-list-item" }

func (f AuthorListItem) Render(_ context.Context, w io.Writer) error { return execute(w, f.Kind(), f) }

// Tag is the header of a tag page.
type Tag struct {
	TagName string
}

func (Tag) Kind() string { return "tag" }

func (f Tag) Render(_ context.Context, w io.Writer) error { return execute(w, f.Kind(), f) }

// TagListItem is a tag entry in the tag index. PageCount is display text,
// see PostCount.
type TagListItem struct {
	TagName   string
	PageCount string
}

func (TagListItem) Kind() string { return "tag-list-item" }

func (f TagListItem) Render(_ context.Context, w io.Writer) error { return execute(w, f.Kind(), f) }

// List is a titled container. Items holds rendered list item fragments,
// or a single Message when there is nothing to list.
type List struct {
	Title string
	Items template.HTML
}

func (List) Kind() string { return "post-list" }

func (f List) Render(_ context.Context, w io.Writer) error { return execute(w, f.Kind(), f) }

// Message is a single paragraph of text, used in place of empty listings.
type Message struct {
	Text string
}

func (Message) Kind() string { return "single-paragraph-message" }

func (f Message) Render(_ context.Context, w io.Writer) error { return execute(w, f.Kind(), f) }

// ErrorMessage is the body of the not-found and error pages.
type ErrorMessage struct {
	Title  string
	Detail string
}

func (ErrorMessage) Kind() string { return "error-message" }

func (f ErrorMessage) Render(_ context.Context, w io.Writer) error { return execute(w, f.Kind(), f) }

// HTML renders c to a string for embedding into an outer fragment or page.
func HTML(ctx context.Context, c templ.Component) (template.HTML, error) {
	return templ.ToGoHTML(ctx, c)
}

// Join renders components one after another, see templ.Join.
func Join[C templ.Component](items []C) templ.Component {
	cs := make([]templ.Component, len(items))
	for i, c := range items {
		cs[i] = c
	}
	return templ.Join(cs...)
}
