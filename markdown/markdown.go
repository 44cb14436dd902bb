// Package markdown converts CommonMark (with GitHub extensions) to HTML.
//
// Raw HTML in the source is omitted and links with dangerous schemes are
// dropped, so the output can be embedded in pages without further
// sanitizing.
package markdown

import (
	"bytes"
	"html/template"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var converter = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Render writes the HTML representation of src to w.
func Render(w io.Writer, src string) error {
	return converter.Convert([]byte(src), w)
}

// ToHTML returns the HTML representation of src.
func ToHTML(src string) string {
	var buf bytes.Buffer
	// bytes.Buffer writes do not fail and the parser accepts any input.
	_ = Render(&buf, src)
	return buf.String()
}

// HTML is ToHTML typed for direct use in html/template.
func HTML(src string) template.HTML {
	return template.HTML(ToHTML(src))
}
