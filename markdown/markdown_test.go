package markdown

import (
	"strings"
	"testing"
)

func TestToHTML(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"# Hi", "<h1>Hi</h1>\n"},
		{"## Sub", "<h2>Sub</h2>\n"},
		{"hello", "<p>hello</p>\n"},
		{"**bold**", "<p><strong>bold</strong></p>\n"},
		{"*italic*", "<p><em>italic</em></p>\n"},
		{"`code`", "<p><code>code</code></p>\n"},
		{"~~gone~~", "<p><del>gone</del></p>\n"},
		{"- a\n- b", "<ul>\n<li>a</li>\n<li>b</li>\n</ul>\n"},
		{"1. a\n2. b", "<ol>\n<li>a</li>\n<li>b</li>\n</ol>\n"},
		{"> quote", "<blockquote>\n<p>quote</p>\n</blockquote>\n"},
		{"a & b < c", "<p>a &amp; b &lt; c</p>\n"},
	}
	for _, tt := range tests {
		got := ToHTML(tt.input)
		if got != tt.expected {
			t.Errorf("ToHTML(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestToHTMLCodeBlock(t *testing.T) {
	got := ToHTML("```go\nfmt.Println(\"hello\")\n```")
	if !strings.Contains(got, `<pre><code class="language-go">`) {
		t.Errorf("code block should have language-go class: %q", got)
	}
	if !strings.Contains(got, "fmt.Println(&quot;hello&quot;)") {
		t.Errorf("code block content should be escaped: %q", got)
	}
}

func TestToHTMLLinks(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{
			"[Wikipedia](https://en.wikipedia.org/wiki/Some_Article_Title)",
			`<p><a href="https://en.wikipedia.org/wiki/Some_Article_Title">Wikipedia</a></p>` + "\n",
		},
		{
			"Visit https://example.com/ now",
			`<p>Visit <a href="https://example.com/">https://example.com/</a> now</p>` + "\n",
		},
	}
	for _, tt := range tests {
		got := ToHTML(tt.input)
		if got != tt.expected {
			t.Errorf("ToHTML(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestToHTMLUnsafe(t *testing.T) {
	tests := []struct {
		input   string
		missing string
	}{
		{"<script>alert(1)</script>", "<script>"},
		{"hi <img src=x onerror=alert(1)>", "onerror"},
		{"[x](javascript:alert(1))", "javascript:"},
	}
	for _, tt := range tests {
		got := ToHTML(tt.input)
		if strings.Contains(got, tt.missing) {
			t.Errorf("ToHTML(%q) = %q, should not contain %q", tt.input, got, tt.missing)
		}
	}
}

func TestToHTMLTable(t *testing.T) {
	got := ToHTML("| a | b |\n|---|---|\n| 1 | 2 |")
	for _, want := range []string{"<table>", "<th>a</th>", "<td>2</td>"} {
		if !strings.Contains(got, want) {
			t.Errorf("table output missing %q: %q", want, got)
		}
	}
}

func TestHTML(t *testing.T) {
	if got := string(HTML("# Hi")); got != "<h1>Hi</h1>\n" {
		t.Errorf("HTML(%q) = %q", "# Hi", got)
	}
}
