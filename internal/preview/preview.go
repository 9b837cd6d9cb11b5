// Package preview converts generated Markdown into a standalone HTML page
// for visual inspection in a browser.
package preview

import (
	"bytes"
	"fmt"
	"html"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// md is configured for the dialect the builder emits: GFM tables, task
// lists and strikethrough, footnote syntax, and raw HTML for <details>.
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Footnote,
	),
	goldmark.WithRendererOptions(
		gmhtml.WithUnsafe(),
	),
)

// HTML renders Markdown to a complete HTML page with the given title.
func HTML(markdown []byte, title string) ([]byte, error) {
	var body bytes.Buffer
	if err := md.Convert(markdown, &body); err != nil {
		return nil, fmt.Errorf("convert markdown: %w", err)
	}

	var page bytes.Buffer
	fmt.Fprintf(&page, "<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>%s</title>\n</head>\n<body>\n", html.EscapeString(title))
	page.Write(body.Bytes())
	page.WriteString("</body>\n</html>\n")
	return page.Bytes(), nil
}

// Fragment renders Markdown to an HTML fragment without page chrome.
func Fragment(markdown []byte) ([]byte, error) {
	var body bytes.Buffer
	if err := md.Convert(markdown, &body); err != nil {
		return nil, fmt.Errorf("convert markdown: %w", err)
	}
	return body.Bytes(), nil
}
