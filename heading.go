package mdbuild

import (
	"fmt"
	"strings"
)

// sanitizeHeading forces heading text onto a single line: carriage returns
// are dropped, each line feed becomes one space, surrounding whitespace is
// trimmed. A heading spanning multiple lines would break Markdown syntax.
func sanitizeHeading(text string) string {
	text = strings.ReplaceAll(text, "\r", "")
	text = strings.ReplaceAll(text, "\n", " ")
	return strings.TrimSpace(text)
}

func (b *Builder) heading(level int, text string) *Builder {
	fmt.Fprintf(&b.buf, "%s %s\n", strings.Repeat("#", level), sanitizeHeading(text))
	return b.endBlock()
}

// H1 appends a level-1 heading.
func (b *Builder) H1(text string) *Builder { return b.heading(1, text) }

// H2 appends a level-2 heading.
func (b *Builder) H2(text string) *Builder { return b.heading(2, text) }

// H3 appends a level-3 heading.
func (b *Builder) H3(text string) *Builder { return b.heading(3, text) }

// H4 appends a level-4 heading.
func (b *Builder) H4(text string) *Builder { return b.heading(4, text) }

// H5 appends a level-5 heading.
func (b *Builder) H5(text string) *Builder { return b.heading(5, text) }

// H6 appends a level-6 heading.
func (b *Builder) H6(text string) *Builder { return b.heading(6, text) }

// H2WithAnchor appends a level-2 heading carrying an explicit HTML anchor,
// so links can target the section independently of auto-generated slugs.
func (b *Builder) H2WithAnchor(text, id string) *Builder {
	fmt.Fprintf(&b.buf, "## %s <a id=%q></a>\n", sanitizeHeading(text), id)
	return b.endBlock()
}
