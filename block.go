package mdbuild

import (
	"fmt"
	"strings"
)

// Paragraph appends trimmed text as its own block.
func (b *Builder) Paragraph(text string) *Builder {
	b.buf.WriteString(strings.TrimSpace(text))
	b.buf.WriteString("\n")
	return b.endBlock()
}

// BlockQuote appends text as a quote block. Multi-line input is split and
// every line prefixed with "> ", trailing whitespace stripped per line.
func (b *Builder) BlockQuote(text string) *Builder {
	for _, line := range strings.Split(text, "\n") {
		b.buf.WriteString("> " + strings.TrimRight(line, " \t\r"))
		b.buf.WriteString("\n")
	}
	return b.endBlock()
}

// HorizontalRule appends a thematic break.
func (b *Builder) HorizontalRule() *Builder {
	b.buf.WriteString("---\n")
	return b.endBlock()
}

// Image appends ![alt](url) as its own block.
func (b *Builder) Image(alt, url string) *Builder {
	fmt.Fprintf(&b.buf, "![%s](%s)\n", alt, url)
	return b.endBlock()
}

// Footnote appends a footnote definition [^id]: text.
func (b *Builder) Footnote(id, text string) *Builder {
	fmt.Fprintf(&b.buf, "[^%s]: %s\n", id, text)
	return b.endBlock()
}

// Details appends a collapsible <details> section with the given summary
// line and body content. The blank lines around the body are required for
// Markdown inside the HTML block to render.
func (b *Builder) Details(summary, content string) *Builder {
	b.buf.WriteString("<details>\n")
	b.buf.WriteString("<summary>" + summary + "</summary>\n\n")
	b.buf.WriteString(content)
	b.buf.WriteString("\n\n</details>\n")
	return b.endBlock()
}

func (b *Builder) callout(label, text string) *Builder {
	fmt.Fprintf(&b.buf, "> **%s:** %s\n", label, text)
	return b.endBlock()
}

// Note appends a single-line note callout.
func (b *Builder) Note(text string) *Builder { return b.callout("Note", text) }

// Tip appends a single-line tip callout.
func (b *Builder) Tip(text string) *Builder { return b.callout("Tip", text) }

// Warning appends a single-line warning callout.
func (b *Builder) Warning(text string) *Builder { return b.callout("Warning", text) }
