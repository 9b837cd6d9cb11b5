package mdbuild

import "fmt"

// Inline operations append no trailing newline, so multiple fragments
// compose on one logical line. End the line yourself with Line or Raw.

// Bold appends **text**.
func (b *Builder) Bold(text string) *Builder {
	b.buf.WriteString("**" + text + "**")
	return b
}

// Italic appends *text*.
func (b *Builder) Italic(text string) *Builder {
	b.buf.WriteString("*" + text + "*")
	return b
}

// Strikethrough appends ~~text~~.
func (b *Builder) Strikethrough(text string) *Builder {
	b.buf.WriteString("~~" + text + "~~")
	return b
}

// Code appends an inline code span.
func (b *Builder) Code(text string) *Builder {
	b.buf.WriteString("`" + text + "`")
	return b
}

// Highlight appends ==text==.
func (b *Builder) Highlight(text string) *Builder {
	b.buf.WriteString("==" + text + "==")
	return b
}

// Emoji appends the :shortcode: form of an emoji.
func (b *Builder) Emoji(shortcode string) *Builder {
	b.buf.WriteString(":" + shortcode + ":")
	return b
}

// Link appends [text](url).
func (b *Builder) Link(text, url string) *Builder {
	fmt.Fprintf(&b.buf, "[%s](%s)", text, url)
	return b
}

// FootnoteRef appends a footnote reference marker [^id]. Pair it with a
// Footnote definition elsewhere in the document.
func (b *Builder) FootnoteRef(id string) *Builder {
	b.buf.WriteString("[^" + id + "]")
	return b
}
