package mdbuild

import "strings"

// CodeBlock appends a fenced code block. A non-blank language tag is placed
// on the opening fence; a blank or omitted tag yields a bare fence. The code
// itself passes through verbatim.
func (b *Builder) CodeBlock(code string, lang ...string) *Builder {
	tag := ""
	if len(lang) > 0 {
		tag = strings.TrimSpace(lang[0])
	}
	b.buf.WriteString("```" + tag + "\n")
	b.buf.WriteString(code)
	b.buf.WriteString("\n```\n")
	return b.endBlock()
}

// MathBlock appends the expression in a math-tagged fence.
func (b *Builder) MathBlock(expr string) *Builder {
	return b.CodeBlock(expr, "math")
}
