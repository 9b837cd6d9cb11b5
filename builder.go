// Package mdbuild assembles a Markdown document incrementally through a
// fluent builder. Every operation appends a deterministically formatted
// fragment to a single growable buffer and returns the builder, so calls
// chain naturally:
//
//	doc := mdbuild.New().
//		H1("Release Notes").
//		Paragraph("What changed this cycle.").
//		BulletList([]string{"Faster builds", "Fewer flakes"}).
//		String()
//
// The builder trusts its caller: text passes through without escaping of
// Markdown metacharacters, no input is rejected, and no operation returns an
// error. Block-level operations terminate their output with exactly one
// blank line so adjacent blocks render correctly; inline operations append
// no newline so fragments compose on one logical line.
//
// A Builder is owned by a single goroutine. Share the rendered string, not
// the builder.
package mdbuild

import "strings"

// Builder accumulates Markdown text. The zero value is ready to use.
type Builder struct {
	buf strings.Builder
}

// New returns an empty Builder.
func New() *Builder {
	return &Builder{}
}

// Raw appends text verbatim with no transformation and no trailing newline.
func (b *Builder) Raw(text string) *Builder {
	b.buf.WriteString(text)
	return b
}

// Line appends text followed by a line terminator. With no argument it
// appends a bare line terminator.
func (b *Builder) Line(text ...string) *Builder {
	for _, t := range text {
		b.buf.WriteString(t)
	}
	b.buf.WriteString("\n")
	return b
}

// String returns the accumulated document. It has no side effects and may
// be called repeatedly, including before further appends.
func (b *Builder) String() string {
	return b.buf.String()
}

// Bytes returns the accumulated document as a byte slice.
func (b *Builder) Bytes() []byte {
	return []byte(b.buf.String())
}

// endBlock closes a block-level element with its separating blank line.
func (b *Builder) endBlock() *Builder {
	b.buf.WriteString("\n")
	return b
}
