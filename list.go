package mdbuild

import (
	"fmt"
	"strings"
)

// TaskItem is one entry of a task list.
type TaskItem struct {
	Text string
	Done bool
}

// BulletList appends one "- item" line per entry, items trimmed, in input
// order. An empty slice emits only the block's trailing blank line.
func (b *Builder) BulletList(items []string) *Builder {
	for _, item := range items {
		b.buf.WriteString("- " + strings.TrimSpace(item) + "\n")
	}
	return b.endBlock()
}

// NumberedList appends items numbered 1..n in input order.
func (b *Builder) NumberedList(items []string) *Builder {
	for i, item := range items {
		fmt.Fprintf(&b.buf, "%d. %s\n", i+1, strings.TrimSpace(item))
	}
	return b.endBlock()
}

// TaskList appends GitHub task-list checkboxes, checked for done items.
func (b *Builder) TaskList(items []TaskItem) *Builder {
	for _, item := range items {
		marker := "- [ ] "
		if item.Done {
			marker = "- [x] "
		}
		b.buf.WriteString(marker + strings.TrimSpace(item.Text) + "\n")
	}
	return b.endBlock()
}

// DefinitionList appends a term and its definition.
func (b *Builder) DefinitionList(term, definition string) *Builder {
	b.buf.WriteString(term + "\n")
	b.buf.WriteString(": " + definition + "\n")
	return b.endBlock()
}
