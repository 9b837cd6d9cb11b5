package manifest

import (
	"git.home.luguber.info/inful/mdbuild"
)

// Render converts a parsed manifest into its Markdown document. The title,
// when present, becomes the leading H1.
func Render(doc *Document) string {
	b := mdbuild.New()
	if doc.Title != "" {
		b.H1(doc.Title)
	}
	for _, blk := range doc.Blocks {
		renderBlock(b, blk)
	}
	return b.String()
}

func renderBlock(b *mdbuild.Builder, blk Block) {
	switch {
	case blk.Heading != nil:
		renderHeading(b, blk.Heading)
	case blk.Paragraph != "":
		b.Paragraph(blk.Paragraph)
	case blk.Quote != "":
		b.BlockQuote(blk.Quote)
	case blk.Rule:
		b.HorizontalRule()
	case blk.Image != nil:
		b.Image(blk.Image.Alt, blk.Image.URL)
	case blk.List != nil:
		if blk.List.Style == "numbered" {
			b.NumberedList(blk.List.Items)
		} else {
			b.BulletList(blk.List.Items)
		}
	case blk.Tasks != nil:
		items := make([]mdbuild.TaskItem, len(blk.Tasks))
		for i, t := range blk.Tasks {
			items[i] = mdbuild.TaskItem{Text: t.Text, Done: t.Done}
		}
		b.TaskList(items)
	case blk.Definition != nil:
		b.DefinitionList(blk.Definition.Term, blk.Definition.Definition)
	case blk.Code != nil:
		b.CodeBlock(blk.Code.Source, blk.Code.Lang)
	case blk.Math != "":
		b.MathBlock(blk.Math)
	case blk.Table != nil:
		renderTable(b, blk.Table)
	case blk.Footnote != nil:
		b.Footnote(blk.Footnote.ID, blk.Footnote.Text)
	case blk.Details != nil:
		b.Details(blk.Details.Summary, blk.Details.Body)
	case blk.Note != "":
		b.Note(blk.Note)
	case blk.Tip != "":
		b.Tip(blk.Tip)
	case blk.Warning != "":
		b.Warning(blk.Warning)
	}
}

func renderHeading(b *mdbuild.Builder, h *Heading) {
	if h.Anchor != "" {
		b.H2WithAnchor(h.Text, h.Anchor)
		return
	}
	switch h.Level {
	case 1:
		b.H1(h.Text)
	case 3:
		b.H3(h.Text)
	case 4:
		b.H4(h.Text)
	case 5:
		b.H5(h.Text)
	case 6:
		b.H6(h.Text)
	default:
		b.H2(h.Text)
	}
}

func renderTable(b *mdbuild.Builder, t *Table) {
	if len(t.Align) == 0 {
		b.Table(t.Headers, t.Rows)
		return
	}
	aligns := make([]mdbuild.Alignment, len(t.Align))
	for i, a := range t.Align {
		aligns[i] = mdbuild.Alignment(a)
	}
	b.TableAligned(t.Headers, aligns, t.Rows)
}
