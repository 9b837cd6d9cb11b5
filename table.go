package mdbuild

import "strings"

// Alignment selects the column alignment marker in a table separator row.
// Values are matched case-insensitively; anything unrecognized falls back
// to the default (unaligned) marker.
type Alignment string

const (
	AlignDefault Alignment = ""
	AlignLeft    Alignment = "left"
	AlignCenter  Alignment = "center"
	AlignRight   Alignment = "right"
)

func (a Alignment) marker() string {
	switch Alignment(strings.ToLower(string(a))) {
	case AlignLeft:
		return ":---"
	case AlignCenter:
		return ":---:"
	case AlignRight:
		return "---:"
	default:
		return "---"
	}
}

// Table appends a pipe table: the header row, a separator row with one dash
// group per header column, then the data rows. Column counts are not
// validated; mismatched rows pass through as given.
func (b *Builder) Table(headers []string, rows [][]string) *Builder {
	aligns := make([]Alignment, len(headers))
	return b.TableAligned(headers, aligns, rows)
}

// TableAligned appends a pipe table with per-column alignment markers in the
// separator row. The alignment slice is read per header column; missing
// entries default to unaligned.
func (b *Builder) TableAligned(headers []string, aligns []Alignment, rows [][]string) *Builder {
	b.buf.WriteString(strings.Join(headers, " | ") + "\n")

	sep := make([]string, len(headers))
	for i := range headers {
		a := AlignDefault
		if i < len(aligns) {
			a = aligns[i]
		}
		sep[i] = a.marker()
	}
	b.buf.WriteString(strings.Join(sep, " | ") + "\n")

	for _, row := range rows {
		b.buf.WriteString(strings.Join(row, " | ") + "\n")
	}
	return b.endBlock()
}
