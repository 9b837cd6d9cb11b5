package mdbuild

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParagraph_TrimsAndTerminatesWithBlankLine(t *testing.T) {
	out := New().Paragraph("  Hello world  ").String()
	require.Equal(t, "Hello world\n\n", out)
}

func TestParagraph_EmptyText_EmitsOnlySeparation(t *testing.T) {
	out := New().Paragraph("   ").String()
	require.Equal(t, "\n\n", out)
}

func TestBlockQuote_SingleLine(t *testing.T) {
	out := New().BlockQuote("quoted").String()
	require.Equal(t, "> quoted\n\n", out)
}

func TestBlockQuote_MultiLine_PrefixesEveryLine(t *testing.T) {
	out := New().BlockQuote("line1\nline2").String()
	require.Equal(t, "> line1\n> line2\n\n", out)
}

func TestBlockQuote_StripsTrailingWhitespacePerLine(t *testing.T) {
	out := New().BlockQuote("a  \nb\t").String()
	require.Equal(t, "> a\n> b\n\n", out)
}

func TestHorizontalRule_EmitsRuleAndBlankLine(t *testing.T) {
	require.Equal(t, "---\n\n", New().HorizontalRule().String())
}

func TestImage_EmitsBlockWithBlankLine(t *testing.T) {
	out := New().Image("logo", "https://example.com/logo.png").String()
	require.Equal(t, "![logo](https://example.com/logo.png)\n\n", out)
}

func TestFootnote_DefinitionOnOwnLine(t *testing.T) {
	out := New().Footnote("1", "Source: annual report.").String()
	require.Equal(t, "[^1]: Source: annual report.\n\n", out)
}

func TestDetails_WrapsContentInDisclosureMarkers(t *testing.T) {
	out := New().Details("Show logs", "```\nok\n```").String()
	want := "<details>\n<summary>Show logs</summary>\n\n```\nok\n```\n\n</details>\n\n"
	require.Equal(t, want, out)
}

func TestCallouts_EmitLabeledBlockquoteLines(t *testing.T) {
	require.Equal(t, "> **Note:** heads up\n\n", New().Note("heads up").String())
	require.Equal(t, "> **Tip:** try -v\n\n", New().Tip("try -v").String())
	require.Equal(t, "> **Warning:** breaking change\n\n", New().Warning("breaking change").String())
}
