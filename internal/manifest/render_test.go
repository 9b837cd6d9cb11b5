package manifest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender_TitleBecomesH1(t *testing.T) {
	out := Render(&Document{Title: "Guide"})
	require.Equal(t, "# Guide\n\n", out)
}

func TestRender_BlocksInManifestOrder(t *testing.T) {
	doc, err := Parse([]byte(`
title: Report
blocks:
  - paragraph: Summary first.
  - list:
      style: numbered
      items: [alpha, beta]
  - rule: true
`))
	require.NoError(t, err)

	out := Render(doc)
	require.Equal(t, "# Report\n\nSummary first.\n\n1. alpha\n2. beta\n\n---\n\n", out)
}

func TestRender_HeadingLevelsAndAnchor(t *testing.T) {
	doc := &Document{Blocks: []Block{
		{Heading: &Heading{Level: 3, Text: "Deep"}},
		{Heading: &Heading{Text: "Defaulted"}},
		{Heading: &Heading{Text: "Linked", Anchor: "linked"}},
	}}
	out := Render(doc)
	require.Equal(t, "### Deep\n\n## Defaulted\n\n## Linked <a id=\"linked\"></a>\n\n", out)
}

func TestRender_TasksAndDetails(t *testing.T) {
	doc := &Document{Blocks: []Block{
		{Tasks: []Task{{Text: "done thing", Done: true}, {Text: "open thing"}}},
		{Details: &Details{Summary: "More", Body: "hidden"}},
	}}
	out := Render(doc)
	want := "- [x] done thing\n- [ ] open thing\n\n" +
		"<details>\n<summary>More</summary>\n\nhidden\n\n</details>\n\n"
	require.Equal(t, want, out)
}

func TestRender_TableWithAlignment(t *testing.T) {
	doc := &Document{Blocks: []Block{
		{Table: &Table{
			Headers: []string{"Name", "Score"},
			Align:   []string{"left", "right"},
			Rows:    [][]string{{"Ada", "10"}},
		}},
	}}
	out := Render(doc)
	require.Equal(t, "Name | Score\n:--- | ---:\nAda | 10\n\n", out)
}

func TestRender_CodeAndMath(t *testing.T) {
	doc := &Document{Blocks: []Block{
		{Code: &Code{Lang: "go", Source: "x := 1"}},
		{Math: "a^2 + b^2 = c^2"},
	}}
	out := Render(doc)
	require.Equal(t, "```go\nx := 1\n```\n\n```math\na^2 + b^2 = c^2\n```\n\n", out)
}

func TestRender_Callouts(t *testing.T) {
	doc := &Document{Blocks: []Block{
		{Note: "remember"},
		{Tip: "shortcut"},
		{Warning: "careful"},
	}}
	out := Render(doc)
	require.Equal(t, "> **Note:** remember\n\n> **Tip:** shortcut\n\n> **Warning:** careful\n\n", out)
}

func TestRender_EmptyDocument_RendersEmptyString(t *testing.T) {
	require.Equal(t, "", Render(&Document{}))
}
