package mdbuild

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodeBlock_WithLanguageTag(t *testing.T) {
	out := New().CodeBlock("fmt.Println(\"hi\")", "go").String()
	require.Equal(t, "```go\nfmt.Println(\"hi\")\n```\n\n", out)
}

func TestCodeBlock_NoTag_EmitsBareFence(t *testing.T) {
	out := New().CodeBlock("plain text").String()
	require.Equal(t, "```\nplain text\n```\n\n", out)
}

func TestCodeBlock_BlankTag_TreatedAsNoTag(t *testing.T) {
	out := New().CodeBlock("x", "   ").String()
	require.Equal(t, "```\nx\n```\n\n", out)
}

func TestCodeBlock_CodePassesThroughVerbatim(t *testing.T) {
	code := "if a < b {\n\treturn a // keep\t\n}"
	out := New().CodeBlock(code, "go").String()
	require.Equal(t, "```go\n"+code+"\n```\n\n", out)
}

func TestMathBlock_UsesMathFence(t *testing.T) {
	out := New().MathBlock("e = mc^2").String()
	require.Equal(t, "```math\ne = mc^2\n```\n\n", out)
}
