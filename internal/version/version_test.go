package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestString_ContainsVersionAndCommit(t *testing.T) {
	out := String()
	require.Contains(t, out, "mdbuild")
	require.Contains(t, out, Version)
	require.Contains(t, out, GitCommit)
}
