package searchpath_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/geyuegui/RIDE/pkg/searchpath"
	"github.com/geyuegui/RIDE/pkg/testutil"
)

func TestFindFromSearchPath(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	direct := testutil.MustWriteFile(t, dirA, "common.robot", "*** Keywords ***\n")
	nested := testutil.MustWriteFile(t, dirB, filepath.Join("sub", "deep.robot"), "*** Keywords ***\n")

	r := searchpath.NewResolver([]string{dirA, dirB})

	t.Run("direct child", func(t *testing.T) {
		got, ok := r.FindFromSearchPath("common.robot")
		require.True(t, ok)
		require.Equal(t, direct, got)
	})

	t.Run("nested match", func(t *testing.T) {
		got, ok := r.FindFromSearchPath("deep.robot")
		require.True(t, ok)
		require.Equal(t, nested, got)
	})

	t.Run("relative name with directory", func(t *testing.T) {
		got, ok := r.FindFromSearchPath(filepath.Join("sub", "deep.robot"))
		require.True(t, ok)
		require.Equal(t, nested, got)
	})

	t.Run("not found", func(t *testing.T) {
		_, ok := r.FindFromSearchPath("nothere.robot")
		require.False(t, ok)
	})

	t.Run("absolute name rejected", func(t *testing.T) {
		_, ok := r.FindFromSearchPath(direct)
		require.False(t, ok)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, ok := r.FindFromSearchPath("")
		require.False(t, ok)
	})
}

func TestSearchOrder(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	first := testutil.MustWriteFile(t, dirA, "res.robot", "a")
	testutil.MustWriteFile(t, dirB, "res.robot", "b")

	r := searchpath.NewResolver([]string{dirA, dirB})
	got, ok := r.FindFromSearchPath("res.robot")
	require.True(t, ok)
	require.Equal(t, first, got, "directories are searched in configuration order")
}
