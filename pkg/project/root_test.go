package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "vendor"), 0755))
	nested := filepath.Join(root, "cmd", "server", "internal")
	require.NoError(t, os.MkdirAll(nested, 0755))

	t.Run("from project root", func(t *testing.T) {
		got, err := FindRoot(root, "vendor")
		require.NoError(t, err)
		assert.Equal(t, root, got)
	})

	t.Run("from nested directory", func(t *testing.T) {
		got, err := FindRoot(nested, "vendor")
		require.NoError(t, err)
		assert.Equal(t, root, got)
	})

	t.Run("vendor file is ignored", func(t *testing.T) {
		other := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(other, "third_party"), nil, 0644))

		_, err := FindRoot(other, "third_party")
		assert.Error(t, err)
	})
}
