package workdir_test

import (
	"path/filepath"
	"testing"

	"github.com/alkime/postgen/internal/workdir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	root, err := workdir.Root()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".local", "share", "postgen"), root)

	path, err := workdir.FilePath("sessions.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "sessions.db"), path)

	require.NoError(t, workdir.Prep())
	assert.DirExists(t, root)
}
