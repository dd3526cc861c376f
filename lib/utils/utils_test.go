package utils

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func acceptAll(path string, entry fs.DirEntry) bool {
	return true
}

func TestListFilesRecursive(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	assert.Nil(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o600))
	assert.Nil(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o700))
	assert.Nil(t, os.WriteFile(filepath.Join(dir, "sub", "b.txt"), []byte("b"), 0o600))

	result, err := ListFilesRecursive(dir, acceptAll, nil)
	assert.Nil(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a.txt"),
		filepath.Join(dir, "sub", "b.txt"),
	}, result)
}

func TestListFilesRecursiveReportsUnreadableEntries(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing")

	var skipped []string
	result, err := ListFilesRecursive(missing, acceptAll, func(path string, err error) {
		skipped = append(skipped, path)
	})

	assert.Nil(t, err)
	assert.Empty(t, result)
	assert.Equal(t, []string{missing}, skipped)
}
