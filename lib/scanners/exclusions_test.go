package scanners

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "segoeui", NormalizeKey("Segoe UI.ttf"))
	assert.Equal(t, "segoeui", NormalizeKey("segoeui.ttf"))
	assert.Equal(t, "segoeui", NormalizeKey("Segoe UI"))
	assert.Equal(t, "arial", NormalizeKey("ARIAL.TTF"))
}

func TestDefaultExclusionsMatchFileNames(t *testing.T) {
	t.Parallel()

	e := DefaultExclusions()

	assert.True(t, e.Contains("Segoe UI.ttf"))
	assert.True(t, e.Contains("segoeui.ttf"))
	assert.True(t, e.Contains("Comic Sans MS.ttf"))
	assert.True(t, e.Contains("times new roman.otf"))

	assert.False(t, e.Contains("Fira Code.ttf"))
}

func TestExclusionSetFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "exclusions.txt")

	err := os.WriteFile(path, []byte("# shipped with the OS\n\nFira Code\nJetBrains Mono.ttf\n"), 0o600)
	assert.Nil(t, err)

	e, err := NewExclusionSetFromFile(path)
	assert.Nil(t, err)

	assert.Equal(t, 2, e.Size())
	assert.True(t, e.Contains("FiraCode.ttf"))
	assert.True(t, e.Contains("jetbrainsmono.otf"))
	assert.False(t, e.Contains("# shipped with the OS"))
}

func TestExclusionSetFromMissingFile(t *testing.T) {
	t.Parallel()

	_, err := NewExclusionSetFromFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.NotNil(t, err)
}
