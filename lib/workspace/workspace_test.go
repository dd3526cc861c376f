package workspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"

	"github.com/pescuma/fontvault/lib/model"
	"github.com/pescuma/fontvault/lib/publishers"
)

func createFontsDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	for _, name := range []string{"MyFont-Regular.ttf", "MyFont-Bold.ttf", "Other.otf"} {
		err := os.WriteFile(filepath.Join(dir, name), []byte("font "+name), 0o600)
		assert.Nil(t, err)
	}

	return dir
}

func TestPipelineEndToEnd(t *testing.T) {
	t.Parallel()

	fontsDir := createFontsDir(t)
	archivesDir := t.TempDir()
	repoDir := t.TempDir()

	ws, err := NewWorkspace(":memory:")
	assert.Nil(t, err)
	defer ws.Close()

	files, err := ws.Scan([]string{fontsDir}, nil)
	assert.Nil(t, err)
	assert.Equal(t, 3, files.Len())

	families, err := ws.Group(nil)
	assert.Nil(t, err)
	assert.Equal(t, 2, families.Len())
	assert.Len(t, families.Get("MyFont").Fonts, 2)
	assert.Len(t, families.Get("Other").Fonts, 1)

	result, err := ws.Archive(archivesDir, nil)
	assert.Nil(t, err)
	assert.Empty(t, result.Failed)
	assert.Equal(t, 2, result.Archives.Len())

	outcome, err := ws.Publish(0, &publishers.Options{RepoDir: repoDir})
	assert.Nil(t, err)
	assert.Equal(t, model.Committed, outcome.State)
	assert.True(t, outcome.Committed)

	publishes, err := ws.LoadPublishes()
	assert.Nil(t, err)
	assert.Len(t, publishes.List(), 1)
	assert.Equal(t, model.Committed, publishes.List()[0].State)
	assert.Equal(t, 2, publishes.List()[0].Families)
}

func TestPublishFailureIsRecorded(t *testing.T) {
	t.Parallel()

	ws, err := NewWorkspace(":memory:")
	assert.Nil(t, err)
	defer ws.Close()

	_, err = ws.Publish(0, nil)
	assert.NotNil(t, err)

	publishes, err := ws.LoadPublishes()
	assert.Nil(t, err)
	assert.Len(t, publishes.List(), 1)
	assert.Equal(t, model.NotInitialized, publishes.List()[0].State)
}

func TestGroupUsesConfiguredSuffixes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "FiraCode-Retina.ttf"), []byte("aaaa"), 0o600)
	assert.Nil(t, err)

	ws, err := NewWorkspace(":memory:")
	assert.Nil(t, err)
	defer ws.Close()

	_, err = ws.SetGlobalConfig("families.suffixes", "Retina,Bold")
	assert.Nil(t, err)

	_, err = ws.Scan([]string{dir}, nil)
	assert.Nil(t, err)

	families, err := ws.Group(nil)
	assert.Nil(t, err)

	assert.NotNil(t, families.Get("FiraCode"))
}

func TestPublishUsesConfiguredSettings(t *testing.T) {
	t.Parallel()

	fontsDir := createFontsDir(t)
	archivesDir := t.TempDir()
	repoDir := t.TempDir()

	ws, err := NewWorkspace(":memory:")
	assert.Nil(t, err)
	defer ws.Close()

	_, err = ws.SetGlobalConfig("publish.threshold", "10 B")
	assert.Nil(t, err)
	_, err = ws.SetGlobalConfig("publish.branch", "fonts")
	assert.Nil(t, err)

	_, err = ws.Scan([]string{fontsDir}, nil)
	assert.Nil(t, err)
	_, err = ws.Group(nil)
	assert.Nil(t, err)
	_, err = ws.Archive(archivesDir, nil)
	assert.Nil(t, err)

	plan, err := ws.PublishPlan(0)
	assert.Nil(t, err)
	assert.Equal(t, int64(10), plan.Threshold)

	outcome, err := ws.Publish(0, &publishers.Options{RepoDir: repoDir})
	assert.Nil(t, err)
	assert.Equal(t, model.Committed, outcome.State)

	repo, err := git.PlainOpen(repoDir)
	assert.Nil(t, err)

	head, err := repo.Head()
	assert.Nil(t, err)
	assert.Equal(t, "refs/heads/fonts", head.Name().String())
}

func TestPublishInvalidConfiguredThreshold(t *testing.T) {
	t.Parallel()

	ws, err := NewWorkspace(":memory:")
	assert.Nil(t, err)
	defer ws.Close()

	_, err = ws.SetGlobalConfig("publish.threshold", "a lot")
	assert.Nil(t, err)

	_, err = ws.PublishPlan(0)
	assert.NotNil(t, err)
}

func TestGlobalConfig(t *testing.T) {
	t.Parallel()

	ws, err := NewWorkspace(":memory:")
	assert.Nil(t, err)
	defer ws.Close()

	changed, err := ws.SetGlobalConfig("publish.branch", "main")
	assert.Nil(t, err)
	assert.True(t, changed)

	changed, err = ws.SetGlobalConfig("publish.branch", "main")
	assert.Nil(t, err)
	assert.False(t, changed)

	err = ws.Write()
	assert.Nil(t, err)

	value, err := ws.GetGlobalConfig("publish.branch")
	assert.Nil(t, err)
	assert.Equal(t, "main", value)
}
