package publishers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/stretchr/testify/assert"

	"github.com/pescuma/fontvault/lib/consoles"
	"github.com/pescuma/fontvault/lib/model"
)

func createPlan(t *testing.T, archivesDir string, names ...string) *Plan {
	t.Helper()

	archives := model.NewArchives()

	for _, name := range names {
		path := filepath.Join(archivesDir, name+".zip")

		err := os.WriteFile(path, []byte("archive of "+name), 0o600)
		assert.Nil(t, err)

		a := archives.GetOrCreate(name)
		a.Path = path
		a.FileCount = 1
		a.CompressedSize = int64(len("archive of " + name))
	}

	return NewPlan(archives, 1024)
}

func TestPublishWithoutRemoteStopsAtCommit(t *testing.T) {
	t.Parallel()

	repoDir := t.TempDir()
	plan := createPlan(t, t.TempDir(), "Fira Code", "Roboto")

	publisher := NewPublisher(consoles.NewStdOutConsole())

	outcome, err := publisher.Publish(plan, &Options{RepoDir: repoDir})
	assert.Nil(t, err)

	assert.Equal(t, model.Committed, outcome.State)
	assert.True(t, outcome.Committed)
	assert.NotEmpty(t, outcome.CommitHash)
	assert.Equal(t, "Publish 2 font families (37 B)", outcome.Message)

	for _, name := range []string{"Fira Code.zip", "Roboto.zip", "README.md", ".gitattributes", ".gitignore"} {
		_, err = os.Stat(filepath.Join(repoDir, name))
		assert.Nil(t, err, name)
	}

	repo, err := git.PlainOpen(repoDir)
	assert.Nil(t, err)

	head, err := repo.Head()
	assert.Nil(t, err)
	assert.Equal(t, outcome.CommitHash, head.Hash().String())
}

func TestPublishUnchangedPlanSuppressesCommit(t *testing.T) {
	t.Parallel()

	repoDir := t.TempDir()
	plan := createPlan(t, t.TempDir(), "Fira Code")

	publisher := NewPublisher(consoles.NewStdOutConsole())

	first, err := publisher.Publish(plan, &Options{RepoDir: repoDir})
	assert.Nil(t, err)
	assert.True(t, first.Committed)

	second, err := publisher.Publish(plan, &Options{RepoDir: repoDir})
	assert.Nil(t, err)

	assert.Equal(t, model.Committed, second.State)
	assert.False(t, second.Committed)
	assert.Equal(t, first.CommitHash, second.CommitHash)
}

func TestPublishChangedContentCommitsAgain(t *testing.T) {
	t.Parallel()

	repoDir := t.TempDir()
	archivesDir := t.TempDir()
	plan := createPlan(t, archivesDir, "Fira Code")

	publisher := NewPublisher(consoles.NewStdOutConsole())

	first, err := publisher.Publish(plan, &Options{RepoDir: repoDir})
	assert.Nil(t, err)

	err = os.WriteFile(plan.Entries[0].Path, []byte("new archive bytes"), 0o600)
	assert.Nil(t, err)

	second, err := publisher.Publish(plan, &Options{RepoDir: repoDir})
	assert.Nil(t, err)

	assert.True(t, second.Committed)
	assert.NotEqual(t, first.CommitHash, second.CommitHash)
}

func TestPublishRequiresRepoDir(t *testing.T) {
	t.Parallel()

	plan := createPlan(t, t.TempDir(), "Fira Code")

	publisher := NewPublisher(consoles.NewStdOutConsole())

	outcome, err := publisher.Publish(plan, nil)
	assert.NotNil(t, err)
	assert.Equal(t, model.NotInitialized, outcome.State)
}

func TestPublishEmptyPlan(t *testing.T) {
	t.Parallel()

	repoDir := t.TempDir()
	plan := NewPlan(model.NewArchives(), 1024)

	publisher := NewPublisher(consoles.NewStdOutConsole())

	outcome, err := publisher.Publish(plan, &Options{RepoDir: repoDir})
	assert.Nil(t, err)

	assert.Equal(t, model.Committed, outcome.State)
	assert.True(t, outcome.Committed)
}
