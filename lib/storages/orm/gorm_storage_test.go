package orm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pescuma/fontvault/lib/consoles"
	"github.com/pescuma/fontvault/lib/model"
)

func createStorage(t *testing.T) *gormStorage {
	t.Helper()

	storage, err := NewGormStorage(WithSqliteInMemory(), consoles.NewStdOutConsole())
	assert.Nil(t, err)

	t.Cleanup(func() { _ = storage.Close() })

	return storage.(*gormStorage)
}

func TestFontFilesRoundTrip(t *testing.T) {
	t.Parallel()

	storage := createStorage(t)

	files := model.NewFontFiles()
	file := files.GetOrCreate("/fonts/Custom.ttf")
	file.Size = 42
	file.Family = "Custom"
	file.SeenAt = time.Now()

	err := storage.WriteFontFiles(files)
	assert.Nil(t, err)

	loaded, err := storage.LoadFontFiles()
	assert.Nil(t, err)

	assert.Equal(t, 1, loaded.Len())
	assert.Equal(t, int64(42), loaded.Get("/fonts/Custom.ttf").Size)
	assert.Equal(t, "Custom", loaded.Get("/fonts/Custom.ttf").Family)
}

func TestWriteFontFilesDeletesStaleRows(t *testing.T) {
	t.Parallel()

	storage := createStorage(t)

	files := model.NewFontFiles()
	files.GetOrCreate("/fonts/a.ttf")
	files.GetOrCreate("/fonts/b.ttf")

	assert.Nil(t, storage.WriteFontFiles(files))

	smaller := model.NewFontFiles()
	smaller.GetOrCreate("/fonts/a.ttf")

	assert.Nil(t, storage.WriteFontFiles(smaller))

	var count int64
	err := storage.db.Model(&sqlFontFile{}).Count(&count).Error
	assert.Nil(t, err)
	assert.Equal(t, int64(1), count)
}

func TestPublishHistoryAccumulates(t *testing.T) {
	t.Parallel()

	storage := createStorage(t)

	_, err := storage.LoadPublishes()
	assert.Nil(t, err)

	first := model.NewPublish()
	first.State = model.Committed

	second := model.NewPublish()
	second.State = model.Pushed
	second.StartedAt = first.StartedAt.Add(time.Second)

	assert.Nil(t, storage.WritePublish(first))
	assert.Nil(t, storage.WritePublish(second))

	publishes, err := storage.LoadPublishes()
	assert.Nil(t, err)

	list := publishes.List()
	assert.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
}

func TestConfigRoundTrip(t *testing.T) {
	t.Parallel()

	storage := createStorage(t)

	cfg, err := storage.LoadConfig()
	assert.Nil(t, err)

	(*cfg)["publish.remote"] = "https://example.com/fonts.git"

	assert.Nil(t, storage.WriteConfig())

	var row sqlConfig
	err = storage.db.Where("key = ?", "publish.remote").First(&row).Error
	assert.Nil(t, err)
	assert.Equal(t, "https://example.com/fonts.git", row.Value)
}
