package storages

import (
	"github.com/pescuma/fontvault/lib/model"
)

type Storage interface {
	LoadFontFiles() (*model.FontFiles, error)
	WriteFontFiles(files *model.FontFiles) error

	LoadFamilies() (*model.Families, error)
	WriteFamilies(families *model.Families) error

	LoadArchives() (*model.Archives, error)
	WriteArchives(archives *model.Archives) error

	LoadPublishes() (*model.Publishes, error)
	WritePublish(publish *model.Publish) error

	LoadConfig() (*map[string]string, error)
	WriteConfig() error

	Close() error
}
