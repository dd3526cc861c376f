package orm

import (
	"time"

	"github.com/pescuma/fontvault/lib/model"
)

type sqlFontFile struct {
	Path string `gorm:"primaryKey"`
	ID   int

	Name   string
	Size   int64
	Family string

	SeenAt time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func newSqlFontFile(f *model.FontFile) *sqlFontFile {
	return &sqlFontFile{
		Path:   f.Path,
		ID:     int(f.ID),
		Name:   f.Name,
		Size:   f.Size,
		Family: f.Family,
		SeenAt: f.SeenAt,
	}
}

func newFontFile(s *sqlFontFile) *model.FontFile {
	result := model.NewFontFile(s.Path, model.ID(s.ID))
	result.Size = s.Size
	result.Family = s.Family
	result.SeenAt = s.SeenAt
	return result
}

func (s *sqlFontFile) CacheKey() string {
	return s.Path
}
