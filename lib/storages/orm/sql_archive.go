package orm

import (
	"time"

	"github.com/pescuma/fontvault/lib/model"
)

type sqlArchive struct {
	FamilyName string `gorm:"primaryKey"`
	ID         int

	Path             string
	FileCount        int
	UncompressedSize int64
	CompressedSize   int64

	BuiltAt time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func newSqlArchive(a *model.Archive) *sqlArchive {
	return &sqlArchive{
		FamilyName:       a.FamilyName,
		ID:               int(a.ID),
		Path:             a.Path,
		FileCount:        a.FileCount,
		UncompressedSize: a.UncompressedSize,
		CompressedSize:   a.CompressedSize,
		BuiltAt:          a.BuiltAt,
	}
}

func newArchive(s *sqlArchive) *model.Archive {
	result := model.NewArchive(s.FamilyName, model.ID(s.ID))
	result.Path = s.Path
	result.FileCount = s.FileCount
	result.UncompressedSize = s.UncompressedSize
	result.CompressedSize = s.CompressedSize
	result.BuiltAt = s.BuiltAt
	return result
}

func (s *sqlArchive) CacheKey() string {
	return s.FamilyName
}
