package orm

import (
	"time"

	"github.com/pescuma/fontvault/lib/model"
)

type sqlFamily struct {
	Name string `gorm:"primaryKey"`
	ID   int

	CreatedAt time.Time
	UpdatedAt time.Time
}

func newSqlFamily(f *model.Family) *sqlFamily {
	return &sqlFamily{
		Name: f.Name,
		ID:   int(f.ID),
	}
}

func (s *sqlFamily) CacheKey() string {
	return s.Name
}
