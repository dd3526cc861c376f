package orm

import (
	"time"

	"github.com/pescuma/fontvault/lib/model"
)

type sqlPublish struct {
	ID string `gorm:"primaryKey"`

	State      string
	CommitHash string
	Message    string

	Families  int
	TotalSize int64

	StartedAt  time.Time
	FinishedAt time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func newSqlPublish(p *model.Publish) *sqlPublish {
	return &sqlPublish{
		ID:         string(p.ID),
		State:      string(p.State),
		CommitHash: p.CommitHash,
		Message:    p.Message,
		Families:   p.Families,
		TotalSize:  p.TotalSize,
		StartedAt:  p.StartedAt,
		FinishedAt: p.FinishedAt,
	}
}

func newPublish(s *sqlPublish) *model.Publish {
	return &model.Publish{
		ID:         model.UUID(s.ID),
		State:      model.PublishState(s.State),
		CommitHash: s.CommitHash,
		Message:    s.Message,
		Families:   s.Families,
		TotalSize:  s.TotalSize,
		StartedAt:  s.StartedAt,
		FinishedAt: s.FinishedAt,
	}
}

func (s *sqlPublish) CacheKey() string {
	return s.ID
}
