package server

import (
	"github.com/gin-gonic/gin"

	"github.com/pescuma/fontvault/lib/model"
)

func (s *server) initPublishes(r *gin.Engine) {
	r.GET("/api/publishes", get(s.publishesList))
	r.GET("/api/stats/totals", get(s.statsTotals))
}

func (s *server) publishesList() (any, error) {
	var result []gin.H
	for _, p := range s.publishes.List() {
		result = append(result, s.toPublish(p))
	}

	return gin.H{
		"data":  result,
		"total": len(result),
	}, nil
}

func (s *server) statsTotals() (any, error) {
	publishes := s.publishes.List()

	var last gin.H
	if len(publishes) > 0 {
		last = s.toPublish(publishes[len(publishes)-1])
	}

	return gin.H{
		"fonts":        s.fonts.Len(),
		"fontBytes":    s.fonts.TotalSize(),
		"families":     s.families.Len(),
		"archives":     s.archives.Len(),
		"archiveBytes": s.archives.TotalCompressedSize(),
		"lastPublish":  last,
	}, nil
}

func (s *server) toPublish(p *model.Publish) gin.H {
	return gin.H{
		"id":         p.ID,
		"state":      p.State,
		"commitHash": p.CommitHash,
		"message":    p.Message,
		"families":   p.Families,
		"totalSize":  p.TotalSize,
		"startedAt":  encodeDate(p.StartedAt),
		"finishedAt": encodeDate(p.FinishedAt),
	}
}
