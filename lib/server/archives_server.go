package server

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/pescuma/fontvault/lib/model"
)

func (s *server) initArchives(r *gin.Engine) {
	r.GET("/api/archives", getP[ListParams](s.archivesList))
	r.GET("/api/stats/count/archives", getP[StatsParams](s.statsCountArchives))
}

func (s *server) archivesList(params *ListParams) (any, error) {
	archives := s.listArchives(&params.Filters)

	err := s.sortArchives(archives, params.Sort, params.Asc)
	if err != nil {
		return nil, err
	}

	total := len(archives)

	archives = paginate(archives, params.Offset, params.Limit)

	var result []gin.H
	for _, a := range archives {
		result = append(result, s.toArchive(a))
	}

	return gin.H{
		"data":  result,
		"total": total,
	}, nil
}

func (s *server) statsCountArchives(params *StatsParams) (any, error) {
	archives := s.listArchives(&params.Filters)

	var compressed int64
	var uncompressed int64
	for _, a := range archives {
		compressed += a.CompressedSize
		uncompressed += a.UncompressedSize
	}

	return gin.H{
		"archives":     len(archives),
		"bytes":        compressed,
		"uncompressed": uncompressed,
	}, nil
}

func (s *server) listArchives(filters *Filters) []*model.Archive {
	var result []*model.Archive
	for _, a := range s.archives.List() {
		if !matchesSearch(a.FamilyName, filters.FilterFamily) {
			continue
		}

		result = append(result, a)
	}

	return result
}

func (s *server) sortArchives(col []*model.Archive, field string, asc *bool) error {
	if field == "" {
		field = "family"
	}
	if asc == nil {
		a := true
		asc = &a
	}

	switch field {
	case "family":
		return sortBy(col, func(r *model.Archive) string { return r.FamilyName }, *asc)
	case "files":
		return sortBy(col, func(r *model.Archive) int { return r.FileCount }, *asc)
	case "size":
		return sortBy(col, func(r *model.Archive) int64 { return r.CompressedSize }, *asc)
	case "builtAt":
		return sortBy(col, func(r *model.Archive) int64 { return r.BuiltAt.UnixMilli() }, *asc)
	default:
		return fmt.Errorf("unknown sort field: %v", field)
	}
}

func (s *server) toArchive(a *model.Archive) gin.H {
	return gin.H{
		"id":           a.ID,
		"family":       a.FamilyName,
		"path":         a.Path,
		"files":        a.FileCount,
		"size":         a.CompressedSize,
		"uncompressed": a.UncompressedSize,
		"builtAt":      encodeDate(a.BuiltAt),
	}
}
