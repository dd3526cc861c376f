package server

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/pescuma/fontvault/lib/model"
)

func (s *server) initFonts(r *gin.Engine) {
	r.GET("/api/fonts", getP[ListParams](s.fontsList))
	r.GET("/api/stats/count/fonts", getP[StatsParams](s.statsCountFonts))
}

func (s *server) fontsList(params *ListParams) (any, error) {
	fonts := s.listFonts(&params.Filters)

	err := s.sortFonts(fonts, params.Sort, params.Asc)
	if err != nil {
		return nil, err
	}

	total := len(fonts)

	fonts = paginate(fonts, params.Offset, params.Limit)

	var result []gin.H
	for _, f := range fonts {
		result = append(result, s.toFont(f))
	}

	return gin.H{
		"data":  result,
		"total": total,
	}, nil
}

func (s *server) statsCountFonts(params *StatsParams) (any, error) {
	fonts := s.listFonts(&params.Filters)

	var size int64
	for _, f := range fonts {
		size += f.Size
	}

	return gin.H{
		"fonts": len(fonts),
		"bytes": size,
	}, nil
}

func (s *server) listFonts(filters *Filters) []*model.FontFile {
	var result []*model.FontFile
	for _, f := range s.fonts.List() {
		if !matchesSearch(f.Name, filters.FilterName) {
			continue
		}
		if !matchesSearch(f.Family, filters.FilterFamily) {
			continue
		}

		result = append(result, f)
	}

	return result
}

func (s *server) sortFonts(col []*model.FontFile, field string, asc *bool) error {
	if field == "" {
		field = "name"
	}
	if asc == nil {
		a := true
		asc = &a
	}

	switch field {
	case "name":
		return sortBy(col, func(r *model.FontFile) string { return r.Name }, *asc)
	case "path":
		return sortBy(col, func(r *model.FontFile) string { return r.Path }, *asc)
	case "family":
		return sortBy(col, func(r *model.FontFile) string { return r.Family }, *asc)
	case "size":
		return sortBy(col, func(r *model.FontFile) int64 { return r.Size }, *asc)
	case "seenAt":
		return sortBy(col, func(r *model.FontFile) int64 { return r.SeenAt.UnixMilli() }, *asc)
	default:
		return fmt.Errorf("unknown sort field: %v", field)
	}
}

func (s *server) toFont(f *model.FontFile) gin.H {
	return gin.H{
		"id":     f.ID,
		"name":   f.Name,
		"path":   f.Path,
		"family": f.Family,
		"size":   f.Size,
		"seenAt": encodeDate(f.SeenAt),
	}
}
