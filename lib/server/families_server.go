package server

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/pescuma/fontvault/lib/model"
)

func (s *server) initFamilies(r *gin.Engine) {
	r.GET("/api/families", getP[ListParams](s.familiesList))
	r.GET("/api/stats/count/families", getP[StatsParams](s.statsCountFamilies))
}

func (s *server) familiesList(params *ListParams) (any, error) {
	families := s.listFamilies(&params.Filters)

	err := s.sortFamilies(families, params.Sort, params.Asc)
	if err != nil {
		return nil, err
	}

	total := len(families)

	families = paginate(families, params.Offset, params.Limit)

	var result []gin.H
	for _, f := range families {
		result = append(result, s.toFamily(f))
	}

	return gin.H{
		"data":  result,
		"total": total,
	}, nil
}

func (s *server) statsCountFamilies(params *StatsParams) (any, error) {
	families := s.listFamilies(&params.Filters)

	fonts := 0
	var size int64
	for _, f := range families {
		fonts += len(f.Fonts)
		size += f.TotalSize()
	}

	return gin.H{
		"families": len(families),
		"fonts":    fonts,
		"bytes":    size,
	}, nil
}

func (s *server) listFamilies(filters *Filters) []*model.Family {
	var result []*model.Family
	for _, f := range s.families.List() {
		if !matchesSearch(f.Name, filters.FilterFamily) {
			continue
		}

		result = append(result, f)
	}

	return result
}

func (s *server) sortFamilies(col []*model.Family, field string, asc *bool) error {
	if field == "" {
		field = "name"
	}
	if asc == nil {
		a := true
		asc = &a
	}

	switch field {
	case "name":
		return sortBy(col, func(r *model.Family) string { return r.Name }, *asc)
	case "fonts":
		return sortBy(col, func(r *model.Family) int { return len(r.Fonts) }, *asc)
	case "size":
		return sortBy(col, func(r *model.Family) int64 { return r.TotalSize() }, *asc)
	default:
		return fmt.Errorf("unknown sort field: %v", field)
	}
}

func (s *server) toFamily(f *model.Family) gin.H {
	return gin.H{
		"id":    f.ID,
		"name":  f.Name,
		"fonts": len(f.Fonts),
		"size":  f.TotalSize(),
	}
}
