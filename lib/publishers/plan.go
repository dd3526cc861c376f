package publishers

import (
	"github.com/samber/lo"

	"github.com/pescuma/fontvault/lib/model"
)

// DefaultThreshold is the size above which archives move to LFS.
const DefaultThreshold = int64(70 * 1024 * 1024)

// Plan partitions the archives to publish into LFS-tracked and normal
// entries. The partition is a pure function of compressed size and
// threshold: strictly greater means tracked.
type Plan struct {
	Entries   []*model.Archive
	Threshold int64

	Tracked []*model.Archive
	Normal  []*model.Archive
}

func NewPlan(archives *model.Archives, threshold int64) *Plan {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	entries := archives.List()

	tracked := lo.Filter(entries, func(a *model.Archive, _ int) bool {
		return a.CompressedSize > threshold
	})
	normal := lo.Reject(entries, func(a *model.Archive, _ int) bool {
		return a.CompressedSize > threshold
	})

	return &Plan{
		Entries:   entries,
		Threshold: threshold,
		Tracked:   tracked,
		Normal:    normal,
	}
}

func (p *Plan) TotalCompressedSize() int64 {
	var result int64
	for _, a := range p.Entries {
		result += a.CompressedSize
	}
	return result
}
