package scanners

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-set/v2"
	"github.com/pkg/errors"
)

// ExclusionSet holds normalized names of fonts that must never be archived.
// Matching is exact on the normalized key: lowercased, spaces removed,
// extension dropped. "Segoe UI.ttf", "segoeui.ttf" and "SegoeUI" all map to
// the same key.
type ExclusionSet struct {
	keys *set.Set[string]
}

func NewExclusionSet(names ...string) *ExclusionSet {
	result := &ExclusionSet{
		keys: set.New[string](len(names)),
	}

	for _, name := range names {
		result.Add(name)
	}

	return result
}

// NewExclusionSetFromFile loads one exclusion name per line. Blank lines and
// lines starting with # are skipped.
func NewExclusionSetFromFile(path string) (*ExclusionSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading exclusions from %v", path)
	}

	result := NewExclusionSet()

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		result.Add(line)
	}

	return result, nil
}

func (e *ExclusionSet) Add(name string) {
	e.keys.Insert(NormalizeKey(name))
}

func (e *ExclusionSet) Contains(fileName string) bool {
	return e.keys.Contains(NormalizeKey(fileName))
}

func (e *ExclusionSet) Size() int {
	return e.keys.Size()
}

// NormalizeKey computes the comparison key for a font file name.
func NormalizeKey(name string) string {
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "")
	return name
}

// DefaultExclusions lists the fonts that ship with Windows. It can be
// replaced through configuration.
func DefaultExclusions() *ExclusionSet {
	return NewExclusionSet(
		"Arial", "Calibri", "Cambria", "Candara", "Comic Sans MS", "Consolas", "Constantia",
		"Corbel", "Courier New", "Ebrima", "Franklin Gothic", "Gabriola", "Gadugi",
		"Georgia", "Impact", "Javanese Text", "Leelawadee UI", "Lucida Console",
		"Lucida Sans Unicode", "Malgun Gothic", "Microsoft Sans Serif", "MingLiU",
		"MS Gothic", "MS PGothic", "MS UI Gothic", "MV Boli", "Myanmar Text", "Nirmala UI",
		"Palatino Linotype", "Segoe MDL2 Assets", "Segoe Print", "Segoe Script",
		"Segoe UI", "SimSun", "Sitka", "Sylfaen", "Symbol", "Tahoma", "Times New Roman",
		"Trebuchet MS", "Verdana", "Webdings", "Wingdings", "Yu Gothic",
	)
}
