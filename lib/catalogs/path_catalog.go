package catalogs

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/pescuma/fontvault/lib/utils"
)

// Default returns the directories where Windows keeps installed fonts.
// Per-user fonts come first so they win over system copies with the same
// file name. Directories may not exist; the scanner skips missing ones.
func Default() []string {
	var result []string

	if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
		result = append(result, filepath.Join(localAppData, "Microsoft", "Windows", "Fonts"))
	}

	systemRoot := os.Getenv("SystemRoot")
	if systemRoot == "" {
		systemRoot = `C:\Windows`
	}
	result = append(result, filepath.Join(systemRoot, "Fonts"))

	return result
}

// Expand resolves operator-supplied extra directories. Entries may contain
// glob patterns ("d:/fonts/**"); matches are sorted so repeated runs see
// the same order.
func Expand(extra []string) ([]string, error) {
	var result []string

	for _, dir := range extra {
		if !containsGlob(dir) {
			dir, err := utils.PathAbs(dir)
			if err != nil {
				return nil, err
			}

			result = append(result, dir)
			continue
		}

		matches, err := doublestar.FilepathGlob(dir)
		if err != nil {
			return nil, err
		}

		var dirs []string
		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil || !info.IsDir() {
				continue
			}

			match, err = utils.PathAbs(match)
			if err != nil {
				return nil, err
			}

			dirs = append(dirs, match)
		}

		sort.Strings(dirs)
		result = append(result, dirs...)
	}

	return result, nil
}

func containsGlob(path string) bool {
	for _, c := range path {
		switch c {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
