package scanners

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"

	"github.com/pescuma/fontvault/lib/consoles"
	"github.com/pescuma/fontvault/lib/model"
	"github.com/pescuma/fontvault/lib/utils"
)

// IgnoreFileName, when present at the root of a scanned directory, removes
// matching files from the scan. Same syntax as .gitignore.
const IgnoreFileName = ".fontignore"

type Scanner struct {
	console consoles.Console
}

type Options struct {
	Exclusions *ExclusionSet
	Extensions []string
}

func NewScanner(console consoles.Console) *Scanner {
	return &Scanner{
		console: console,
	}
}

// Scan walks dirs in order and returns the recognized, non-excluded font
// files. Files whose name (ignoring case) was already found are skipped, so
// earlier directories win. Missing directories are skipped.
func (s *Scanner) Scan(dirs []string, opts *Options) (*model.FontFiles, error) {
	if opts == nil {
		opts = &Options{}
	}
	if opts.Exclusions == nil {
		opts.Exclusions = DefaultExclusions()
	}
	if len(opts.Extensions) == 0 {
		opts.Extensions = []string{".ttf", ".otf", ".ttc", ".otc"}
	}

	extensions := map[string]bool{}
	for _, ext := range opts.Extensions {
		extensions[strings.ToLower(ext)] = true
	}

	result := model.NewFontFiles()
	seen := map[string]bool{}

	for _, dir := range dirs {
		dir, err := utils.PathAbs(dir)
		if err != nil {
			return nil, err
		}

		exists, err := utils.FileExists(dir)
		if err != nil {
			return nil, err
		}
		if !exists {
			s.console.Printf("Skipping missing directory: %v\n", dir)
			continue
		}

		s.console.Printf("Scanning fonts directory: %v\n", dir)

		ignorer := s.loadIgnoreFile(dir)

		err = s.scanDir(dir, extensions, opts.Exclusions, ignorer, seen, result)
		if err != nil {
			return nil, err
		}
	}

	s.console.Printf("Found %v font files\n", result.Len())

	return result, nil
}

func (s *Scanner) scanDir(dir string, extensions map[string]bool, exclusions *ExclusionSet,
	ignorer *gitignore.GitIgnore, seen map[string]bool, result *model.FontFiles,
) error {
	paths, err := utils.ListFilesRecursive(dir,
		func(path string, entry fs.DirEntry) bool {
			return extensions[strings.ToLower(filepath.Ext(path))]
		},
		func(path string, err error) {
			s.console.Printf("Skipping unreadable entry %v: %v\n", path, err)
		})
	if err != nil {
		return err
	}

	for _, path := range paths {
		name := filepath.Base(path)

		// Dedup on the full file name: Custom.ttf and Custom.otf are
		// different fonts. The looser NormalizeKey is only for exclusions.
		key := strings.ToLower(name)

		if seen[key] {
			continue
		}

		if exclusions.Contains(name) {
			seen[key] = true
			continue
		}

		if ignorer != nil {
			rel, err := filepath.Rel(dir, path)
			if err == nil && ignorer.MatchesPath(filepath.ToSlash(rel)) {
				continue
			}
		}

		info, err := os.Lstat(path)
		if err != nil {
			s.console.Printf("Skipping unreadable entry %v: %v\n", path, err)
			continue
		}

		seen[key] = true

		file := result.GetOrCreate(path)
		file.Size = info.Size()
		file.SeenAt = info.ModTime()
	}

	return nil
}

func (s *Scanner) loadIgnoreFile(dir string) *gitignore.GitIgnore {
	path := filepath.Join(dir, IgnoreFileName)

	exists, err := utils.FileExists(path)
	if err != nil || !exists {
		return nil
	}

	ignorer, err := gitignore.CompileIgnoreFile(path)
	if err != nil {
		s.console.Printf("Ignoring invalid %v in %v: %v\n", IgnoreFileName, dir, err)
		return nil
	}

	return ignorer
}
