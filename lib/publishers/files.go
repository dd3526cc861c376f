package publishers

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gertd/go-pluralize"
	"github.com/pkg/errors"
)

const (
	attributesFileName = ".gitattributes"
	ignoreFileName     = ".gitignore"
	readmeFileName     = "README.md"
)

// metadataFiles are generated on every publish and staged together with the
// archives.
var metadataFiles = []string{attributesFileName, ignoreFileName, readmeFileName}

func commitMessage(families int, totalSize int64) string {
	pc := pluralize.NewClient()

	return fmt.Sprintf("Publish %v font %v (%v)",
		families, pc.Pluralize("family", families, false), humanize.IBytes(uint64(totalSize)))
}

func writeReadme(repoDir string, families int, totalSize int64) error {
	pc := pluralize.NewClient()

	// No dates here: the readme must only change when the content does,
	// otherwise re-publishing an unchanged plan would create a new commit
	content := fmt.Sprintf(`# Font Storage

A collection of fonts organized by family.

## Statistics

- Font families: %v
- Total archive size: %v

## Disclaimer

The commercial status of these fonts is unknown. The repository owner makes no claim to ownership of these items.
These fonts are provided "as is" without warranty of any kind, either expressed or implied.

In the event that the contents of the repository fall under copyright, the repository owner makes no claim to its contents.
All fonts were obtained from openly available locations.
`,
		fmt.Sprintf("%v %v", families, pc.Pluralize("family", families, false)),
		humanize.IBytes(uint64(totalSize)))

	return writeFile(filepath.Join(repoDir, readmeFileName), content)
}

// writeAttributes writes the LFS tracking rules: every archive by extension,
// plus one rule per file over the threshold regardless of extension. The
// per-file rules cover manual additions, not only the planned archives.
func writeAttributes(repoDir string, threshold int64) error {
	builder := strings.Builder{}
	builder.WriteString("*.zip filter=lfs diff=lfs merge=lfs -text\n")
	builder.WriteString("*.7z filter=lfs diff=lfs merge=lfs -text\n")

	oversized, err := findOversizedFiles(repoDir, threshold)
	if err != nil {
		return err
	}

	for _, path := range oversized {
		builder.WriteString(attributesPattern(path))
		builder.WriteString(" filter=lfs diff=lfs merge=lfs -text\n")
	}

	return writeFile(filepath.Join(repoDir, attributesFileName), builder.String())
}

func writeIgnoreFile(repoDir string) error {
	return writeFile(filepath.Join(repoDir, ignoreFileName), "*.tmp\n*.log\n")
}

// findOversizedFiles lists files under repoDir, relative paths, whose size
// strictly exceeds threshold and which are not already covered by the
// archive extension rules.
func findOversizedFiles(repoDir string, threshold int64) ([]string, error) {
	var result []string

	err := filepath.WalkDir(repoDir, func(path string, entry fs.DirEntry, err error) error {
		switch {
		case err != nil:
			return nil

		case entry.IsDir():
			if entry.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil

		case !entry.Type().IsRegular():
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext == ".zip" || ext == ".7z" {
			return nil
		}

		info, err := entry.Info()
		if err != nil {
			return nil
		}

		if info.Size() > threshold {
			rel, err := filepath.Rel(repoDir, path)
			if err != nil {
				return err
			}

			result = append(result, filepath.ToSlash(rel))
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "error finding oversized files in %v", repoDir)
	}

	sort.Strings(result)
	return result, nil
}

// gitattributes patterns can't contain literal spaces
func attributesPattern(path string) string {
	return strings.ReplaceAll(path, " ", "[[:space:]]")
}

func writeFile(path string, content string) error {
	err := os.WriteFile(path, []byte(content), 0o600)
	if err != nil {
		return errors.Wrapf(err, "error writing %v", path)
	}
	return nil
}

// copyIntoRepo materializes an archive inside the repository working tree.
// Archives already at the right place are left alone.
func copyIntoRepo(repoDir string, srcPath string) (string, error) {
	name := filepath.Base(srcPath)
	destPath := filepath.Join(repoDir, name)

	if samePath(srcPath, destPath) {
		return name, nil
	}

	src, err := os.Open(srcPath)
	if err != nil {
		return "", errors.Wrapf(err, "error reading archive %v", srcPath)
	}
	defer src.Close()

	dest, err := os.Create(destPath)
	if err != nil {
		return "", errors.Wrapf(err, "error writing archive %v", destPath)
	}
	defer dest.Close()

	_, err = io.Copy(dest, src)
	if err != nil {
		return "", errors.Wrapf(err, "error copying archive to %v", destPath)
	}

	return name, nil
}

func samePath(a, b string) bool {
	aa, err1 := filepath.Abs(a)
	bb, err2 := filepath.Abs(b)
	if err1 != nil || err2 != nil {
		return a == b
	}
	return aa == bb
}
